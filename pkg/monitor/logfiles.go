package monitor

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// scanBufferSize bounds a single log line; solver residual lines are long
// but nowhere near this.
const scanBufferSize = 1024 * 1024

// LogFile is one entry of the log directory inventory.
type LogFile struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// listLogs inventories the log directory, newest first. A missing directory
// is a normal not-yet-run state and yields an empty inventory.
func listLogs(logDir string) ([]LogFile, error) {
	entries, err := os.ReadDir(logDir)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "reading log directory %s", logDir)
	}

	var logs []LogFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logs = append(logs, LogFile{
			Name:    entry.Name(),
			Path:    filepath.Join(logDir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].ModTime.After(logs[j].ModTime) })
	return logs, nil
}

// latestLog finds the most recently modified file in logDir matching glob.
// The second return is false when no log has appeared yet.
func latestLog(logDir, glob string) (string, bool) {
	logs, err := listLogs(logDir)
	if err != nil {
		return "", false
	}
	for _, log := range logs {
		if ok, _ := doublestar.Match(glob, log.Name); ok {
			return log.Path, true
		}
	}
	return "", false
}

// readLogLines streams a log file line by line without slurping it whole.
func readLogLines(path string, visit func(line string)) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening log %s", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufferSize)
	for scanner.Scan() {
		visit(scanner.Text())
	}
	return scanner.Err()
}

// TailLog returns up to maxLines of the end of a log file.
func TailLog(path string, maxLines int) ([]string, error) {
	var tail []string
	err := readLogLines(path, func(line string) {
		tail = append(tail, line)
		if maxLines > 0 && len(tail) > maxLines {
			tail = tail[1:]
		}
	})
	return tail, err
}
