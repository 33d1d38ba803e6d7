package monitor

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/cfdops/caseflow/pkg/config/types"
)

// Archiver moves aged log files into a dated archive subdirectory. It never
// deletes anything; archival is the only cleanup this system performs.
// Re-running with no eligible files is a no-op.
type Archiver struct {
	logDir     string
	archiveDir string
	retention  time.Duration
	patterns   []string
}

// ArchiveResult reports one archival run. Moving zero files is a success.
type ArchiveResult struct {
	Moved []string
	Dest  string
}

func NewArchiver(cfg types.CaseflowConfig) *Archiver {
	return &Archiver{
		logDir:     cfg.LogDir(),
		archiveDir: cfg.ArchiveDir(),
		retention:  cfg.Logs.Retention.AsTimeDuration(),
		patterns:   cfg.Logs.Patterns,
	}
}

// Archive moves every matching log older than the retention window into
// <archiveDir>/<YYYY-MM-DD>, dated by the run itself. The destination is
// created on demand.
func (a *Archiver) Archive(ctx context.Context) (ArchiveResult, error) {
	result := ArchiveResult{
		Dest: filepath.Join(a.archiveDir, time.Now().Format("2006-01-02")),
	}
	cutoff := time.Now().Add(-a.retention)

	logs, err := listLogs(a.logDir)
	if err != nil {
		return result, err
	}

	for _, logFile := range logs {
		if !a.eligible(logFile, cutoff) {
			continue
		}
		if len(result.Moved) == 0 {
			if err := os.MkdirAll(result.Dest, os.ModePerm); err != nil {
				return result, errors.Wrapf(err, "creating archive directory %s", result.Dest)
			}
		}
		dest := filepath.Join(result.Dest, logFile.Name)
		if err := os.Rename(logFile.Path, dest); err != nil {
			return result, errors.Wrapf(err, "archiving %s", logFile.Name)
		}
		log.Ctx(ctx).Debug().
			Str("Log", logFile.Name).
			Str("Dest", dest).
			Msg("archived aged log")
		result.Moved = append(result.Moved, logFile.Name)
	}

	log.Ctx(ctx).Info().
		Int("Moved", len(result.Moved)).
		Str("Dest", result.Dest).
		Msg("log archival finished")
	return result, nil
}

func (a *Archiver) eligible(logFile LogFile, cutoff time.Time) bool {
	if !logFile.ModTime.Before(cutoff) {
		return false
	}
	for _, pattern := range a.patterns {
		if ok, _ := doublestar.Match(pattern, logFile.Name); ok {
			return true
		}
	}
	return false
}
