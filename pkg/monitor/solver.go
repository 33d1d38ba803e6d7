package monitor

import (
	"os"

	"github.com/cfdops/caseflow/pkg/models"
)

// SolverReport is the observed state of the solver stage.
type SolverReport struct {
	// LogPath is the scanned solver log, empty when none exists yet.
	LogPath string `json:",omitempty"`

	// State is derived from log markers only. Progress lines without a
	// terminal marker read as running; no markers at all read as unknown.
	State models.JobState

	// Marker is the log line that decided State.
	Marker string `json:",omitempty"`

	// Tail is the most recent window of iteration and residual lines.
	Tail []string `json:",omitempty"`

	// PostOutputs lists the entries of the post-processing output
	// directory, when one exists.
	PostOutputs []string `json:",omitempty"`
}

// SolverStatus reports on the solver stage from its newest log and the
// post-processing directory. Missing artifacts are a normal not-yet-run
// state.
func (m *Monitor) SolverStatus() (SolverReport, error) {
	report := SolverReport{State: models.JobStateUnknown}
	report.PostOutputs = m.listPostOutputs()

	logPath, ok := m.StageLog(StageSolver)
	if !ok {
		return report, nil
	}
	report.LogPath = logPath

	var lines []string
	if err := readLogLines(logPath, func(line string) { lines = append(lines, line) }); err != nil {
		return report, err
	}

	scanned := SolverMarkers(m.cfg.Monitor.Solver).scan(lines, m.cfg.Monitor.TailLines)
	report.State = scanned.State
	report.Marker = scanned.Marker
	report.Tail = scanned.Progress
	return report, nil
}

func (m *Monitor) listPostOutputs() []string {
	entries, err := os.ReadDir(m.cfg.PostDir())
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
