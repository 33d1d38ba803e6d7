package monitor

import (
	"os"
	"path/filepath"

	"github.com/cfdops/caseflow/pkg/models"
)

// polyMeshEssentials are the files a finished mesh always contains. Their
// presence is the primary success signal, independent of log wording.
var polyMeshEssentials = []string{"points", "faces", "owner", "neighbour", "boundary"}

// MeshOutputPresent checks meshDir for the essential mesh files and returns
// the names of any that are missing.
func MeshOutputPresent(meshDir string) (bool, []string) {
	var missing []string
	for _, name := range polyMeshEssentials {
		if info, err := os.Stat(filepath.Join(meshDir, name)); err != nil || info.Size() == 0 {
			missing = append(missing, name)
		}
	}
	return len(missing) == 0, missing
}

// MeshReport is the observed state of the mesh stage.
type MeshReport struct {
	// MeshPresent is true when the mesh output directory holds all
	// essential files.
	MeshPresent bool

	// MissingFiles names the essential mesh files not found on disk.
	MissingFiles []string `json:",omitempty"`

	// LogPath is the scanned mesh log, empty when none exists yet.
	LogPath string `json:",omitempty"`

	// State is derived from log markers only. JobStateUnknown means no
	// marker was found, which includes the log not existing at all.
	State models.JobState

	// Marker is the log line that decided State.
	Marker string `json:",omitempty"`

	// Counts are the mesh statistics extracted from the log.
	Counts []Count `json:",omitempty"`
}

// MeshStatus reports on the mesh stage from disk artifacts and the newest
// mesh log. Missing artifacts are a normal not-yet-run state.
func (m *Monitor) MeshStatus() (MeshReport, error) {
	report := MeshReport{State: models.JobStateUnknown}
	report.MeshPresent, report.MissingFiles = MeshOutputPresent(m.cfg.MeshDir())

	logPath, ok := m.StageLog(StageMesh)
	if !ok {
		return report, nil
	}
	report.LogPath = logPath

	var lines []string
	if err := readLogLines(logPath, func(line string) { lines = append(lines, line) }); err != nil {
		return report, err
	}

	scanned := MeshMarkers(m.cfg.Monitor.Mesh).scan(lines, m.cfg.Monitor.TailLines)
	report.State = scanned.State
	report.Marker = scanned.Marker
	report.Counts = scanned.Counts
	return report, nil
}
