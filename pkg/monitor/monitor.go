package monitor

import (
	"context"

	"github.com/samber/lo"

	"github.com/cfdops/caseflow/pkg/config/types"
	"github.com/cfdops/caseflow/pkg/slurm"
)

// Stage names one of the two workflow stages.
type Stage string

const (
	StageMesh   Stage = "mesh"
	StageSolver Stage = "solver"
)

// Monitor inspects scheduler state and the artifacts the external tools
// leave on disk. Everything it does is read-only; absence of evidence is
// always reported as unknown, never as failure.
type Monitor struct {
	cfg       types.CaseflowConfig
	scheduler slurm.Scheduler
}

func New(cfg types.CaseflowConfig, scheduler slurm.Scheduler) *Monitor {
	return &Monitor{cfg: cfg, scheduler: scheduler}
}

// QueueStatus lists the current user's jobs. Unless all is set, rows are
// narrowed to the workflow's own job names. An empty result is normal.
func (m *Monitor) QueueStatus(ctx context.Context, all bool) ([]slurm.QueueEntry, error) {
	entries, err := m.scheduler.Queue(ctx, slurm.QueueFilter{User: m.cfg.Scheduler.User})
	if err != nil {
		return nil, err
	}
	if all {
		return entries, nil
	}

	known := []string{m.cfg.Workflow.Mesh.Name, m.cfg.Workflow.Solver.Name}
	return lo.Filter(entries, func(entry slurm.QueueEntry, _ int) bool {
		return lo.Contains(known, entry.Name)
	}), nil
}

// LogInventory lists the log directory, newest first.
func (m *Monitor) LogInventory() ([]LogFile, error) {
	return listLogs(m.cfg.LogDir())
}

// StageLog locates the newest log of a stage. The second return is false
// while the stage has not produced one yet.
func (m *Monitor) StageLog(stage Stage) (string, bool) {
	return latestLog(m.cfg.LogDir(), m.stageConfig(stage).LogGlob)
}

func (m *Monitor) stageConfig(stage Stage) types.StageMonitorConfig {
	if stage == StageSolver {
		return m.cfg.Monitor.Solver
	}
	return m.cfg.Monitor.Mesh
}
