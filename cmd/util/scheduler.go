package util

import (
	"github.com/cfdops/caseflow/pkg/config/types"
	"github.com/cfdops/caseflow/pkg/slurm"
)

// NewSchedulerClient builds the batch scheduler client from the resolved
// case manifest.
func NewSchedulerClient(cfg types.CaseflowConfig) (*slurm.Client, error) {
	return slurm.NewClient(slurm.ClientParams{
		SubmitCommand:  cfg.Scheduler.SubmitCommand,
		QueueCommand:   cfg.Scheduler.QueueCommand,
		CancelCommand:  cfg.Scheduler.CancelCommand,
		Account:        cfg.Scheduler.Account,
		User:           cfg.Scheduler.User,
		CommandTimeout: cfg.Scheduler.CommandTimeout.AsTimeDuration(),
	})
}
