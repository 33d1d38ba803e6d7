package watch

import (
	"github.com/spf13/cobra"

	"github.com/cfdops/caseflow/cmd/util"
)

func newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [jobid]",
		Short: "Ask the scheduler to cancel a job by its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCase(cmd)
			if err != nil {
				return err
			}
			scheduler, err := util.NewSchedulerClient(cfg)
			if err != nil {
				return err
			}
			if err := scheduler.Cancel(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Cancel requested for job %s\n", args[0])
			return nil
		},
	}
}
