package watch

import (
	"github.com/spf13/cobra"

	"github.com/cfdops/caseflow/pkg/monitor"
)

func newCleanLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-logs",
		Short: "Move logs older than the retention window into the dated archive",
		Long: `Move logs older than the retention window into a dated archive
subdirectory. Nothing is ever deleted; re-running with no aged logs is a
no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCase(cmd)
			if err != nil {
				return err
			}
			result, err := monitor.NewArchiver(cfg).Archive(cmd.Context())
			if err != nil {
				return err
			}
			if len(result.Moved) == 0 {
				cmd.Println("No logs old enough to archive.")
				return nil
			}
			cmd.Printf("Archived %d log(s) into %s:\n", len(result.Moved), result.Dest)
			for _, name := range result.Moved {
				cmd.Printf("  %s\n", name)
			}
			return nil
		},
	}
}
