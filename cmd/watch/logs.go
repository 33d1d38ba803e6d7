package watch

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cfdops/caseflow/cmd/util/flags/cliflags"
	"github.com/cfdops/caseflow/cmd/util/output"
	"github.com/cfdops/caseflow/pkg/lib/math"
	"github.com/cfdops/caseflow/pkg/monitor"
)

func newLogsCmd() *cobra.Command {
	outputOpts := output.OutputOptions{Format: output.TableFormat}

	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "List the case's log directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, mon, err := loadMonitor(cmd)
			if err != nil {
				return err
			}
			logs, err := mon.LogInventory()
			if err != nil {
				return err
			}
			if len(logs) == 0 && outputOpts.Format == output.TableFormat {
				cmd.Println("No logs yet.")
				return nil
			}
			return output.Output(cmd, logColumns, outputOpts, logs)
		},
	}
	logsCmd.Flags().AddFlagSet(cliflags.OutputFormatFlags(&outputOpts))
	return logsCmd
}

var logColumns = []output.TableColumn[monitor.LogFile]{
	{
		ColumnConfig: table.ColumnConfig{Name: "Name"},
		Value:        func(l monitor.LogFile) string { return l.Name },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Size"},
		Value:        func(l monitor.LogFile) string { return humanize.Bytes(uint64(l.Size)) },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Modified"},
		Value:        func(l monitor.LogFile) string { return humanize.Time(l.ModTime) },
	},
}

// newStageLogCmd builds the mesh-log and solver-log commands; both print the
// tail of the stage's newest log.
func newStageLogCmd(stage monitor.Stage) *cobra.Command {
	var lines int

	logCmd := &cobra.Command{
		Use:   fmt.Sprintf("%s-log", stage),
		Short: fmt.Sprintf("Print the tail of the newest %s log", stage),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, mon, err := loadMonitor(cmd)
			if err != nil {
				return err
			}
			path, ok := mon.StageLog(stage)
			if !ok {
				cmd.Printf("No %s log found; the %s stage has not run yet.\n", stage, stage)
				return nil
			}
			tail, err := monitor.TailLog(path, math.Max(0, lines))
			if err != nil {
				return err
			}
			cmd.Printf("==> %s <==\n", path)
			for _, line := range tail {
				cmd.Println(line)
			}
			return nil
		},
	}
	logCmd.Flags().IntVarP(&lines, "lines", "n", 40, "Number of trailing lines to print; 0 for the whole log")
	return logCmd
}
