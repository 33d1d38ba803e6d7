package watch

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cfdops/caseflow/cmd/util"
	"github.com/cfdops/caseflow/cmd/util/flags/cliflags"
	"github.com/cfdops/caseflow/cmd/util/output"
	"github.com/cfdops/caseflow/pkg/slurm"
)

type StatusOptions struct {
	All        bool
	Watch      bool
	Interval   time.Duration
	OutputOpts output.OutputOptions
}

func NewStatusOptions() *StatusOptions {
	return &StatusOptions{
		Interval:   5 * time.Second,
		OutputOpts: output.OutputOptions{Format: output.TableFormat},
	}
}

func newStatusCmd() *cobra.Command {
	opts := NewStatusOptions()

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "List this case's jobs in the scheduler queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, opts)
		},
	}

	statusCmd.Flags().BoolVar(&opts.All, "all", false,
		"Show all of the user's jobs, not just this case's")
	statusCmd.Flags().BoolVar(&opts.Watch, "watch", false,
		"Keep refreshing the queue table in place until interrupted")
	statusCmd.Flags().DurationVar(&opts.Interval, "interval", opts.Interval,
		"Refresh interval for --watch")
	statusCmd.Flags().AddFlagSet(cliflags.OutputFormatFlags(&opts.OutputOpts))
	return statusCmd
}

var queueColumns = []output.TableColumn[slurm.QueueEntry]{
	{
		ColumnConfig: table.ColumnConfig{Name: "ID", WidthMax: 12, WidthMaxEnforcer: shortenRight},
		Value:        func(e slurm.QueueEntry) string { return e.JobID },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Name", WidthMax: 24, WidthMaxEnforcer: shortenRight},
		Value:        func(e slurm.QueueEntry) string { return e.Name },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "State"},
		Value:        func(e slurm.QueueEntry) string { return e.State.String() },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Time"},
		Value:        func(e slurm.QueueEntry) string { return e.TimeUsed },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Nodes"},
		Value:        func(e slurm.QueueEntry) string { return e.Nodes },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Reason", WidthMax: 40, WidthMaxEnforcer: shortenRight},
		Value:        func(e slurm.QueueEntry) string { return e.Reason },
	},
}

func shortenRight(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen-3] + "..."
}

func runStatus(cmd *cobra.Command, opts *StatusOptions) error {
	_, mon, err := loadMonitor(cmd)
	if err != nil {
		return err
	}

	render := func() error {
		entries, err := mon.QueueStatus(cmd.Context(), opts.All)
		if err != nil {
			return err
		}
		if len(entries) == 0 && opts.OutputOpts.Format == output.TableFormat {
			cmd.Println("No jobs in the queue.")
			return nil
		}
		return output.Output(cmd, queueColumns, opts.OutputOpts, entries)
	}

	if !opts.Watch {
		return render()
	}

	// redraw in place until ctrl+c; each pass re-queries the scheduler,
	// nothing is tracked between refreshes
	writer := util.NewLiveTableWriter()
	cmd.SetOut(writer)
	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()
	for {
		if err := render(); err != nil {
			return err
		}
		if err := writer.Flush(); err != nil {
			return err
		}
		select {
		case <-cmd.Context().Done():
			return nil
		case <-ticker.C:
		}
	}
}
