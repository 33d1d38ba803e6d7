package watch

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cfdops/caseflow/cmd/util/flags/cliflags"
	"github.com/cfdops/caseflow/cmd/util/output"
	"github.com/cfdops/caseflow/pkg/models"
	"github.com/cfdops/caseflow/pkg/monitor"
)

func newMeshStatusCmd() *cobra.Command {
	outputOpts := output.NonTabularOutputOptions{}

	meshStatusCmd := &cobra.Command{
		Use:   "mesh-status",
		Short: "Report whether the mesh was built, from disk output and log markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, mon, err := loadMonitor(cmd)
			if err != nil {
				return err
			}
			report, err := mon.MeshStatus()
			if err != nil {
				return err
			}
			if outputOpts.Format != "" {
				return output.OutputOneNonTabular(cmd, outputOpts, report)
			}
			printMeshReport(cmd, report)
			return nil
		},
	}
	meshStatusCmd.Flags().AddFlagSet(cliflags.OutputNonTabularFormatFlags(&outputOpts))
	return meshStatusCmd
}

func printMeshReport(cmd *cobra.Command, report monitor.MeshReport) {
	pairs := []output.Pair{
		{Key: "Mesh output", Value: presence(report.MeshPresent)},
	}
	if len(report.MissingFiles) > 0 {
		pairs = append(pairs, output.Pair{Key: "Missing files", Value: strings.Join(report.MissingFiles, ", ")})
	}
	pairs = append(pairs,
		output.Pair{Key: "Log", Value: orNotFound(report.LogPath)},
		output.Pair{Key: "Log verdict", Value: stateWord(report.State)},
		output.Pair{Key: "Marker", Value: report.Marker},
	)
	for _, count := range report.Counts {
		pairs = append(pairs, output.Pair{Key: "  " + count.Label, Value: count.Value})
	}
	output.KeyValue(cmd, pairs)
}

func newSolverStatusCmd() *cobra.Command {
	outputOpts := output.NonTabularOutputOptions{}

	solverStatusCmd := &cobra.Command{
		Use:   "solver-status",
		Short: "Report solver progress and outcome from its log markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, mon, err := loadMonitor(cmd)
			if err != nil {
				return err
			}
			report, err := mon.SolverStatus()
			if err != nil {
				return err
			}
			if outputOpts.Format != "" {
				return output.OutputOneNonTabular(cmd, outputOpts, report)
			}
			printSolverReport(cmd, report)
			return nil
		},
	}
	solverStatusCmd.Flags().AddFlagSet(cliflags.OutputNonTabularFormatFlags(&outputOpts))
	return solverStatusCmd
}

func printSolverReport(cmd *cobra.Command, report monitor.SolverReport) {
	output.KeyValue(cmd, []output.Pair{
		{Key: "Log", Value: orNotFound(report.LogPath)},
		{Key: "Log verdict", Value: stateWord(report.State)},
		{Key: "Marker", Value: report.Marker},
	})
	if len(report.Tail) > 0 {
		cmd.Println("Recent iterations:")
		for _, line := range report.Tail {
			cmd.Printf("  %s\n", line)
		}
	}
	if len(report.PostOutputs) > 0 {
		cmd.Printf("Post-processing output: %s\n", strings.Join(report.PostOutputs, ", "))
	}
}

// stateWord renders a log-derived state for humans. Unknown stays honest:
// no marker means no verdict, not failure.
func stateWord(state models.JobState) string {
	switch state {
	case models.JobStateSucceeded:
		return "success"
	case models.JobStateFailed:
		return "FAILED"
	case models.JobStateRunning:
		return "running"
	default:
		return "unknown (no marker found)"
	}
}

func presence(present bool) string {
	if present {
		return "present"
	}
	return "not found"
}

func orNotFound(path string) string {
	if path == "" {
		return "not found (not yet run)"
	}
	return path
}
