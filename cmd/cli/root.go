package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cfdops/caseflow/cmd/cli/configcmd"
	"github.com/cfdops/caseflow/cmd/cli/version"
	"github.com/cfdops/caseflow/cmd/util"
	"github.com/cfdops/caseflow/cmd/util/flags"
	"github.com/cfdops/caseflow/cmd/util/templates"
	"github.com/cfdops/caseflow/pkg/config"
	"github.com/cfdops/caseflow/pkg/logger"
	"github.com/cfdops/caseflow/pkg/workflow"
)

var loggingMode = logger.LogModeDefault

func init() { //nolint:gochecknoinits
	if logtype, set := os.LookupEnv("LOG_TYPE"); set {
		loggingMode = logger.LogMode(strings.ToLower(logtype))
	}
}

// SubmitOptions are the flag values of the root command.
type SubmitOptions struct {
	CaseDir    string
	MeshOnly   bool
	SolverOnly bool
	CheckOnly  bool
}

func NewSubmitOptions() *SubmitOptions {
	return &SubmitOptions{CaseDir: "."}
}

func NewRootCmd() *cobra.Command {
	opts := NewSubmitOptions()

	rootCmd := &cobra.Command{
		Use:   "caseflow",
		Short: "Validate a CFD case and submit its mesh and solver jobs",
		Long: templates.LongDesc(`
			Caseflow validates the artifacts of a CFD case directory and hands its
			mesh-generation and solver stages to the cluster batch scheduler. By
			default both jobs are submitted, with the solver gated on the mesh job
			finishing successfully; the scheduler cancels the solver job on its own
			when the mesh job fails. Caseflow never waits for jobs to finish; use
			casewatch to observe them.`),
		Example: templates.Examples(`
			# Validate the case in the current directory and submit the full chain
			caseflow

			# Validate only, submit nothing
			caseflow --check-only

			# Submit only the mesh job
			caseflow --mesh-only

			# Re-run the solver against an existing mesh
			caseflow --solver-only --case /data/cases/wing-a380`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSubmit(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.CaseDir, "case", opts.CaseDir,
		"Path of the case directory")
	rootCmd.PersistentFlags().Var(flags.LoggingFlag(&loggingMode), "log-mode",
		"Log format: 'default','json','combined'")

	rootCmd.Flags().BoolVar(&opts.MeshOnly, "mesh-only", false,
		"Submit only the mesh job")
	rootCmd.Flags().BoolVar(&opts.SolverOnly, "solver-only", false,
		"Submit only the solver job; requires mesh output on disk")
	rootCmd.Flags().BoolVar(&opts.CheckOnly, "check-only", false,
		"Validate the case and exit without submitting anything")
	rootCmd.MarkFlagsMutuallyExclusive("mesh-only", "solver-only", "check-only")

	util.InstallRunHooks(rootCmd, &loggingMode)

	rootCmd.AddCommand(version.NewCmd())
	rootCmd.AddCommand(configcmd.NewCmd())

	return rootCmd
}

func Execute() {
	util.Execute(NewRootCmd())
}

func (o *SubmitOptions) mode() workflow.Mode {
	switch {
	case o.CheckOnly:
		return workflow.ModeCheckOnly
	case o.MeshOnly:
		return workflow.ModeMeshOnly
	case o.SolverOnly:
		return workflow.ModeSolverOnly
	default:
		return workflow.ModeFull
	}
}

func runSubmit(cmd *cobra.Command, opts *SubmitOptions) error {
	ctx := cmd.Context()

	caseRoot, err := filepath.Abs(opts.CaseDir)
	if err != nil {
		return err
	}
	cfg, err := config.Load(caseRoot)
	if err != nil {
		return err
	}
	scheduler, err := util.NewSchedulerClient(cfg)
	if err != nil {
		return err
	}

	result, runErr := workflow.NewOrchestrator(cfg, scheduler).Run(ctx, opts.mode())
	printReport(cmd, result)
	if runErr != nil {
		return runErr
	}

	for _, submission := range result.Record.Submissions {
		cmd.Printf("Submitted %s job %s\n", submission.JobName, submission.JobID)
	}
	if len(result.Record.Submissions) > 0 {
		cmd.Printf("Submission recorded in %s\n", result.Record.LogPath)
	}
	return nil
}

func printReport(cmd *cobra.Command, result workflow.Result) {
	report := result.Report
	for _, finding := range report.Findings {
		cmd.Printf("  %s\n", finding)
	}
	cmd.Printf("Validation: %d error(s), %d warning(s)\n", report.Errors(), report.Warnings())
}
