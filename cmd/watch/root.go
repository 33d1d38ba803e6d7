package watch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cfdops/caseflow/cmd/cli/version"
	"github.com/cfdops/caseflow/cmd/util"
	"github.com/cfdops/caseflow/cmd/util/flags"
	"github.com/cfdops/caseflow/cmd/util/templates"
	"github.com/cfdops/caseflow/pkg/config"
	"github.com/cfdops/caseflow/pkg/config/types"
	"github.com/cfdops/caseflow/pkg/logger"
	"github.com/cfdops/caseflow/pkg/monitor"
)

var loggingMode = logger.LogModeDefault

func init() { //nolint:gochecknoinits
	if logtype, set := os.LookupEnv("LOG_TYPE"); set {
		loggingMode = logger.LogMode(strings.ToLower(logtype))
	}
}

func NewRootCmd() *cobra.Command {
	statusOpts := NewStatusOptions()

	rootCmd := &cobra.Command{
		Use:   "casewatch",
		Short: "Observe the cluster jobs and logs of a CFD case",
		Long: templates.LongDesc(`
			Casewatch is the read-only companion of caseflow. It shows the
			scheduler queue, scans mesh and solver logs for progress and
			completion markers, and archives aged logs. It never changes job
			state except for the explicit cancel command, which relays a job ID
			to the scheduler's cancel tool.`),
		Example: templates.Examples(`
			# Queue status of this case's jobs (the default command)
			casewatch

			# Watch the queue, refreshing in place
			casewatch status --watch

			# Did the mesh build? How many cells?
			casewatch mesh-status

			# Latest residuals
			casewatch solver-status

			# Move logs older than the retention window into the dated archive
			casewatch clean-logs`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, statusOpts)
		},
	}

	rootCmd.PersistentFlags().String("case", ".", "Path of the case directory")
	rootCmd.PersistentFlags().Var(flags.LoggingFlag(&loggingMode), "log-mode",
		"Log format: 'default','json','combined'")

	util.InstallRunHooks(rootCmd, &loggingMode)

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLogsCmd())
	rootCmd.AddCommand(newStageLogCmd(monitor.StageMesh))
	rootCmd.AddCommand(newStageLogCmd(monitor.StageSolver))
	rootCmd.AddCommand(newMeshStatusCmd())
	rootCmd.AddCommand(newSolverStatusCmd())
	rootCmd.AddCommand(newCleanLogsCmd())
	rootCmd.AddCommand(newCancelCmd())
	rootCmd.AddCommand(version.NewCmd())

	return rootCmd
}

func Execute() {
	util.Execute(NewRootCmd())
}

// loadCase resolves the manifest for the case named by the persistent
// --case flag.
func loadCase(cmd *cobra.Command) (types.CaseflowConfig, error) {
	caseDir, err := cmd.Flags().GetString("case")
	if err != nil {
		return types.CaseflowConfig{}, err
	}
	caseRoot, err := filepath.Abs(caseDir)
	if err != nil {
		return types.CaseflowConfig{}, err
	}
	return config.Load(caseRoot)
}

// loadMonitor builds the monitor for the case named by --case.
func loadMonitor(cmd *cobra.Command) (types.CaseflowConfig, *monitor.Monitor, error) {
	cfg, err := loadCase(cmd)
	if err != nil {
		return cfg, nil, err
	}
	scheduler, err := util.NewSchedulerClient(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, monitor.New(cfg, scheduler), nil
}
