package version

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cfdops/caseflow/cmd/util/flags/cliflags"
	"github.com/cfdops/caseflow/cmd/util/output"
	"github.com/cfdops/caseflow/pkg/models"
	"github.com/cfdops/caseflow/pkg/version"
)

type VersionOptions struct {
	OutputOpts output.OutputOptions
}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{
		OutputOpts: output.OutputOptions{Format: output.TableFormat},
	}
}

func NewCmd() *cobra.Command {
	oV := NewVersionOptions()

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version of this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd, oV)
		},
	}
	versionCmd.Flags().AddFlagSet(cliflags.OutputFormatFlags(&oV.OutputOpts))
	return versionCmd
}

var columns = []output.TableColumn[*models.BuildVersionInfo]{
	{
		ColumnConfig: table.ColumnConfig{Name: "Version"},
		Value:        func(v *models.BuildVersionInfo) string { return v.GitVersion },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Commit"},
		Value:        func(v *models.BuildVersionInfo) string { return v.GitCommit },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Built"},
		Value: func(v *models.BuildVersionInfo) string {
			if v.BuildDate.IsZero() {
				return ""
			}
			return v.BuildDate.Format(time.RFC3339)
		},
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Platform"},
		Value:        func(v *models.BuildVersionInfo) string { return v.GOOS + "/" + v.GOARCH },
	},
}

func runVersion(cmd *cobra.Command, options *VersionOptions) error {
	return output.OutputOne(cmd, columns, options.OutputOpts, version.Get())
}
