package configcmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/cfdops/caseflow/cmd/util/templates"
	"github.com/cfdops/caseflow/pkg/config"
)

func NewCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved case manifest",
	}
	configCmd.AddCommand(newShowCmd())
	configCmd.AddCommand(newSchemaCmd())
	return configCmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the fully resolved manifest as YAML",
		Long: templates.LongDesc(`
			Print the manifest the other commands would run with: built-in
			defaults, merged with caseflow.yaml from the case root if present,
			merged with CASEFLOW_* environment variables.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			caseDir, err := cmd.Flags().GetString("case")
			if err != nil {
				return err
			}
			caseRoot, err := filepath.Abs(caseDir)
			if err != nil {
				return err
			}
			cfg, err := config.Load(caseRoot)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			return nil
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema that caseflow.yaml is validated against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := config.GenerateManifestJSONSchema()
			if err != nil {
				return err
			}
			cmd.Println(string(schema))
			return nil
		},
	}
}
