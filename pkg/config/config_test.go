//go:build unit || !integration

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Cleanup viper settings after each test
	defer Reset()

	t.Run("Defaults", func(t *testing.T) {
		defer Reset()
		root := t.TempDir()

		cfg, err := Load(root)
		require.NoError(t, err)

		assert.Equal(t, root, cfg.Case.Root)
		assert.Equal(t, "sbatch", cfg.Scheduler.SubmitCommand)
		assert.Equal(t, "logs", cfg.Logs.Dir)
		assert.Equal(t, 7*24*time.Hour, cfg.Logs.Retention.AsTimeDuration())
		assert.Contains(t, cfg.Case.SystemDicts, "system/controlDict")
		assert.Equal(t, "mesh", cfg.Workflow.Mesh.Name)
		assert.Equal(t, []string{"Mesh OK"}, cfg.Monitor.Mesh.Success)
	})

	t.Run("ManifestOverridesDefaults", func(t *testing.T) {
		defer Reset()
		root := t.TempDir()

		manifest := `
Case:
  Patches:
    - nose
    - tail
Scheduler:
  SubmitCommand: sbatch --account=aero
Workflow:
  Solver:
    Partition: compute
    TimeLimit: 48h
`
		require.NoError(t, os.WriteFile(filepath.Join(root, "caseflow.yaml"), []byte(manifest), 0o644))

		cfg, err := Load(root)
		require.NoError(t, err)

		assert.Equal(t, []string{"nose", "tail"}, cfg.Case.Patches)
		assert.Equal(t, "sbatch --account=aero", cfg.Scheduler.SubmitCommand)
		assert.Equal(t, "compute", cfg.Workflow.Solver.Partition)
		assert.Equal(t, 48*time.Hour, cfg.Workflow.Solver.TimeLimit.AsTimeDuration())
		// untouched keys keep their defaults
		assert.Equal(t, "squeue", cfg.Scheduler.QueueCommand)
		assert.Equal(t, "solver", cfg.Workflow.Solver.Name)
	})

	t.Run("EnvironmentOverridesManifest", func(t *testing.T) {
		defer Reset()
		root := t.TempDir()

		manifest := "Scheduler:\n  Account: aero\n"
		require.NoError(t, os.WriteFile(filepath.Join(root, "caseflow.yaml"), []byte(manifest), 0o644))
		t.Setenv("CASEFLOW_SCHEDULER_ACCOUNT", "hypersonics")

		cfg, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, "hypersonics", cfg.Scheduler.Account)
	})

	t.Run("DotEnvIsLoaded", func(t *testing.T) {
		defer Reset()
		root := t.TempDir()

		require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("CASEFLOW_SCHEDULER_PARTITION_UNUSED=x\nCASEFLOW_SCHEDULER_USER=aeolus\n"), 0o644))
		t.Cleanup(func() {
			os.Unsetenv("CASEFLOW_SCHEDULER_PARTITION_UNUSED")
			os.Unsetenv("CASEFLOW_SCHEDULER_USER")
		})

		cfg, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, "aeolus", cfg.Scheduler.User)
	})

	t.Run("KeyAsEnvVar", func(t *testing.T) {
		assert.Equal(t, "CASEFLOW_SCHEDULER_ACCOUNT", KeyAsEnvVar("scheduler.account"))
	})

	t.Run("ManifestRootNeverWins", func(t *testing.T) {
		defer Reset()
		root := t.TempDir()

		manifest := "Case:\n  Root: /somewhere/else\n"
		require.NoError(t, os.WriteFile(filepath.Join(root, "caseflow.yaml"), []byte(manifest), 0o644))

		cfg, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, root, cfg.Case.Root)
	})
}

func TestManifestSchema(t *testing.T) {
	t.Run("SchemaGenerates", func(t *testing.T) {
		data, err := GenerateManifestJSONSchema()
		require.NoError(t, err)
		assert.Contains(t, string(data), "CaseflowConfig")
	})

	t.Run("ValidManifestPasses", func(t *testing.T) {
		manifest := `
Scheduler:
  Account: aero
Logs:
  Retention: 168h
`
		require.NoError(t, ValidateManifestBytes([]byte(manifest)))
	})

	t.Run("UnknownKeyIsRejected", func(t *testing.T) {
		manifest := `
Scheduler:
  Acount: aero
`
		require.Error(t, ValidateManifestBytes([]byte(manifest)))
	})

	t.Run("WrongTypeIsRejected", func(t *testing.T) {
		manifest := `
Monitor:
  TailLines: twenty
`
		require.Error(t, ValidateManifestBytes([]byte(manifest)))
	})

	t.Run("RejectedManifestFailsLoad", func(t *testing.T) {
		defer Reset()
		root := t.TempDir()

		manifest := "Scheduler:\n  Acount: aero\n"
		require.NoError(t, os.WriteFile(filepath.Join(root, "caseflow.yaml"), []byte(manifest), 0o644))

		_, err := Load(root)
		require.Error(t, err)
	})
}
