package cmdtesting

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/cfdops/caseflow/pkg/config/types"
)

// ExecuteTestCobraCommand runs a cobra command tree with the given args,
// capturing combined output.
func ExecuteTestCobraCommand(root *cobra.Command, args ...string) (c *cobra.Command, output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	root.SetContext(context.Background())

	c, err = root.ExecuteC()
	return c, buf.String(), err
}

// WriteCompleteCase lays out every artifact the default checklist requires
// under cfg's case root.
func WriteCompleteCase(t *testing.T, cfg types.CaseflowConfig) {
	writeFile := func(rel, contents string) {
		path := filepath.Join(cfg.Case.Root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}

	for _, dict := range append(cfg.Case.SystemDicts, cfg.Case.OptionalDicts...) {
		writeFile(dict, "FoamFile { object "+filepath.Base(dict)+"; }\n")
	}
	for _, field := range cfg.Case.BoundaryFields {
		writeFile(filepath.Join(cfg.Case.BoundaryDir, field),
			"boundaryField { inlet {} outlet {} walls {} }\n")
	}
	writeFile("constant/triSurface/wing.stl", "solid wing\nendsolid wing\n")
	for _, script := range []string{cfg.Workflow.Mesh.Script, cfg.Workflow.Solver.Script} {
		writeFile(script, "#!/bin/sh\n")
		require.NoError(t, os.Chmod(filepath.Join(cfg.Case.Root, script), 0o755))
	}
	require.NoError(t, os.MkdirAll(cfg.LogDir(), 0o755))
}

// WriteMeshOutput creates the essential mesh files, as the mesh stage
// would have.
func WriteMeshOutput(t *testing.T, cfg types.CaseflowConfig) {
	require.NoError(t, os.MkdirAll(cfg.MeshDir(), 0o755))
	for _, name := range []string{"points", "faces", "owner", "neighbour", "boundary"} {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.MeshDir(), name), []byte("()\n"), 0o644))
	}
}
