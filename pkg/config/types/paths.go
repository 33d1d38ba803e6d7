package types

import (
	"path/filepath"
)

// ResolvePath resolves a manifest path against the case root. Absolute paths
// pass through unchanged.
func (c CaseflowConfig) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Case.Root, path)
}

// LogDir is the absolute path of the log directory.
func (c CaseflowConfig) LogDir() string {
	return c.ResolvePath(c.Logs.Dir)
}

// ArchiveDir is the absolute path of the log archive directory.
func (c CaseflowConfig) ArchiveDir() string {
	return c.ResolvePath(c.Logs.ArchiveDir)
}

// MeshDir is the absolute path of the mesh output directory.
func (c CaseflowConfig) MeshDir() string {
	return c.ResolvePath(c.Case.MeshDir)
}

// PostDir is the absolute path of the solver's function-object output.
func (c CaseflowConfig) PostDir() string {
	return c.ResolvePath(c.Case.PostDir)
}
