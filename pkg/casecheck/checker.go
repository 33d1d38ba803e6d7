package casecheck

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"mvdan.cc/sh/v3/syntax"

	"github.com/cfdops/caseflow/pkg/config/types"
)

// ArtifactKind selects how an artifact path is interpreted.
type ArtifactKind int

const (
	// KindFile is a single file that must exist and be non-empty.
	KindFile ArtifactKind = iota

	// KindDir is a directory that must exist.
	KindDir

	// KindGlob is a pattern that must match at least one non-empty file.
	KindGlob
)

// Artifact is one entry of the case checklist. Paths are relative to the
// case root. Artifacts are validated, never mutated.
type Artifact struct {
	Path string
	Kind ArtifactKind

	// Optional artifacts produce warnings instead of errors when missing.
	Optional bool

	// Substrings must each appear in the artifact's contents. Only
	// meaningful for file artifacts.
	Substrings []string
}

// Checker walks a case directory against a flat, order-independent
// checklist. It collects findings and never fails itself; the caller decides
// what a non-empty error count means.
type Checker struct {
	root      string
	artifacts []Artifact
	scripts   []string
	logDir    string
}

// NewChecker derives the checklist for the case described by cfg. Everything
// the checker looks at comes from the manifest; nothing is read from ambient
// process state.
func NewChecker(cfg types.CaseflowConfig) *Checker {
	c := &Checker{
		root:   cfg.Case.Root,
		logDir: cfg.Logs.Dir,
	}

	for _, dict := range cfg.Case.SystemDicts {
		c.artifacts = append(c.artifacts, Artifact{Path: dict, Kind: KindFile})
	}
	for _, dict := range cfg.Case.OptionalDicts {
		c.artifacts = append(c.artifacts, Artifact{Path: dict, Kind: KindFile, Optional: true})
	}

	if cfg.Case.BoundaryDir != "" {
		c.artifacts = append(c.artifacts, Artifact{Path: cfg.Case.BoundaryDir, Kind: KindDir})
		for _, field := range cfg.Case.BoundaryFields {
			c.artifacts = append(c.artifacts, Artifact{
				Path:       filepath.Join(cfg.Case.BoundaryDir, field),
				Kind:       KindFile,
				Substrings: cfg.Case.Patches,
			})
		}
	}

	if cfg.Case.GeometryGlob != "" {
		c.artifacts = append(c.artifacts, Artifact{Path: cfg.Case.GeometryGlob, Kind: KindGlob})
	}

	for _, script := range []string{cfg.Workflow.Mesh.Script, cfg.Workflow.Solver.Script} {
		if script != "" {
			c.artifacts = append(c.artifacts, Artifact{Path: script, Kind: KindFile})
			c.scripts = append(c.scripts, script)
		}
	}

	return c
}

// Check runs the whole checklist and returns the accumulated findings.
// Errors gate submission; warnings are advisory.
func (c *Checker) Check() Report {
	var report Report

	if info, err := os.Stat(c.root); err != nil || !info.IsDir() {
		report.addError(c.root, "case directory not found")
		return report
	}

	for _, artifact := range c.artifacts {
		c.checkArtifact(&report, artifact)
	}

	for _, script := range c.scripts {
		info, err := os.Stat(c.abs(script))
		if err != nil {
			continue // already reported as a missing artifact
		}
		if info.Mode().Perm()&0o111 == 0 {
			report.addWarning(script, "batch script is not executable")
		}
		c.checkScriptSyntax(&report, script)
	}

	if c.logDir != "" {
		if info, err := os.Stat(c.abs(c.logDir)); err != nil || !info.IsDir() {
			report.addWarning(c.logDir, "log directory not found, it will be created on first submission")
		}
	}

	return report
}

func (c *Checker) checkArtifact(report *Report, artifact Artifact) {
	switch artifact.Kind {
	case KindDir:
		if info, err := os.Stat(c.abs(artifact.Path)); err != nil || !info.IsDir() {
			report.addError(artifact.Path, "required directory missing")
		}
	case KindGlob:
		c.checkGlob(report, artifact)
	case KindFile:
		c.checkFile(report, artifact)
	}
}

func (c *Checker) checkFile(report *Report, artifact Artifact) {
	info, err := os.Stat(c.abs(artifact.Path))
	if err != nil || !info.Mode().IsRegular() {
		if artifact.Optional {
			report.addWarning(artifact.Path, "optional artifact missing")
		} else {
			report.addError(artifact.Path, "required artifact missing")
		}
		return
	}
	if info.Size() == 0 {
		report.addError(artifact.Path, "artifact is empty")
		return
	}
	if len(artifact.Substrings) > 0 {
		c.checkSubstrings(report, artifact)
	}
}

func (c *Checker) checkSubstrings(report *Report, artifact Artifact) {
	data, err := os.ReadFile(c.abs(artifact.Path))
	if err != nil {
		report.addError(artifact.Path, "artifact is not readable: %v", err)
		return
	}
	contents := string(data)
	for _, want := range artifact.Substrings {
		if !strings.Contains(contents, want) {
			report.addError(artifact.Path, "does not mention patch %q", want)
		}
	}
}

// checkScriptSyntax parses the batch script as shell. The scheduler would
// reject a malformed script anyway, but only after a round trip to the
// cluster; catching it here keeps the feedback local.
func (c *Checker) checkScriptSyntax(report *Report, script string) {
	file, err := os.Open(c.abs(script))
	if err != nil {
		report.addError(script, "artifact is not readable: %v", err)
		return
	}
	defer file.Close()

	if _, err := syntax.NewParser().Parse(file, script); err != nil {
		report.addError(script, "shell syntax error: %v", err)
	}
}

func (c *Checker) checkGlob(report *Report, artifact Artifact) {
	matches, err := doublestar.FilepathGlob(c.abs(artifact.Path))
	if err != nil {
		report.addError(artifact.Path, "bad glob pattern: %v", err)
		return
	}
	if len(matches) == 0 {
		report.addError(artifact.Path, "no files match")
		return
	}
	for _, match := range matches {
		if info, err := os.Stat(match); err != nil || info.Size() == 0 {
			rel, relErr := filepath.Rel(c.root, match)
			if relErr != nil {
				rel = match
			}
			report.addError(rel, "artifact is empty")
		}
	}
}

func (c *Checker) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.root, path)
}
