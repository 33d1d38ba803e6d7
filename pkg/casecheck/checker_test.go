//go:build unit || !integration

package casecheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cfdops/caseflow/pkg/config/types"
	"github.com/cfdops/caseflow/pkg/logger"
)

type CheckerSuite struct {
	suite.Suite
	root string
	cfg  types.CaseflowConfig
}

func TestCheckerSuite(t *testing.T) {
	suite.Run(t, new(CheckerSuite))
}

func (s *CheckerSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.root = s.T().TempDir()
	s.cfg = types.Default
	s.cfg.Case.Root = s.root
	s.writeCompleteCase()
}

// writeCompleteCase lays out every artifact the default checklist requires.
func (s *CheckerSuite) writeCompleteCase() {
	for _, dict := range s.cfg.Case.SystemDicts {
		s.writeFile(dict, "FoamFile { object "+filepath.Base(dict)+"; }\n")
	}
	for _, dict := range s.cfg.Case.OptionalDicts {
		s.writeFile(dict, "FoamFile { object "+filepath.Base(dict)+"; }\n")
	}
	for _, field := range s.cfg.Case.BoundaryFields {
		s.writeFile(filepath.Join(s.cfg.Case.BoundaryDir, field),
			"boundaryField { inlet {} outlet {} walls {} }\n")
	}
	s.writeFile("constant/triSurface/wing.stl", "solid wing\nendsolid wing\n")

	for _, script := range []string{s.cfg.Workflow.Mesh.Script, s.cfg.Workflow.Solver.Script} {
		s.writeFile(script, "#!/bin/sh\n")
		s.Require().NoError(os.Chmod(filepath.Join(s.root, script), 0o755))
	}
	s.Require().NoError(os.MkdirAll(filepath.Join(s.root, s.cfg.Logs.Dir), 0o755))
}

func (s *CheckerSuite) writeFile(rel, contents string) {
	path := filepath.Join(s.root, rel)
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0o644))
}

func (s *CheckerSuite) check() Report {
	return NewChecker(s.cfg).Check()
}

func (s *CheckerSuite) TestCompleteCasePasses() {
	report := s.check()
	s.Zero(report.Errors(), "unexpected findings: %v", report.Findings)
	s.Zero(report.Warnings())
	s.True(report.OK())
	s.NoError(report.AsError())
}

func (s *CheckerSuite) TestMissingDictIsAnError() {
	s.Require().NoError(os.Remove(filepath.Join(s.root, "system/controlDict")))

	report := s.check()
	s.GreaterOrEqual(report.Errors(), 1)
	s.False(report.OK())
	s.ErrorContains(report.AsError(), "system/controlDict")
}

func (s *CheckerSuite) TestEmptyDictIsAnError() {
	s.writeFile("system/fvSchemes", "")

	report := s.check()
	s.False(report.OK())
	s.ErrorContains(report.AsError(), "empty")
}

func (s *CheckerSuite) TestMissingPatchNameIsAnError() {
	s.writeFile(filepath.Join(s.cfg.Case.BoundaryDir, "U"),
		"boundaryField { inlet {} walls {} }\n")

	report := s.check()
	s.False(report.OK())
	s.ErrorContains(report.AsError(), `"outlet"`)
}

func (s *CheckerSuite) TestMissingOptionalDictIsOnlyAWarning() {
	s.Require().NoError(os.Remove(filepath.Join(s.root, "system/surfaceFeatureExtractDict")))

	report := s.check()
	s.True(report.OK())
	s.Equal(1, report.Warnings())
}

func (s *CheckerSuite) TestMissingGeometryIsAnError() {
	s.Require().NoError(os.Remove(filepath.Join(s.root, "constant/triSurface/wing.stl")))

	report := s.check()
	s.False(report.OK())
	s.ErrorContains(report.AsError(), "no files match")
}

func (s *CheckerSuite) TestEmptyGeometryIsAnError() {
	s.writeFile("constant/triSurface/wing.stl", "")

	report := s.check()
	s.False(report.OK())
}

func (s *CheckerSuite) TestNonExecutableScriptIsOnlyAWarning() {
	script := filepath.Join(s.root, s.cfg.Workflow.Mesh.Script)
	s.Require().NoError(os.Chmod(script, 0o644))

	report := s.check()
	s.True(report.OK())
	s.Equal(1, report.Warnings())
	s.Contains(report.Findings[0].Message, "not executable")
}

func (s *CheckerSuite) TestBrokenScriptSyntaxIsAnError() {
	script := s.cfg.Workflow.Mesh.Script
	s.writeFile(script, "#!/bin/sh\nif true; then\n  echo unclosed\n")
	s.Require().NoError(os.Chmod(filepath.Join(s.root, script), 0o755))

	report := s.check()
	s.Equal(1, report.Errors())
	s.Contains(report.Findings[0].Message, "shell syntax error")
}

func (s *CheckerSuite) TestMissingLogDirIsOnlyAWarning() {
	s.Require().NoError(os.Remove(filepath.Join(s.root, s.cfg.Logs.Dir)))

	report := s.check()
	s.True(report.OK())
	s.Equal(1, report.Warnings())
}

func (s *CheckerSuite) TestMissingCaseRootIsASingleError() {
	s.cfg.Case.Root = filepath.Join(s.root, "no-such-case")

	report := s.check()
	s.Equal(1, report.Errors())
	s.ErrorContains(report.AsError(), "case directory not found")
}

func (s *CheckerSuite) TestFindingsAccumulate() {
	s.Require().NoError(os.Remove(filepath.Join(s.root, "system/controlDict")))
	s.Require().NoError(os.Remove(filepath.Join(s.root, "system/fvSolution")))
	s.writeFile(filepath.Join(s.cfg.Case.BoundaryDir, "p"), "")

	report := s.check()
	s.Equal(3, report.Errors())
}
