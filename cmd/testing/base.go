package cmdtesting

import (
	"os"
	"path/filepath"

	"github.com/stretchr/testify/suite"

	"github.com/cfdops/caseflow/cmd/util"
	"github.com/cfdops/caseflow/pkg/config"
	"github.com/cfdops/caseflow/pkg/config/types"
	"github.com/cfdops/caseflow/pkg/logger"
)

// BaseSuite builds a complete temp case directory and a bin directory of
// fake scheduler tools on PATH, so CLI tests run the real command plumbing
// end to end without a cluster.
type BaseSuite struct {
	suite.Suite

	// CaseRoot is a fully laid out case directory.
	CaseRoot string

	// Cfg mirrors the default manifest rooted at CaseRoot.
	Cfg types.CaseflowConfig

	binDir   string
	argsFile string
}

// before each test
func (s *BaseSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	util.Fatal = util.FakeFatalErrorHandler
	config.Reset()

	s.CaseRoot = s.T().TempDir()
	s.Cfg = types.Default
	s.Cfg.Case.Root = s.CaseRoot
	WriteCompleteCase(s.T(), s.Cfg)

	s.binDir = s.T().TempDir()
	s.argsFile = filepath.Join(s.binDir, "args.txt")
	s.T().Setenv("PATH", s.binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	s.T().Setenv("FAKE_ARGS_FILE", s.argsFile)
}

// after each test
func (s *BaseSuite) TearDownTest() {
	config.Reset()
}

// WriteFakeCommand drops an executable shim on the test PATH standing in
// for one of the cluster tools.
func (s *BaseSuite) WriteFakeCommand(name, body string) {
	path := filepath.Join(s.binDir, name)
	s.Require().NoError(os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

// RecordedArgs returns what the last fake command was invoked with.
func (s *BaseSuite) RecordedArgs() string {
	data, err := os.ReadFile(s.argsFile)
	s.Require().NoError(err)
	return string(data)
}

// WriteCaseFile writes a file under the case root, creating directories as
// needed.
func (s *BaseSuite) WriteCaseFile(rel, contents string) {
	path := filepath.Join(s.CaseRoot, rel)
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0o644))
}
