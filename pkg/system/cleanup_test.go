//go:build unit || !integration

package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cfdops/caseflow/pkg/logger"
)

type SystemCleanupSuite struct {
	suite.Suite
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestSystemCleanupSuite(t *testing.T) {
	suite.Run(t, new(SystemCleanupSuite))
}

// Before each test
func (suite *SystemCleanupSuite) SetupTest() {
	logger.ConfigureTestLogging(suite.T())
}

func (suite *SystemCleanupSuite) TestCleanupManager() {
	clean := false

	cm := NewCleanupManager()
	cm.RegisterCallback(func() error {
		clean = true
		return nil
	})

	cm.Cleanup(context.Background())
	require.True(suite.T(), clean, "cleanup handler failed to run registered functions")
}

func (suite *SystemCleanupSuite) TestCleanupRunsAfterCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sawLiveContext := false
	cm := NewCleanupManager()
	cm.RegisterCallbackWithContext(func(ctx context.Context) error {
		sawLiveContext = ctx.Err() == nil
		return nil
	})

	cm.Cleanup(ctx)
	require.True(suite.T(), sawLiveContext, "cleanup callbacks should outlive the parent's cancellation")
}
