//go:build unit || !integration

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contextTestKey struct{}

func TestDetachedContextKeepsValues(t *testing.T) {
	parent := context.WithValue(context.Background(), contextTestKey{}, "kept")
	parent, cancel := context.WithCancel(parent)
	cancel()

	detached := NewDetachedContext(parent)

	require.Error(t, parent.Err())
	assert.NoError(t, detached.Err())
	assert.Nil(t, detached.Done())
	assert.Equal(t, "kept", detached.Value(contextTestKey{}))

	_, ok := detached.Deadline()
	assert.False(t, ok)
}
