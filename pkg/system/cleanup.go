package system

import (
	"context"
	"errors"
	"time"

	realsync "sync"

	sync "github.com/bacalhau-project/golang-mutex-tracer"
	"github.com/rs/zerolog/log"

	"github.com/cfdops/caseflow/pkg/telemetry"
)

type CleanupFunc func() error
type CleanupFuncWithContext func(context.Context) error

// CleanupManager provides utilities for ensuring that sub-goroutines can
// clean up their resources before the main goroutine exits. Can be used to
// register callbacks for flushing telemetry or closing log sinks.
type CleanupManager struct {
	wg realsync.WaitGroup

	fnsMutex sync.Mutex
	fns      []CleanupFuncWithContext
	fnsDone  bool
}

// NewCleanupManager returns a new CleanupManager instance.
func NewCleanupManager() *CleanupManager {
	c := &CleanupManager{}
	c.fnsMutex.EnableTracerWithOpts(sync.Opts{
		Threshold: 10 * time.Millisecond,
		Id:        "CleanupManager.fnsMutex",
	})
	return c
}

// RegisterCallback registers a clean-up function.
func (cm *CleanupManager) RegisterCallback(fn CleanupFunc) {
	cm.RegisterCallbackWithContext(func(context.Context) error {
		return fn()
	})
}

// RegisterCallbackWithContext registers a clean-up function that receives the
// context the process was shutting down with.
func (cm *CleanupManager) RegisterCallbackWithContext(fn CleanupFuncWithContext) {
	cm.fnsMutex.Lock()
	defer cm.fnsMutex.Unlock()

	if cm.fnsDone {
		log.Error().Msg("CleanupManager: RegisterCallback called after Cleanup")
		return
	}

	cm.wg.Add(1)
	cm.fns = append(cm.fns, fn)
}

// Cleanup runs all registered clean-up functions in sub-goroutines and
// waits for them all to complete before exiting. The context handed to the
// callbacks is detached from the parent's cancellation, so callbacks still
// run to completion after a Ctrl-C shutdown.
func (cm *CleanupManager) Cleanup(ctx context.Context) {
	cm.fnsMutex.Lock()
	defer cm.fnsMutex.Unlock()

	if cm.fnsDone {
		log.Warn().Msg("CleanupManager: Cleanup called again after already called")
		return
	}

	detached := telemetry.NewDetachedContext(ctx)
	for i := 0; i < len(cm.fns); i++ {
		go func(fn CleanupFuncWithContext) {
			defer cm.wg.Done()

			if err := fn(detached); err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Ctx(detached).Error().Err(err).Msg("Error during clean-up callback")
				}
			}
		}(cm.fns[i])
	}

	cm.wg.Wait()
	cm.fnsDone = true
}
