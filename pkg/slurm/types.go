//go:generate mockgen --source types.go --destination mocks.go --package slurm
package slurm

import (
	"context"

	"github.com/cfdops/caseflow/pkg/models"
)

// Scheduler is the submission-side contract against the cluster batch
// system. Submissions are fire-and-forget: completion is observed
// out-of-band through Queue or by the scheduler's own dependency handling.
type Scheduler interface {
	// Submit hands a job to the scheduler and returns the identifier the
	// scheduler assigned to it. A returned error of type
	// *models.SubmissionError carries the raw scheduler output.
	Submit(ctx context.Context, spec models.JobSpec) (SubmitResult, error)

	// Queue lists the jobs the scheduler currently tracks for a user.
	// An empty result is a normal outcome, not an error.
	Queue(ctx context.Context, filter QueueFilter) ([]QueueEntry, error)

	// Cancel asks the scheduler to drop a job by identifier.
	Cancel(ctx context.Context, jobID string) error
}

// SubmitResult carries the scheduler-assigned identity of a submitted job.
type SubmitResult struct {
	JobID   string
	Cluster string
}

// QueueFilter narrows Queue output. An empty User means the current user.
type QueueFilter struct {
	User string
}

// QueueEntry is one row of the scheduler's queue listing.
type QueueEntry struct {
	JobID    string
	Name     string
	State    models.JobState
	RawState string
	Reason   string
	TimeUsed string
	Nodes    string
}
