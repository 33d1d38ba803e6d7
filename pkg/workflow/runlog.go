package workflow

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// RunLogFileName is the append-only submission record kept in the log
// directory, separate from the scheduler's own stdout/stderr captures.
const RunLogFileName = "submissions.log"

// Submission is one job handed to the scheduler during a run.
type Submission struct {
	JobName     string
	JobID       string
	SubmittedAt time.Time
}

// RunRecord describes one orchestrator invocation. It grows as jobs are
// submitted and is never mutated after the invocation ends; the next
// invocation re-derives all state from disk and the scheduler.
type RunRecord struct {
	RunID       string
	Mode        Mode
	Submissions []Submission
	LogPath     string
}

// appendSubmission records one submission both in the run record and in the
// on-disk run log. The log directory is created on first use.
func (r *RunRecord) appendSubmission(jobName, jobID string) error {
	submission := Submission{
		JobName:     jobName,
		JobID:       jobID,
		SubmittedAt: time.Now(),
	}
	r.Submissions = append(r.Submissions, submission)

	if err := os.MkdirAll(filepath.Dir(r.LogPath), os.ModePerm); err != nil {
		return errors.Wrap(err, "creating log directory")
	}
	file, err := os.OpenFile(r.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening run log %s", r.LogPath)
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, "%s run=%s mode=%s job=%s id=%s\n",
		submission.SubmittedAt.Format(time.RFC3339), r.RunID, r.Mode, jobName, jobID)
	return errors.Wrap(err, "appending to run log")
}
