package models

import (
	"errors"
	"fmt"
	"strings"
)

// Submission steps recorded on a SubmissionError.
const (
	SubmitOpExecute = "execute"
	SubmitOpParseID = "parse-id"
)

// SubmissionError reports a failed hand-off of a job to the batch scheduler.
// Output carries the raw combined stdout/stderr of the submit command, capped
// at capture time, so the operator sees exactly what the scheduler printed.
// Submissions are never retried.
type SubmissionError struct {
	JobName string
	Op      string
	Err     error
	Output  string
}

func NewSubmissionError(jobName, op string, err error, output string) *SubmissionError {
	return &SubmissionError{
		JobName: jobName,
		Op:      op,
		Err:     err,
		Output:  output,
	}
}

func (e *SubmissionError) Error() string {
	msg := fmt.Sprintf("submitting job %q (%s): %v", e.JobName, e.Op, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += fmt.Sprintf("\nscheduler output:\n%s", out)
	}
	return msg
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// IsSubmissionError reports whether err wraps a SubmissionError.
func IsSubmissionError(err error) bool {
	var se *SubmissionError
	return errors.As(err, &se)
}
