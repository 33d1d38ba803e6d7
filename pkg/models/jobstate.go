package models

import (
	"strings"
)

// JobState is the scheduler-side state of a submitted job. It is always
// re-derived from scheduler output or log markers and never persisted.
type JobState int

const (
	// JobStateUnknown means no observation could place the job in any other
	// state. Absence of evidence is not failure.
	JobStateUnknown JobState = iota

	// JobStatePending means the job is queued and waiting for resources or
	// for a dependency to release it.
	JobStatePending

	// JobStateRunning means the job has been allocated nodes and is running.
	JobStateRunning

	// JobStateCompleting means the job is in the scheduler's epilogue.
	JobStateCompleting

	// JobStateSucceeded means the job finished with a zero exit code.
	JobStateSucceeded

	// JobStateFailed means the job finished with a non-zero exit code.
	JobStateFailed

	// JobStateCancelled means the job was cancelled, by the user or by the
	// scheduler reaping an unsatisfiable dependency.
	JobStateCancelled

	// JobStateTimeout means the job hit its wallclock limit.
	JobStateTimeout
)

var (
	strJobStateArray = [...]string{
		JobStateUnknown:    "UNKNOWN",
		JobStatePending:    "PENDING",
		JobStateRunning:    "RUNNING",
		JobStateCompleting: "COMPLETING",
		JobStateSucceeded:  "COMPLETED",
		JobStateFailed:     "FAILED",
		JobStateCancelled:  "CANCELLED",
		JobStateTimeout:    "TIMEOUT",
	}

	typeJobStateMap = map[string]JobState{
		"UNKNOWN":    JobStateUnknown,
		"PENDING":    JobStatePending,
		"RUNNING":    JobStateRunning,
		"COMPLETING": JobStateCompleting,
		"COMPLETED":  JobStateSucceeded,
		"FAILED":     JobStateFailed,
		"CANCELLED":  JobStateCancelled,
		"TIMEOUT":    JobStateTimeout,
		// compact codes as printed by the queue's short format
		"PD": JobStatePending,
		"R":  JobStateRunning,
		"CG": JobStateCompleting,
		"CD": JobStateSucceeded,
		"F":  JobStateFailed,
		"CA": JobStateCancelled,
		"TO": JobStateTimeout,
	}
)

func (s JobState) String() string {
	if int(s) < 0 || int(s) >= len(strJobStateArray) {
		return strJobStateArray[JobStateUnknown]
	}
	return strJobStateArray[s]
}

// IsActive returns true if the job still occupies the scheduler's queue.
func (s JobState) IsActive() bool {
	return s == JobStatePending || s == JobStateRunning || s == JobStateCompleting
}

// IsTerminal returns true if no further state changes are possible.
func (s JobState) IsTerminal() bool {
	return s == JobStateSucceeded || s == JobStateFailed || s == JobStateCancelled || s == JobStateTimeout
}

// ParseJobState maps a scheduler state word onto a JobState. Suffixes such as
// "CANCELLED by 1000" and "+" markers are tolerated; anything unrecognized
// parses as JobStateUnknown.
func ParseJobState(s string) JobState {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, "+")
	if idx := strings.IndexAny(name, " \t"); idx > 0 {
		name = name[:idx]
	}
	if state, ok := typeJobStateMap[name]; ok {
		return state
	}
	return JobStateUnknown
}

func (s JobState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *JobState) UnmarshalText(text []byte) error {
	*s = ParseJobState(string(text))
	return nil
}
