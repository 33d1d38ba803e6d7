package casecheck

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

// Severity ranks a finding. Errors gate submission; warnings never do.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is one observation about one case artifact.
type Finding struct {
	Severity Severity
	Path     string
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Path, f.Message)
}

// Report is the outcome of walking the case checklist. Findings accumulate
// in check order; the checker itself never fails.
type Report struct {
	Findings []Finding
}

func (r *Report) addError(path, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityError,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) addWarning(path, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityWarning,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errors counts the findings that gate submission.
func (r Report) Errors() int {
	return lo.CountBy(r.Findings, func(f Finding) bool { return f.Severity == SeverityError })
}

// Warnings counts the advisory findings.
func (r Report) Warnings() int {
	return lo.CountBy(r.Findings, func(f Finding) bool { return f.Severity == SeverityWarning })
}

// OK reports whether the case may be handed to the scheduler.
func (r Report) OK() bool {
	return r.Errors() == 0
}

// AsError folds the error findings into a single error, or nil when the
// case is submittable.
func (r Report) AsError() error {
	var mErr *multierror.Error
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			mErr = multierror.Append(mErr, fmt.Errorf("%s: %s", f.Path, f.Message))
		}
	}
	return mErr.ErrorOrNil()
}
