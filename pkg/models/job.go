package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/hashicorp/go-multierror"

	"github.com/cfdops/caseflow/pkg/lib/validate"
)

// DependencyCondition selects how the scheduler gates a dependent job on the
// terminal state of an earlier one.
type DependencyCondition string

const (
	// DependAfterOK releases the dependent job only when the referenced job
	// completes successfully. Any other terminal state leaves the dependent
	// job blocked so the scheduler can reap it.
	DependAfterOK DependencyCondition = "afterok"

	// DependAfterAny releases the dependent job on any terminal state.
	DependAfterAny DependencyCondition = "afterany"

	// DependAfterNotOK releases the dependent job only when the referenced
	// job fails.
	DependAfterNotOK DependencyCondition = "afternotok"
)

// Dependency gates a job on the terminal state of a previously submitted one.
type Dependency struct {
	// JobID is the scheduler-assigned ID of the job to wait for.
	JobID string

	// Condition defaults to DependAfterOK when blank.
	Condition DependencyCondition
}

// Clause renders the dependency the way the scheduler's submit command
// expects it, e.g. "afterok:4242".
func (d *Dependency) Clause() string {
	cond := d.Condition
	if cond == "" {
		cond = DependAfterOK
	}
	return fmt.Sprintf("%s:%s", cond, d.JobID)
}

func (d *Dependency) Copy() *Dependency {
	if d == nil {
		return nil
	}
	nd := new(Dependency)
	*nd = *d
	return nd
}

func (d *Dependency) Validate() error {
	var mErr multierror.Error
	if validate.IsBlank(d.JobID) {
		mErr.Errors = append(mErr.Errors, errors.New("missing dependency job ID"))
	} else if validate.ContainsSpaces(d.JobID) {
		mErr.Errors = append(mErr.Errors, fmt.Errorf("dependency job ID %q contains whitespace", d.JobID))
	}
	switch d.Condition {
	case "", DependAfterOK, DependAfterAny, DependAfterNotOK:
	default:
		mErr.Errors = append(mErr.Errors, fmt.Errorf("unknown dependency condition %q", d.Condition))
	}
	return mErr.ErrorOrNil()
}

// Resources are the scheduler-facing resource requests for a single job.
type Resources struct {
	// Tasks is the number of MPI ranks to ask for. Zero defers to the batch
	// script.
	Tasks int

	// Memory per node in a form datasize understands, e.g. "8GB". Blank
	// defers to the batch script or the partition default.
	Memory string

	// TimeLimit caps the wallclock runtime. Zero defers to the partition
	// default.
	TimeLimit time.Duration
}

func (r *Resources) Copy() *Resources {
	if r == nil {
		return nil
	}
	nr := new(Resources)
	*nr = *r
	return nr
}

func (r *Resources) Validate() error {
	var mErr multierror.Error
	if err := validate.IsGreaterOrEqualToZero(r.Tasks, "task count %d cannot be negative", r.Tasks); err != nil {
		mErr.Errors = append(mErr.Errors, err)
	}
	if r.Memory != "" {
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(r.Memory)); err != nil {
			mErr.Errors = append(mErr.Errors, fmt.Errorf("invalid memory value %q: %v", r.Memory, err))
		}
	}
	if r.TimeLimit < 0 {
		mErr.Errors = append(mErr.Errors, errors.New("time limit cannot be negative"))
	}
	return mErr.ErrorOrNil()
}

// JobSpec describes one batch job to hand to the scheduler. The scheduler
// assigns the job ID at submission time; a spec never carries one.
type JobSpec struct {
	// Name is the scheduler-visible job name.
	Name string

	// Script is the path of the batch script to submit.
	Script string

	// Partition optionally routes the job to a named partition.
	Partition string

	// Resources are the per-job resource requests.
	Resources *Resources

	// Dependency optionally gates this job on an earlier submission.
	Dependency *Dependency
}

func (j *JobSpec) Normalize() {
	// Ensure that a missing and an empty resource block are treated the same
	if j.Resources == nil {
		j.Resources = &Resources{}
	}
}

func (j *JobSpec) Copy() *JobSpec {
	if j == nil {
		return nil
	}
	nj := new(JobSpec)
	*nj = *j
	nj.Resources = j.Resources.Copy()
	nj.Dependency = j.Dependency.Copy()
	return nj
}

// Validate is used to check a job spec for reasonable configuration before
// it is handed to the scheduler.
func (j *JobSpec) Validate() error {
	mErr := new(multierror.Error)
	if validate.IsBlank(j.Name) {
		mErr = multierror.Append(mErr, errors.New("missing job name"))
	} else if validate.ContainsSpaces(j.Name) {
		mErr = multierror.Append(mErr, fmt.Errorf("job name %q contains whitespace", j.Name))
	} else if validate.ContainsNull(j.Name) {
		mErr = multierror.Append(mErr, errors.New("job name contains null character"))
	}
	if validate.IsBlank(j.Script) {
		mErr = multierror.Append(mErr, errors.New("missing batch script path"))
	}
	if j.Resources != nil {
		if err := j.Resources.Validate(); err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("resource validation failed: %v", err))
		}
	}
	if j.Dependency != nil {
		if err := j.Dependency.Validate(); err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("dependency validation failed: %v", err))
		}
	}
	return mErr.ErrorOrNil()
}
