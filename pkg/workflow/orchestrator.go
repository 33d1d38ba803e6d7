package workflow

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/cfdops/caseflow/pkg/casecheck"
	"github.com/cfdops/caseflow/pkg/config/types"
	"github.com/cfdops/caseflow/pkg/models"
	"github.com/cfdops/caseflow/pkg/monitor"
	"github.com/cfdops/caseflow/pkg/slurm"
	"github.com/cfdops/caseflow/pkg/telemetry"
)

// Orchestrator drives the mesh-then-solve chain: validate the case, submit
// jobs, record what was submitted. It never waits for a job to finish;
// completion is observed out-of-band by the monitor or enforced by the
// scheduler's own dependency handling.
//
// Concurrent runs against the same case directory are unsupported: the log
// directory and mesh output are shared filesystem state with no locking.
// One workflow run per case at a time is a documented operator discipline.
type Orchestrator struct {
	cfg       types.CaseflowConfig
	checker   *casecheck.Checker
	scheduler slurm.Scheduler
}

// Result is what one orchestrator invocation produced. Report is always
// populated; Record lists any jobs that were submitted before a failure.
type Result struct {
	Report casecheck.Report
	Record *RunRecord
}

func NewOrchestrator(cfg types.CaseflowConfig, scheduler slurm.Scheduler) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		checker:   casecheck.NewChecker(cfg),
		scheduler: scheduler,
	}
}

// Run executes one invocation in the given mode. Validation errors and
// submission failures abort the invocation; the returned Result still
// carries the findings and any submissions made before the failure.
func (o *Orchestrator) Run(ctx context.Context, mode Mode) (Result, error) {
	result := Result{
		Record: &RunRecord{
			RunID:   uuid.NewString(),
			Mode:    mode,
			LogPath: filepath.Join(o.cfg.LogDir(), RunLogFileName),
		},
	}

	log.Ctx(ctx).Info().
		Str("RunID", result.Record.RunID).
		Str("Mode", mode.String()).
		Str("Case", o.cfg.Case.Root).
		Msg("workflow run starting")

	result.Report = o.checker.Check()
	if mode == ModeCheckOnly {
		return result, nil
	}
	if !result.Report.OK() {
		return result, models.NewBaseError(
			"case validation found %d error(s)", result.Report.Errors()).
			WithCode(models.ConfigurationError).
			WithHint("run with --check-only for the full report")
	}

	switch mode {
	case ModeMeshOnly:
		_, err := o.submit(ctx, result.Record, o.meshSpec())
		return result, err
	case ModeSolverOnly:
		if present, missing := monitor.MeshOutputPresent(o.cfg.MeshDir()); !present {
			return result, models.NewBaseError(
				"mesh output is incomplete in %s (missing: %s)",
				o.cfg.MeshDir(), strings.Join(missing, ", ")).
				WithCode(models.ConfigurationError).
				WithHint("run the mesh stage first, or use full mode to chain both jobs")
		}
		_, err := o.submit(ctx, result.Record, o.solverSpec(nil))
		return result, err
	default:
		return result, o.runFull(ctx, result.Record)
	}
}

// runFull submits the mesh job and then the solver job gated on it. The mesh
// submission completes, successfully or not, strictly before the solver
// submission is attempted.
func (o *Orchestrator) runFull(ctx context.Context, record *RunRecord) error {
	meshResult, err := o.submit(ctx, record, o.meshSpec())
	if err != nil {
		return err
	}

	if _, err := o.submit(ctx, record, o.solverSpec(&models.Dependency{JobID: meshResult.JobID})); err != nil {
		// The mesh job stays active on purpose: cancelling in-flight work
		// because a later submission failed would silently destroy it.
		return fmt.Errorf(
			"solver submission failed after mesh job %s was accepted: %w; "+
				"the mesh job is still queued, cancel it with 'scancel %s' if it is no longer wanted",
			meshResult.JobID, err, meshResult.JobID)
	}
	return nil
}

func (o *Orchestrator) submit(ctx context.Context, record *RunRecord, spec models.JobSpec) (slurm.SubmitResult, error) {
	recordDuration := telemetry.Timer(ctx, submitDurationMilliseconds, attribute.String("JobName", spec.Name))
	submitted, err := o.scheduler.Submit(ctx, spec)
	recordDuration()
	if err != nil {
		// typed *models.SubmissionError from the client passes through so
		// callers can still match it
		return slurm.SubmitResult{}, err
	}
	jobsSubmitted.Inc(ctx, attribute.String("JobName", spec.Name))

	if err := record.appendSubmission(spec.Name, submitted.JobID); err != nil {
		// the job is already in the queue; a run log hiccup must not fail
		// the invocation
		log.Ctx(ctx).Warn().Err(err).Msg("failed to append to run log")
	}
	return submitted, nil
}

func (o *Orchestrator) meshSpec() models.JobSpec {
	return o.jobSpec(o.cfg.Workflow.Mesh, nil)
}

func (o *Orchestrator) solverSpec(dependency *models.Dependency) models.JobSpec {
	return o.jobSpec(o.cfg.Workflow.Solver, dependency)
}

func (o *Orchestrator) jobSpec(job types.JobConfig, dependency *models.Dependency) models.JobSpec {
	return models.JobSpec{
		Name:      job.Name,
		Script:    o.cfg.ResolvePath(job.Script),
		Partition: job.Partition,
		Resources: &models.Resources{
			Tasks:     job.Tasks,
			Memory:    job.Memory,
			TimeLimit: job.TimeLimit.AsTimeDuration(),
		},
		Dependency: dependency,
	}
}
