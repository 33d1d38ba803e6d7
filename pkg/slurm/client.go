package slurm

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"regexp"
	"strings"
	"time"

	"github.com/armon/circbuf"
	"github.com/c2h5oh/datasize"
	shellwords "github.com/mattn/go-shellwords"
	"github.com/rs/zerolog/log"

	"github.com/cfdops/caseflow/pkg/models"
)

const (
	// maxOutputSize limits how much data we collect from a scheduler command.
	// This is to prevent our memory from growing to an enormous amount due
	// to a faulty submit wrapper.
	maxOutputSize = 256000

	// queueFormat keeps queue rows machine-readable: pipe-separated fields,
	// no padding. Field order matches parseQueueOutput.
	queueFormat = "%i|%j|%T|%r|%M|%D"

	queueFieldCount = 6
)

// submittedBannerRe matches the human-readable submission banner printed
// when a site wrapper strips the --parsable flag.
var submittedBannerRe = regexp.MustCompile(`Submitted batch job (\d+)`)

// parsableRe matches the --parsable output form "<jobid>[;<cluster>]".
var parsableRe = regexp.MustCompile(`^(\d+)(?:;(\S+))?$`)

// Compile-time check of interface implementation
var _ Scheduler = (*Client)(nil)

type ClientParams struct {
	SubmitCommand  string
	QueueCommand   string
	CancelCommand  string
	Account        string
	User           string
	CommandTimeout time.Duration
}

// Client shells out to the cluster's batch tools. A Client is safe for
// concurrent use; every call spawns its own short-lived process.
type Client struct {
	submitArgs []string
	queueArgs  []string
	cancelArgs []string

	account        string
	user           string
	commandTimeout time.Duration
}

func NewClient(params ClientParams) (*Client, error) {
	submitArgs, err := splitCommand("submit", params.SubmitCommand)
	if err != nil {
		return nil, err
	}
	queueArgs, err := splitCommand("queue", params.QueueCommand)
	if err != nil {
		return nil, err
	}
	cancelArgs, err := splitCommand("cancel", params.CancelCommand)
	if err != nil {
		return nil, err
	}

	return &Client{
		submitArgs:     submitArgs,
		queueArgs:      queueArgs,
		cancelArgs:     cancelArgs,
		account:        params.Account,
		user:           params.User,
		commandTimeout: params.CommandTimeout,
	}, nil
}

// splitCommand parses a configured command string into argv form, so
// operators can configure e.g. "sbatch --account=aero".
func splitCommand(kind, command string) ([]string, error) {
	args, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("splitting %s command %q: %w", kind, command, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%s command is empty", kind)
	}
	return args, nil
}

func (c *Client) Submit(ctx context.Context, spec models.JobSpec) (SubmitResult, error) {
	spec.Normalize()
	if err := spec.Validate(); err != nil {
		return SubmitResult{}, fmt.Errorf("invalid job spec: %w", err)
	}

	args, err := c.submitArgv(spec)
	if err != nil {
		return SubmitResult{}, err
	}

	output, err := c.runCapped(ctx, args)
	if err != nil {
		return SubmitResult{}, models.NewSubmissionError(spec.Name, models.SubmitOpExecute, err, output)
	}

	result, err := parseSubmitOutput(output)
	if err != nil {
		return SubmitResult{}, models.NewSubmissionError(spec.Name, models.SubmitOpParseID, err, output)
	}

	log.Ctx(ctx).Info().
		Str("JobName", spec.Name).
		Str("JobID", result.JobID).
		Msg("job submitted")
	return result, nil
}

func (c *Client) submitArgv(spec models.JobSpec) ([]string, error) {
	args := append([]string{}, c.submitArgs...)
	args = append(args,
		"--parsable",
		fmt.Sprintf("--job-name=%s", spec.Name),
	)
	if spec.Partition != "" {
		args = append(args, fmt.Sprintf("--partition=%s", spec.Partition))
	}
	if c.account != "" {
		args = append(args, fmt.Sprintf("--account=%s", c.account))
	}
	if r := spec.Resources; r != nil {
		if r.Tasks > 0 {
			args = append(args, fmt.Sprintf("--ntasks=%d", r.Tasks))
		}
		if r.Memory != "" {
			mem, err := formatMemory(r.Memory)
			if err != nil {
				return nil, err
			}
			args = append(args, fmt.Sprintf("--mem=%s", mem))
		}
		if r.TimeLimit > 0 {
			args = append(args, fmt.Sprintf("--time=%s", formatTimeLimit(r.TimeLimit)))
		}
	}
	if spec.Dependency != nil {
		// afterok releases the job only if the predecessor succeeded;
		// --kill-on-invalid-dep makes the scheduler reap it when the
		// predecessor ends any other way.
		args = append(args,
			fmt.Sprintf("--dependency=%s", spec.Dependency.Clause()),
			"--kill-on-invalid-dep=yes",
		)
	}
	return append(args, spec.Script), nil
}

func (c *Client) Queue(ctx context.Context, filter QueueFilter) ([]QueueEntry, error) {
	queueUser := filter.User
	if queueUser == "" {
		queueUser = c.user
	}
	if queueUser == "" {
		current, err := user.Current()
		if err != nil {
			return nil, fmt.Errorf("resolving current user: %w", err)
		}
		queueUser = current.Username
	}

	args := append([]string{}, c.queueArgs...)
	args = append(args,
		"--noheader",
		fmt.Sprintf("--user=%s", queueUser),
		fmt.Sprintf("--format=%s", queueFormat),
	)

	output, err := c.runCapped(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("queue query failed: %w: %s", err, strings.TrimSpace(output))
	}

	return parseQueueOutput(ctx, output), nil
}

func (c *Client) Cancel(ctx context.Context, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return fmt.Errorf("job ID is required")
	}

	args := append([]string{}, c.cancelArgs...)
	args = append(args, jobID)

	output, err := c.runCapped(ctx, args)
	if err != nil {
		return fmt.Errorf("cancelling job %s failed: %w: %s", jobID, err, strings.TrimSpace(output))
	}

	log.Ctx(ctx).Info().Str("JobID", jobID).Msg("cancel requested")
	return nil
}

// reportingWriter funnels both output streams of a command into one
// capped buffer.
type reportingWriter struct {
	buffer *circbuf.Buffer
}

func (w reportingWriter) Write(data []byte) (n int, err error) {
	return w.buffer.Write(data)
}

func (c *Client) runCapped(ctx context.Context, argv []string) (string, error) {
	if c.commandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.commandTimeout)
		defer cancel()
	}

	output, _ := circbuf.NewBuffer(maxOutputSize)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec
	cmd.Stdout = reportingWriter{buffer: output}
	cmd.Stderr = reportingWriter{buffer: output}
	cmd.Env = os.Environ()

	log.Ctx(ctx).Debug().Strs("Argv", argv).Msg("running scheduler command")
	err := cmd.Run()

	if output.TotalWritten() > output.Size() {
		log.Ctx(ctx).Warn().
			Str("Command", argv[0]).
			Int64("Written", output.TotalWritten()).
			Int64("Kept", output.Size()).
			Msg("scheduler output truncated")
	}

	if ctx.Err() != nil {
		err = ctx.Err()
	}
	return string(output.Bytes()), err
}

func parseSubmitOutput(output string) (SubmitResult, error) {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return SubmitResult{}, fmt.Errorf("scheduler printed no job identifier")
	}

	firstLine := trimmed
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = strings.TrimSpace(firstLine[:idx])
	}

	if m := parsableRe.FindStringSubmatch(firstLine); m != nil {
		return SubmitResult{JobID: m[1], Cluster: m[2]}, nil
	}
	if m := submittedBannerRe.FindStringSubmatch(trimmed); m != nil {
		return SubmitResult{JobID: m[1]}, nil
	}
	return SubmitResult{}, fmt.Errorf("no job identifier in scheduler output")
}

func parseQueueOutput(ctx context.Context, output string) []QueueEntry {
	var entries []QueueEntry
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != queueFieldCount {
			log.Ctx(ctx).Warn().Str("Row", line).Msg("skipping malformed queue row")
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		entries = append(entries, QueueEntry{
			JobID:    fields[0],
			Name:     fields[1],
			State:    models.ParseJobState(fields[2]),
			RawState: fields[2],
			Reason:   cleanReason(fields[3]),
			TimeUsed: fields[4],
			Nodes:    fields[5],
		})
	}
	return entries
}

// cleanReason drops the placeholder the queue prints for jobs with no
// pending reason.
func cleanReason(reason string) string {
	if reason == "None" || reason == "(None)" {
		return ""
	}
	return reason
}

// formatTimeLimit renders a duration in the scheduler's D-HH:MM:SS form.
func formatTimeLimit(d time.Duration) string {
	d = d.Round(time.Second)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := (d - minutes*time.Minute) / time.Second
	if days > 0 {
		return fmt.Sprintf("%d-%02d:%02d:%02d", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// formatMemory converts a "16GB"-style request into the whole-megabyte form
// the scheduler expects.
func formatMemory(memory string) (string, error) {
	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(memory)); err != nil {
		return "", fmt.Errorf("parsing memory request %q: %w", memory, err)
	}
	return fmt.Sprintf("%dM", size.Bytes()/uint64(datasize.MB)), nil
}
