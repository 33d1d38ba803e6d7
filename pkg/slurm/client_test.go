//go:build unit || !integration

package slurm

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cfdops/caseflow/pkg/logger"
	"github.com/cfdops/caseflow/pkg/models"
)

type ClientSuite struct {
	suite.Suite
	binDir   string
	argsFile string
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.binDir = s.T().TempDir()
	s.argsFile = filepath.Join(s.binDir, "args.txt")
	s.T().Setenv("PATH", s.binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	s.T().Setenv("FAKE_ARGS_FILE", s.argsFile)
}

// writeFakeCommand drops an executable shim on the test PATH standing in for
// one of the cluster tools.
func (s *ClientSuite) writeFakeCommand(name, body string) {
	path := filepath.Join(s.binDir, name)
	s.Require().NoError(os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

func (s *ClientSuite) recordedArgs() string {
	data, err := os.ReadFile(s.argsFile)
	s.Require().NoError(err)
	return string(data)
}

func (s *ClientSuite) newClient() *Client {
	client, err := NewClient(ClientParams{
		SubmitCommand:  "sbatch",
		QueueCommand:   "squeue",
		CancelCommand:  "scancel",
		User:           "aeolus",
		CommandTimeout: 10 * time.Second,
	})
	s.Require().NoError(err)
	return client
}

func (s *ClientSuite) meshSpec() models.JobSpec {
	return models.JobSpec{
		Name:   "mesh",
		Script: "scripts/mesh.sbatch",
		Resources: &models.Resources{
			Tasks:     16,
			Memory:    "8GB",
			TimeLimit: 2 * time.Hour,
		},
	}
}

func (s *ClientSuite) TestSubmitParsesParsableOutput() {
	s.writeFakeCommand("sbatch", `echo "$@" > "$FAKE_ARGS_FILE"
echo 4242`)

	result, err := s.newClient().Submit(context.Background(), s.meshSpec())
	s.Require().NoError(err)
	s.Equal("4242", result.JobID)
	s.Empty(result.Cluster)

	args := s.recordedArgs()
	s.Contains(args, "--parsable")
	s.Contains(args, "--job-name=mesh")
	s.Contains(args, "--ntasks=16")
	s.Contains(args, "--mem=8192M")
	s.Contains(args, "--time=02:00:00")
	s.Contains(args, "scripts/mesh.sbatch")
	s.NotContains(args, "--dependency")
}

func (s *ClientSuite) TestSubmitDeclaresDependency() {
	s.writeFakeCommand("sbatch", `echo "$@" > "$FAKE_ARGS_FILE"
echo 4243`)

	spec := s.meshSpec()
	spec.Name = "solver"
	spec.Dependency = &models.Dependency{JobID: "4242"}

	result, err := s.newClient().Submit(context.Background(), spec)
	s.Require().NoError(err)
	s.Equal("4243", result.JobID)

	args := s.recordedArgs()
	s.Contains(args, "--dependency=afterok:4242")
	s.Contains(args, "--kill-on-invalid-dep=yes")
}

func (s *ClientSuite) TestSubmitKeepsConfiguredCommandArgs() {
	s.writeFakeCommand("sbatch", `echo "$@" > "$FAKE_ARGS_FILE"
echo 4242`)

	client, err := NewClient(ClientParams{
		SubmitCommand: "sbatch --export=ALL",
		QueueCommand:  "squeue",
		CancelCommand: "scancel",
		Account:       "aero",
	})
	s.Require().NoError(err)

	_, err = client.Submit(context.Background(), s.meshSpec())
	s.Require().NoError(err)

	args := s.recordedArgs()
	s.Contains(args, "--export=ALL")
	s.Contains(args, "--account=aero")
}

func (s *ClientSuite) TestSubmitAcceptsClusterSuffix() {
	s.writeFakeCommand("sbatch", `echo "4242;hpc0"`)

	result, err := s.newClient().Submit(context.Background(), s.meshSpec())
	s.Require().NoError(err)
	s.Equal("4242", result.JobID)
	s.Equal("hpc0", result.Cluster)
}

func (s *ClientSuite) TestSubmitFallsBackToBanner() {
	s.writeFakeCommand("sbatch", `echo "Submitted batch job 98765"`)

	result, err := s.newClient().Submit(context.Background(), s.meshSpec())
	s.Require().NoError(err)
	s.Equal("98765", result.JobID)
}

func (s *ClientSuite) TestSubmitFailureCarriesSchedulerOutput() {
	s.writeFakeCommand("sbatch", `echo "sbatch: error: invalid partition" >&2
exit 1`)

	_, err := s.newClient().Submit(context.Background(), s.meshSpec())
	s.Require().Error(err)
	s.Require().True(models.IsSubmissionError(err))

	var subErr *models.SubmissionError
	s.Require().ErrorAs(err, &subErr)
	s.Equal(models.SubmitOpExecute, subErr.Op)
	s.Contains(subErr.Output, "invalid partition")
}

func (s *ClientSuite) TestSubmitUnparseableOutput() {
	s.writeFakeCommand("sbatch", `echo "maintenance window, come back later"`)

	_, err := s.newClient().Submit(context.Background(), s.meshSpec())
	s.Require().Error(err)

	var subErr *models.SubmissionError
	s.Require().ErrorAs(err, &subErr)
	s.Equal(models.SubmitOpParseID, subErr.Op)
	s.Contains(subErr.Output, "maintenance window")
}

func (s *ClientSuite) TestSubmitTimesOut() {
	s.writeFakeCommand("sbatch", `sleep 5
echo 4242`)

	client, err := NewClient(ClientParams{
		SubmitCommand:  "sbatch",
		QueueCommand:   "squeue",
		CancelCommand:  "scancel",
		CommandTimeout: 100 * time.Millisecond,
	})
	s.Require().NoError(err)

	_, err = client.Submit(context.Background(), s.meshSpec())
	s.Require().Error(err)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *ClientSuite) TestQueueParsesRows() {
	s.writeFakeCommand("squeue", `echo "$@" > "$FAKE_ARGS_FILE"
echo "4242|mesh|RUNNING|None|12:34|2"
echo "4243|solver|PENDING|Dependency|0:00|4"`)

	entries, err := s.newClient().Queue(context.Background(), QueueFilter{})
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	s.Equal("4242", entries[0].JobID)
	s.Equal("mesh", entries[0].Name)
	s.Equal(models.JobStateRunning, entries[0].State)
	s.Empty(entries[0].Reason, "placeholder reason should be dropped")
	s.Equal("12:34", entries[0].TimeUsed)
	s.Equal("2", entries[0].Nodes)

	s.Equal(models.JobStatePending, entries[1].State)
	s.Equal("Dependency", entries[1].Reason)

	args := s.recordedArgs()
	s.Contains(args, "--noheader")
	s.Contains(args, "--user=aeolus")
	s.Contains(args, "--format=%i|%j|%T|%r|%M|%D")
}

func (s *ClientSuite) TestQueueEmptyIsNotAnError() {
	s.writeFakeCommand("squeue", `exit 0`)

	entries, err := s.newClient().Queue(context.Background(), QueueFilter{})
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *ClientSuite) TestQueueSkipsMalformedRows() {
	s.writeFakeCommand("squeue", `echo "garbage row"
echo "4244|mesh|CONFIGURING|None|0:01|1"`)

	entries, err := s.newClient().Queue(context.Background(), QueueFilter{})
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(models.JobStateUnknown, entries[0].State)
	s.Equal("CONFIGURING", entries[0].RawState)
}

func (s *ClientSuite) TestQueueFailureSurfacesOutput() {
	s.writeFakeCommand("squeue", `echo "squeue: error: Invalid user" >&2
exit 1`)

	_, err := s.newClient().Queue(context.Background(), QueueFilter{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Invalid user")
}

func (s *ClientSuite) TestCancelRelaysJobID() {
	s.writeFakeCommand("scancel", `echo "$@" > "$FAKE_ARGS_FILE"`)

	err := s.newClient().Cancel(context.Background(), "4242")
	s.Require().NoError(err)
	s.Contains(s.recordedArgs(), "4242")
}

func (s *ClientSuite) TestCancelRejectsEmptyJobID() {
	err := s.newClient().Cancel(context.Background(), "  ")
	s.Require().Error(err)
}

func (s *ClientSuite) TestCancelFailureSurfacesOutput() {
	s.writeFakeCommand("scancel", `echo "scancel: error: Invalid job id" >&2
exit 1`)

	err := s.newClient().Cancel(context.Background(), "not-a-job")
	s.Require().Error(err)
	s.Contains(err.Error(), "Invalid job id")
}

func TestNewClientRejectsEmptyCommands(t *testing.T) {
	_, err := NewClient(ClientParams{QueueCommand: "squeue", CancelCommand: "scancel"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "submit command")
}

func TestParseSubmitOutput(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		jobID   string
		cluster string
		wantErr bool
	}{
		{name: "parsable", output: "4242\n", jobID: "4242"},
		{name: "parsable with cluster", output: "4242;hpc0\n", jobID: "4242", cluster: "hpc0"},
		{name: "banner", output: "Submitted batch job 98765\n", jobID: "98765"},
		{name: "banner after noise", output: "sbatch: loading modules\nSubmitted batch job 7\n", jobID: "7"},
		{name: "empty", output: "\n", wantErr: true},
		{name: "garbage", output: "no identifiers here\n", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := parseSubmitOutput(tc.output)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.jobID, result.JobID)
			require.Equal(t, tc.cluster, result.Cluster)
		})
	}
}

func TestFormatTimeLimit(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "00:00:45"},
		{90 * time.Minute, "01:30:00"},
		{2 * time.Hour, "02:00:00"},
		{26 * time.Hour, "1-02:00:00"},
		{49*time.Hour + 30*time.Minute, "2-01:30:00"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, formatTimeLimit(tc.in), "formatting %s", tc.in)
	}
}

func TestFormatMemory(t *testing.T) {
	mem, err := formatMemory("8GB")
	require.NoError(t, err)
	require.Equal(t, "8192M", mem)

	mem, err = formatMemory("512MB")
	require.NoError(t, err)
	require.Equal(t, "512M", mem)

	_, err = formatMemory("lots")
	require.Error(t, err)
}
