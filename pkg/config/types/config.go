package types

// CaseflowConfig is the root of the case manifest. All relative paths
// resolve against Case.Root.
type CaseflowConfig struct {
	Case      CaseConfig      `json:"Case,omitempty"`
	Scheduler SchedulerConfig `json:"Scheduler,omitempty"`
	Workflow  WorkflowConfig  `json:"Workflow,omitempty"`
	Logs      LogsConfig      `json:"Logs,omitempty"`
	Monitor   MonitorConfig   `json:"Monitor,omitempty"`
}

// CaseConfig names the artifacts that make up a runnable case directory.
type CaseConfig struct {
	// Root is the case directory.
	Root string `json:"Root,omitempty"`

	// SystemDicts are the dictionary files required under the case root.
	SystemDicts []string `json:"SystemDicts,omitempty"`

	// OptionalDicts are dictionary files that are useful but not load-bearing.
	// A missing one is reported as a warning, never an error.
	OptionalDicts []string `json:"OptionalDicts,omitempty"`

	// BoundaryDir holds the initial and boundary condition field files.
	BoundaryDir string `json:"BoundaryDir,omitempty"`

	// BoundaryFields are the field files required inside BoundaryDir.
	BoundaryFields []string `json:"BoundaryFields,omitempty"`

	// Patches are the boundary patch names every field file must mention.
	Patches []string `json:"Patches,omitempty"`

	// GeometryGlob locates the surface geometry files. At least one match
	// is required and each match must be non-empty.
	GeometryGlob string `json:"GeometryGlob,omitempty"`

	// MeshDir is where the mesh generator writes its output.
	MeshDir string `json:"MeshDir,omitempty"`

	// PostDir is where the solver writes function-object output.
	PostDir string `json:"PostDir,omitempty"`
}

// SchedulerConfig describes how to reach the batch scheduler. Command values
// may carry leading arguments, e.g. "sbatch --account=aero".
type SchedulerConfig struct {
	SubmitCommand string `json:"SubmitCommand,omitempty"`
	QueueCommand  string `json:"QueueCommand,omitempty"`
	CancelCommand string `json:"CancelCommand,omitempty"`

	// Account optionally charges jobs to a named bank account.
	Account string `json:"Account,omitempty"`

	// User filters queue listings. Blank means the current OS user.
	User string `json:"User,omitempty"`

	// CommandTimeout bounds every scheduler command invocation.
	CommandTimeout Duration `json:"CommandTimeout,omitempty"`
}

// WorkflowConfig holds the two jobs of the mesh-then-solve chain.
type WorkflowConfig struct {
	Mesh   JobConfig `json:"Mesh,omitempty"`
	Solver JobConfig `json:"Solver,omitempty"`
}

// JobConfig describes one batch job of the workflow.
type JobConfig struct {
	Name      string   `json:"Name,omitempty"`
	Script    string   `json:"Script,omitempty"`
	Partition string   `json:"Partition,omitempty"`
	Tasks     int      `json:"Tasks,omitempty"`
	Memory    string   `json:"Memory,omitempty"`
	TimeLimit Duration `json:"TimeLimit,omitempty"`
}

// LogsConfig controls where job logs live and how long they stay there.
type LogsConfig struct {
	// Dir is the log directory.
	Dir string `json:"Dir,omitempty"`

	// ArchiveDir is where aged logs are moved, in dated subdirectories.
	ArchiveDir string `json:"ArchiveDir,omitempty"`

	// Retention is how long a log stays in Dir before archival.
	Retention Duration `json:"Retention,omitempty"`

	// Patterns are the glob patterns of archivable files.
	Patterns []string `json:"Patterns,omitempty"`
}

// MonitorConfig controls log scanning.
type MonitorConfig struct {
	// TailLines is the size of the trailing window shown from solver logs.
	TailLines int `json:"TailLines,omitempty"`

	Mesh   StageMonitorConfig `json:"Mesh,omitempty"`
	Solver StageMonitorConfig `json:"Solver,omitempty"`
}

// StageMonitorConfig locates one stage's log and the marker strings scanned
// for in it. A missing log or marker leaves the stage state unknown.
type StageMonitorConfig struct {
	// LogGlob locates the stage's log files within the log directory. The
	// most recently modified match is scanned.
	LogGlob string `json:"LogGlob,omitempty"`

	Success  []string `json:"Success,omitempty"`
	Failure  []string `json:"Failure,omitempty"`
	Progress []string `json:"Progress,omitempty"`
}
