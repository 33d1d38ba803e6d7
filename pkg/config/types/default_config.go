package types

import (
	"time"
)

const (
	Second = Duration(time.Second)
	Minute = Duration(time.Minute)
	Hour   = Duration(time.Hour)
	Day    = Duration(time.Hour * 24)
)

// Default is the manifest for a conventional compressible steady-state RANS
// case laid out the usual way. A caseflow.yaml in the case root overrides any
// of it.
var Default = CaseflowConfig{
	Case: CaseConfig{
		Root: ".",
		SystemDicts: []string{
			"system/controlDict",
			"system/fvSchemes",
			"system/fvSolution",
			"system/blockMeshDict",
			"system/snappyHexMeshDict",
			"system/decomposeParDict",
		},
		OptionalDicts: []string{
			"system/surfaceFeatureExtractDict",
		},
		BoundaryDir:    "0.orig",
		BoundaryFields: []string{"U", "p", "T", "k", "omega", "nut", "alphat"},
		Patches:        []string{"inlet", "outlet", "walls"},
		GeometryGlob:   "constant/triSurface/*.stl",
		MeshDir:        "constant/polyMesh",
		PostDir:        "postProcessing",
	},
	Scheduler: SchedulerConfig{
		SubmitCommand:  "sbatch",
		QueueCommand:   "squeue",
		CancelCommand:  "scancel",
		CommandTimeout: 30 * Second,
	},
	Workflow: WorkflowConfig{
		Mesh: JobConfig{
			Name:      "mesh",
			Script:    "scripts/mesh.sbatch",
			Tasks:     16,
			Memory:    "8GB",
			TimeLimit: 2 * Hour,
		},
		Solver: JobConfig{
			Name:      "solver",
			Script:    "scripts/solver.sbatch",
			Tasks:     64,
			Memory:    "16GB",
			TimeLimit: 24 * Hour,
		},
	},
	Logs: LogsConfig{
		Dir:        "logs",
		ArchiveDir: "logs/archive",
		Retention:  7 * Day,
		Patterns:   []string{"*.log", "*.out", "*.err"},
	},
	Monitor: MonitorConfig{
		TailLines: 20,
		Mesh: StageMonitorConfig{
			LogGlob: "mesh-*.out",
			Success: []string{"Mesh OK"},
			Failure: []string{"FOAM FATAL ERROR", "FOAM FATAL IO ERROR"},
		},
		Solver: StageMonitorConfig{
			LogGlob:  "solver-*.out",
			Success:  []string{"End", "solution converged"},
			Failure:  []string{"FOAM FATAL ERROR", "FOAM FATAL IO ERROR", "Floating point exception"},
			Progress: []string{"Time =", "Solving for"},
		},
	},
}
