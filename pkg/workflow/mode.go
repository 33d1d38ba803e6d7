package workflow

import (
	"fmt"
)

// Mode selects which part of the mesh-then-solve chain an invocation runs.
type Mode int

const (
	// ModeFull submits the mesh job, then the solver job gated on the mesh
	// job succeeding.
	ModeFull Mode = iota

	// ModeCheckOnly runs case validation and submits nothing, whatever the
	// validation outcome.
	ModeCheckOnly

	// ModeMeshOnly submits only the mesh job.
	ModeMeshOnly

	// ModeSolverOnly submits only the solver job. Since no scheduler
	// dependency can reference a job that already finished, the mesh output
	// must be present on disk instead.
	ModeSolverOnly
)

var strModeArray = [...]string{
	ModeFull:       "full",
	ModeCheckOnly:  "check-only",
	ModeMeshOnly:   "mesh-only",
	ModeSolverOnly: "solver-only",
}

func (m Mode) String() string {
	if int(m) < 0 || int(m) >= len(strModeArray) {
		return "unknown"
	}
	return strModeArray[m]
}

// ParseMode maps a mode name back onto a Mode.
func ParseMode(s string) (Mode, error) {
	for mode, name := range strModeArray {
		if s == name {
			return Mode(mode), nil
		}
	}
	return ModeFull, fmt.Errorf("%q is not a valid workflow mode (valid modes: %q)", s, strModeArray)
}
