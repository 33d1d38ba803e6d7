package models

import (
	"time"
)

// BuildVersionInfo identifies one build of a caseflow binary.
type BuildVersionInfo struct {
	Major      string    `json:"Major,omitempty"`
	Minor      string    `json:"Minor,omitempty"`
	GitVersion string    `json:"GitVersion"`
	GitCommit  string    `json:"GitCommit"`
	BuildDate  time.Time `json:"BuildDate"`
	GOOS       string    `json:"GOOS"`
	GOARCH     string    `json:"GOARCH"`
}
