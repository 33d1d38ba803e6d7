package version

import (
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cfdops/caseflow/pkg/models"
)

// DevelopmentGitVersion is the version string reported by builds that did
// not go through the release pipeline.
const DevelopmentGitVersion = "v0.0.0-xxxxxxx"

// Injected at build time with -ldflags "-X github.com/cfdops/caseflow/pkg/version.GITVERSION=...".
var (
	GITVERSION = DevelopmentGitVersion
	GITCOMMIT  = ""
	BUILDDATE  = "" // RFC3339
)

// Get returns the build version information for the running binary.
func Get() *models.BuildVersionInfo {
	info := &models.BuildVersionInfo{
		GitVersion: GITVERSION,
		GitCommit:  GITCOMMIT,
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}

	if BUILDDATE != "" {
		buildDate, err := time.Parse(time.RFC3339, BUILDDATE)
		if err != nil {
			log.Warn().Err(err).Str("BuildDate", BUILDDATE).Msg("failed to parse build date")
		} else {
			info.BuildDate = buildDate
		}
	}

	// v<major>.<minor>.<patch> when stamped by the release pipeline
	parts := strings.SplitN(strings.TrimPrefix(GITVERSION, "v"), ".", 3)
	if len(parts) == 3 {
		info.Major = parts[0]
		info.Minor = parts[1]
	}

	return info
}
