package monitor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cfdops/caseflow/pkg/config/types"
	"github.com/cfdops/caseflow/pkg/models"
)

// CountPattern extracts one labelled number from a log line, such as the
// cell count the mesh generator prints.
type CountPattern struct {
	Label   string
	pattern *regexp.Regexp
}

// Count is one extracted log statistic.
type Count struct {
	Label string
	Value int64
}

// MarkerSet is the scan vocabulary for one external tool's log output. The
// control flow never changes when a new solver version changes its wording;
// only the marker strings do.
type MarkerSet struct {
	Success  []string
	Failure  []string
	Progress []string
	Counts   []CountPattern
}

// meshCounts match the summary block the mesh tools print, e.g.
// "    cells:           1428  ".
var meshCounts = []CountPattern{
	{Label: "points", pattern: regexp.MustCompile(`\bpoints:\s+(\d+)`)},
	{Label: "faces", pattern: regexp.MustCompile(`\bfaces:\s+(\d+)`)},
	{Label: "cells", pattern: regexp.MustCompile(`\bcells:\s+(\d+)`)},
}

// MeshMarkers builds the mesh log marker set from the manifest. The numeric
// count patterns are fixed; the marker strings come from configuration.
func MeshMarkers(cfg types.StageMonitorConfig) MarkerSet {
	return MarkerSet{
		Success:  cfg.Success,
		Failure:  cfg.Failure,
		Progress: cfg.Progress,
		Counts:   meshCounts,
	}
}

// SolverMarkers builds the solver log marker set from the manifest.
func SolverMarkers(cfg types.StageMonitorConfig) MarkerSet {
	return MarkerSet{
		Success:  cfg.Success,
		Failure:  cfg.Failure,
		Progress: cfg.Progress,
	}
}

// ScanResult is what one pass over a log yielded. Absence of any marker
// leaves State at JobStateUnknown; it is never inferred as failure.
type ScanResult struct {
	State models.JobState

	// Marker is the log line that decided State, verbatim.
	Marker string

	// Progress holds the most recent window of progress lines.
	Progress []string

	// Counts holds the extracted log statistics, latest value per label.
	Counts []Count
}

// scan walks log lines in order and applies the marker set. A failure marker
// wins over a success marker regardless of order, since solvers print their
// footer even on some error paths.
func (m MarkerSet) scan(lines []string, progressWindow int) ScanResult {
	result := ScanResult{State: models.JobStateUnknown}
	counts := make(map[string]int64)
	progressSeen := false

	for _, line := range lines {
		if marker, ok := matchAny(line, m.Failure); ok {
			result.State = models.JobStateFailed
			result.Marker = marker
		}
		if result.State != models.JobStateFailed {
			if marker, ok := matchAny(line, m.Success); ok {
				result.State = models.JobStateSucceeded
				result.Marker = marker
			}
		}
		if _, ok := matchAny(line, m.Progress); ok {
			progressSeen = true
			result.Progress = append(result.Progress, strings.TrimRight(line, " \t"))
			if progressWindow > 0 && len(result.Progress) > progressWindow {
				result.Progress = result.Progress[1:]
			}
		}
		for _, cp := range m.Counts {
			if match := cp.pattern.FindStringSubmatch(line); match != nil {
				if value, err := strconv.ParseInt(match[1], 10, 64); err == nil {
					counts[cp.Label] = value
				}
			}
		}
	}

	if result.State == models.JobStateUnknown && progressSeen {
		result.State = models.JobStateRunning
	}

	// keep the counts in pattern order so output is stable
	for _, cp := range m.Counts {
		if value, ok := counts[cp.Label]; ok {
			result.Counts = append(result.Counts, Count{Label: cp.Label, Value: value})
		}
	}
	return result
}

func matchAny(line string, markers []string) (string, bool) {
	for _, marker := range markers {
		if strings.Contains(line, marker) {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}
