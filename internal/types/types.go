// Package types defines shared data structures (Finding, Severity, Report)
// used across runner, parse, meta, and output packages to prevent import cycles.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Severity represents the normalized severity level of a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityLow:
		return "LOW"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a string to a Severity level.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIGH":
		return SeverityHigh, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "LOW":
		return SeverityLow, nil
	case "INFO":
		return SeverityInfo, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity: %q", s)
	}
}

// Finding represents a single report of potentially dead or unused code.
// After aggregation, Tools lists every analyzer that reported the same
// (FilePath, Line, Symbol) location.
type Finding struct {
	Tools    []string `json:"tools"`
	FilePath string   `json:"file_path"`
	Line     int      `json:"line"`
	Column   int      `json:"column,omitempty"`
	Code     string   `json:"code,omitempty"`
	Symbol   string   `json:"symbol,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Tool returns the first reporting tool name, or "" for a zero Finding.
func (f Finding) Tool() string {
	if len(f.Tools) == 0 {
		return ""
	}
	return f.Tools[0]
}

// ToolRun records the outcome of one analyzer invocation.
type ToolRun struct {
	Tool     string        `json:"tool"`
	Findings int           `json:"findings"`
	Duration time.Duration `json:"-"`
	Err      string        `json:"error,omitempty"`
}

// OK reports whether the tool executed and its output was parsed.
func (r ToolRun) OK() bool {
	return r.Err == ""
}

// Report holds the complete results of one analysis run.
type Report struct {
	Findings []Finding     `json:"findings"`
	ToolRuns []ToolRun     `json:"tool_runs"`
	Duration time.Duration `json:"-"`
	Target   string        `json:"-"`
}

// Executed returns how many tools ran successfully.
func (r *Report) Executed() int {
	n := 0
	for _, tr := range r.ToolRuns {
		if tr.OK() {
			n++
		}
	}
	return n
}

// MarshalJSON implements custom JSON marshaling so Duration serializes as milliseconds.
func (r Report) MarshalJSON() ([]byte, error) {
	type Alias Report
	return json.Marshal(struct {
		Alias
		DurationMS int64 `json:"duration_ms"`
	}{
		Alias:      Alias(r),
		DurationMS: r.Duration.Milliseconds(),
	})
}
