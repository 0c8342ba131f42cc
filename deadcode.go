// Package deadcode provides a public API for finding likely-dead code in
// Python projects by aggregating the findings of external static analyzers
// (flake8, pylint, pyre-check).
//
// This is the library entry point. For the CLI tool, see cmd/deadcode/.
package deadcode

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/ignore"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/meta"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/runner"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// Re-export core types from internal/types so consumers don't need to
// import internal packages.
type (
	Severity = types.Severity
	Finding  = types.Finding
	ToolRun  = types.ToolRun
	Report   = types.Report
)

const (
	SeverityInfo   = types.SeverityInfo
	SeverityLow    = types.SeverityLow
	SeverityMedium = types.SeverityMedium
	SeverityHigh   = types.SeverityHigh
)

// SupportedTools returns the names of the analyzers this package can drive.
func SupportedTools() []string {
	return runner.Names()
}

// Analyze runs the configured analyzers against projectPath and returns the
// aggregated report: normalized findings, ignore-filtered, deduplicated
// across tools, ordered by file path then line.
//
// Per-tool failures (missing binary, crash, timeout, unparseable output) do
// not abort the run; they are recorded in Report.ToolRuns. Callers that want
// to treat "no tool could be executed" as fatal should check
// Report.Executed().
func Analyze(ctx context.Context, projectPath string, opts ...Option) (*Report, error) {
	info, err := os.Stat(projectPath)
	if err != nil {
		return nil, fmt.Errorf("target %s: %w", projectPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target %s is not a directory", projectPath)
	}

	cfg := applyOpts(opts)

	rules := ignore.New(cfg.ignorePatterns)
	rules.LoadFile(projectPath)

	r := runner.New(cfg.cmdRunner)
	r.SetTimeout(cfg.timeout)
	r.SetAllCodes(cfg.allFindings)
	if cfg.logger != nil {
		r.SetLogger(cfg.logger)
	}

	toolNames := cfg.tools
	if len(toolNames) == 0 {
		toolNames = runner.Names()
	}

	start := time.Now()
	findings, runs, err := r.Run(ctx, projectPath, toolNames, rules.DirRules())
	if err != nil {
		return nil, err
	}

	findings = rules.Filter(findings)
	findings = meta.Merge(findings)
	findings = meta.FilterSeverity(findings, cfg.minSeverity)

	return &Report{
		Findings: findings,
		ToolRuns: runs,
		Duration: time.Since(start),
		Target:   projectPath,
	}, nil
}
