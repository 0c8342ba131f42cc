// Package runner invokes the configured external analyzers against a target
// project, captures their output, and normalizes it through internal/parse.
// Each tool is an independent unit of work: one tool failing does not abort
// the run.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/parse"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// DefaultTimeout bounds a single tool invocation.
const DefaultTimeout = 2 * time.Minute

// ExecError indicates an analyzer could not be executed: missing binary,
// crash, timeout, or an exit code outside the tool's expected range.
type ExecError struct {
	Tool   string
	Err    error
	Stderr string
}

func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("running %s: %v: %s", e.Tool, e.Err, firstLine(e.Stderr))
	}
	return fmt.Sprintf("running %s: %v", e.Tool, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// CommandRunner abstracts process execution for testability.
type CommandRunner interface {
	Run(ctx context.Context, binary string, args ...string) (stdout, stderr []byte, exitCode int, err error)
}

// ExecRunner implements CommandRunner by shelling out.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, binary string, args ...string) ([]byte, []byte, int, error) {
	cmd := exec.CommandContext(ctx, binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return stdout.Bytes(), stderr.Bytes(), -1, err
		}
	}
	return stdout.Bytes(), stderr.Bytes(), exitCode, nil
}

// Runner executes a set of analyzers and collects normalized findings.
type Runner struct {
	cmd      CommandRunner
	timeout  time.Duration
	allCodes bool
	log      *zap.SugaredLogger
}

// New creates a Runner backed by the given command runner.
func New(cmd CommandRunner) *Runner {
	if cmd == nil {
		cmd = ExecRunner{}
	}
	return &Runner{
		cmd:     cmd,
		timeout: DefaultTimeout,
		log:     zap.NewNop().Sugar(),
	}
}

// SetTimeout sets the per-tool timeout. Non-positive values keep the default.
func (r *Runner) SetTimeout(d time.Duration) {
	if d > 0 {
		r.timeout = d
	}
}

// SetAllCodes disables the dead-code relevance filter during normalization.
func (r *Runner) SetAllCodes(all bool) {
	r.allCodes = all
}

// SetLogger sets the logger for per-tool warnings.
func (r *Runner) SetLogger(log *zap.SugaredLogger) {
	if log != nil {
		r.log = log
	}
}

// Run invokes the named tools against target, in parallel. exclude holds
// directory-shaped ignore rules passed through to the tools themselves.
// Per-tool failures are recorded in the returned ToolRuns; findings from the
// tools that succeeded are returned in tool order.
func (r *Runner) Run(ctx context.Context, target string, toolNames []string, exclude []string) ([]types.Finding, []types.ToolRun, error) {
	selected := make([]Tool, 0, len(toolNames))
	for _, name := range toolNames {
		t, ok := Lookup(name)
		if !ok {
			return nil, nil, fmt.Errorf("unsupported tool %q (supported: %v)", name, Names())
		}
		selected = append(selected, t)
	}

	perTool := make([][]types.Finding, len(selected))
	runs := make([]types.ToolRun, len(selected))

	var wg sync.WaitGroup
	for i, t := range selected {
		i, t := i, t
		wg.Add(1)
		go func() {
			defer wg.Done()
			perTool[i], runs[i] = r.runTool(ctx, t, target, exclude)
		}()
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}

	var findings []types.Finding
	for _, fs := range perTool {
		findings = append(findings, fs...)
	}
	return findings, runs, nil
}

func (r *Runner) runTool(ctx context.Context, t Tool, target string, exclude []string) ([]types.Finding, types.ToolRun) {
	start := time.Now()
	run := types.ToolRun{Tool: t.Name}

	fail := func(err error) ([]types.Finding, types.ToolRun) {
		run.Duration = time.Since(start)
		run.Err = err.Error()
		r.log.Warnw("tool failed", "tool", t.Name, "error", err)
		return nil, run
	}

	toolCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	stdout, stderr, exitCode, err := r.cmd.Run(toolCtx, t.Binary, t.Args(target, exclude)...)
	if err != nil {
		if toolCtx.Err() == context.DeadlineExceeded {
			return fail(&ExecError{Tool: t.Name, Err: fmt.Errorf("timeout after %s", r.timeout)})
		}
		if errors.Is(err, exec.ErrNotFound) {
			return fail(&ExecError{Tool: t.Name, Err: fmt.Errorf("binary %q not found in PATH", t.Binary)})
		}
		return fail(&ExecError{Tool: t.Name, Err: err, Stderr: string(stderr)})
	}
	if !t.SuccessExit(exitCode) {
		return fail(&ExecError{
			Tool:   t.Name,
			Err:    fmt.Errorf("unexpected exit code %d", exitCode),
			Stderr: string(stderr),
		})
	}

	parser, ok := parse.ForTool(t.Name, r.allCodes)
	if !ok {
		return fail(fmt.Errorf("no parser registered for %s", t.Name))
	}
	findings, err := parser.Parse(stdout)
	if err != nil {
		return fail(err)
	}

	run.Duration = time.Since(start)
	run.Findings = len(findings)
	r.log.Debugw("tool finished", "tool", t.Name, "findings", len(findings), "duration", run.Duration)
	return findings, run
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
