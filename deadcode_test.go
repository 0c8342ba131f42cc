package deadcode_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	deadcode "github.com/ShadowStrikeHQ/codeintel-dead-code-finder"
)

// stubRunner maps binary names to canned stdout.
type stubRunner struct {
	stdout map[string]string
	exit   map[string]int
}

func (s stubRunner) Run(_ context.Context, binary string, _ ...string) ([]byte, []byte, int, error) {
	out, ok := s.stdout[binary]
	if !ok {
		return nil, nil, -1, exec.ErrNotFound
	}
	return []byte(out), nil, s.exit[binary], nil
}

func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), []byte("import os\n"), 0o644))
	return dir
}

func TestAnalyzeAggregatesAcrossTools(t *testing.T) {
	stub := stubRunner{
		stdout: map[string]string{
			"flake8": "a.py:3:1: F401 'os' imported but unused\n" +
				"b.py:7:5: F841 local variable 'count' is assigned to but never used\n",
			"pylint": `[{"type": "warning", "line": 3, "column": 0, "path": "a.py",
				"message": "Unused import os", "message-id": "W0611", "obj": "os"}]`,
			"pyre": "[]",
		},
		exit: map[string]int{"flake8": 1, "pylint": 4, "pyre": 0},
	}

	report, err := deadcode.Analyze(context.Background(), projectDir(t),
		deadcode.WithCommandRunner(stub))
	require.NoError(t, err)
	require.Equal(t, 3, report.Executed())

	// a.py:3 "os" is reported by both tools and merges into one record
	require.Len(t, report.Findings, 2)
	first := report.Findings[0]
	require.Equal(t, "a.py", first.FilePath)
	require.Equal(t, 3, first.Line)
	require.Equal(t, "os", first.Symbol)
	require.Equal(t, []string{"flake8", "pylint"}, first.Tools)

	second := report.Findings[1]
	require.Equal(t, "b.py", second.FilePath)
	require.Equal(t, "count", second.Symbol)
	require.Equal(t, []string{"flake8"}, second.Tools)
}

func TestAnalyzeIgnorePatterns(t *testing.T) {
	stub := stubRunner{
		stdout: map[string]string{
			"flake8": "test_a.py:1:1: F401 'os' imported but unused\n" +
				"src/b.py:2:1: F401 'sys' imported but unused\n",
		},
		exit: map[string]int{"flake8": 1},
	}

	report, err := deadcode.Analyze(context.Background(), projectDir(t),
		deadcode.WithCommandRunner(stub),
		deadcode.WithTools("flake8"),
		deadcode.WithIgnorePatterns("test_*.py"))
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	require.Equal(t, "src/b.py", report.Findings[0].FilePath)
}

func TestAnalyzeIgnoreFile(t *testing.T) {
	dir := projectDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".deadcodeignore"),
		[]byte("# generated code\nmigrations/**\n"), 0o644))

	stub := stubRunner{
		stdout: map[string]string{
			"flake8": "migrations/0001_init.py:1:1: F401 'os' imported but unused\n" +
				"app.py:1:1: F401 'sys' imported but unused\n",
		},
		exit: map[string]int{"flake8": 1},
	}

	report, err := deadcode.Analyze(context.Background(), dir,
		deadcode.WithCommandRunner(stub),
		deadcode.WithTools("flake8"))
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	require.Equal(t, "app.py", report.Findings[0].FilePath)
}

func TestAnalyzeMissingToolRecorded(t *testing.T) {
	stub := stubRunner{
		stdout: map[string]string{"flake8": ""},
		exit:   map[string]int{"flake8": 0},
	}

	report, err := deadcode.Analyze(context.Background(), projectDir(t),
		deadcode.WithCommandRunner(stub))
	require.NoError(t, err)
	require.Equal(t, 1, report.Executed())
	require.Len(t, report.ToolRuns, 3)
	for _, run := range report.ToolRuns {
		if run.Tool != "flake8" {
			require.Contains(t, run.Err, "not found in PATH")
		}
	}
}

func TestAnalyzeMinSeverity(t *testing.T) {
	stub := stubRunner{
		stdout: map[string]string{
			// F401 maps to MEDIUM, E501 (kept via all-findings) to LOW
			"flake8": "a.py:1:1: F401 'os' imported but unused\n" +
				"a.py:2:80: E501 line too long (91 > 79 characters)\n",
		},
		exit: map[string]int{"flake8": 1},
	}

	report, err := deadcode.Analyze(context.Background(), projectDir(t),
		deadcode.WithCommandRunner(stub),
		deadcode.WithTools("flake8"),
		deadcode.WithAllFindings(),
		deadcode.WithMinSeverity(deadcode.SeverityMedium))
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	require.Equal(t, "F401", report.Findings[0].Code)
}

func TestAnalyzeTargetValidation(t *testing.T) {
	_, err := deadcode.Analyze(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "app.py")
	require.NoError(t, os.WriteFile(file, []byte("import os\n"), 0o644))
	_, err = deadcode.Analyze(context.Background(), file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a directory")
}

func TestAnalyzeUnknownTool(t *testing.T) {
	_, err := deadcode.Analyze(context.Background(), projectDir(t),
		deadcode.WithCommandRunner(stubRunner{}),
		deadcode.WithTools("vulture"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported tool")
}

func TestSupportedTools(t *testing.T) {
	require.Equal(t, []string{"flake8", "pylint", "pyre-check"}, deadcode.SupportedTools())
}

func ExampleAnalyze() {
	report, err := deadcode.Analyze(context.Background(), "./myproject",
		deadcode.WithTools("flake8", "pylint"),
		deadcode.WithIgnorePatterns("test_*.py", "migrations/**"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range report.Findings {
		fmt.Printf("%s:%d %s\n", f.FilePath, f.Line, f.Message)
	}
}
