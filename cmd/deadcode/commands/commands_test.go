package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	err := runInit(nil, []string{dir})
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, ".deadcode.yml")
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "severity: info")

	data, err = os.ReadFile(filepath.Join(dir, ".deadcodeignore"))
	require.NoError(t, err)
	require.Contains(t, string(data), "__pycache__/**")

	// second run leaves existing files alone
	require.NoError(t, os.WriteFile(cfgPath, []byte("severity: high\n"), 0o644))
	require.NoError(t, runInit(nil, []string{dir}))
	data, err = os.ReadFile(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "severity: high\n", string(data))
}

func TestRunInitCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "proj")
	require.NoError(t, runInit(nil, []string{dir}))
	_, err := os.Stat(filepath.Join(dir, ".deadcode.yml"))
	require.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)
	require.Contains(t, buf.String(), "deadcode dev")
	require.Contains(t, buf.String(), "commit: none")
}

func TestRunTools(t *testing.T) {
	origFormat := flagFormat
	defer func() { flagFormat = origFormat }()
	flagFormat = ""

	var buf bytes.Buffer
	toolsCmd.SetOut(&buf)
	defer toolsCmd.SetOut(nil)

	require.NoError(t, runTools(toolsCmd, nil))
	out := buf.String()
	require.Contains(t, out, "TOOL")
	require.Contains(t, out, "flake8")
	require.Contains(t, out, "pyre-check")
	require.Contains(t, out, "analyzers available")
}

func TestRunToolsJSON(t *testing.T) {
	origFormat := flagFormat
	defer func() { flagFormat = origFormat }()
	flagFormat = "json"

	var buf bytes.Buffer
	toolsCmd.SetOut(&buf)
	defer toolsCmd.SetOut(nil)

	require.NoError(t, runTools(toolsCmd, nil))
	require.Contains(t, buf.String(), `"tool": "flake8"`)
}

func TestParseSeverityFlag(t *testing.T) {
	orig := flagSeverity
	defer func() { flagSeverity = orig }()

	flagSeverity = ""
	sev, err := parseSeverityFlag()
	require.NoError(t, err)
	require.Equal(t, types.SeverityInfo, sev)

	flagSeverity = "high"
	sev, err = parseSeverityFlag()
	require.NoError(t, err)
	require.Equal(t, types.SeverityHigh, sev)

	flagSeverity = "bogus"
	_, err = parseSeverityFlag()
	require.Error(t, err)
}

func TestCheckFailOnThreshold(t *testing.T) {
	orig := flagFailOn
	defer func() { flagFailOn = orig }()

	report := &types.Report{Findings: []types.Finding{
		{FilePath: "a.py", Severity: types.SeverityMedium},
	}}

	flagFailOn = ""
	require.NoError(t, checkFailOnThreshold(report))

	flagFailOn = "high"
	require.NoError(t, checkFailOnThreshold(report))

	flagFailOn = "medium"
	err := checkFailOnThreshold(report)
	require.ErrorIs(t, err, ErrThresholdExceeded)
	require.Contains(t, err.Error(), "MEDIUM")

	// an unparsable threshold is a usage error, not the exit-1 sentinel
	flagFailOn = "bogus"
	err = checkFailOnThreshold(report)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrThresholdExceeded)

}

func TestBuildOptionsFromFlags(t *testing.T) {
	origTools, origIgnore, origTimeout, origAll := flagTools, flagIgnore, flagTimeout, flagAll
	defer func() { flagTools, flagIgnore, flagTimeout, flagAll = origTools, origIgnore, origTimeout, origAll }()

	flagTools = nil
	flagIgnore = nil
	flagTimeout = 0
	flagAll = false
	require.Len(t, buildOptions(types.SeverityInfo, nil), 2)

	flagTools = []string{"flake8"}
	flagIgnore = []string{"test_*"}
	flagTimeout = time.Minute
	flagAll = true
	require.Len(t, buildOptions(types.SeverityInfo, nil), 6)
}

func TestApplyCIDefaults(t *testing.T) {
	origCI, origFailOn, origNoColor := flagCI, flagFailOn, flagNoColor
	defer func() { flagCI, flagFailOn, flagNoColor = origCI, origFailOn, origNoColor }()

	flagCI = true
	flagFailOn = ""
	flagNoColor = false
	applyCIDefaults()
	require.Equal(t, "medium", flagFailOn)
	require.True(t, flagNoColor)

	// an explicit --fail-on survives CI mode
	flagFailOn = "high"
	applyCIDefaults()
	require.Equal(t, "high", flagFailOn)
}
