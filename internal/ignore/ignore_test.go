package ignore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/ignore"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

func sampleFindings() []types.Finding {
	return []types.Finding{
		{FilePath: "src/app.py", Line: 3, Symbol: "os"},
		{FilePath: "src/util.py", Line: 7, Symbol: "helper"},
		{FilePath: "test_utils.py", Line: 10, Symbol: "fixture"},
		{FilePath: "vendor/lib.py", Line: 1, Symbol: ""},
	}
}

func TestFilterEmptyRuleSetIsIdentity(t *testing.T) {
	findings := sampleFindings()
	rs := ignore.New(nil)
	require.Equal(t, findings, rs.Filter(findings))
}

func TestFilterExactSymbol(t *testing.T) {
	rs := ignore.New([]string{"helper"})
	filtered := rs.Filter(sampleFindings())
	require.Len(t, filtered, 3)
	for _, f := range filtered {
		require.NotEqual(t, "helper", f.Symbol)
	}
}

func TestFilterBasenameGlob(t *testing.T) {
	// "test_*" suppresses test_utils.py anywhere in the tree
	rs := ignore.New([]string{"test_*"})
	filtered := rs.Filter(sampleFindings())
	require.Len(t, filtered, 3)
	for _, f := range filtered {
		require.NotEqual(t, "test_utils.py", f.FilePath)
	}
}

func TestFilterDirectoryRule(t *testing.T) {
	rs := ignore.New([]string{"vendor"})
	filtered := rs.Filter(sampleFindings())
	require.Len(t, filtered, 3)
	for _, f := range filtered {
		require.NotEqual(t, "vendor/lib.py", f.FilePath)
	}
}

func TestFilterDoubleStarGlobs(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		dropped bool
	}{
		{"prefix", "src/**", "src/deep/nested.py", true},
		{"prefix_no_match", "src/**", "lib/app.py", false},
		{"suffix", "**/*.py", "a/b/c.py", true},
		{"middle", "src/**/models.py", "src/a/b/models.py", true},
		{"middle_no_match", "src/**/models.py", "src/a/views.py", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := ignore.New([]string{tt.pattern})
			out := rs.Filter([]types.Finding{{FilePath: tt.path}})
			if tt.dropped {
				require.Empty(t, out)
			} else {
				require.Len(t, out, 1)
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	rs := ignore.New([]string{"vendor/**"})
	filtered := rs.Filter(sampleFindings())
	require.Equal(t, "src/app.py", filtered[0].FilePath)
	require.Equal(t, "src/util.py", filtered[1].FilePath)
	require.Equal(t, "test_utils.py", filtered[2].FilePath)
}

func TestDirRules(t *testing.T) {
	rs := ignore.New([]string{"vendor", "*.log", "build", "**/*.py", "test_*"})
	require.Equal(t, []string{"vendor", "build"}, rs.DirRules())
}

func TestAddSkipsCommentsAndBlanks(t *testing.T) {
	rs := ignore.New([]string{"", "  ", "# comment", "real"})
	require.Equal(t, 1, rs.Len())
	require.Equal(t, []string{"real"}, rs.Patterns())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "# ignore these\nvendor/**\n\n.venv/**\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".deadcodeignore"), []byte(content), 0644))

	rs := ignore.New(nil)
	rs.LoadFile(dir)
	require.Equal(t, []string{"vendor/**", ".venv/**"}, rs.Patterns())
}

func TestLoadFileMissing(t *testing.T) {
	rs := ignore.New([]string{"a"})
	rs.LoadFile(t.TempDir())
	require.Equal(t, 1, rs.Len())
}
