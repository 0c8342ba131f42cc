// Package ignore suppresses findings matching user-supplied glob rules.
// Rules are matched against both file paths and symbol names.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// RuleSet holds the ignore patterns for one run.
type RuleSet struct {
	patterns []string
}

// New builds a RuleSet from glob patterns. Empty and comment-like patterns
// are dropped.
func New(patterns []string) *RuleSet {
	rs := &RuleSet{}
	rs.Add(patterns...)
	return rs
}

// Add appends patterns to the set.
func (rs *RuleSet) Add(patterns ...string) {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		rs.patterns = append(rs.patterns, p)
	}
}

// Len returns the number of active rules.
func (rs *RuleSet) Len() int {
	return len(rs.patterns)
}

// Patterns returns a copy of the active rules.
func (rs *RuleSet) Patterns() []string {
	out := make([]string, len(rs.patterns))
	copy(out, rs.patterns)
	return out
}

// DirRules returns the subset of patterns that name plain directories or
// files (no glob metacharacters). These are forwarded to the analyzers as
// exclude arguments so the tools skip them at the source.
func (rs *RuleSet) DirRules() []string {
	var out []string
	for _, p := range rs.patterns {
		if !strings.ContainsAny(p, "*?[") {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether the finding is suppressed by any rule. A rule matches
// when it globs the finding's file path (or its basename) or its symbol name.
func (rs *RuleSet) Match(f types.Finding) bool {
	for _, p := range rs.patterns {
		if matchGlob(p, f.FilePath) {
			return true
		}
		if f.Symbol != "" {
			if matched, _ := filepath.Match(p, f.Symbol); matched {
				return true
			}
		}
	}
	return false
}

// Filter removes suppressed findings, preserving input order. An empty rule
// set returns the input unchanged.
func (rs *RuleSet) Filter(findings []types.Finding) []types.Finding {
	if rs == nil || len(rs.patterns) == 0 {
		return findings
	}
	out := findings[:0:0]
	for _, f := range findings {
		if !rs.Match(f) {
			out = append(out, f)
		}
	}
	return out
}

// LoadFile reads extra patterns from an ignore file (one per line, # comments)
// in the target directory. A missing file is not an error.
func (rs *RuleSet) LoadFile(dir string) {
	f, err := os.Open(filepath.Join(dir, ".deadcodeignore"))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rs.Add(scanner.Text())
	}
}

// matchGlob supports ** globs that filepath.Match does not.
// "dir/**" matches any file under dir/ at any depth.
// "**/*.py" matches any .py file at any depth.
// Plain patterns are also tried against the path basename, so "test_*"
// suppresses test_utils.py anywhere in the tree.
func matchGlob(pattern, relPath string) bool {
	relPath = filepath.ToSlash(relPath)

	// Fast path: no ** means filepath.Match is sufficient
	if !strings.Contains(pattern, "**") {
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, filepath.Base(relPath)); matched {
			return true
		}
		// Directory-shaped rule: "vendor" suppresses "vendor/x.py"
		if !strings.ContainsAny(pattern, "*?[") &&
			(relPath == pattern || strings.HasPrefix(relPath, pattern+"/")) {
			return true
		}
		return false
	}

	// "prefix/**" matches anything under prefix/
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		if strings.HasPrefix(relPath, prefix+"/") || relPath == prefix {
			return true
		}
	}

	// "**/<glob>" matches <glob> against every path suffix
	if strings.HasPrefix(pattern, "**/") {
		suffix := strings.TrimPrefix(pattern, "**/")
		parts := strings.Split(relPath, "/")
		for i := range parts {
			candidate := strings.Join(parts[i:], "/")
			if matched, _ := filepath.Match(suffix, candidate); matched {
				return true
			}
		}
	}

	// "prefix/**/suffix": prefix matches the start, suffix matches the rest
	if idx := strings.Index(pattern, "/**/"); idx >= 0 {
		prefix := pattern[:idx]
		suffix := pattern[idx+4:]
		if strings.HasPrefix(relPath, prefix+"/") {
			rest := strings.TrimPrefix(relPath, prefix+"/")
			parts := strings.Split(rest, "/")
			for i := range parts {
				candidate := strings.Join(parts[i:], "/")
				if matched, _ := filepath.Match(suffix, candidate); matched {
					return true
				}
			}
		}
	}

	return false
}
