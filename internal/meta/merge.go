// Package meta merges normalized findings across tools: cross-tool
// deduplication and deterministic report ordering.
package meta

import (
	"fmt"
	"sort"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// Merge deduplicates findings that reference the same (FilePath, Line, Symbol)
// location across tools. The surviving record carries the sorted union of
// contributing tool names, the highest severity seen, and the first message.
// Merge is idempotent and its output order is deterministic: FilePath, then
// Line, then Symbol.
func Merge(findings []types.Finding) []types.Finding {
	merged := make(map[string]types.Finding)
	for _, f := range findings {
		k := fmt.Sprintf("%s:%d:%s", f.FilePath, f.Line, f.Symbol)
		existing, ok := merged[k]
		if !ok {
			f.Tools = unionTools(nil, f.Tools)
			merged[k] = f
			continue
		}
		existing.Tools = unionTools(existing.Tools, f.Tools)
		if f.Severity > existing.Severity {
			existing.Severity = f.Severity
		}
		if existing.Message == "" {
			existing.Message = f.Message
		}
		if existing.Code == "" {
			existing.Code = f.Code
		}
		merged[k] = existing
	}

	out := make([]types.Finding, 0, len(merged))
	for _, f := range merged {
		out = append(out, f)
	}
	Sort(out)
	return out
}

// Sort orders findings by FilePath, then Line, then Symbol.
func Sort(findings []types.Finding) {
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].FilePath != findings[j].FilePath {
			return findings[i].FilePath < findings[j].FilePath
		}
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Symbol < findings[j].Symbol
	})
}

// FilterSeverity drops findings below the threshold, preserving order.
func FilterSeverity(findings []types.Finding, min types.Severity) []types.Finding {
	if min <= types.SeverityInfo {
		return findings
	}
	var out []types.Finding
	for _, f := range findings {
		if f.Severity >= min {
			out = append(out, f)
		}
	}
	return out
}

func unionTools(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing)+len(extra))
	var out []string
	for _, t := range existing {
		if t != "" && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, t := range extra {
		if t != "" && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
