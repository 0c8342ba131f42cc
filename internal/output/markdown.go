package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// MarkdownFormatter outputs findings as GitHub-flavored markdown,
// designed for GitHub Actions Job Summaries and PR comments.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, report *types.Report) error {
	if len(report.Findings) == 0 {
		f.printClean(w, report)
		f.printToolRuns(w, report.ToolRuns)
		return nil
	}

	f.printSummary(w, report)
	f.printFindings(w, report.Findings)
	f.printToolRuns(w, report.ToolRuns)
	f.printFooter(w, report)
	return nil
}

func (f *MarkdownFormatter) printClean(w io.Writer, report *types.Report) {
	fmt.Fprintf(w, "### :white_check_mark: Dead Code Scan — No dead code found\n\n")
	fmt.Fprintf(w, "> %d/%d tools · %.2fs\n\n",
		report.Executed(), len(report.ToolRuns), report.Duration.Seconds())
}

func (f *MarkdownFormatter) printSummary(w io.Writer, report *types.Report) {
	fmt.Fprintf(w, "### :wastebasket: Dead Code Scan — %d findings\n\n", len(report.Findings))
	fmt.Fprintf(w, "> **Target:** `%s` · %d/%d tools · %.2fs\n\n",
		report.Target, report.Executed(), len(report.ToolRuns), report.Duration.Seconds())

	counts := countBySeverity(report.Findings)
	var badges []string
	for _, sev := range severityOrder {
		c := counts[sev]
		if c == 0 {
			continue
		}
		badges = append(badges, fmt.Sprintf("%s **%d %s**", severityEmoji(sev), c, sev.String()))
	}
	fmt.Fprintf(w, "%s\n\n", strings.Join(badges, " · "))
}

func (f *MarkdownFormatter) printFindings(w io.Writer, findings []types.Finding) {
	fmt.Fprintf(w, "| File | Line | Symbol | Tools | Message |\n")
	fmt.Fprintf(w, "|------|------|--------|-------|---------|\n")

	for _, group := range groupByFile(findings) {
		for _, finding := range group.findings {
			symbol := finding.Symbol
			if symbol == "" {
				symbol = "—"
			} else {
				symbol = "`" + symbol + "`"
			}
			fmt.Fprintf(w, "| `%s` | L%d | %s | %s | %s |\n",
				finding.FilePath, finding.Line, symbol,
				strings.Join(finding.Tools, ", "),
				escapeMarkdown(truncate(finding.Message, 80)))
		}
	}
	fmt.Fprintf(w, "\n")
}

func (f *MarkdownFormatter) printToolRuns(w io.Writer, runs []types.ToolRun) {
	failed := 0
	for _, run := range runs {
		if !run.OK() {
			failed++
		}
	}
	if failed == 0 {
		return
	}

	fmt.Fprintf(w, "<details>\n<summary>:warning: <strong>%d tool(s) failed</strong></summary>\n\n", failed)
	for _, run := range runs {
		if !run.OK() {
			fmt.Fprintf(w, "- `%s`: %s\n", run.Tool, escapeMarkdown(run.Err))
		}
	}
	fmt.Fprintf(w, "\n</details>\n\n")
}

func (f *MarkdownFormatter) printFooter(w io.Writer, report *types.Report) {
	// Top affected files
	fileCounts := map[string]int{}
	for _, finding := range report.Findings {
		fileCounts[finding.FilePath]++
	}
	type fc struct {
		path  string
		count int
	}
	sorted := make([]fc, 0, len(fileCounts))
	for path, count := range fileCounts {
		sorted = append(sorted, fc{path, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].path < sorted[j].path
	})

	if len(sorted) > 1 {
		limit := min(len(sorted), 5)
		fmt.Fprintf(w, "**Top affected files:**\n\n")
		fmt.Fprintf(w, "| File | Findings |\n")
		fmt.Fprintf(w, "|------|----------|\n")
		for i := 0; i < limit; i++ {
			fmt.Fprintf(w, "| `%s` | %d |\n", sorted[i].path, sorted[i].count)
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "---\n")
	fmt.Fprintf(w, "*Scanned by [codeintel-dead-code-finder](https://github.com/ShadowStrikeHQ/codeintel-dead-code-finder) %s*\n", ToolVersion)
}

func severityEmoji(sev types.Severity) string {
	switch sev {
	case types.SeverityHigh:
		return ":red_circle:"
	case types.SeverityMedium:
		return ":yellow_circle:"
	case types.SeverityLow:
		return ":blue_circle:"
	case types.SeverityInfo:
		return ":white_circle:"
	default:
		return ":black_circle:"
	}
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
