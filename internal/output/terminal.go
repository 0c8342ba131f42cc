package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// ANSI color codes
const (
	reset     = "\033[0m"
	bold      = "\033[1m"
	dim       = "\033[2m"
	underline = "\033[4m"
	red       = "\033[31m"
	yellow    = "\033[33m"
	blue      = "\033[34m"
	cyan      = "\033[36m"
)

const (
	barWidth     = 40
	lineWidth    = 72
	codeWidth    = 8
	symbolWidth  = 28
	messageWidth = 56
)

// TerminalFormatter renders a triage-oriented report with a severity
// dashboard, per-file sections, and a tool execution summary.
type TerminalFormatter struct {
	NoColor bool
	Verbose bool
}

func (f *TerminalFormatter) color(code, text string) string {
	if f.NoColor {
		return text
	}
	return code + text + reset
}

func (f *TerminalFormatter) Format(w io.Writer, report *types.Report) error {
	if !f.NoColor && os.Getenv("NO_COLOR") != "" {
		f.NoColor = true
	}

	f.printHeader(w, report)

	if len(report.Findings) == 0 {
		fmt.Fprintf(w, "\n  %s No dead code found.\n", f.color(cyan, "✔"))
	} else {
		f.printDashboard(w, countBySeverity(report.Findings))

		for _, group := range groupByFile(report.Findings) {
			fmt.Fprintf(w, "\n  %s\n", f.color(bold+underline, group.filePath))
			for _, finding := range group.findings {
				f.printFinding(w, finding)
			}
		}

		f.printTopFiles(w, report.Findings)
	}

	f.printToolRuns(w, report.ToolRuns)
	f.printFooter(w, report)
	return nil
}

func (f *TerminalFormatter) separator() string {
	return strings.Repeat("─", lineWidth)
}

func (f *TerminalFormatter) sectionHeader(title string) string {
	prefix := "── " + title + " "
	displayLen := utf8.RuneCountInString(prefix)
	remaining := max(lineWidth-displayLen, 0)
	return prefix + strings.Repeat("─", remaining)
}

func (f *TerminalFormatter) printHeader(w io.Writer, report *types.Report) {
	sep := f.separator()
	fmt.Fprintf(w, "\n%s\n", f.color(dim, sep))
	fmt.Fprintf(w, "  %s\n", f.color(bold, "DEAD CODE REPORT"))

	parts := []string{}
	if report.Target != "" {
		parts = append(parts, fmt.Sprintf("Target: %s", report.Target))
	}
	parts = append(parts, fmt.Sprintf("%d/%d tools", report.Executed(), len(report.ToolRuns)))
	if report.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.2fs", report.Duration.Seconds()))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ·  "))
	fmt.Fprintf(w, "%s\n", f.color(dim, sep))
}

func (f *TerminalFormatter) printDashboard(w io.Writer, counts map[types.Severity]int) {
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return
	}

	fmt.Fprintln(w)
	for _, sev := range severityOrder {
		c := counts[sev]
		if c == 0 {
			continue
		}
		label := fmt.Sprintf("  %-10s", sev.String())
		bar := f.renderBar(c, maxCount, barWidth, sev)
		fmt.Fprintf(w, "%s %s %4d\n", f.color(bold, label), bar, c)
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	fmt.Fprintf(w, "\n  %s\n", f.color(bold, fmt.Sprintf("%d findings", total)))
}

func (f *TerminalFormatter) printFinding(w io.Writer, finding types.Finding) {
	icon := f.severityIcon(finding.Severity)
	code := fmt.Sprintf("%-*s", codeWidth, finding.Code)
	symbol := finding.Symbol
	if symbol == "" {
		symbol = "-"
	}
	symbolPadded := fmt.Sprintf("%-*s", symbolWidth, truncate(symbol, symbolWidth))
	lineStr := fmt.Sprintf("L%d", finding.Line)
	toolsStr := "[" + strings.Join(finding.Tools, ",") + "]"

	fmt.Fprintf(w, "    %s %s %s %s %s\n",
		icon,
		f.color(bold, code),
		symbolPadded,
		f.color(cyan, lineStr),
		f.color(dim, toolsStr),
	)
	if f.Verbose && finding.Message != "" {
		fmt.Fprintf(w, "      %s %s\n",
			f.color(dim, "│"), f.color(dim, truncate(finding.Message, messageWidth)))
	}
}

func (f *TerminalFormatter) printTopFiles(w io.Writer, findings []types.Finding) {
	fileCounts := map[string]int{}
	for _, finding := range findings {
		fileCounts[finding.FilePath]++
	}

	type fileCount struct {
		path  string
		count int
	}
	sorted := make([]fileCount, 0, len(fileCounts))
	for path, count := range fileCounts {
		sorted = append(sorted, fileCount{path, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].path < sorted[j].path
	})

	limit := min(len(sorted), 5)
	if limit < 2 {
		return
	}

	header := f.sectionHeader("TOP AFFECTED FILES")
	fmt.Fprintf(w, "\n%s\n\n", f.color(bold, header))

	for i := 0; i < limit; i++ {
		fmt.Fprintf(w, "  %4d  %s\n", sorted[i].count, sorted[i].path)
	}
}

func (f *TerminalFormatter) printToolRuns(w io.Writer, runs []types.ToolRun) {
	if len(runs) == 0 {
		return
	}
	header := f.sectionHeader("TOOLS")
	fmt.Fprintf(w, "\n%s\n\n", f.color(bold, header))

	for _, run := range runs {
		if run.OK() {
			fmt.Fprintf(w, "  %s %-10s %4d findings  %s\n",
				f.color(cyan, "✔"), run.Tool, run.Findings,
				f.color(dim, fmt.Sprintf("%.2fs", run.Duration.Seconds())))
			continue
		}
		fmt.Fprintf(w, "  %s %-10s %s\n",
			f.color(red, "✖"), run.Tool, f.color(red, run.Err))
	}
}

func (f *TerminalFormatter) printFooter(w io.Writer, report *types.Report) {
	sep := f.separator()
	fmt.Fprintf(w, "\n%s\n", f.color(dim, sep))

	parts := []string{
		fmt.Sprintf("%d findings", len(report.Findings)),
		fmt.Sprintf("%d/%d tools succeeded", report.Executed(), len(report.ToolRuns)),
	}
	if report.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.2fs", report.Duration.Seconds()))
	}

	fmt.Fprintf(w, "  %s\n", strings.Join(parts, " · "))
	fmt.Fprintf(w, "%s\n", f.color(dim, sep))
}

func (f *TerminalFormatter) severityIcon(sev types.Severity) string {
	switch sev {
	case types.SeverityHigh:
		return f.color(red, "▲")
	case types.SeverityMedium:
		return f.color(yellow, "■")
	case types.SeverityLow:
		return f.color(blue, "●")
	case types.SeverityInfo:
		return f.color(cyan, "○")
	default:
		return "?"
	}
}

func (f *TerminalFormatter) severityColor(sev types.Severity) string {
	switch sev {
	case types.SeverityHigh:
		return red + bold
	case types.SeverityMedium:
		return yellow
	case types.SeverityLow:
		return blue
	case types.SeverityInfo:
		return cyan
	default:
		return ""
	}
}

func (f *TerminalFormatter) renderBar(count, maxCount, width int, sev types.Severity) string {
	if maxCount == 0 {
		return strings.Repeat("░", width)
	}
	filled := count * width / maxCount
	if filled == 0 && count > 0 {
		filled = 1
	}
	// Always keep at least 1 empty block so the bar boundary is visible
	if filled >= width {
		filled = width - 1
	}
	empty := width - filled

	filledStr := strings.Repeat("█", filled)
	emptyStr := strings.Repeat("░", empty)
	return f.color(f.severityColor(sev), filledStr) + f.color(dim, emptyStr)
}

var severityOrder = []types.Severity{
	types.SeverityHigh,
	types.SeverityMedium,
	types.SeverityLow,
	types.SeverityInfo,
}

func countBySeverity(findings []types.Finding) map[types.Severity]int {
	counts := map[types.Severity]int{}
	for _, finding := range findings {
		counts[finding.Severity]++
	}
	return counts
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", " ")
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	// Cut on a rune boundary so multi-byte messages stay valid UTF-8
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

type fileGroup struct {
	filePath string
	findings []types.Finding
}

func groupByFile(findings []types.Finding) []fileGroup {
	order := make(map[string]int)
	grouped := make(map[string][]types.Finding)
	for _, f := range findings {
		if _, ok := order[f.FilePath]; !ok {
			order[f.FilePath] = len(order)
		}
		grouped[f.FilePath] = append(grouped[f.FilePath], f)
	}
	result := make([]fileGroup, 0, len(grouped))
	for path, findings := range grouped {
		result = append(result, fileGroup{filePath: path, findings: findings})
	}
	sort.Slice(result, func(i, j int) bool {
		return order[result[i].filePath] < order[result[j].filePath]
	})
	return result
}
