package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// TextFormatter emits one plain line per finding:
//
//	<file>:<line>: [<tools>] <symbol> — <message>
//
// This is the default, grep-friendly format.
type TextFormatter struct{}

func (f *TextFormatter) Format(w io.Writer, report *types.Report) error {
	for _, finding := range report.Findings {
		tools := strings.Join(finding.Tools, ",")
		if finding.Symbol != "" {
			if _, err := fmt.Fprintf(w, "%s:%d: [%s] %s — %s\n",
				finding.FilePath, finding.Line, tools, finding.Symbol, finding.Message); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s:%d: [%s] %s\n",
			finding.FilePath, finding.Line, tools, finding.Message); err != nil {
			return err
		}
	}
	return nil
}
