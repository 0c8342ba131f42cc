// Package output formats analysis reports for plain text, terminal (ANSI),
// JSON, SARIF, Markdown, and HTML output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// ToolVersion is the version reported in SARIF and Markdown output.
var ToolVersion = "dev"

// Formatter is the interface for emitting a report.
type Formatter interface {
	Format(w io.Writer, report *types.Report) error
}

// ForName returns the formatter registered under the given name.
// The zero name maps to the plain text formatter.
func ForName(name string, noColor, verbose bool) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return &TextFormatter{}, nil
	case "terminal":
		return &TerminalFormatter{NoColor: noColor, Verbose: verbose}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "sarif":
		return &SARIFFormatter{}, nil
	case "markdown", "md":
		return &MarkdownFormatter{}, nil
	case "html":
		return &HTMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (text, terminal, json, sarif, markdown, html)", name)
	}
}
