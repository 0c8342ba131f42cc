// Package parse normalizes the distinct output grammars of the supported
// analyzers (flake8 text, pylint JSON, pyre JSON) into the shared Finding shape.
package parse

import (
	"fmt"
	"strings"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// Parser converts one tool's raw output into normalized findings.
type Parser interface {
	Tool() string
	Parse(raw []byte) ([]types.Finding, error)
}

// ParseError indicates a tool's output could not be normalized. The caller
// is expected to log it and drop that tool's contribution rather than abort.
type ParseError struct {
	Tool string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s output: %v", e.Tool, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ForTool returns the parser for the given tool name. allCodes disables the
// dead-code relevance filter where the tool has one.
func ForTool(name string, allCodes bool) (Parser, bool) {
	switch name {
	case "flake8":
		return &Flake8Parser{AllCodes: allCodes}, true
	case "pylint":
		return &PylintParser{AllCodes: allCodes}, true
	case "pyre-check", "pyre":
		return &PyreParser{}, true
	default:
		return nil, false
	}
}

// extractSymbol pulls the first quoted name out of a diagnostic message,
// e.g. "Unused variable 'foo'" yields "foo". flake8 and pylint quote with
// single quotes, pyre with backticks. Returns "" when the message names no
// symbol.
func extractSymbol(message string) string {
	for _, q := range []byte{'\'', '`'} {
		start := strings.IndexByte(message, q)
		if start < 0 {
			continue
		}
		rest := message[start+1:]
		end := strings.IndexByte(rest, q)
		if end <= 0 {
			continue
		}
		return rest[:end]
	}
	return ""
}
