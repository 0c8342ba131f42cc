package parse

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// PyreParser parses `pyre --output=json check` output: a JSON array of type
// errors. Pyre reports no dead-code codes of its own, so every error is kept.
type PyreParser struct{}

type pyreError struct {
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Path        string `json:"path"`
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (p *PyreParser) Tool() string { return "pyre-check" }

func (p *PyreParser) Parse(raw []byte) ([]types.Finding, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, nil
	}

	var errors []pyreError
	if err := json.Unmarshal([]byte(trimmed), &errors); err != nil {
		// Some pyre versions wrap the array in {"errors": [...]}.
		var wrapped struct {
			Errors []pyreError `json:"errors"`
		}
		if err2 := json.Unmarshal([]byte(trimmed), &wrapped); err2 != nil || wrapped.Errors == nil {
			return nil, &ParseError{Tool: "pyre-check", Err: fmt.Errorf("decoding JSON: %w", err)}
		}
		errors = wrapped.Errors
	}

	out := make([]types.Finding, 0, len(errors))
	for _, e := range errors {
		msg := strings.TrimSpace(e.Description)
		if msg == "" {
			msg = e.Name
		}
		out = append(out, types.Finding{
			Tools:    []string{"pyre-check"},
			FilePath: filepath.ToSlash(e.Path),
			Line:     e.Line,
			Column:   e.Column,
			Code:     fmt.Sprintf("PYRE%d", e.Code),
			Symbol:   extractSymbol(msg),
			Message:  msg,
			Severity: types.SeverityMedium,
		})
	}
	return out, nil
}
