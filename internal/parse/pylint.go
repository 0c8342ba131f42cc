package parse

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// PylintParser parses `pylint --output-format=json` output.
type PylintParser struct {
	AllCodes bool
}

type pylintMessage struct {
	Type      string `json:"type"` // fatal | error | warning | refactor | convention | info
	Module    string `json:"module"`
	Obj       string `json:"obj"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Path      string `json:"path"`
	Symbol    string `json:"symbol"` // rule name, e.g. "unused-variable"
	Message   string `json:"message"`
	MessageID string `json:"message-id"` // e.g. "W0612"
}

func (p *PylintParser) Tool() string { return "pylint" }

func (p *PylintParser) Parse(raw []byte) ([]types.Finding, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, nil
	}

	var messages []pylintMessage
	if err := json.Unmarshal([]byte(trimmed), &messages); err != nil {
		return nil, &ParseError{Tool: "pylint", Err: fmt.Errorf("decoding JSON: %w", err)}
	}

	var out []types.Finding
	for _, m := range messages {
		if !p.AllCodes {
			if _, dead := pylintDeadCodes[m.MessageID]; !dead {
				continue
			}
		}
		sym := extractSymbol(m.Message)
		if sym == "" {
			sym = m.Obj
		}
		out = append(out, types.Finding{
			Tools:    []string{"pylint"},
			FilePath: filepath.ToSlash(m.Path),
			Line:     m.Line,
			Column:   m.Column,
			Code:     m.MessageID,
			Symbol:   sym,
			Message:  m.Message,
			Severity: pylintSeverity(m.Type),
		})
	}
	return out, nil
}

func pylintSeverity(msgType string) types.Severity {
	switch strings.ToLower(strings.TrimSpace(msgType)) {
	case "fatal", "error":
		return types.SeverityHigh
	case "warning":
		return types.SeverityMedium
	case "refactor", "convention":
		return types.SeverityLow
	default:
		return types.SeverityInfo
	}
}
