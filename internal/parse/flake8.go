package parse

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// Flake8Parser parses flake8's default text output, one diagnostic per line:
//
//	path/to/file.py:12:1: F401 'os' imported but unused
type Flake8Parser struct {
	// AllCodes disables the dead-code relevance filter.
	AllCodes bool
}

func (p *Flake8Parser) Tool() string { return "flake8" }

func (p *Flake8Parser) Parse(raw []byte) ([]types.Finding, error) {
	var out []types.Finding
	malformed := 0
	total := 0

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		f, ok := p.parseLine(line)
		if !ok {
			malformed++
			continue
		}
		if !p.AllCodes {
			if _, dead := flake8DeadCodes[f.Code]; !dead {
				continue
			}
		}
		out = append(out, f)
	}

	// A fully unrecognizable output means the format changed or a traceback
	// was printed; sporadic odd lines (summaries, notes) are tolerated.
	if total > 0 && malformed == total {
		return nil, &ParseError{Tool: "flake8", Err: fmt.Errorf("no line matched path:line:col: code message (%d lines)", total)}
	}
	return out, nil
}

func (p *Flake8Parser) parseLine(line string) (types.Finding, bool) {
	// Windows drive letters contain a colon, so split from the right of the
	// "path:line:col" prefix instead of a naive SplitN.
	idx := strings.Index(line, ": ")
	if idx < 0 {
		return types.Finding{}, false
	}
	prefix, remainder := line[:idx], line[idx+2:]

	segs := strings.Split(prefix, ":")
	if len(segs) < 3 {
		return types.Finding{}, false
	}
	path := strings.Join(segs[:len(segs)-2], ":")

	lineNo, err := strconv.Atoi(segs[len(segs)-2])
	if err != nil || lineNo <= 0 {
		return types.Finding{}, false
	}
	col, err := strconv.Atoi(segs[len(segs)-1])
	if err != nil {
		return types.Finding{}, false
	}

	code, message, found := strings.Cut(remainder, " ")
	if !found || !isFlake8Code(code) {
		return types.Finding{}, false
	}

	return types.Finding{
		Tools:    []string{"flake8"},
		FilePath: filepath.ToSlash(path),
		Line:     lineNo,
		Column:   col,
		Code:     code,
		Symbol:   extractSymbol(message),
		Message:  message,
		Severity: flake8Severity(code),
	}, true
}

// isFlake8Code reports whether s looks like a pycodestyle/pyflakes code:
// a short run of uppercase letters followed by digits (E501, F401, C901).
func isFlake8Code(s string) bool {
	if len(s) < 2 || len(s) > 6 {
		return false
	}
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func flake8Severity(code string) types.Severity {
	if _, dead := flake8DeadCodes[code]; dead {
		return types.SeverityMedium
	}
	return types.SeverityLow
}
