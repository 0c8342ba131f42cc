package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// SARIFFormatter outputs findings in SARIF 2.1.0 format for GitHub Code Scanning.
type SARIFFormatter struct{}

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool      `json:"tool"`
	Results    []sarifResult  `json:"results"`
	Properties map[string]any `json:"properties,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	ShortDescription sarifMessage        `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig  `json:"defaultConfiguration"`
	Properties       sarifRuleProperties `json:"properties"`
}

type sarifDefaultConfig struct {
	Level string `json:"level"`
}

type sarifRuleProperties struct {
	Tags []string `json:"tags,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID     string          `json:"ruleId"`
	RuleIndex  int             `json:"ruleIndex"`
	Level      string          `json:"level"`
	Message    sarifMessage    `json:"message"`
	Locations  []sarifLocation `json:"locations"`
	Properties map[string]any  `json:"properties,omitempty"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

func (f *SARIFFormatter) Format(w io.Writer, report *types.Report) error {
	// Collect unique rules in order. Rule IDs are the normalized diagnostic
	// codes (F401, W0612, PYRE18) so suppressions survive across runs.
	ruleIndex := map[string]int{}
	var rules []sarifRule
	for _, finding := range report.Findings {
		id := ruleID(finding)
		if _, ok := ruleIndex[id]; !ok {
			ruleIndex[id] = len(rules)
			rules = append(rules, sarifRule{
				ID:               id,
				Name:             id,
				ShortDescription: sarifMessage{Text: finding.Message},
				DefaultConfig:    sarifDefaultConfig{Level: severityToLevel(finding.Severity)},
				Properties:       sarifRuleProperties{Tags: []string{"dead-code"}},
			})
		}
	}

	var results []sarifResult
	for _, finding := range report.Findings {
		id := ruleID(finding)
		msg := finding.Message
		if finding.Symbol != "" && !strings.Contains(msg, finding.Symbol) {
			msg = finding.Symbol + ": " + msg
		}
		r := sarifResult{
			RuleID:    id,
			RuleIndex: ruleIndex[id],
			Level:     severityToLevel(finding.Severity),
			Message:   sarifMessage{Text: msg},
			Locations: []sarifLocation{
				{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{URI: finding.FilePath},
						Region: sarifRegion{
							StartLine:   max(finding.Line, 1),
							StartColumn: max(finding.Column, 1),
						},
					},
				},
			},
			Properties: map[string]any{"tools": finding.Tools},
		}
		results = append(results, r)
	}

	log := sarifLog{
		Schema:  "https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:           "codeintel-dead-code-finder",
						Version:        ToolVersion,
						InformationURI: "https://github.com/ShadowStrikeHQ/codeintel-dead-code-finder",
						Rules:          rules,
					},
				},
				Results:    results,
				Properties: map[string]any{"duration_ms": report.Duration.Milliseconds()},
			},
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}

func ruleID(f types.Finding) string {
	if f.Code != "" {
		return f.Code
	}
	return f.Tool()
}

func severityToLevel(sev types.Severity) string {
	switch sev {
	case types.SeverityHigh:
		return "error"
	case types.SeverityMedium:
		return "warning"
	case types.SeverityLow:
		return "note"
	default:
		return "none"
	}
}
