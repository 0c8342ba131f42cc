package deadcode

import (
	"time"

	"go.uber.org/zap"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/runner"
)

// analyzeConfig holds the resolved configuration for one analysis run.
type analyzeConfig struct {
	tools          []string
	ignorePatterns []string
	timeout        time.Duration
	allFindings    bool
	minSeverity    Severity
	logger         *zap.SugaredLogger
	cmdRunner      runner.CommandRunner
}

// Option configures an analysis run.
type Option func(*analyzeConfig)

func applyOpts(opts []Option) *analyzeConfig {
	cfg := &analyzeConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithTools selects which analyzers to run (default: all supported).
func WithTools(names ...string) Option {
	return func(c *analyzeConfig) {
		c.tools = append(c.tools, names...)
	}
}

// WithIgnorePatterns adds glob rules suppressing findings by file path or
// symbol name.
func WithIgnorePatterns(patterns ...string) Option {
	return func(c *analyzeConfig) {
		c.ignorePatterns = append(c.ignorePatterns, patterns...)
	}
}

// WithTimeout bounds each tool invocation (default: 2m).
func WithTimeout(d time.Duration) Option {
	return func(c *analyzeConfig) {
		c.timeout = d
	}
}

// WithAllFindings disables the dead-code relevance filter, keeping every
// diagnostic the tools emit.
func WithAllFindings() Option {
	return func(c *analyzeConfig) {
		c.allFindings = true
	}
}

// WithMinSeverity sets the minimum severity threshold for reported findings.
func WithMinSeverity(sev Severity) Option {
	return func(c *analyzeConfig) {
		c.minSeverity = sev
	}
}

// WithLogger routes per-tool warnings to the given logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *analyzeConfig) {
		c.logger = log
	}
}

// WithCommandRunner swaps out process execution, mainly for tests.
func WithCommandRunner(cmd runner.CommandRunner) Option {
	return func(c *analyzeConfig) {
		c.cmdRunner = cmd
	}
}
