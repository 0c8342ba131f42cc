package commands

import (
	"github.com/spf13/cobra"
)

var (
	flagTools    []string
	flagIgnore   []string
	flagFormat   string
	flagOutput   string
	flagSeverity string
	flagNoColor  bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "deadcode",
	Short: "Find likely-dead Python code by aggregating static analyzer findings",
	Long: `codeintel-dead-code-finder shells out to flake8, pylint, and pyre-check,
normalizes their output into a single report of likely-unused code (dead
functions, unreachable branches, unused variables), filters it through
ignore rules, and deduplicates findings reported by more than one tool.`,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&flagTools, "tools", nil, "Analyzers to run (flake8, pylint, pyre-check; default: all)")
	rootCmd.PersistentFlags().StringSliceVar(&flagIgnore, "ignore", nil, "Glob patterns suppressing findings by file path or symbol (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format (text, terminal, json, sarif, markdown, html)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().StringVar(&flagSeverity, "severity", "info", "Minimum severity to report (high, medium, low, info)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Legacy flag spellings, kept hidden for backwards compatibility.
	rootCmd.PersistentFlags().StringSliceVar(&flagTools, "dependencies", nil, "Alias for --tools")
	_ = rootCmd.PersistentFlags().MarkHidden("dependencies")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output_file", "", "Alias for --output")
	_ = rootCmd.PersistentFlags().MarkHidden("output_file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
