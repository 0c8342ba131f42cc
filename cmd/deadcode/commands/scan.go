package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	deadcode "github.com/ShadowStrikeHQ/codeintel-dead-code-finder"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/config"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/logging"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/output"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/update"
)

var (
	flagFailOn  string
	flagCI      bool
	flagVerbose bool
	flagAll     bool
	flagTimeout time.Duration
)

var scanCmd = &cobra.Command{
	Use:   "scan [project-path]",
	Short: "Scan a Python project for likely-dead code",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&flagFailOn, "fail-on", "", "Exit with code 1 if findings at or above this severity (high, medium, low)")
	scanCmd.Flags().BoolVar(&flagCI, "ci", false, "CI mode: equivalent to --fail-on medium --no-color")
	scanCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show full messages in terminal output")
	scanCmd.Flags().BoolVar(&flagAll, "all", false, "Keep every diagnostic, not only dead-code related codes")
	scanCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Per-tool timeout (default: 2m)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	log, err := logging.New(flagDebug)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	loadScanConfig(cmd, targetPath, log)
	applyCIDefaults()

	minSev, err := parseSeverityFlag()
	if err != nil {
		return err
	}
	opts := buildOptions(minSev, log)

	ctx, cancel := contextWithInterrupt()
	defer cancel()

	spinner := startSpinner()
	report, err := deadcode.Analyze(ctx, targetPath, opts...)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	for _, run := range report.ToolRuns {
		if !run.OK() {
			log.Warnf("%s: %s", run.Tool, run.Err)
		}
	}

	if err := writeOutput(report); err != nil {
		return err
	}

	notifyUpdate()

	if report.Executed() == 0 {
		return fmt.Errorf("no analyzer could be executed (tried %d)", len(report.ToolRuns))
	}
	return checkFailOnThreshold(report)
}

// loadScanConfig merges the target's .deadcode.yml into the flag values.
// Explicitly set flags always win over config file entries.
func loadScanConfig(cmd *cobra.Command, targetPath string, log *zap.SugaredLogger) {
	cfg, err := config.Load(targetPath)
	if err != nil {
		log.Warnf("%v", err)
	}
	if !cmd.Flags().Changed("tools") && !cmd.Flags().Changed("dependencies") && len(cfg.Tools) > 0 {
		flagTools = cfg.Tools
	}
	if !cmd.Flags().Changed("severity") && cfg.Severity != "" {
		flagSeverity = cfg.Severity
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		flagFormat = cfg.Format
	}
	if !cmd.Flags().Changed("output") && !cmd.Flags().Changed("output_file") && cfg.Output != "" {
		flagOutput = cfg.Output
	}
	if !cmd.Flags().Changed("fail-on") && cfg.FailOn != "" {
		flagFailOn = cfg.FailOn
	}
	if !cmd.Flags().Changed("all") && cfg.All {
		flagAll = true
	}
	if !cmd.Flags().Changed("timeout") && cfg.Timeout != "" {
		if d, err := time.ParseDuration(cfg.Timeout); err == nil {
			flagTimeout = d
		} else {
			log.Warnf("invalid timeout in config: %v", err)
		}
	}
	flagIgnore = append(flagIgnore, cfg.Ignore...)
}

func applyCIDefaults() {
	if flagCI {
		if flagFailOn == "" {
			flagFailOn = "medium"
		}
		flagNoColor = true
	}
	if os.Getenv("NO_COLOR") != "" {
		flagNoColor = true
	}
}

func parseSeverityFlag() (types.Severity, error) {
	if flagSeverity == "" {
		return types.SeverityInfo, nil
	}
	sev, err := types.ParseSeverity(flagSeverity)
	if err != nil {
		return 0, fmt.Errorf("invalid --severity: %w", err)
	}
	return sev, nil
}

func buildOptions(minSev types.Severity, log *zap.SugaredLogger) []deadcode.Option {
	opts := []deadcode.Option{
		deadcode.WithMinSeverity(minSev),
		deadcode.WithLogger(log),
	}
	if len(flagTools) > 0 {
		opts = append(opts, deadcode.WithTools(flagTools...))
	}
	if len(flagIgnore) > 0 {
		opts = append(opts, deadcode.WithIgnorePatterns(flagIgnore...))
	}
	if flagTimeout > 0 {
		opts = append(opts, deadcode.WithTimeout(flagTimeout))
	}
	if flagAll {
		opts = append(opts, deadcode.WithAllFindings())
	}
	return opts
}

func contextWithInterrupt() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}

// startSpinner animates on stderr while the analyzers run, but only when
// stderr is a terminal and debug logging is off.
func startSpinner() *output.Spinner {
	if flagDebug {
		return nil
	}
	info, err := os.Stderr.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return nil
	}
	s := output.NewSpinner(os.Stderr)
	s.Start("running analyzers...")
	return s
}

func writeOutput(report *types.Report) error {
	output.ToolVersion = Version

	formatter, err := output.ForName(flagFormat, flagNoColor, flagVerbose)
	if err != nil {
		return err
	}

	w := os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := formatter.Format(w, report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func notifyUpdate() {
	if res := update.CheckLatest(Version, "ShadowStrikeHQ/codeintel-dead-code-finder"); res != nil && res.NeedsUpdate() {
		fmt.Fprintf(os.Stderr, "\nA newer release is available: %s (current %s)\n  %s\n",
			res.Latest, res.Current, res.UpdateURL)
	}
}

// ErrThresholdExceeded signals findings at or above the --fail-on severity.
// The CLI exits 1 for this, 2 for everything else.
var ErrThresholdExceeded = errors.New("findings at or above the fail-on threshold")

func checkFailOnThreshold(report *types.Report) error {
	if flagFailOn == "" {
		return nil
	}
	threshold, err := types.ParseSeverity(flagFailOn)
	if err != nil {
		return fmt.Errorf("invalid --fail-on: %w", err)
	}
	for _, f := range report.Findings {
		if f.Severity >= threshold {
			return fmt.Errorf("%w: %s", ErrThresholdExceeded, strings.ToUpper(flagFailOn))
		}
	}
	return nil
}
