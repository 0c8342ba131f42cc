package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write starter configuration files",
	Long:  `Scaffolds .deadcode.yml and .deadcodeignore in the target project.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, ".deadcode.yml"), configTemplate},
		{filepath.Join(dir, ".deadcodeignore"), ignoreTemplate},
	}

	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			fmt.Printf("  skip %s (already exists)\n", f.path)
			continue
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
		fmt.Printf("  create %s\n", f.path)
	}

	return nil
}

const configTemplate = `# codeintel-dead-code-finder configuration
# https://github.com/ShadowStrikeHQ/codeintel-dead-code-finder

# Analyzers to run: flake8, pylint, pyre-check (default: all)
# tools:
#   - flake8
#   - pylint

# Glob patterns suppressing findings by file path or symbol name
ignore:
  - ".venv/**"
  - "build/**"

# Minimum severity to report: high, medium, low, info
severity: info

# Exit with code 1 if findings at or above this severity
# fail_on: medium

# Output format: text, terminal, json, sarif, markdown, html
format: text

# Per-tool timeout
# timeout: 2m

# Keep every diagnostic, not only dead-code related codes
# all: true
`

const ignoreTemplate = `# codeintel-dead-code-finder ignore patterns
# Findings in matching files (or matching symbol names) are suppressed.

.venv/**
__pycache__/**
build/**
dist/**
*.egg-info/**

# Generated code
# **/migrations/**
`
