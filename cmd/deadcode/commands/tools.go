package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/parse"
	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/runner"
)

var flagCodes bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Show supported analyzers, their availability, and versions",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().BoolVar(&flagCodes, "codes", false, "Also list the dead-code diagnostic codes kept per tool")
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	statuses := runner.Probe(context.Background(), nil)
	w := cmd.OutOrStdout()

	if strings.ToLower(flagFormat) == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "TOOL\tBINARY\tAVAILABLE\tVERSION\n")
	fmt.Fprintf(tw, "----\t------\t---------\t-------\n")
	available := 0
	for _, st := range statuses {
		avail := "no"
		if st.Available {
			avail = "yes"
			available++
		}
		version := st.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", st.Tool, st.Binary, avail, version)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d/%d analyzers available\n", available, len(statuses))

	if flagCodes {
		printCodes(w)
	}
	return nil
}

func printCodes(w interface{ Write([]byte) (int, error) }) {
	for _, tool := range runner.Names() {
		codes := parse.DeadCodeCodes(tool)
		if codes == nil {
			fmt.Fprintf(w, "\n%s: all reported errors are kept\n", tool)
			continue
		}
		ids := make([]string, 0, len(codes))
		for id := range codes {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Fprintf(w, "\n%s:\n", tool)
		for _, id := range ids {
			fmt.Fprintf(w, "  %-6s %s\n", id, codes[id])
		}
	}
}
