package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"photostrip/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the output directory and caption font are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			results := preflight.RunAll(cmd.Context(), cfg)
			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, line := range checkLines(results, colorize) {
				fmt.Fprintln(out, line)
			}

			if failed := preflight.Failed(results); failed > 0 {
				return fmt.Errorf("%d preflight %s failed", failed, english.PluralWord(failed, "check", ""))
			}
			return nil
		},
	}
}

// checkLines renders a summary line followed by one line per result.
func checkLines(results []preflight.Result, colorize bool) []string {
	lines := make([]string, 0, len(results)+1)
	failed := preflight.Failed(results)

	var names []string
	for _, r := range results {
		if !r.Passed {
			names = append(names, strings.ToLower(r.Name))
		}
	}
	summary := fmt.Sprintf("%s passed", english.Plural(len(results), "check", ""))
	if failed > 0 {
		summary = "problems with " + english.WordSeries(names, "and")
	}
	lines = append(lines, renderStatusLine("Summary", stateFor(failed == 0), summary, colorize))

	for _, r := range results {
		lines = append(lines, renderStatusLine(r.Name, stateFor(r.Passed), r.Detail, colorize))
	}
	return lines
}
