package preflight

import (
	"context"

	"photostrip/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckOutputDirectory("Output directory", cfg.Output.Dir),
		CheckFont(ctx, "Caption font", cfg.Caption.FontPath),
	}

	if cfg.Logging.Dir != "" {
		results = append(results, CheckOutputDirectory("Log directory", cfg.Logging.Dir))
	}

	return results
}

// Failed counts results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
