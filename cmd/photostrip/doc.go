// Package main hosts the photostrip CLI entrypoint and command graph.
//
// The Cobra-based command tree covers composing a strip (compose), dry-run
// inspection of four photos (inspect), environment checks (check), and
// configuration scaffolding (config). Configuration resolution and logger
// construction live here so subcommands only translate flags into calls on
// the internal packages.
package main
