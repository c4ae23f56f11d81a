package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// checkState is the outcome shown in a status line.
type checkState struct {
	label string
	color string
}

var (
	statePassed = checkState{label: "OK", color: "\x1b[32m"}
	stateFailed = checkState{label: "ERROR", color: "\x1b[31m"}
)

const (
	ansiReset   = "\x1b[0m"
	ansiHeading = "\x1b[34m"

	statusLabelWidth = 20
	statusIndent     = "  "
)

func stateFor(passed bool) checkState {
	if passed {
		return statePassed
	}
	return stateFailed
}

// renderStatusLine formats "  <label>: [OK] detail", padded so the states of
// consecutive lines align.
func renderStatusLine(label string, state checkState, detail string, colorize bool) string {
	status := "[" + state.label + "]"
	if detail != "" {
		status += " " + detail
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", status)
	if colorize {
		return state.color + line + ansiReset
	}
	return line
}

func renderSectionHeader(title string, colorize bool) []string {
	heading := "== " + strings.TrimSpace(title) + " =="
	rule := strings.Repeat("-", len(heading))
	if !colorize {
		return []string{heading, rule}
	}
	return []string{ansiHeading + heading + ansiReset, ansiHeading + rule + ansiReset}
}

func shouldColorize(w io.Writer) bool {
	return isTerminal(w)
}

// isTerminal reports whether stream is an *os.File attached to a terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
