package main

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Caption font", stateFailed, "missing", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Caption font:", "[ERROR] missing")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Output directory", statePassed, "ready", true)
	if !strings.HasPrefix(got, statePassed.color) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestRenderStatusLineWithoutDetail(t *testing.T) {
	got := renderStatusLine("Log directory", stateFor(true), "", false)
	if !strings.HasSuffix(got, "[OK]") {
		t.Fatalf("expected bare state, got %q", got)
	}
	if stateFor(false) != stateFailed {
		t.Fatal("expected failed state for false")
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" Preflight ", false)
	if lines[0] != "== Preflight ==" || lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected header %q", lines)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestRenderTableFillsShortRows(t *testing.T) {
	out := renderTable(tableSpec{
		Headers: []string{"Photo", "Size"},
		Rows:    [][]string{{"First"}},
		Aligns:  []columnAlignment{alignLeft, alignRight},
	})
	requireContains(t, out, "First")
	if renderTable(tableSpec{}) != "" {
		t.Fatal("expected empty output without headers")
	}
}
