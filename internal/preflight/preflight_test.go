package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"photostrip/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckOutputDirectory_WillBeCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")
	result := CheckOutputDirectory("Output directory", path)
	if !result.Passed {
		t.Fatalf("expected pass for creatable dir, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "will be created") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckOutputDirectory_BlockedByFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckOutputDirectory("Output directory", filepath.Join(f, "sub"))
	if result.Passed {
		t.Fatal("expected failure when an ancestor is a file")
	}
}

func TestCheckOutputDirectory_Empty(t *testing.T) {
	if result := CheckOutputDirectory("Output directory", ""); result.Passed {
		t.Fatal("expected failure for empty path")
	}
}

func TestCheckFont(t *testing.T) {
	ctx := context.Background()
	if result := CheckFont(ctx, "Caption font", ""); !result.Passed || result.Detail != "embedded Go Bold" {
		t.Fatalf("expected embedded font to pass, got %+v", result)
	}

	path := testsupport.WriteFont(t, filepath.Join(t.TempDir(), "font.ttf"))
	if result := CheckFont(ctx, "Caption font", path); !result.Passed {
		t.Fatalf("expected font file to pass, got %+v", result)
	}

	bad := testsupport.WriteFile(t, filepath.Join(t.TempDir(), "bad.ttf"), 32)
	if result := CheckFont(ctx, "Caption font", bad); result.Passed {
		t.Fatal("expected unparsable font to fail")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil); results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	results := RunAll(context.Background(), cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
	if Failed(results) != 0 {
		t.Fatalf("expected no failures")
	}

	cfg = testsupport.NewConfig(t, testsupport.WithoutLogDir())
	cfg.Caption.FontPath = filepath.Join(t.TempDir(), "missing.ttf")
	results = RunAll(context.Background(), cfg)
	if len(results) != 2 {
		t.Fatalf("expected 2 results without log dir, got %d", len(results))
	}
	if Failed(results) != 1 {
		t.Fatalf("expected font failure, got %+v", results)
	}
}
