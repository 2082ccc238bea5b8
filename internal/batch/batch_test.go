package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tdl/internal/cache"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunAnalyzesEveryFileInOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.tdl", `network "A" { link: Link16 terminal "T" { role: NetControlStation } }`),
		writeFile(t, dir, "b.tdl", `network "B" { link: Link16 }`),
	}
	results, err := Run(context.Background(), paths, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Path != paths[0] || results[1].Path != paths[1] {
		t.Fatalf("expected results in input order, got %+v", results)
	}
	if !HasErrors(results) {
		t.Fatalf("expected b.tdl's missing NetControlStation to be reported as an error, got %+v", results)
	}
}

func TestRunUsesCacheOnSecondPass(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.tdl", `network "A" { link: Link16 terminal "T" { role: NetControlStation } }`)
	c, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: c}

	first, err := Run(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("expected the first pass to be a cache miss")
	}

	second, err := Run(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Fatal("expected the second pass to be a cache hit")
	}
}

func TestRunReportsUnreadableFile(t *testing.T) {
	results, err := Run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.tdl")}, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if results[0].ReadErr == nil {
		t.Fatal("expected a read error for a missing file")
	}
	if !HasErrors(results) {
		t.Fatal("expected HasErrors to report the read failure")
	}
}
