package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate, got %v", err)
	}
}

func TestLoadFillsOmittedFieldsFromDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(`color = "off"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Color != "off" {
		t.Fatalf("expected color to be overridden to off, got %q", cfg.Color)
	}
	if cfg.MaxDiagnostics != Default().MaxDiagnostics {
		t.Fatalf("expected max_diagnostics to fall back to default, got %d", cfg.MaxDiagnostics)
	}
}

func TestLoadRejectsInvalidFailOn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(`fail_on = "sideways"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an invalid fail_on value")
	}
}

func TestFindWalksUpToParentDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, fileName), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("expected to find config in an ancestor directory, got ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("expected config found in %q, got %q", root, path)
	}
}

func TestLoadOrDefaultFallsBackWhenAbsent(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected Default() when no config file exists, got %+v", cfg)
	}
}
