// Package config reads the CLI's project-local ".tdlrc.toml" file. Config
// is a CLI/host convenience layer: it tunes how results are presented and
// when a command exits non-zero, but it never changes engine semantics.
// internal/engine never imports this package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const fileName = ".tdlrc.toml"

// Config is the decoded shape of a .tdlrc.toml file.
type Config struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Color          string `toml:"color"`
	FailOn         string `toml:"fail_on"`
	Format         string `toml:"format"`
}

// Default returns the configuration used when no .tdlrc.toml is found.
func Default() Config {
	return Config{
		MaxDiagnostics: 100,
		Color:          "auto",
		FailOn:         "error",
		Format:         "pretty",
	}
}

// Find walks upward from startDir looking for a .tdlrc.toml file, stopping
// at the filesystem root.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("config: resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, fileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("config: stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load reads and decodes the .tdlrc.toml at path, filling any field the
// file omits from Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault locates and loads .tdlrc.toml starting from startDir,
// returning Default() unchanged when no file is found.
func LoadOrDefault(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate reports an error for a field whose value isn't one this CLI
// recognizes, so a typo in .tdlrc.toml fails fast instead of silently
// behaving like the default.
func (c Config) Validate() error {
	switch strings.ToLower(c.Color) {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid color %q (must be auto, on, or off)", c.Color)
	}
	switch strings.ToLower(c.FailOn) {
	case "error", "warning", "never":
	default:
		return fmt.Errorf("invalid fail_on %q (must be error, warning, or never)", c.FailOn)
	}
	switch strings.ToLower(c.Format) {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid format %q (must be pretty or json)", c.Format)
	}
	if c.MaxDiagnostics <= 0 {
		return fmt.Errorf("max_diagnostics must be positive, got %d", c.MaxDiagnostics)
	}
	return nil
}

// Write serializes cfg as TOML to path, used by `tdl init` to scaffold a
// starter .tdlrc.toml.
func Write(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %q: %w", path, err)
	}
	defer f.Close()
	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}
