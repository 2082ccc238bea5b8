package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tdl/internal/config"
	"tdl/internal/diag"
)

// settings is the fully resolved set of output/exit-code knobs for one
// command invocation. A project's .tdlrc.toml supplies the defaults;
// any CLI flag the user actually set on this invocation overrides it.
type settings struct {
	color          string
	maxDiagnostics int
	format         string
	failOn         string
}

// resolveSettings loads .tdlrc.toml starting from the directory holding
// path (falling back to Default() when none is found or path is empty),
// then layers explicitly-set persistent flags on top.
func resolveSettings(cmd *cobra.Command, path string) settings {
	startDir := "."
	if path != "" {
		startDir = filepath.Dir(path)
	}
	cfg, err := config.LoadOrDefault(startDir)
	if err != nil {
		cfg = config.Default()
	}

	s := settings{
		color:          cfg.Color,
		maxDiagnostics: cfg.MaxDiagnostics,
		format:         cfg.Format,
		failOn:         cfg.FailOn,
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		s.color, _ = flags.GetString("color")
	}
	if flags.Changed("max-diagnostics") {
		s.maxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	if flags.Changed("format") {
		s.format, _ = flags.GetString("format")
	}
	return s
}

// colorEnabled resolves a color mode string (auto|on|off) against
// whether stdout is a terminal.
func colorEnabled(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

// shouldFail decides whether bag's contents should produce a non-zero
// exit code under the given fail_on policy (error|warning|never).
func shouldFail(failOn string, bag *diag.Bag) bool {
	switch failOn {
	case "never":
		return false
	case "warning":
		return bag.HasErrors() || bag.HasWarnings()
	default:
		return bag.HasErrors()
	}
}
