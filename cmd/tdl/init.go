package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tdl/internal/config"
)

const starterNetwork = `network "Example" {
  link: Link16
  classification: UNCLASSIFIED

  terminal "Alpha" {
    role: NetControlStation
    track_number: 1
  }
}
`

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a .tdlrc.toml and a starter .tdl file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		cfgPath := filepath.Join(dir, ".tdlrc.toml")
		if _, err := os.Stat(cfgPath); err == nil {
			return fmt.Errorf("init: %s already exists", cfgPath)
		}
		if err := config.Write(cfgPath, config.Default()); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		netPath := filepath.Join(dir, "example.tdl")
		if _, err := os.Stat(netPath); err == nil {
			return fmt.Errorf("init: %s already exists", netPath)
		}
		if err := os.WriteFile(netPath, []byte(starterNetwork), 0o644); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", cfgPath, netPath)
		return nil
	},
}
