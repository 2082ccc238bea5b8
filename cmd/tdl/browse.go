package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tdl/internal/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse <file>",
	Short: "Interactively browse a file's tokens, AST outline, and diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("browse: %w", err)
		}
		model := browse.New(args[0], string(content))
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}
