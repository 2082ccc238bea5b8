package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tdl/internal/engine"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Print the token stream for a TDL file, including trivia",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("tokenize: %w", err)
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		for _, t := range engine.Tokenize(string(content)) {
			if quiet && t.Kind.IsTrivia() {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-11s %q\n", t.Span.String(), t.Kind.String(), t.Text)
		}
		return nil
	},
}
