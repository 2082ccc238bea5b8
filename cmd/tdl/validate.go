package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tdl/internal/diag"
	"tdl/internal/diagfmt"
	"tdl/internal/engine"
	"tdl/internal/source"
)

var validateCmd = &cobra.Command{
	Use:     "validate <file>",
	Aliases: []string{"diag"},
	Short:   "Run the full lex/parse/validate pipeline and print diagnostics",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		s := resolveSettings(cmd, args[0])
		quiet, _ := cmd.Flags().GetBool("quiet")

		res := engine.Analyze(string(content))
		bag := diag.NewBagWithLimit(s.maxDiagnostics)
		for _, d := range res.Diagnostics {
			bag.Add(d)
		}
		bag.Sort()

		if s.format == "json" {
			if err := diagfmt.JSON(cmd.OutOrStdout(), bag); err != nil {
				return err
			}
		} else {
			file := source.NewFile(args[0], string(content))
			diagfmt.Pretty(cmd.OutOrStdout(), bag, file, diagfmt.Options{
				Color:   colorEnabled(s.color),
				Context: !quiet,
			})
		}

		if shouldFail(s.failOn, bag) {
			os.Exit(1)
		}
		return nil
	},
	SilenceUsage: true,
}
