package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tdl/internal/batch"
	"tdl/internal/cache"
	"tdl/internal/diag"
	"tdl/internal/diagfmt"
	"tdl/internal/ui"
)

var lintCacheDir string

func init() {
	lintCmd.Flags().StringVar(&lintCacheDir, "cache-dir", "", "skip re-analysis of unchanged files using a disk cache at this path")
	lintCmd.Flags().Bool("progress", false, "show an interactive progress view while linting")
}

var lintCmd = &cobra.Command{
	Use:   "lint <file...>",
	Short: "Analyze multiple TDL files concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := batch.Options{}
		if lintCacheDir != "" {
			c, err := cache.Open(lintCacheDir)
			if err != nil {
				return fmt.Errorf("lint: %w", err)
			}
			opts.Cache = c
		}

		showProgress, _ := cmd.Flags().GetBool("progress")
		var program *tea.Program
		if showProgress && isTerminal(os.Stdout) {
			events := make(chan batch.Event)
			opts.Events = events
			program = tea.NewProgram(ui.NewProgressModel("linting", args, events))
			go func() {
				_, _ = program.Run()
			}()
		}

		results, err := batch.Run(context.Background(), args, opts)
		if err != nil {
			return fmt.Errorf("lint: %w", err)
		}
		// batch.Run already closed opts.Events, which drives the progress
		// program to quit itself via its doneMsg handler.

		s := resolveSettings(cmd, args[0])
		quiet, _ := cmd.Flags().GetBool("quiet")

		readErr := false
		overall := diag.NewBag()
		for _, r := range results {
			if r.ReadErr != nil {
				readErr = true
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.ReadErr)
				continue
			}
			bag := diag.NewBagWithLimit(s.maxDiagnostics)
			for _, d := range r.Diagnostics {
				bag.Add(d)
				overall.Add(d)
			}
			bag.Sort()
			if bag.Len() == 0 {
				continue
			}
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", r.Path)
			}
			if s.format == "json" {
				if err := diagfmt.JSON(cmd.OutOrStdout(), bag); err != nil {
					return err
				}
			} else {
				diagfmt.Pretty(cmd.OutOrStdout(), bag, nil, diagfmt.Options{Color: colorEnabled(s.color)})
			}
		}

		if readErr || shouldFail(s.failOn, overall) {
			os.Exit(1)
		}
		return nil
	},
	SilenceUsage: true,
}
