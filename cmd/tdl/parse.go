package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tdl/internal/ast"
	"tdl/internal/diag"
	"tdl/internal/engine"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a TDL file and print its AST outline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		s := resolveSettings(cmd, args[0])
		quiet, _ := cmd.Flags().GetBool("quiet")

		res := engine.Analyze(string(content))
		printDocument(cmd, res.AST, quiet)

		bag := diag.NewBagWithLimit(s.maxDiagnostics)
		for _, d := range res.Diagnostics {
			if d.Rule == "" {
				bag.Add(d)
			}
		}
		for _, d := range bag.Items() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: error: %s\n", d.Span.String(), d.Message)
		}

		if shouldFail(s.failOn, bag) {
			os.Exit(1)
		}
		return nil
	},
}

func printDocument(cmd *cobra.Command, doc *ast.Document, quiet bool) {
	out := cmd.OutOrStdout()
	loc := func(sp fmt.Stringer) string {
		if quiet {
			return ""
		}
		return " (" + sp.String() + ")"
	}
	for _, n := range doc.Networks {
		fmt.Fprintf(out, "network %q%s\n", n.Name, loc(n.Span))
		for _, t := range n.Terminals {
			fmt.Fprintf(out, "  terminal %q%s\n", t.Name, loc(t.Span))
		}
		for _, net := range n.Nets {
			fmt.Fprintf(out, "  net %q%s\n", net.Name, loc(net.Span))
		}
		for _, sn := range n.Subnetworks {
			fmt.Fprintf(out, "  subnetwork %q%s\n", sn.Name, loc(sn.Span))
			for _, m := range sn.Members {
				fmt.Fprintf(out, "    member %q%s\n", m.Name, loc(m.Span))
			}
		}
		if n.Messages != nil {
			fmt.Fprintf(out, "  messages%s\n", loc(n.Messages.Span))
			for _, e := range n.Messages.Entries {
				fmt.Fprintf(out, "    %s%s\n", e.MessageID, loc(e.Span))
			}
		}
		if n.Filters != nil {
			fmt.Fprintf(out, "  filters%s\n", loc(n.Filters.Span))
		}
	}
}
