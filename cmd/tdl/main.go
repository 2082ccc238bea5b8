// Command tdl is the TDL language toolchain: tokenize, parse, validate,
// lint, browse, and query the static spec tables.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tdl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tdl",
	Short: "Tactical Data Link network topology toolchain",
	Long:  `tdl lexes, parses, and validates TDL network topology configurations for Link 16 and Link 22.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(specdbCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("format", "pretty", "output format (pretty|json)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
