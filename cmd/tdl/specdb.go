package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tdl/internal/specdb"
)

var specdbCmd = &cobra.Command{
	Use:   "specdb",
	Short: "Query the static spec tables the validator cross-references",
}

var specdbNPGCmd = &cobra.Command{
	Use:   "npg <id>",
	Short: "Print one NPG record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, ok := specdb.NPGByID(args[0])
		if !ok {
			return fmt.Errorf("specdb: unknown NPG id %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (number %d)\n%s\nvalid messages: %v\n%s\n",
			n.ID, n.Name, n.Number, n.Description, n.ValidMessages, n.SpecRef)
		return nil
	},
}

var specdbJMessageCmd = &cobra.Command{
	Use:   "jmessage <id>",
	Short: "Print one J-message record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, ok := specdb.JMessageByID(args[0])
		if !ok {
			return fmt.Errorf("specdb: unknown J-message id %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n%s\nfields: %v\nvalid NPGs: %v\n%s\n",
			m.ID, m.Name, m.FunctionalArea, m.Description, m.Fields, m.ValidNPGs, m.SpecRef)
		return nil
	},
}

var specdbClassificationCmd = &cobra.Command{
	Use:   "classification",
	Short: "List declared classification levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range specdb.ClassificationLevels() {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	specdbCmd.AddCommand(specdbNPGCmd, specdbJMessageCmd, specdbClassificationCmd)
}
