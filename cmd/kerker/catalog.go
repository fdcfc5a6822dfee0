package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nathoo/kerker/loader"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage SQLite item and enemy catalogs",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <content-dir> <db>",
	Short: "Write the Lua item and enemy templates to a SQLite catalog",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := loader.Load(args[0])
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}
		if err := loader.ExportCatalog(cmd.Context(), args[1], defs); err != nil {
			return fmt.Errorf("exporting catalog: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items and %d enemies to %s\n",
			len(defs.Items), len(defs.Enemies), args[1])
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogExportCmd)
}
