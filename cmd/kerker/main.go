// Kerker is a turn-based text adventure: explore rooms, fight wandering
// enemies and collect loot, from content defined in Lua, XML and SQLite.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "kerker [content-dir]",
	Short: "A turn-based dungeon text adventure",
	Long: `Kerker loads a dungeon from a content directory of Lua files, optionally
replacing its rooms with an XML layout and its catalog with a SQLite database,
and lets you play it in a terminal UI or a plain line-based console.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kerker %s (commit %s, built %s)\n", version, commit, date)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	addPlayFlags(rootCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}
