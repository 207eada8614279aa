package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dungeonescape/internal/ui"
)

const Version = "0.1.0"

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "descape",
	Short:         "Dungeon Escape — a five-room dungeon crawler",
	Long:          "Dungeon Escape is a single-player dungeon crawler: five rooms, ten moves, one way out. Play it in the console or in a window; finished runs land in a local history.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the run-history database (default ~/.dungeonescape.db, or $DESCAPE_DB)")

	rootCmd.AddCommand(
		newPlayCmd(),
		newGUICmd(),
		newRulesCmd(),
		newHistoryCmd(),
		newTopCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
