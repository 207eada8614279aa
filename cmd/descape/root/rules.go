package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"dungeonescape/internal/engine"
	"dungeonescape/internal/ui"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the game rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Rules"))
			fmt.Fprintln(cmd.OutOrStdout(), engine.Rules())
			return nil
		},
	}

	return cmd
}
