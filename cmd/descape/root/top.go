package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dungeonescape/internal/ui"
)

func newTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the best runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			runs, err := svc.Top(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Best Runs"))
			if len(runs) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No runs yet. Play one with `descape play`."))
				return nil
			}
			for i, run := range runs {
				fmt.Fprintf(out, "%2d. %s %s — %s | %s %d | %s %d | rooms %d | %s\n",
					i+1, ui.OutcomeIcon(run.Outcome), run.PlayerName,
					ui.OutcomeText(run.Outcome),
					ui.IconCoin, run.Coins,
					ui.IconSword, run.EnemiesDefeated,
					run.RoomsCleared,
					ui.Muted.Render(run.FinishedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "how many runs to show")
	return cmd
}
