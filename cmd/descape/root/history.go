package root

import (
	"context"

	"github.com/spf13/cobra"

	"dungeonescape/internal/tui"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunHistory(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
