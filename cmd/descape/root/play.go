package root

import (
	"context"

	"github.com/spf13/cobra"

	"dungeonescape/internal/console"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the dungeon in the console",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return console.Run(ctx, svc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	return cmd
}
