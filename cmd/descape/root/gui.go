package root

import (
	"context"

	"github.com/spf13/cobra"

	"dungeonescape/internal/gui"
)

func newGUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Play the dungeon in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return gui.Run(ctx, svc)
		},
	}

	return cmd
}
