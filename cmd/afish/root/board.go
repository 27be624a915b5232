package root

import (
	"context"

	"github.com/spf13/cobra"

	"afish/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Watch the tank swim (interactive)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := tui.RunBoard(ctx, svc, cmd.OutOrStdout(), cfg.Board.Tick()); err != nil {
				return err
			}
			return svc.Save(ctx)
		},
	}

	return cmd
}
