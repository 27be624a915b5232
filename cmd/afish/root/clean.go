package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"afish/internal/engine"
	"afish/internal/ui"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the tank if it needs it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if res := svc.Clean(); res == engine.Cleaned {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconClean+" "+res.String()))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(res.String()))
			}
			return svc.Save(ctx)
		},
	}

	return cmd
}
