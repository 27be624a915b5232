package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"afish/internal/engine"
	"afish/internal/ui"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm", "release"},
		Short:   "Release a fish",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := svc.Release(args[0])
			if res == engine.NotFound {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" "+res.Message(args[0])))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" "+res.Message(args[0])))
			return svc.Save(ctx)
		},
	}

	return cmd
}
