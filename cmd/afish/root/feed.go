package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"afish/internal/ui"
)

func newFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Feed every fish that is hungry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := svc.Feed()
			switch {
			case res.Total == 0:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("There are no fish to feed."))
			case res.Fed == 0:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(ui.IconFood+" Nobody is hungry yet."))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s %d of %d fish ate.", ui.IconFood, res.Fed, res.Total)))
			}
			return svc.Save(ctx)
		},
	}

	return cmd
}
