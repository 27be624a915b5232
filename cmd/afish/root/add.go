package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"afish/internal/catalog"
	"afish/internal/ui"
)

func newAddCmd() *cobra.Command {
	var species string
	var personality string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Adopt a new fish",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if species == "" {
				return errors.New("--species is required (see `afish catalog`)")
			}
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			f, err := svc.Adopt(args[0], species, personality)
			var nf catalog.NotFoundError
			if errors.As(err, &nf) {
				return fmt.Errorf("no %s called %q; `afish catalog` lists them", nf.Kind, nf.Key)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Welcome, %s!", ui.IconPlus, f.Name())))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Species", f.Species().Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Personality", f.Personality().Name))
			return svc.Save(ctx)
		},
	}

	cmd.Flags().StringVarP(&species, "species", "s", "", "Species (see `afish catalog`)")
	cmd.Flags().StringVarP(&personality, "personality", "p", "", "Personality (random when empty)")

	return cmd
}
