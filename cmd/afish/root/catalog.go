package root

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"afish/internal/catalog"
	"afish/internal/ui"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the species and personalities you can adopt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.Catalog.Species, cfg.Catalog.Personalities)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			now := time.Now()
			fmt.Fprintln(out, ui.Heading(ui.IconBook, "Species"))
			for _, name := range cat.SpeciesNames() {
				s, _ := cat.Species(name)
				fmt.Fprintf(out, "- %s %s %s\n",
					ui.Key.Render(name),
					strings.Join(s.Art, " → "),
					ui.Muted.Render("(hungry after "+ui.Age(now.Add(-s.HungerTime), now)+")"),
				)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Heading(ui.IconBook, "Personalities"))
			for _, name := range cat.PersonalityNames() {
				fmt.Fprintf(out, "- %s\n", ui.Key.Render(name))
			}
			return nil
		},
	}

	return cmd
}
