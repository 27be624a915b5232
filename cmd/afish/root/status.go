package root

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"afish/internal/engine"
	"afish/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Draw the tank and hear from every fish",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, _, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	if svc.Fresh() {
		fmt.Fprintln(out, ui.Good.Render(ui.IconPlus+" A new tank, with a few fish to start."))
	}
	printTank(out, svc)
	return svc.Save(ctx)
}

func printTank(out io.Writer, svc *engine.Service) {
	tank := svc.Tank()
	lines := svc.Statuses()
	views := tank.Views()
	now := svc.Now()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sprites := make([]*ui.Sprite, 0, len(views))
	for _, v := range views {
		sprites = append(sprites, ui.NewSprite(v.Name, v.Art, v.Color, tank.Width(), tank.Height(), rng))
	}

	fmt.Fprintln(out, ui.Heading(ui.IconFish, "afish"))
	fmt.Fprintln(out, ui.RenderTank(tank.Width(), tank.Height(), sprites, tank.Waste() > engine.CleanThreshold))
	fmt.Fprintf(out, "%s  %s\n",
		ui.LabelValue("Fish", fmt.Sprintf("%d/%d", tank.Len(), tank.MaxFish())),
		ui.LabelValue("Waste", ui.WasteText(tank.Waste(), engine.CleanThreshold)),
	)
	fmt.Fprintln(out, "")

	if len(lines) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("The tank is empty. Try `afish add <name> --species Goldfish`."))
		return
	}
	for i, line := range lines {
		fmt.Fprintln(out, line)
		if i < len(views) {
			v := views[i]
			fmt.Fprintf(out, "   %s\n", ui.Muted.Render(fmt.Sprintf("hunger %s · %s · %s old · fed %s",
				ui.Meter(v.Hunger, 10), v.Mood, ui.Age(now.Add(-v.Age), now), ui.Ago(v.LastFed, now))))
		}
	}
}
