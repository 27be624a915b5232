package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"afish/internal/ui"
)

const Version = "0.1.0"

// Persistent flags; empty values leave the config file in charge.
var (
	flagConfig   string
	flagSave     string
	flagStore    string
	flagLogLevel string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "afish",
		Short:         "afish — a fish tank that lives in your terminal",
		Long:          "afish keeps a small tank of ASCII fish. They get hungry while you are away; feed them, clean the tank and keep them happy.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStatus,
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (YAML)")
	pf.StringVar(&flagSave, "save", "", "Save file path (default: user config dir)")
	pf.StringVar(&flagStore, "store", "", "Save backend (json|sqlite)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(
		newStatusCmd(),
		newFeedCmd(),
		newCleanCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newCatalogCmd(),
		newExportCmd(),
		newBoardCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
