package root

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"afish/internal/export"
)

func newExportCmd() *cobra.Command {
	var outPath string
	var appendTo bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a CSV status report, one row per fish",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rows := export.Rows(svc.Tank().Views(), svc.Now())
			if outPath == "" {
				return export.Write(cmd.OutOrStdout(), rows, true)
			}

			var w io.WriteCloser
			header := true
			if appendTo {
				if st, err := os.Stat(outPath); err == nil && st.Size() > 0 {
					header = false
				}
				w, err = os.OpenFile(outPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			} else {
				w, err = os.Create(outPath)
			}
			if err != nil {
				return fmt.Errorf("open report: %w", err)
			}
			if err := export.Write(w, rows, header); err != nil {
				_ = w.Close()
				return err
			}
			return w.Close()
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&appendTo, "append", false, "Append rows to an existing report")

	return cmd
}
