package cli

import (
	"io"

	"github.com/interpretive-systems/slidium/internal/tui"
	"github.com/spf13/cobra"
)

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Write every slide as static text, one page per slide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadPrefs(cmd)
			if err != nil {
				return err
			}
			d, err := loadDeck(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			width, _ := cmd.Flags().GetInt("width")
			out := mustGetStringFlag(cmd, "out")
			return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return tui.RenderStatic(w, d, width, p)
			})
		},
	}
	cmd.Flags().Int("width", 80, "Page width in columns")
	cmd.Flags().StringP("out", "o", "-", "Output file (- for stdout)")
	return cmd
}
