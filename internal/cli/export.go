package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/interpretive-systems/slidium/internal/deck"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the slide data as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			out := mustGetStringFlag(cmd, "out")
			return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return deck.WriteJSON(w, d)
			})
		},
	}
	cmd.Flags().StringP("out", "o", "-", "Output file (- for stdout)")
	return cmd
}

// writeOutput runs write against stdout or the named file.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
