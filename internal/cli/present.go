package cli

import (
	"errors"
	"fmt"

	"github.com/interpretive-systems/slidium/internal/deck"
	"github.com/interpretive-systems/slidium/internal/tui"
	"github.com/interpretive-systems/slidium/internal/watch"
	"github.com/spf13/cobra"
)

var errWatchNeedsDeck = errors.New("--watch needs a --deck file")

func newPresentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "present",
		Short: "Open the presenter (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupTUILogging()
			if err != nil {
				return err
			}
			defer closeLog()

			p, prefsPath, err := loadPrefs(cmd)
			if err != nil {
				return err
			}
			d, err := loadDeck(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			auto, _ := cmd.Flags().GetDuration("auto-advance")
			noAlt, _ := cmd.Flags().GetBool("no-alt-screen")

			opts := tui.Options{
				Deck:                d,
				Prefs:               p,
				PrefsPath:           prefsPath,
				AutoAdvance:         auto > 0,
				AutoAdvanceInterval: auto,
				AltScreen:           p.UseAltScreen() && !noAlt,
			}

			if watching, _ := cmd.Flags().GetBool("watch"); watching {
				path := mustGetStringFlag(cmd.Root(), "deck")
				if path == "" {
					return errWatchNeedsDeck
				}
				w, err := watch.New(path, 0)
				if err != nil {
					return fmt.Errorf("watch deck: %w", err)
				}
				defer w.Close()
				ctx := cmd.Context()
				opts.Changes = w.Changes()
				opts.Reload = func() (*deck.Deck, error) {
					return readDeck(ctx, path)
				}
			}

			return tui.Run(opts)
		},
	}
	cmd.Flags().Duration("auto-advance", 0, "Start auto-advance with this interval (e.g. 30s)")
	cmd.Flags().Bool("no-alt-screen", false, "Draw inline instead of on the alternate screen")
	cmd.Flags().Bool("watch", false, "Reload the deck file when it changes on disk")
	return cmd
}
