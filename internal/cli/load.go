package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/slidium/internal/deck"
	"github.com/interpretive-systems/slidium/internal/prefs"
	"github.com/spf13/cobra"
)

const (
	debugEnv     = "SLIDIUM_DEBUG"
	debugLogFile = "slidium-debug.log"
)

// loadDeck reads the --deck file, or the built-in deck, and probes its
// chart images.
func loadDeck(ctx context.Context, cmd *cobra.Command) (*deck.Deck, error) {
	return readDeck(ctx, mustGetStringFlag(cmd.Root(), "deck"))
}

func readDeck(ctx context.Context, path string) (*deck.Deck, error) {
	d := deck.Default()
	if path != "" {
		var err error
		d, err = deck.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load deck: %w", err)
		}
	}
	if err := deck.Preload(ctx, d); err != nil {
		return nil, fmt.Errorf("preload deck: %w", err)
	}
	log.Printf("load: %q, %d slides", d.Title, d.Len())
	return d, nil
}

// loadPrefs reads the --config file, or the default preferences file.
// It returns the path so changes can be saved back.
func loadPrefs(cmd *cobra.Command) (prefs.Prefs, string, error) {
	path := mustGetStringFlag(cmd.Root(), "config")
	if path == "" {
		var err error
		path, err = prefs.DefaultPath()
		if err != nil {
			return prefs.Defaults(), "", nil
		}
	}
	p, err := prefs.Load(path)
	if err != nil {
		return p, path, fmt.Errorf("load prefs: %w", err)
	}
	return p, path, nil
}

// setupTUILogging keeps log output off the screen Bubble Tea draws on.
// With SLIDIUM_DEBUG set, logs go to that file ("1" picks a default name).
func setupTUILogging() (func(), error) {
	path := os.Getenv(debugEnv)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if path == "1" || path == "true" {
		path = debugLogFile
	}
	f, err := tea.LogToFile(path, "slidium")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { f.Close() }, nil
}
