package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/slidium/internal/deck"
	"github.com/interpretive-systems/slidium/internal/prefs"
)

const frameInterval = time.Second / 30

var clipboardWrite = clipboard.WriteAll

// frameTick schedules the next animation frame.
func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// savePrefs persists p to path.
func savePrefs(path string, p prefs.Prefs) tea.Cmd {
	return func() tea.Msg {
		return prefsSavedMsg{err: prefs.Save(path, p)}
	}
}

// waitForDeckChange blocks until changes fires. A nil channel disables it.
func waitForDeckChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		<-changes
		return deckChangedMsg{}
	}
}

// reloadDeck loads the deck again in the background.
func reloadDeck(load func() (*deck.Deck, error)) tea.Cmd {
	return func() tea.Msg {
		d, err := load()
		return deckLoadedMsg{deck: d, err: err}
	}
}

// copySlide puts the text of slide n (1-based) on the system clipboard.
func copySlide(n int, text string) tea.Cmd {
	return func() tea.Msg {
		return slideCopiedMsg{slide: n, err: clipboardWrite(text)}
	}
}
