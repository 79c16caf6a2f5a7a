package tui

import "github.com/interpretive-systems/slidium/internal/deck"

// frameMsg advances running slide animations.
type frameMsg struct{}

// prefsSavedMsg reports the result of persisting preferences.
type prefsSavedMsg struct {
	err error
}

// deckChangedMsg reports that the deck file was written.
type deckChangedMsg struct{}

// deckLoadedMsg carries the result of reloading the deck.
type deckLoadedMsg struct {
	deck *deck.Deck
	err  error
}

// slideCopiedMsg reports the result of copying a slide's text.
type slideCopiedMsg struct {
	slide int
	err   error
}
