package widgets

import tea "github.com/charmbracelet/bubbletea"

// Action represents what the widget wants the parent to do with a key.
type Action int

const (
	ActionContinue    Action = iota // Key consumed, widget stays open
	ActionClose                     // Key consumed, widget closed
	ActionPassThrough               // Key not handled, parent processes it
)

// Overlay is a widget drawn in the overlay area above the bottom bar.
type Overlay interface {
	// Visible reports whether the overlay is currently shown.
	Visible() bool

	// HandleKey processes keyboard input while visible.
	HandleKey(msg tea.KeyMsg) Action

	// RenderOverlay returns the overlay lines.
	RenderOverlay(width int) []string
}
