package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ShortcutReference is the static shortcut text shown by the help button.
var ShortcutReference = []string{
	"• Arrow Keys / Space: Navigate slides",
	"• Home: First slide",
	"• End: Last slide",
	"• F5: Toggle fullscreen",
	"• Esc: Exit fullscreen",
	"• Swipe: Drag left/right with the mouse",
}

var _ Overlay = (*Help)(nil)

// Help shows the keyboard shortcut reference.
type Help struct {
	visible bool
	keys    help.KeyMap
	model   help.Model
}

// NewHelp creates a hidden help widget listing keys.
func NewHelp(keys help.KeyMap) *Help {
	m := help.New()
	m.ShowAll = true
	return &Help{keys: keys, model: m}
}

// Visible reports whether help is shown.
func (h *Help) Visible() bool { return h.visible }

// Toggle shows or hides help.
func (h *Help) Toggle() { h.visible = !h.visible }

// HandleKey closes help on ? or esc and lets q through.
func (h *Help) HandleKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "?", "esc":
		h.visible = false
		return ActionClose
	case "q", "ctrl+c":
		return ActionPassThrough
	}
	return ActionContinue
}

// RenderOverlay renders the shortcut reference.
func (h *Help) RenderOverlay(width int) []string {
	if !h.visible {
		return nil
	}
	h.model.Width = width
	title := lipgloss.NewStyle().Bold(true).Render("Keyboard Shortcuts — press ? or Esc to close")

	lines := make([]string, 0, 16)
	lines = append(lines, strings.Repeat("─", width))
	lines = append(lines, title)
	lines = append(lines, ShortcutReference...)
	lines = append(lines, "")
	lines = append(lines, strings.Split(h.model.View(h.keys), "\n")...)
	return lines
}
