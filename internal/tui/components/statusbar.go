package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusBar manages the bottom status bar.
type StatusBar struct {
	message    string
	keyBuffer  string
	auto       string
	paused     bool
	fullscreen bool
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetMessage sets the transient status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// SetKeyBuffer updates the pending slide number display.
func (s *StatusBar) SetKeyBuffer(buf string) {
	s.keyBuffer = buf
}

// SetAutoAdvance shows the auto-advance interval; empty hides it.
func (s *StatusBar) SetAutoAdvance(label string) {
	s.auto = label
}

// SetPaused marks the presentation as paused (terminal unfocused).
func (s *StatusBar) SetPaused(p bool) {
	s.paused = p
}

// SetFullscreen marks whether the alternate screen is in use.
func (s *StatusBar) SetFullscreen(f bool) {
	s.fullscreen = f
}

// Render renders the status bar.
func (s *StatusBar) Render(width int) string {
	leftText := "?: help  a: auto  n: notes  /: search  q: quit"
	if s.keyBuffer != "" {
		leftText = "go to slide " + s.keyBuffer + "…"
	}
	if s.message != "" {
		leftText += "  |  " + s.message
	}

	var flags []string
	if s.auto != "" {
		flags = append(flags, "auto "+s.auto)
	}
	if s.paused {
		flags = append(flags, "paused")
	}
	if s.fullscreen {
		flags = append(flags, "fullscreen")
	}

	leftStyled := lipgloss.NewStyle().Faint(true).Render(leftText)
	right := lipgloss.NewStyle().Faint(true).Render(strings.Join(flags, " · "))

	// Ensure right part is always visible
	rightW := lipgloss.Width(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "…")
	}

	avail := width - rightW - 1
	leftRendered := leftStyled
	if lipgloss.Width(leftRendered) > avail {
		leftRendered = ansi.Truncate(leftRendered, avail, "…")
	} else if lipgloss.Width(leftRendered) < avail {
		leftRendered = leftRendered + strings.Repeat(" ", avail-lipgloss.Width(leftRendered))
	}

	return leftRendered + " " + right
}
