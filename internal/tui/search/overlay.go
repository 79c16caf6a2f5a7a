package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/slidium/internal/tui/ansi"
)

// RenderOverlay renders the search input and match status.
func (e *Engine) RenderOverlay(width int, dividerColor string) []string {
	if !e.active || width <= 0 {
		return nil
	}

	lines := make([]string, 0, 3)

	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color(dividerColor)).
		Render(strings.Repeat("─", width))
	lines = append(lines, divider)

	lines = append(lines, ansi.PadExact(e.InputView(), width))

	status := "Type to search slide titles, text and notes (esc: close)"
	if e.query != "" {
		if len(e.matches) == 0 {
			status = "No matching slides (esc: close)"
		} else {
			status = fmt.Sprintf(
				"Slide %d · match %d of %d  (enter/↓: next, ↑: prev, esc: close)",
				e.CurrentMatch()+1,
				e.CurrentMatchIndex(),
				e.MatchCount(),
			)
		}
	}

	statusStyled := lipgloss.NewStyle().Faint(true).Render(status)
	lines = append(lines, ansi.PadExact(statusStyled, width))

	return lines
}
