package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rows above the slide content: progress, header, rule, nav strip, rule.
const (
	progressRow = 0
	headerRow   = 1
	navRow      = 3
	headerRows  = 5
)

// Layout manages screen layout calculations.
type Layout struct {
	width  int
	height int
}

// NewLayout creates a new layout manager.
func NewLayout() *Layout {
	return &Layout{}
}

// SetSize updates the layout dimensions.
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the total width.
func (l *Layout) Width() int {
	return l.width
}

// Height returns the total height.
func (l *Layout) Height() int {
	return l.height
}

// ContentTop returns the screen row of the first slide content line.
func (l *Layout) ContentTop() int {
	return headerRows
}

// ContentHeight returns the height available for slide content.
func (l *Layout) ContentHeight(extraRows int) int {
	// header rows + bottom rule + bottom bar + notes/overlays
	h := l.height - headerRows - 2 - extraRows
	if h < 1 {
		h = 1
	}
	return h
}

// RenderFrame renders the whole screen.
func (l *Layout) RenderFrame(
	progressBar, topLeft, topRight, navStrip string,
	content, below []string,
	bottomBar string,
	theme Theme,
) string {
	var b strings.Builder
	hr := theme.DividerText(strings.Repeat("─", l.width))

	b.WriteString(padToWidth(progressBar, l.width))
	b.WriteByte('\n')
	b.WriteString(l.renderTopBar(topLeft, topRight))
	b.WriteByte('\n')
	b.WriteString(hr)
	b.WriteByte('\n')
	b.WriteString(padToWidth(navStrip, l.width))
	b.WriteByte('\n')
	b.WriteString(hr)

	for _, line := range content {
		b.WriteByte('\n')
		b.WriteString(padToWidth(line, l.width))
	}

	// Notes and overlays
	for _, line := range below {
		b.WriteByte('\n')
		b.WriteString(padToWidth(line, l.width))
	}

	b.WriteByte('\n')
	b.WriteString(hr)
	b.WriteByte('\n')
	b.WriteString(bottomBar)

	return b.String()
}

func (l *Layout) renderTopBar(left, right string) string {
	rightW := lipgloss.Width(right)
	if rightW >= l.width {
		return ansi.Truncate(right, l.width, "…")
	}

	avail := l.width - rightW - 1
	if lipgloss.Width(left) > avail {
		left = ansi.Truncate(left, avail, "…")
	} else if lipgloss.Width(left) < avail {
		left = left + strings.Repeat(" ", avail-lipgloss.Width(left))
	}

	return left + " " + right
}

// fitLines pads or cuts lines to exactly n entries.
func fitLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

func padToWidth(s string, w int) string {
	width := lipgloss.Width(s)
	if width == w {
		return s
	}
	if width < w {
		return s + strings.Repeat(" ", w-width)
	}
	return ansi.Truncate(s, w, "…")
}
