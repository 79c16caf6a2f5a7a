package ansi

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PadExact pads s with spaces to exactly w columns, truncating with an
// ellipsis when it is wider.
func PadExact(s string, w int) string {
	if w <= 0 {
		return ""
	}
	vw := lipgloss.Width(s)
	switch {
	case vw == w:
		return s
	case vw < w:
		return s + strings.Repeat(" ", w-vw)
	default:
		return ansi.Truncate(s, w, "…")
	}
}

// Indent shifts s right by n columns. Negative n drops up to -n leading
// columns instead.
func Indent(s string, n int) string {
	if n > 0 {
		return strings.Repeat(" ", n) + s
	}
	if n < 0 {
		return ansi.TruncateLeft(s, -n, "")
	}
	return s
}

// Blank returns a run of spaces as wide as s.
func Blank(s string) string {
	return strings.Repeat(" ", lipgloss.Width(s))
}
