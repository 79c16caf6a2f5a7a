package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// WrapLines word-wraps each line to width, preserving ANSI codes.
func WrapLines(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	result := make([]string, 0, len(lines)*2)
	for _, line := range lines {
		wrapped := ansi.Wrap(line, width, "")
		result = append(result, strings.Split(wrapped, "\n")...)
	}
	return result
}
