package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/interpretive-systems/slidium/internal/deck"
	"github.com/interpretive-systems/slidium/internal/prefs"
	"github.com/interpretive-systems/slidium/internal/tui/components"
)

// PageBreak separates printed slides.
const PageBreak = "\f"

// RenderStatic writes every slide of d in order, one page per slide.
// Notes, progress and the help and auto-advance buttons are left out and
// every element is drawn at rest.
func RenderStatic(w io.Writer, d *deck.Deck, width int, p prefs.Prefs) error {
	if width < 20 {
		width = 20
	}
	theme := GetTheme(p.Theme)
	mdStyle := p.MarkdownStyle
	if mdStyle == "" {
		mdStyle = theme.MarkdownStyle
	}
	view := components.NewSlideView(theme.slideStyles(), mdStyle)
	view.SetSize(width, 1)

	bw := bufio.NewWriter(w)
	for i, slide := range d.Slides {
		if i > 0 {
			fmt.Fprintln(bw, PageBreak)
		}
		header := fmt.Sprintf("%s  %d / %d", d.Title, i+1, d.Len())
		fmt.Fprintln(bw, strings.TrimSpace(header))
		fmt.Fprintln(bw, strings.Repeat("─", width))
		for _, line := range view.Lines(slide, components.BuildOptions{}) {
			fmt.Fprintln(bw, strings.TrimRight(line, " "))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write print output: %w", err)
	}
	return nil
}
