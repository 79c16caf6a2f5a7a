package deck

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// SlideData is the exported form of a slide.
type SlideData struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Notes   string `json:"notes"`
}

// Export flattens the deck into per-slide text records.
func Export(d *Deck) []SlideData {
	out := make([]SlideData, 0, d.Len())
	for i, s := range d.Slides {
		title := strings.TrimSpace(s.Title)
		if title == "" {
			title = fmt.Sprintf("Slide %d", i+1)
		}
		out = append(out, SlideData{
			Index:   i + 1,
			Title:   title,
			Content: strings.TrimSpace(s.PlainText()),
			Notes:   strings.TrimSpace(s.Notes),
		})
	}
	return out
}

// WriteJSON writes the exported deck as indented JSON.
func WriteJSON(w io.Writer, d *Deck) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export(d)); err != nil {
		return fmt.Errorf("encode slides: %w", err)
	}
	return nil
}
