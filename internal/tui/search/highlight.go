package search

import (
	"strings"
	"unicode/utf8"

	"github.com/interpretive-systems/slidium/internal/tui/ansi"
)

const (
	// black on bright white
	matchStartSeq = "\x1b[30;107m"
	// black on yellow
	currentMatchStartSeq = "\x1b[30;43m"
	matchEndSeq          = "\x1b[0m"
)

// span is a half-open range of visible runes.
type span struct{ from, to int }

// HighlightLines marks every case-insensitive occurrence of query in lines.
// The first line holding a match is drawn in the current-match colour.
func HighlightLines(lines []string, query string) []string {
	needle := []rune(query)
	if len(needle) == 0 || len(lines) == 0 {
		return lines
	}

	out := make([]string, len(lines))
	current := true
	for i, line := range lines {
		spans := occurrences([]rune(ansi.Strip(line)), needle)
		if len(spans) == 0 {
			out[i] = line
			continue
		}
		open := matchStartSeq
		if current {
			open = currentMatchStartSeq
			current = false
		}
		out[i] = paint(line, spans, open)
	}
	return out
}

// occurrences returns the rune positions of needle in hay, ignoring case.
// Overlapping and touching hits are merged into one span.
func occurrences(hay, needle []rune) []span {
	var spans []span
	want := string(needle)
	for i := 0; i+len(needle) <= len(hay); i++ {
		if !strings.EqualFold(string(hay[i:i+len(needle)]), want) {
			continue
		}
		end := i + len(needle)
		if n := len(spans); n > 0 && i <= spans[n-1].to {
			spans[n-1].to = end
			continue
		}
		spans = append(spans, span{from: i, to: end})
	}
	return spans
}

// paint wraps spans of visible runes in line with open and matchEndSeq,
// copying existing escape sequences through untouched.
func paint(line string, spans []span, open string) string {
	var b strings.Builder
	pos, k, in := 0, 0, false
	for i := 0; i < len(line); {
		if line[i] == 0x1b {
			next := ansi.ConsumeEscape(line, i)
			b.WriteString(line[i:next])
			i = next
			continue
		}
		if in && pos == spans[k].to {
			b.WriteString(matchEndSeq)
			in = false
			k++
		}
		if !in && k < len(spans) && pos == spans[k].from {
			b.WriteString(open)
			in = true
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		b.WriteString(line[i : i+size])
		pos++
		i += size
	}
	if in {
		b.WriteString(matchEndSeq)
	}
	return b.String()
}
