package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HitKind identifies a clickable control.
type HitKind int

const (
	HitNone HitKind = iota
	HitPrev
	HitNext
	HitSlide
	HitHelp
	HitAuto
)

// Hit is a clickable column range on the nav strip row.
type Hit struct {
	Kind  HitKind
	Slide int
	Start int
	End   int
}

// HitAt returns the control covering column x.
func HitAt(hits []Hit, x int) (Hit, bool) {
	for _, h := range hits {
		if x >= h.Start && x < h.End {
			return h, true
		}
	}
	return Hit{}, false
}

const (
	prevLabel = "‹ prev"
	nextLabel = "next ›"
	helpLabel = "[?]"
	autoLabel = "[auto]"
)

// RenderNavStrip draws the prev/next controls, one numbered button per
// slide and the help and auto-advance buttons. Disabled controls are drawn
// but get no hit region. Hits past width are dropped.
func RenderNavStrip(f Frame, theme Theme, autoActive bool, width int) (string, []Hit) {
	var b strings.Builder
	hits := make([]Hit, 0, len(f.Placements)+4)
	col := 0

	add := func(label, styled string, h Hit, enabled bool) {
		w := lipgloss.Width(label)
		if enabled && col+w <= width {
			h.Start, h.End = col, col+w
			hits = append(hits, h)
		}
		b.WriteString(styled)
		col += w
	}
	gap := func(n int) {
		b.WriteString(strings.Repeat(" ", n))
		col += n
	}

	gap(1)
	if f.PrevDisabled {
		add(prevLabel, theme.DisabledText(prevLabel), Hit{Kind: HitPrev}, false)
	} else {
		add(prevLabel, theme.AccentText(prevLabel), Hit{Kind: HitPrev}, true)
	}
	gap(2)
	for i, p := range f.Placements {
		if i > 0 {
			gap(1)
		}
		label := strconv.Itoa(i + 1)
		add(label, theme.NavText(label, p), Hit{Kind: HitSlide, Slide: i}, true)
	}
	gap(2)
	if f.NextDisabled {
		add(nextLabel, theme.DisabledText(nextLabel), Hit{Kind: HitNext}, false)
	} else {
		add(nextLabel, theme.AccentText(nextLabel), Hit{Kind: HitNext}, true)
	}
	gap(3)
	add(helpLabel, theme.MutedText(helpLabel), Hit{Kind: HitHelp}, true)
	gap(1)
	auto := theme.MutedText(autoLabel)
	if autoActive {
		auto = theme.AccentText(autoLabel)
	}
	add(autoLabel, auto, Hit{Kind: HitAuto}, true)

	return b.String(), hits
}
