package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/interpretive-systems/slidium/internal/deck"
	"github.com/interpretive-systems/slidium/internal/tui/effects"
	"github.com/interpretive-systems/slidium/internal/tui/widgets"
)

func newTestView() *SlideView {
	v := NewSlideView(Styles{
		Title:    lipgloss.NewStyle(),
		Subtitle: lipgloss.NewStyle(),
		Card:     lipgloss.NewStyle(),
		Focus:    lipgloss.NewStyle(),
		Bar:      lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
	}, "notty")
	v.SetSize(60, 10)
	return v
}

func plain(lines []string) string {
	return ansi.Strip(strings.Join(lines, "\n"))
}

func TestSlideView_CardsAndCloseHit(t *testing.T) {
	v := newTestView()
	s := deck.Slide{Index: 2, Cards: []deck.Card{
		{Title: "Volume", Summary: "grows", Detail: "doubling"},
		{Title: "Security", Summary: "risk", Detail: "drives move"},
	}}
	cards := widgets.NewCards(2)
	cards.Activate(1)

	lines := v.Build(s, BuildOptions{Cards: cards})
	out := plain(lines)
	if strings.Contains(out, "doubling") {
		t.Fatalf("collapsed card detail rendered:\n%s", out)
	}
	if !strings.Contains(out, "drives move") || !strings.Contains(out, "[x]") {
		t.Fatalf("expanded card missing detail or close control:\n%s", out)
	}

	var closeRow, closeCol = -1, -1
	for i, l := range lines {
		stripped := ansi.Strip(l)
		if c := strings.Index(stripped, "[x]"); c >= 0 {
			closeRow, closeCol = i, lipgloss.Width(stripped[:c])
		}
	}
	card, closeHit, ok := v.CardAt(closeRow, closeCol+1)
	if !ok || !closeHit || card != 1 {
		t.Fatalf("close hit = %d %v %v", card, closeHit, ok)
	}
	card, closeHit, ok = v.CardAt(closeRow, 3)
	if !ok || closeHit || card != 1 {
		t.Fatalf("header hit = %d %v %v", card, closeHit, ok)
	}
	if _, _, ok := v.CardAt(closeRow+1, 3); ok {
		t.Fatalf("detail line should not be a card hit")
	}
}

func TestSlideView_PrintShowsAllCards(t *testing.T) {
	v := newTestView()
	s := deck.Slide{Cards: []deck.Card{{Title: "A", Detail: "alpha"}, {Title: "B", Detail: "beta"}}}
	out := plain(v.Lines(s, BuildOptions{}))
	if !strings.Contains(out, "alpha") || !strings.Contains(out, "beta") || strings.Contains(out, "[x]") {
		t.Fatalf("print rendering wrong:\n%s", out)
	}
}

func TestSlideView_ChartsAndTimeline(t *testing.T) {
	v := newTestView()
	s := deck.Slide{
		Index: 8,
		Body:  "Costs",
		Charts: []deck.Chart{
			{Title: "Split", Kind: deck.ChartPie, Data: []deck.Datum{{Label: "Staff", Value: 75}, {Label: "Power", Value: 25}}},
			{Title: "Broken", Hidden: true},
		},
		Timeline: []deck.Phase{{Name: "Phase 1", Period: "Q1", Detail: "pilot"}},
	}
	out := plain(v.Lines(s, BuildOptions{}))
	for _, want := range []string{"Costs", "◆ Split", "75%", "25%", "● Phase 1", "pilot"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Broken") {
		t.Fatalf("hidden chart rendered")
	}
}

type fixedStyler effects.Style

func (f fixedStyler) Style(int, effects.Target, int, time.Time) effects.Style {
	return effects.Style(f)
}

func TestSlideView_HiddenTitleKeepsLayout(t *testing.T) {
	v := newTestView()
	s := deck.Slide{Title: "Archival Policy"}
	hidden := v.Lines(s, BuildOptions{Styler: fixedStyler{Opacity: 0, TranslateY: 20, Scale: 1}})
	rest := v.Lines(s, BuildOptions{})

	if strings.Contains(plain(hidden), "Archival") {
		t.Fatalf("title visible at opacity 0")
	}
	if len(hidden) != len(rest)+1 {
		t.Fatalf("translateY 20px should push the title down one row: %d vs %d", len(hidden), len(rest))
	}
	if !strings.Contains(plain(rest), "Archival Policy") {
		t.Fatalf("title missing at rest")
	}
}

func TestSlideView_ScrollResets(t *testing.T) {
	v := newTestView()
	v.SetSize(40, 3)
	s := deck.Slide{Timeline: make([]deck.Phase, 10)}
	v.Build(s, BuildOptions{})
	v.ScrollDown(5)
	if v.YOffset() == 0 {
		t.Fatalf("expected scroll")
	}
	v.GotoTop()
	if v.YOffset() != 0 {
		t.Fatalf("GotoTop left offset %d", v.YOffset())
	}
}

func TestStatusBar_Render(t *testing.T) {
	sb := NewStatusBar()
	sb.SetAutoAdvance("30s")
	sb.SetPaused(true)
	out := ansi.Strip(sb.Render(100))
	if !strings.Contains(out, "?: help") || !strings.Contains(out, "auto 30s · paused") {
		t.Fatalf("status bar = %q", out)
	}
	if lipgloss.Width(out) != 100 {
		t.Fatalf("width = %d", lipgloss.Width(out))
	}
	sb.SetKeyBuffer("12")
	if !strings.Contains(ansi.Strip(sb.Render(100)), "go to slide 12") {
		t.Fatalf("key buffer not shown")
	}
}

func TestSlideView_ResetDropsCachedBodies(t *testing.T) {
	v := newTestView()
	old := deck.Slide{Index: 0, Body: "draft wording"}
	if !strings.Contains(plain(v.Build(old, BuildOptions{})), "draft wording") {
		t.Fatalf("body missing")
	}

	edited := deck.Slide{Index: 0, Body: "final wording"}
	v.Reset()
	out := plain(v.Build(edited, BuildOptions{}))
	if !strings.Contains(out, "final wording") || strings.Contains(out, "draft wording") {
		t.Fatalf("stale body after reset:\n%s", out)
	}
}
