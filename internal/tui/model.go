package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/slidium/internal/deck"
	"github.com/interpretive-systems/slidium/internal/prefs"
	"github.com/interpretive-systems/slidium/internal/tui/components"
	"github.com/interpretive-systems/slidium/internal/tui/effects"
	"github.com/interpretive-systems/slidium/internal/tui/search"
	"github.com/interpretive-systems/slidium/internal/tui/widgets"
)

// State holds all application state.
type State struct {
	// Presentation
	Deck  *deck.Deck
	Nav   *deck.State
	Frame Frame

	// UI State
	Width      int
	Height     int
	Fullscreen bool
	Paused     bool
	ShowNotes  bool

	// Preferences
	Prefs     prefs.Prefs
	PrefsPath string

	// Components
	SlideView    *components.SlideView
	StatusBar    *components.StatusBar
	SearchEngine *search.Engine
	Progress     progress.Model

	// Widgets
	Help  *widgets.Help
	Auto  *widgets.AutoAdvance
	Cards []*widgets.Cards

	Effects *effects.Engine
	Swipe   *SwipeDetector
	Keys    KeyMap

	// Theme
	Theme Theme

	// Now is the clock animations are sampled with.
	Now func() time.Time

	framePending bool
	animating    bool
}

// NewState creates the presenter state for d, wires the navigation
// observers and shows the first slide.
func NewState(d *deck.Deck, p prefs.Prefs) *State {
	theme := GetTheme(p.Theme)
	mdStyle := p.MarkdownStyle
	if mdStyle == "" {
		mdStyle = theme.MarkdownStyle
	}
	keys := DefaultKeyMap()

	s := &State{
		Prefs:        p,
		ShowNotes:    p.ShowNotes,
		Theme:        theme,
		Keys:         keys,
		SlideView:    components.NewSlideView(theme.slideStyles(), mdStyle),
		StatusBar:    components.NewStatusBar(),
		SearchEngine: search.New(),
		Progress: progress.New(
			progress.WithSolidFill(theme.ProgressColor),
			progress.WithoutPercentage(),
		),
		Help:    widgets.NewHelp(keys),
		Auto:    widgets.NewAutoAdvance(p.AutoAdvanceInterval),
		Effects: effects.New(),
		Swipe:   NewSwipeDetector(p.SwipeThresholdPx),
		Now:     time.Now,
	}
	s.Load(d)
	return s
}

// Load installs d as the presented deck. The current position is kept when
// the new deck is long enough; otherwise the last slide is shown.
func (s *State) Load(d *deck.Deck) {
	cur := 0
	if s.Nav != nil {
		cur = min(s.Nav.Current(), d.Len()-1)
	}
	s.Deck = d
	s.SlideView.Reset()

	texts := make([]string, d.Len())
	s.Cards = make([]*widgets.Cards, d.Len())
	for i, slide := range d.Slides {
		texts[i] = slideText(slide) + "\n" + slide.Notes
		s.Cards[i] = widgets.NewCards(len(slide.Cards))
	}
	s.SearchEngine.SetSlides(texts)

	s.Nav = deck.NewState(d.Len(), renderSync{s}, effectsSync{s})
	if cur == 0 || !s.Nav.GoTo(cur) {
		s.Nav.Show()
	}
}

// slideText is the visible text of a slide, title block first.
func slideText(slide deck.Slide) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{slide.Title, slide.Subtitle, slide.PlainText()} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n")
}

// CurrentSlide returns the slide being shown.
func (s *State) CurrentSlide() deck.Slide {
	slide, _ := s.Deck.Slide(s.Nav.Current())
	return slide
}

// CurrentCards returns the card state of the slide being shown.
func (s *State) CurrentCards() *widgets.Cards {
	i := s.Nav.Current()
	if i < 0 || i >= len(s.Cards) {
		return widgets.NewCards(0)
	}
	return s.Cards[i]
}

func (s *State) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// rebuild redraws the current slide into the viewport.
func (s *State) rebuild() {
	if s.SlideView == nil || s.Nav == nil {
		return
	}
	opts := components.BuildOptions{
		Styler: s.Effects,
		Now:    s.now(),
		Cards:  s.CurrentCards(),
	}
	if s.SearchEngine.IsActive() {
		opts.Highlight = s.SearchEngine.Highlight
	}
	s.SlideView.Build(s.CurrentSlide(), opts)
}

func (t Theme) slideStyles() components.Styles {
	return components.Styles{
		Title:    t.fg(t.AccentColor).Bold(true),
		Subtitle: t.fg(t.MutedColor).Italic(true),
		Card:     lipgloss.NewStyle().Bold(true),
		Focus:    t.fg(t.ActiveColor).Bold(true),
		Bar:      t.fg(t.ProgressColor),
		Muted:    t.fg(t.MutedColor),
	}
}
