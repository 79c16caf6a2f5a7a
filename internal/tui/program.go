package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/slidium/internal/deck"
	"github.com/interpretive-systems/slidium/internal/prefs"
	tuiansi "github.com/interpretive-systems/slidium/internal/tui/ansi"
	"github.com/interpretive-systems/slidium/internal/tui/widgets"
)

const (
	notesRows   = 3
	wheelLines  = 3
	notesPrefix = "Notes: "
)

// Options configure a presentation run.
type Options struct {
	Deck      *deck.Deck
	Prefs     prefs.Prefs
	PrefsPath string
	// AutoAdvance starts auto-advance immediately.
	AutoAdvance bool
	// AutoAdvanceInterval overrides the preferred interval for this run
	// only. Zero keeps Prefs.AutoAdvanceInterval.
	AutoAdvanceInterval time.Duration
	AltScreen           bool
	// Changes, when set, triggers Reload after each signal.
	Changes <-chan struct{}
	Reload  func() (*deck.Deck, error)
}

// Program is the Bubble Tea model of the presenter.
type Program struct {
	state      *State
	layout     *Layout
	keyHandler *KeyHandler
	autoStart  bool
	changes    <-chan struct{}
	reload     func() (*deck.Deck, error)
}

// New creates a program around s.
func New(s *State) Program {
	return Program{
		state:      s,
		layout:     NewLayout(),
		keyHandler: NewKeyHandler(s.Keys),
	}
}

// newProgram builds the model for a run described by opts.
func newProgram(opts Options) Program {
	s := NewState(opts.Deck, opts.Prefs)
	s.PrefsPath = opts.PrefsPath
	s.Fullscreen = opts.AltScreen
	if opts.AutoAdvanceInterval > 0 {
		s.Auto = widgets.NewAutoAdvance(opts.AutoAdvanceInterval)
	}

	m := New(s)
	m.autoStart = opts.AutoAdvance
	if opts.Reload != nil {
		m.changes, m.reload = opts.Changes, opts.Reload
	}
	return m
}

// Run instantiates and runs the Bubble Tea program.
func Run(opts Options) error {
	m := newProgram(opts)

	popts := []tea.ProgramOption{tea.WithMouseCellMotion(), tea.WithReportFocus()}
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	log.Printf("present: %q, %d slides", opts.Deck.Title, opts.Deck.Len())
	p := tea.NewProgram(m, popts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func (m Program) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.autoStart {
		cmds = append(cmds, m.state.Auto.Start())
	}
	cmds = append(cmds, m.afterNav(), waitForDeckChange(m.changes))
	return tea.Batch(cmds...)
}

func (m Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.Width, s.Height = msg.Width, msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		s.Progress.Width = msg.Width
		m.recalcViewport()
		return m, nil

	case tea.FocusMsg:
		s.Paused = false
		return m, nil

	case tea.BlurMsg:
		s.Paused = true
		return m, nil

	case frameMsg:
		s.rebuild()
		if s.Effects.Running(s.now()) {
			return m, frameTick()
		}
		s.animating = false
		return m, nil

	case widgets.AutoAdvanceTickMsg:
		cmd := s.Auto.Tick(msg, s.Nav)
		return m, tea.Batch(cmd, m.afterNav())

	case deckChangedMsg:
		return m, tea.Batch(reloadDeck(m.reload), waitForDeckChange(m.changes))

	case deckLoadedMsg:
		if msg.err != nil {
			log.Printf("reload deck: %v", msg.err)
			s.StatusBar.SetMessage("reload failed, keeping the current deck")
			return m, nil
		}
		s.Load(msg.deck)
		m.recalcViewport()
		s.StatusBar.SetMessage(fmt.Sprintf("reloaded %d slides", msg.deck.Len()))
		return m, m.afterNav()

	case slideCopiedMsg:
		if msg.err != nil {
			log.Printf("copy slide %d: %v", msg.slide, msg.err)
			s.StatusBar.SetMessage("clipboard unavailable")
			return m, nil
		}
		s.StatusBar.SetMessage(fmt.Sprintf("copied slide %d", msg.slide))
		return m, nil

	case prefsSavedMsg:
		if msg.err != nil {
			log.Printf("save prefs: %v", msg.err)
			s.StatusBar.SetMessage("could not save preferences")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Program) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.state
	// Any key press cancels auto-advance.
	wasAuto := s.Auto.Active()
	s.Auto.Stop()
	s.StatusBar.SetMessage("")

	if s.SearchEngine.IsActive() {
		_, cmd := s.SearchEngine.HandleKey(msg)
		if !s.SearchEngine.IsActive() {
			m.recalcViewport()
			return m, cmd
		}
		if i := s.SearchEngine.CurrentMatch(); i >= 0 && i != s.Nav.Current() {
			s.Nav.GoTo(i)
		} else {
			s.rebuild()
		}
		return m, tea.Batch(cmd, m.afterNav())
	}

	var overlay widgets.Overlay = s.Help
	if overlay.Visible() {
		switch overlay.HandleKey(msg) {
		case widgets.ActionClose:
			m.recalcViewport()
			return m, nil
		case widgets.ActionContinue:
			return m, nil
		}
	}

	action, n := m.keyHandler.Handle(msg)
	cards := s.CurrentCards()

	switch action {
	case ActionQuit:
		return m, tea.Quit
	case ActionNext:
		s.Nav.Next()
	case ActionPrevious:
		s.Nav.Previous()
	case ActionFirst:
		s.Nav.GoTo(0)
	case ActionLast:
		s.Nav.GoTo(s.Nav.Total() - 1)
	case ActionGoTo:
		s.Nav.GoTo(n - 1)
	case ActionExitFullscreen:
		if s.Fullscreen {
			s.Fullscreen = false
			return m, tea.ExitAltScreen
		}
	case ActionToggleFullscreen:
		s.Fullscreen = !s.Fullscreen
		if s.Fullscreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen
	case ActionToggleHelp:
		s.Help.Toggle()
		m.recalcViewport()
	case ActionToggleAuto:
		if !wasAuto {
			return m, s.Auto.Start()
		}
	case ActionToggleNotes:
		s.ShowNotes = !s.ShowNotes
		s.Prefs.ShowNotes = s.ShowNotes
		m.recalcViewport()
		if s.PrefsPath != "" {
			return m, savePrefs(s.PrefsPath, s.Prefs)
		}
	case ActionOpenSearch:
		s.SearchEngine.Activate()
		m.recalcViewport()
	case ActionFocusNextCard:
		cards.FocusNext()
		s.rebuild()
	case ActionFocusPrevCard:
		cards.FocusPrev()
		s.rebuild()
	case ActionExpandCard:
		cards.Activate(cards.Focus())
		s.rebuild()
	case ActionCloseCard:
		cards.Close(cards.ExpandedIndex())
		s.rebuild()
	case ActionScrollDown:
		s.SlideView.ScrollDown(1)
	case ActionScrollUp:
		s.SlideView.ScrollUp(1)
	case ActionCopySlide:
		return m, copySlide(s.Nav.Current()+1, slideText(s.CurrentSlide()))
	}
	return m, m.afterNav()
}

func (m Program) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := m.state
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		s.SlideView.ScrollDown(wheelLines)
	case msg.Button == tea.MouseButtonWheelUp:
		s.SlideView.ScrollUp(wheelLines)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		s.Swipe.Start(CellPoint(msg.X, msg.Y))
	case msg.Action == tea.MouseActionRelease:
		start, pressed := s.Swipe.Pressed()
		end := CellPoint(msg.X, msg.Y)
		switch s.Swipe.End(end) {
		case SwipeNext:
			s.Nav.Next()
		case SwipePrevious:
			s.Nav.Previous()
		default:
			if pressed && start == end {
				return m.click(msg.X, msg.Y)
			}
		}
		return m, m.afterNav()
	}
	return m, nil
}

// click resolves a press and release in the same cell.
func (m Program) click(x, y int) (tea.Model, tea.Cmd) {
	s := m.state
	top := m.layout.ContentTop()
	switch {
	case y == navRow:
		_, hits := RenderNavStrip(s.Frame, s.Theme, s.Auto.Active(), s.Width)
		h, ok := HitAt(hits, x)
		if !ok {
			return m, nil
		}
		switch h.Kind {
		case HitPrev:
			s.Nav.Previous()
		case HitNext:
			s.Nav.Next()
		case HitSlide:
			s.Nav.GoTo(h.Slide)
		case HitHelp:
			s.Help.Toggle()
			m.recalcViewport()
		case HitAuto:
			return m, s.Auto.Toggle()
		}
	case y >= top && y < top+s.SlideView.Height():
		card, closeHit, ok := s.SlideView.CardAt(y-top, x)
		if !ok {
			return m, nil
		}
		cards := s.CurrentCards()
		if closeHit {
			cards.Close(card)
		} else {
			cards.Activate(card)
		}
		s.rebuild()
	}
	return m, m.afterNav()
}

// afterNav starts the animation frame loop when a transition began an
// effect and no loop is running yet.
func (m Program) afterNav() tea.Cmd {
	s := m.state
	if !s.framePending {
		return nil
	}
	s.framePending = false
	if s.animating {
		return nil
	}
	s.animating = true
	return frameTick()
}

func (m Program) View() string {
	s := m.state
	if s.Width <= 0 || s.Height <= 0 {
		return ""
	}
	slide := s.CurrentSlide()

	bar := s.Progress.ViewAs(float64(s.Frame.ProgressPercent) / 100)
	left := s.Theme.AccentText(s.Deck.Title)
	if slide.Title != "" {
		left += s.Theme.MutedText(" · " + slide.Title)
	}
	nav, _ := RenderNavStrip(s.Frame, s.Theme, s.Auto.Active(), s.Width)
	content := fitLines(strings.Split(s.SlideView.View(), "\n"), s.SlideView.Height())

	var below []string
	below = append(below, m.notesLines()...)
	below = append(below, m.overlayLines()...)

	m.updateStatusBar()
	return m.layout.RenderFrame(
		bar, left, s.Frame.Counter, nav,
		content, below,
		s.StatusBar.Render(s.Width),
		s.Theme,
	)
}

func (m Program) notesLines() []string {
	s := m.state
	if !s.ShowNotes {
		return nil
	}
	notes := strings.TrimSpace(s.CurrentSlide().Notes)
	if notes == "" {
		notes = "(none)"
	}
	width := s.Width - len(notesPrefix)
	if width < 10 {
		width = 10
	}
	wrapped := tuiansi.WrapLines(strings.Split(notes, "\n"), width)
	lines := make([]string, 0, notesRows+1)
	lines = append(lines, s.Theme.DividerText(strings.Repeat("─", s.Width)))
	for i := 0; i < notesRows; i++ {
		prefix := strings.Repeat(" ", len(notesPrefix))
		if i == 0 {
			prefix = notesPrefix
		}
		text := ""
		if i < len(wrapped) {
			text = wrapped[i]
		}
		lines = append(lines, s.Theme.NotesText(prefix+text))
	}
	return lines
}

func (m Program) overlayLines() []string {
	s := m.state
	if s.SearchEngine.IsActive() {
		return s.SearchEngine.RenderOverlay(s.Width, s.Theme.DividerColor)
	}
	if s.Help.Visible() {
		return s.Help.RenderOverlay(s.Width)
	}
	return nil
}

func (m Program) updateStatusBar() {
	s := m.state
	s.StatusBar.SetKeyBuffer(m.keyHandler.KeyBuffer())
	auto := ""
	if s.Auto.Active() {
		auto = s.Auto.Interval().String()
	}
	s.StatusBar.SetAutoAdvance(auto)
	s.StatusBar.SetPaused(s.Paused)
	s.StatusBar.SetFullscreen(s.Fullscreen)
}

// recalcViewport sizes the slide view to the space left by notes and
// overlays, then redraws it.
func (m Program) recalcViewport() {
	s := m.state
	extra := len(m.notesLines()) + len(m.overlayLines())
	s.SlideView.SetSize(s.Width, m.layout.ContentHeight(extra))
	s.rebuild()
}
