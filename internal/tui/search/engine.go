package search

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/slidium/internal/tui/ansi"
)

// Engine manages slide search state and operations.
type Engine struct {
	query   string
	matches []int // Slide indices with matches
	index   int   // Current match index
	input   textinput.Model
	active  bool
	slides  []string // Searchable text per slide
}

// New creates a new search engine.
func New() *Engine {
	ti := textinput.New()
	ti.Placeholder = "Search slides"
	ti.Prompt = "/ "
	ti.CharLimit = 0

	return &Engine{
		input: ti,
	}
}

// Activate opens the search input.
func (e *Engine) Activate() {
	e.active = true
	e.input.Focus()
}

// Deactivate closes search and forgets the query.
func (e *Engine) Deactivate() {
	e.active = false
	e.input.Blur()
	e.input.SetValue("")
	e.query = ""
	e.recomputeMatches()
}

// IsActive returns whether search is active.
func (e *Engine) IsActive() bool {
	return e.active
}

// HandleKey processes key input for search.
func (e *Engine) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		e.Deactivate()
		return true, nil
	case "enter", "down":
		e.Next()
		return true, nil
	case "up":
		e.Previous()
		return true, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	if v := e.input.Value(); v != e.query {
		e.query = v
		e.index = 0
		e.recomputeMatches()
	}

	return true, cmd
}

// SetSlides sets the text searched for each slide, in deck order.
func (e *Engine) SetSlides(texts []string) {
	e.slides = texts
	e.recomputeMatches()
}

// Query returns the current search query.
func (e *Engine) Query() string {
	return e.query
}

// recomputeMatches finds all matching slides.
func (e *Engine) recomputeMatches() {
	if e.query == "" {
		e.matches = nil
		e.index = 0
		return
	}

	lowerQuery := strings.ToLower(e.query)
	matches := make([]int, 0, len(e.slides))

	for i, text := range e.slides {
		plain := strings.ToLower(ansi.Strip(text))
		if strings.Contains(plain, lowerQuery) {
			matches = append(matches, i)
		}
	}

	e.matches = matches
	if len(matches) > 0 && e.index >= len(matches) {
		e.index = 0
	}
}

// Next advances to the next match.
func (e *Engine) Next() {
	if len(e.matches) == 0 {
		return
	}
	e.index = (e.index + 1) % len(e.matches)
}

// Previous moves to the previous match.
func (e *Engine) Previous() {
	if len(e.matches) == 0 {
		return
	}
	e.index = (e.index - 1 + len(e.matches)) % len(e.matches)
}

// CurrentMatch returns the slide index of the current match, or -1.
func (e *Engine) CurrentMatch() int {
	if len(e.matches) == 0 {
		return -1
	}
	return e.matches[e.index]
}

// Highlight marks every occurrence of the query in lines.
func (e *Engine) Highlight(lines []string) []string {
	if e.query == "" || len(lines) == 0 {
		return lines
	}
	return HighlightLines(lines, e.query)
}

// MatchCount returns the number of matching slides.
func (e *Engine) MatchCount() int {
	return len(e.matches)
}

// CurrentMatchIndex returns the current match index (1-based).
func (e *Engine) CurrentMatchIndex() int {
	if len(e.matches) == 0 {
		return 0
	}
	return e.index + 1
}

// InputView returns the text input view.
func (e *Engine) InputView() string {
	return e.input.View()
}
