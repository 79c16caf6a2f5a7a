package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/interpretive-systems/slidium/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAutoAdvance_StopsAtLastWithoutFurtherTicks(t *testing.T) {
	s := deck.NewState(12)
	s.GoTo(10)
	a := NewAutoAdvance(time.Second)

	cmd := a.Start()
	require.NotNil(t, cmd)
	require.True(t, a.Active())

	next := a.Tick(AutoAdvanceTickMsg{Gen: a.gen}, s)
	assert.Equal(t, 11, s.Current())
	assert.Nil(t, next, "no tick may be scheduled after reaching the last slide")
	assert.False(t, a.Active())
}

func TestAutoAdvance_AdvancesAndReschedules(t *testing.T) {
	s := deck.NewState(12)
	a := NewAutoAdvance(time.Second)
	a.Start()

	cmd := a.Tick(AutoAdvanceTickMsg{Gen: a.gen}, s)
	assert.Equal(t, 1, s.Current())
	assert.NotNil(t, cmd)
	assert.True(t, a.Active())
}

func TestAutoAdvance_StartedOnLastSlide(t *testing.T) {
	s := deck.NewState(3)
	s.GoTo(2)
	a := NewAutoAdvance(time.Second)
	a.Start()
	assert.Nil(t, a.Tick(AutoAdvanceTickMsg{Gen: a.gen}, s))
	assert.Equal(t, 2, s.Current())
	assert.False(t, a.Active())
}

func TestAutoAdvance_StaleTickIgnored(t *testing.T) {
	s := deck.NewState(12)
	a := NewAutoAdvance(time.Second)
	a.Start()
	stale := AutoAdvanceTickMsg{Gen: a.gen}
	a.Stop()
	a.Start()

	assert.Nil(t, a.Tick(stale, s))
	assert.Equal(t, 0, s.Current())
}

func TestAutoAdvance_StopIdempotentAndSingleChain(t *testing.T) {
	a := NewAutoAdvance(time.Second)
	a.Stop()
	a.Stop()
	assert.False(t, a.Active())

	require.NotNil(t, a.Start())
	gen := a.gen
	assert.Nil(t, a.Start(), "second start must not create another chain")
	assert.Equal(t, gen, a.gen)

	assert.Nil(t, a.Toggle())
	assert.False(t, a.Active())
	assert.NotNil(t, a.Toggle())
	assert.True(t, a.Active())
}

func TestAutoAdvance_DefaultInterval(t *testing.T) {
	assert.Equal(t, 30*time.Second, NewAutoAdvance(0).Interval())
}

func TestCards_MutuallyExclusive(t *testing.T) {
	c := NewCards(4)
	assert.Equal(t, -1, c.ExpandedIndex())

	c.Activate(0)
	c.Activate(1)
	assert.False(t, c.Expanded(0))
	assert.True(t, c.Expanded(1))

	c.Close(1)
	assert.Equal(t, -1, c.ExpandedIndex(), "close must not expand another card")

	c.Activate(9)
	c.Close(-1)
	assert.Equal(t, -1, c.ExpandedIndex())
}

func TestCards_FocusWraps(t *testing.T) {
	c := NewCards(3)
	c.FocusPrev()
	assert.Equal(t, 2, c.Focus())
	c.FocusNext()
	assert.Equal(t, 0, c.Focus())

	empty := NewCards(0)
	empty.FocusNext()
	assert.Equal(t, 0, empty.Focus())
}

func TestCards_AtMostOneExpanded_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		c := NewCards(n)
		ops := rapid.SliceOf(rapid.IntRange(-2*n, 2*n)).Draw(t, "ops")
		for _, op := range ops {
			if op >= 0 {
				c.Activate(op % (n + 1))
			} else {
				c.Close(-op - 1)
			}
			count := 0
			for i := 0; i < n; i++ {
				if c.Expanded(i) {
					count++
				}
			}
			if count > 1 {
				t.Fatalf("%d cards expanded", count)
			}
		}
	})
}

type testKeys struct{ next key.Binding }

func (k testKeys) ShortHelp() []key.Binding  { return []key.Binding{k.next} }
func (k testKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.next}} }

func TestHelp_ToggleAndRender(t *testing.T) {
	h := NewHelp(testKeys{next: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next slide"))})
	assert.Nil(t, h.RenderOverlay(80))

	h.Toggle()
	require.True(t, h.Visible())
	plain := ansi.Strip(strings.Join(h.RenderOverlay(80), "\n"))
	assert.Contains(t, plain, "Keyboard Shortcuts")
	assert.Contains(t, plain, "Home: First slide")
	assert.Contains(t, plain, "next slide")

	assert.Equal(t, ActionContinue, h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}))
	assert.Equal(t, ActionPassThrough, h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}))
	assert.Equal(t, ActionClose, h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, h.Visible())
}
