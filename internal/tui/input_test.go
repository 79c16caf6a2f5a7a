package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestClassify_Table(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy float64
		want   SwipeResult
	}{
		{"drag left", -60, 5, SwipeNext},
		{"drag right", 60, 5, SwipePrevious},
		{"too short", 10, 5, SwipeNone},
		{"exactly threshold", 50, 0, SwipeNone},
		{"mostly vertical", 70, 80, SwipeNone},
		{"diagonal tie", -60, 60, SwipeNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.dx, c.dy, 50))
		})
	}
}

func TestClassify_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dx := rapid.Float64Range(-500, 500).Draw(t, "dx")
		dy := rapid.Float64Range(-500, 500).Draw(t, "dy")
		got := Classify(dx, dy, 50)
		switch got {
		case SwipeNext:
			if !(dx < -50 && -dx > abs(dy)) {
				t.Fatalf("next for dx=%v dy=%v", dx, dy)
			}
		case SwipePrevious:
			if !(dx > 50 && dx > abs(dy)) {
				t.Fatalf("previous for dx=%v dy=%v", dx, dy)
			}
		case SwipeNone:
			if abs(dx) > 50 && abs(dx) > abs(dy) {
				t.Fatalf("none for dx=%v dy=%v", dx, dy)
			}
		}
	})
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestSwipeDetector(t *testing.T) {
	d := NewSwipeDetector(0)
	require.Equal(t, SwipeNone, d.End(Point{X: 0}), "end without start")

	d.Start(CellPoint(20, 4))
	p, ok := d.Pressed()
	require.True(t, ok)
	assert.Equal(t, Point{X: 160, Y: 64}, p)
	assert.Equal(t, SwipeNext, d.End(CellPoint(10, 4)))

	_, ok = d.Pressed()
	assert.False(t, ok, "End should clear the press")
}

func TestKeyHandler_Actions(t *testing.T) {
	k := NewKeyHandler(DefaultKeyMap())
	cases := []struct {
		msg  tea.KeyMsg
		want KeyAction
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, ActionNext},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionNext},
		{tea.KeyMsg{Type: tea.KeyPgDown}, ActionNext},
		{tea.KeyMsg{Type: tea.KeyLeft}, ActionPrevious},
		{tea.KeyMsg{Type: tea.KeyPgUp}, ActionPrevious},
		{tea.KeyMsg{Type: tea.KeyHome}, ActionFirst},
		{tea.KeyMsg{Type: tea.KeyEnd}, ActionLast},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionExitFullscreen},
		{tea.KeyMsg{Type: tea.KeyF5}, ActionToggleFullscreen},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, ActionFocusPrevCard},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{keyMsg("?"), ActionToggleHelp},
		{keyMsg("a"), ActionToggleAuto},
		{keyMsg("n"), ActionToggleNotes},
		{keyMsg("/"), ActionOpenSearch},
		{keyMsg("x"), ActionCloseCard},
		{keyMsg("z"), ActionNone},
	}
	for _, c := range cases {
		got, _ := k.Handle(c.msg)
		assert.Equal(t, c.want, got, c.msg.String())
	}
}

func TestKeyHandler_SlideNumberBuffer(t *testing.T) {
	k := NewKeyHandler(DefaultKeyMap())

	a, _ := k.Handle(keyMsg("1"))
	assert.Equal(t, ActionNone, a)
	k.Handle(keyMsg("2"))
	assert.Equal(t, "12", k.KeyBuffer())

	a, n := k.Handle(keyMsg("g"))
	assert.Equal(t, ActionGoTo, a)
	assert.Equal(t, 12, n)
	assert.Empty(t, k.KeyBuffer())

	// Any other key drops the buffer.
	k.Handle(keyMsg("3"))
	a, _ = k.Handle(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, ActionNext, a)
	assert.Empty(t, k.KeyBuffer())

	a, _ = k.Handle(keyMsg("g"))
	assert.Equal(t, ActionFirst, a, "g without a number goes to the first slide")
}
