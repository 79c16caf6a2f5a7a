package widgets

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigator is the part of the deck state auto-advance drives.
type Navigator interface {
	Next() bool
	AtLast() bool
}

// AutoAdvanceTickMsg fires once per interval while auto-advance runs.
type AutoAdvanceTickMsg struct {
	Gen uint64
}

// AutoAdvance moves to the next slide on a fixed interval.
//
// gen identifies the live tick chain: a tick carrying any other generation
// belongs to a cancelled chain and is dropped. A live chain exists exactly
// while active is true.
type AutoAdvance struct {
	interval time.Duration
	active   bool
	gen      uint64
}

// NewAutoAdvance creates a stopped timer.
func NewAutoAdvance(interval time.Duration) *AutoAdvance {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &AutoAdvance{interval: interval}
}

// Active reports whether auto-advance is running.
func (a *AutoAdvance) Active() bool { return a.active }

// Interval returns the tick interval.
func (a *AutoAdvance) Interval() time.Duration { return a.interval }

// Start begins ticking. Starting a running timer does nothing.
func (a *AutoAdvance) Start() tea.Cmd {
	if a.active {
		return nil
	}
	a.active = true
	a.gen++
	return a.schedule()
}

// Stop cancels the running chain. Stopping a stopped timer does nothing.
func (a *AutoAdvance) Stop() {
	if !a.active {
		return
	}
	a.active = false
	a.gen++
}

// Toggle starts or stops auto-advance.
func (a *AutoAdvance) Toggle() tea.Cmd {
	if a.active {
		a.Stop()
		return nil
	}
	return a.Start()
}

// Tick handles a tick: it advances nav and schedules the next tick, or
// stops once the last slide is reached.
func (a *AutoAdvance) Tick(msg AutoAdvanceTickMsg, nav Navigator) tea.Cmd {
	if !a.active || msg.Gen != a.gen {
		return nil
	}
	if nav.AtLast() {
		a.Stop()
		return nil
	}
	nav.Next()
	if nav.AtLast() {
		a.Stop()
		return nil
	}
	return a.schedule()
}

func (a *AutoAdvance) schedule() tea.Cmd {
	gen := a.gen
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return AutoAdvanceTickMsg{Gen: gen}
	})
}
