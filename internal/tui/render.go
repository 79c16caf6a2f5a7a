package tui

import (
	"fmt"

	"github.com/interpretive-systems/slidium/internal/deck"
)

// Placement is where a slide sits relative to the active one.
type Placement int

const (
	// PlacementLeft marks slides before the current one.
	PlacementLeft Placement = iota
	PlacementActive
	// PlacementRight marks slides after the current one.
	PlacementRight
)

func (p Placement) String() string {
	switch p {
	case PlacementLeft:
		return "parked-left"
	case PlacementActive:
		return "active"
	default:
		return "parked-right"
	}
}

// Frame is the visible projection of the navigation state.
type Frame struct {
	Placements      []Placement
	NavActive       int
	PrevDisabled    bool
	NextDisabled    bool
	Counter         string
	ProgressPercent int
}

// Project derives the frame for the current slide of nav.
func Project(nav *deck.State) Frame {
	cur, total := nav.Current(), nav.Total()
	f := Frame{
		Placements:      make([]Placement, total),
		NavActive:       cur,
		PrevDisabled:    nav.AtFirst(),
		NextDisabled:    nav.AtLast(),
		Counter:         fmt.Sprintf("%d / %d", cur+1, total),
		ProgressPercent: nav.Progress().Percent,
	}
	for i := range f.Placements {
		switch {
		case i < cur:
			f.Placements[i] = PlacementLeft
		case i == cur:
			f.Placements[i] = PlacementActive
		default:
			f.Placements[i] = PlacementRight
		}
	}
	return f
}

// ActiveCount returns how many slides are marked active.
func (f Frame) ActiveCount() int {
	n := 0
	for _, p := range f.Placements {
		if p == PlacementActive {
			n++
		}
	}
	return n
}

// renderSync keeps the frame and the slide viewport in step with the
// navigation state. It must be registered before effectsSync.
type renderSync struct {
	state *State
}

func (r renderSync) SlideChanged(from, to int) {
	s := r.state
	s.Frame = Project(s.Nav)
	s.SlideView.GotoTop()
	s.rebuild()
}

// effectsSync restarts the entrance animation of the new slide.
type effectsSync struct {
	state *State
}

func (e effectsSync) SlideChanged(from, to int) {
	s := e.state
	slide, ok := s.Deck.Slide(to)
	if !ok {
		return
	}
	if s.Effects.Dispatch(slide, s.now()) {
		s.framePending = true
		s.rebuild()
	}
}
