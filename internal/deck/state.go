package deck

import "math"

// Observer is notified after every successful transition.
type Observer interface {
	SlideChanged(from, to int)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(from, to int)

// SlideChanged calls f.
func (f ObserverFunc) SlideChanged(from, to int) { f(from, to) }

// State owns the current slide index. Only GoTo, Next and Previous change it.
type State struct {
	current   int
	total     int
	observers []Observer
}

// NewState creates navigation state at slide 0. Observers run in the
// given order after each transition.
func NewState(total int, observers ...Observer) *State {
	if total < 1 {
		total = 1
	}
	return &State{total: total, observers: observers}
}

// Observe appends an observer.
func (s *State) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

// Current returns the current slide index.
func (s *State) Current() int { return s.current }

// Total returns the number of slides.
func (s *State) Total() int { return s.total }

// AtFirst reports whether the first slide is shown.
func (s *State) AtFirst() bool { return s.current == 0 }

// AtLast reports whether the last slide is shown.
func (s *State) AtLast() bool { return s.current == s.total-1 }

// GoTo moves to slide i. Out-of-range requests are ignored and return false.
func (s *State) GoTo(i int) bool {
	if i < 0 || i >= s.total {
		return false
	}
	from := s.current
	s.current = i
	s.notify(from, i)
	return true
}

// Next moves one slide forward.
func (s *State) Next() bool {
	return s.GoTo(s.current + 1)
}

// Previous moves one slide back.
func (s *State) Previous() bool {
	return s.GoTo(s.current - 1)
}

// Show re-runs the observers for the current slide without moving.
func (s *State) Show() {
	s.notify(s.current, s.current)
}

func (s *State) notify(from, to int) {
	for _, o := range s.observers {
		o.SlideChanged(from, to)
	}
}

// Progress describes how far through the deck the presenter is.
type Progress struct {
	Current int
	Total   int
	Percent int
}

// Progress returns the 1-based position and the rounded percentage.
func (s *State) Progress() Progress {
	return Progress{
		Current: s.current + 1,
		Total:   s.total,
		Percent: int(math.Round(float64(s.current+1) / float64(s.total) * 100)),
	}
}
