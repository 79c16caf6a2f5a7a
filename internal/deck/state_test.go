package deck

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGoTo_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		start int
		req   int
		want  int
		ok    bool
	}{
		{"first", 3, 0, 0, true},
		{"last", 3, 11, 11, true},
		{"negative", 3, -1, 3, false},
		{"past end", 3, 12, 3, false},
		{"far past end", 5, 100, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(12)
			require.True(t, s.GoTo(tt.start))
			assert.Equal(t, tt.ok, s.GoTo(tt.req))
			assert.Equal(t, tt.want, s.Current())
		})
	}
}

func TestNextPrevious_Boundaries(t *testing.T) {
	s := NewState(12)
	assert.False(t, s.Previous(), "previous at first slide")
	assert.Equal(t, 0, s.Current())

	s.GoTo(11)
	assert.False(t, s.Next(), "next at last slide")
	assert.Equal(t, 11, s.Current())

	assert.True(t, s.Previous())
	assert.Equal(t, 10, s.Current())
	assert.True(t, s.Next())
	assert.Equal(t, 11, s.Current())
}

func TestObservers_RunInOrderOnlyOnTransition(t *testing.T) {
	var calls []string
	s := NewState(3,
		ObserverFunc(func(from, to int) { calls = append(calls, "render") }),
		ObserverFunc(func(from, to int) { calls = append(calls, "effects") }),
	)

	s.Previous()
	s.GoTo(7)
	assert.Empty(t, calls)

	s.Next()
	assert.Equal(t, []string{"render", "effects"}, calls)
}

func TestObserver_ReceivesFromTo(t *testing.T) {
	var gotFrom, gotTo int
	s := NewState(12, ObserverFunc(func(from, to int) { gotFrom, gotTo = from, to }))
	s.GoTo(4)
	s.GoTo(9)
	assert.Equal(t, 4, gotFrom)
	assert.Equal(t, 9, gotTo)
}

func TestProgress(t *testing.T) {
	s := NewState(12)
	assert.Equal(t, Progress{Current: 1, Total: 12, Percent: 8}, s.Progress())
	s.GoTo(5)
	assert.Equal(t, 50, s.Progress().Percent)
	s.GoTo(11)
	assert.Equal(t, 100, s.Progress().Percent)
}

func TestGoTo_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(1, 40).Draw(t, "total")
		s := NewState(total)
		steps := rapid.SliceOf(rapid.IntRange(-5, 45)).Draw(t, "steps")
		for _, i := range steps {
			before := s.Current()
			ok := s.GoTo(i)
			inRange := i >= 0 && i < total
			if ok != inRange {
				t.Fatalf("GoTo(%d) with total %d returned %v", i, total, ok)
			}
			if inRange && s.Current() != i {
				t.Fatalf("current = %d, want %d", s.Current(), i)
			}
			if !inRange && s.Current() != before {
				t.Fatalf("rejected GoTo(%d) moved from %d to %d", i, before, s.Current())
			}
			if s.Current() < 0 || s.Current() >= total {
				t.Fatalf("current %d escaped [0,%d)", s.Current(), total)
			}
		}
	})
}

func TestProgress_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(1, 200).Draw(t, "total")
		k := rapid.IntRange(0, total-1).Draw(t, "k")
		s := NewState(total)
		s.GoTo(k)
		p := s.Progress()
		want := int(math.Round(float64(k+1) / float64(total) * 100))
		if p.Percent != want {
			t.Fatalf("percent at %d/%d = %d, want %d", k, total, p.Percent, want)
		}
	})
}

func TestShow_NotifiesWithoutMoving(t *testing.T) {
	var calls [][2]int
	s := NewState(5, ObserverFunc(func(from, to int) {
		calls = append(calls, [2]int{from, to})
	}))
	require.True(t, s.GoTo(3))
	s.Show()
	assert.Equal(t, 3, s.Current())
	assert.Equal(t, [][2]int{{0, 3}, {3, 3}}, calls)
}
