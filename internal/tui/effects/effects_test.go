package effects

import (
	"testing"
	"time"

	"github.com/interpretive-systems/slidium/internal/deck"
)

var t0 = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestTitle_FadeAndSlideUp(t *testing.T) {
	e := New()
	s := deck.Slide{Index: 0, Title: "Hello"}
	if !e.Dispatch(s, t0) {
		t.Fatalf("expected title animation")
	}

	st := e.Style(0, TargetTitle, 0, at(50))
	if st.Opacity != 0 || st.TranslateY != 20 {
		t.Fatalf("during delay got %+v", st)
	}
	mid := e.Style(0, TargetTitle, 0, at(500))
	if mid.Opacity <= 0 || mid.Opacity >= 1 || mid.TranslateY <= 0 || mid.TranslateY >= 20 {
		t.Fatalf("mid transition got %+v", mid)
	}
	if got := e.Style(0, TargetTitle, 0, at(900)); got != Rest {
		t.Fatalf("after transition got %+v", got)
	}
	if !e.Running(at(899)) || e.Running(at(900)) {
		t.Fatalf("running window wrong")
	}
}

func TestCharts_PulseSkipsHidden(t *testing.T) {
	e := New()
	s := deck.Slide{Index: 7, Charts: []deck.Chart{{Title: "a"}, {Title: "b", Hidden: true}, {Title: "c"}}}
	e.Dispatch(s, t0)

	if got := e.Style(7, TargetChart, 0, at(0)).Scale; got != 0.95 {
		t.Fatalf("initial scale = %v", got)
	}
	if got := e.Style(7, TargetChart, 1, at(0)).Scale; got != 0.95 {
		t.Fatalf("second visible chart scale = %v", got)
	}
	if got := e.Style(7, TargetChart, 2, at(0)); got != Rest {
		t.Fatalf("only two visible charts expected, got %+v", got)
	}
	if e.Running(at(400)) {
		t.Fatalf("pulse should end after 400ms")
	}
}

func TestTimeline_Stagger(t *testing.T) {
	e := New()
	s := deck.Slide{Index: 9, Timeline: make([]deck.Phase, 3)}
	e.Dispatch(s, t0)

	// At 300ms phase 0 is moving, phase 2 has not started.
	p0 := e.Style(9, TargetPhase, 0, at(300))
	p2 := e.Style(9, TargetPhase, 2, at(300))
	if p0.Opacity <= 0 {
		t.Fatalf("phase 0 should be fading in: %+v", p0)
	}
	if p2.Opacity != 0 || p2.TranslateX != -20 {
		t.Fatalf("phase 2 should be waiting: %+v", p2)
	}
	if !e.Running(at(899)) || e.Running(at(900)) {
		t.Fatalf("last phase ends at 400+500ms")
	}
}

func TestDispatch_MissingTargetIsNoop(t *testing.T) {
	e := New()
	cases := []deck.Slide{
		{Index: 0},
		{Index: 7},
		{Index: 8, Charts: []deck.Chart{{Hidden: true}}},
		{Index: 9},
		{Index: 3, Title: "plain"},
		{Index: 0, Title: "disabled", Effect: deck.EffectNone},
	}
	for _, s := range cases {
		if e.Dispatch(s, t0) {
			t.Fatalf("slide %+v should not animate", s)
		}
		if e.Running(t0) {
			t.Fatalf("slide %d: nothing should be running", s.Index)
		}
	}
}

func TestDispatch_OverrideAndOtherSlide(t *testing.T) {
	e := New()
	s := deck.Slide{Index: 4, Title: "custom", Effect: deck.EffectTitle}
	if !e.Dispatch(s, t0) {
		t.Fatalf("override should animate")
	}
	if got := e.Style(5, TargetTitle, 0, at(0)); got != Rest {
		t.Fatalf("other slide must stay at rest, got %+v", got)
	}
	e.Stop()
	if e.Running(t0) {
		t.Fatalf("stopped engine still running")
	}
}

func TestCellConversion(t *testing.T) {
	if Columns(-20) != -3 || Columns(0) != 0 {
		t.Fatalf("Columns(-20) = %d", Columns(-20))
	}
	if Rows(20) != 1 || Rows(7) != 0 {
		t.Fatalf("Rows(20) = %d", Rows(20))
	}
	if VisibilityOf(0) != Hidden || VisibilityOf(0.5) != Faint || VisibilityOf(1) != Opaque {
		t.Fatalf("visibility buckets wrong")
	}
}
