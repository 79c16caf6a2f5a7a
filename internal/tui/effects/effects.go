// Package effects runs the short entrance animations attached to slides.
//
// Animations are described in CSS terms (opacity, translate in pixels,
// scale) and interpolated against wall-clock time; the renderer maps the
// resulting Style onto terminal cells. Nothing here touches navigation.
package effects

import (
	"time"

	"github.com/interpretive-systems/slidium/internal/deck"
)

// Target identifies the element kind an animation applies to.
type Target int

const (
	TargetTitle Target = iota
	TargetChart
	TargetPhase
)

// Style is the interpolated presentation of one element.
type Style struct {
	Opacity    float64
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// Rest is the style of an element with no running animation.
var Rest = Style{Opacity: 1, Scale: 1}

// DefaultTable maps slide indices to their effect when the slide does not
// name one itself.
var DefaultTable = map[int]deck.EffectKind{
	0: deck.EffectTitle,
	7: deck.EffectCharts,
	8: deck.EffectCharts,
	9: deck.EffectTimeline,
}

const (
	titleDelay    = 100 * time.Millisecond
	titleDuration = 800 * time.Millisecond
	titleOffsetY  = 20
	chartDelay    = 100 * time.Millisecond
	chartDuration = 300 * time.Millisecond
	chartScale    = 0.95
	phaseStagger  = 200 * time.Millisecond
	phaseDuration = 500 * time.Millisecond
	phaseOffsetX  = -20
)

type animation struct {
	target   Target
	index    int
	from     Style
	to       Style
	delay    time.Duration
	duration time.Duration
}

// Engine holds the animations of the slide entered last.
type Engine struct {
	slide   int
	started time.Time
	anims   []animation
}

// New returns an idle engine.
func New() *Engine {
	return &Engine{slide: -1}
}

// KindFor returns the effect for s, falling back to DefaultTable.
func KindFor(s deck.Slide) deck.EffectKind {
	if s.Effect != deck.EffectDefault {
		return s.Effect
	}
	return DefaultTable[s.Index]
}

// Dispatch starts the entrance effect for s, replacing whatever was
// running. It reports whether any animation was started; a slide without
// the effect's target elements starts nothing.
func (e *Engine) Dispatch(s deck.Slide, now time.Time) bool {
	e.slide = s.Index
	e.started = now
	e.anims = e.anims[:0]

	switch KindFor(s) {
	case deck.EffectTitle:
		if s.HasTitleBlock() {
			e.anims = append(e.anims, animation{
				target:   TargetTitle,
				from:     Style{Opacity: 0, TranslateY: titleOffsetY, Scale: 1},
				to:       Rest,
				delay:    titleDelay,
				duration: titleDuration,
			})
		}
	case deck.EffectCharts:
		for i := range s.VisibleCharts() {
			e.anims = append(e.anims, animation{
				target:   TargetChart,
				index:    i,
				from:     Style{Opacity: 1, Scale: chartScale},
				to:       Rest,
				delay:    chartDelay,
				duration: chartDuration,
			})
		}
	case deck.EffectTimeline:
		for i := range s.Timeline {
			e.anims = append(e.anims, animation{
				target:   TargetPhase,
				index:    i,
				from:     Style{Opacity: 0, TranslateX: phaseOffsetX, Scale: 1},
				to:       Rest,
				delay:    time.Duration(i) * phaseStagger,
				duration: phaseDuration,
			})
		}
	}
	return len(e.anims) > 0
}

// Style returns the style of element i of kind t on slide at now.
func (e *Engine) Style(slide int, t Target, i int, now time.Time) Style {
	if slide != e.slide {
		return Rest
	}
	for _, a := range e.anims {
		if a.target == t && a.index == i {
			return a.at(now.Sub(e.started))
		}
	}
	return Rest
}

// Running reports whether any animation has not finished at now.
func (e *Engine) Running(now time.Time) bool {
	elapsed := now.Sub(e.started)
	for _, a := range e.anims {
		if elapsed < a.delay+a.duration {
			return true
		}
	}
	return false
}

// Stop drops all animations, leaving every element at rest.
func (e *Engine) Stop() {
	e.anims = e.anims[:0]
}

func (a animation) at(elapsed time.Duration) Style {
	if elapsed <= a.delay {
		return a.from
	}
	if a.duration <= 0 || elapsed >= a.delay+a.duration {
		return a.to
	}
	p := easeOut(float64(elapsed-a.delay) / float64(a.duration))
	return Style{
		Opacity:    lerp(a.from.Opacity, a.to.Opacity, p),
		TranslateX: lerp(a.from.TranslateX, a.to.TranslateX, p),
		TranslateY: lerp(a.from.TranslateY, a.to.TranslateY, p),
		Scale:      lerp(a.from.Scale, a.to.Scale, p),
	}
}

func easeOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}
