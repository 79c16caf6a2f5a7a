// Package deck holds the slide deck model, its YAML loader and the
// navigation state that every other part of slidium reads from.
package deck

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_deck.yaml
var defaultDeckYAML []byte

var (
	ErrEmptyDeck         = errors.New("deck has no slides")
	ErrUnknownChartKind  = errors.New("unknown chart kind")
	ErrUnknownEffectKind = errors.New("unknown effect kind")
)

// EffectKind names the cosmetic entrance effect of a slide.
type EffectKind string

const (
	EffectDefault  EffectKind = ""
	EffectNone     EffectKind = "none"
	EffectTitle    EffectKind = "title"
	EffectCharts   EffectKind = "charts"
	EffectTimeline EffectKind = "timeline"
)

// ChartKind is how a chart's data is drawn.
type ChartKind string

const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
)

// Deck is an ordered, fixed-length sequence of slides.
type Deck struct {
	Title  string  `yaml:"title"`
	Slides []Slide `yaml:"slides"`

	// Dir is the directory chart images are resolved against.
	Dir string `yaml:"-"`
}

// Slide is one addressable unit of presentation content.
type Slide struct {
	Index    int        `yaml:"-"`
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Body     string     `yaml:"body"`
	Notes    string     `yaml:"notes"`
	Effect   EffectKind `yaml:"effect"`
	Charts   []Chart    `yaml:"charts"`
	Timeline []Phase    `yaml:"timeline"`
	Cards    []Card     `yaml:"cards"`
}

// Chart is a small data chart, optionally backed by an image file.
type Chart struct {
	Title string    `yaml:"title"`
	Kind  ChartKind `yaml:"kind"`
	Image string    `yaml:"image"`
	Data  []Datum   `yaml:"data"`

	// Hidden is set when Image could not be loaded.
	Hidden bool `yaml:"-"`
	// Width and Height are the decoded image dimensions, if any.
	Width  int `yaml:"-"`
	Height int `yaml:"-"`
}

// Datum is a labelled chart value.
type Datum struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

// Phase is one step of a timeline.
type Phase struct {
	Name   string `yaml:"name"`
	Period string `yaml:"period"`
	Detail string `yaml:"detail"`
}

// Card is an expandable problem/need card.
type Card struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Detail  string `yaml:"detail"`
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	return len(d.Slides)
}

// Slide returns the slide at i and whether i is in range.
func (d *Deck) Slide(i int) (Slide, bool) {
	if i < 0 || i >= len(d.Slides) {
		return Slide{}, false
	}
	return d.Slides[i], true
}

// HasTitleBlock reports whether the slide carries a title block.
func (s Slide) HasTitleBlock() bool {
	return strings.TrimSpace(s.Title) != "" || strings.TrimSpace(s.Subtitle) != ""
}

// VisibleCharts returns the charts that were not hidden by a failed image.
func (s Slide) VisibleCharts() []Chart {
	out := make([]Chart, 0, len(s.Charts))
	for _, c := range s.Charts {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// PlainText returns the slide's textual content, without title or notes.
func (s Slide) PlainText() string {
	var parts []string
	if body := strings.TrimSpace(s.Body); body != "" {
		parts = append(parts, body)
	}
	for _, c := range s.Cards {
		parts = append(parts, strings.TrimSpace(c.Title+"\n"+c.Summary+"\n"+c.Detail))
	}
	for _, p := range s.Timeline {
		parts = append(parts, strings.TrimSpace(p.Name+" "+p.Period+"\n"+p.Detail))
	}
	for _, c := range s.VisibleCharts() {
		parts = append(parts, c.Title)
		for _, d := range c.Data {
			parts = append(parts, fmt.Sprintf("%s: %g", d.Label, d.Value))
		}
	}
	return strings.Join(parts, "\n")
}

// Load reads a deck from a YAML file. Chart image paths are resolved
// relative to the file's directory.
func Load(path string) (*Deck, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Dir = filepath.Dir(path)
	return d, nil
}

// Default returns the built-in 12-slide deck.
func Default() *Deck {
	d, err := Parse(defaultDeckYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded deck: %v", err))
	}
	d.Dir = "."
	return d
}

// Parse decodes and validates a YAML deck.
func Parse(b []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	for i := range d.Slides {
		d.Slides[i].Index = i
		for j := range d.Slides[i].Charts {
			if d.Slides[i].Charts[j].Kind == "" {
				d.Slides[i].Charts[j].Kind = ChartBar
			}
		}
	}
	return &d, nil
}

func (d *Deck) validate() error {
	if len(d.Slides) == 0 {
		return ErrEmptyDeck
	}
	for i, s := range d.Slides {
		switch s.Effect {
		case EffectDefault, EffectNone, EffectTitle, EffectCharts, EffectTimeline:
		default:
			return fmt.Errorf("slide %d: %w: %q", i+1, ErrUnknownEffectKind, s.Effect)
		}
		for _, c := range s.Charts {
			switch c.Kind {
			case "", ChartBar, ChartPie:
			default:
				return fmt.Errorf("slide %d chart %q: %w: %q", i+1, c.Title, ErrUnknownChartKind, c.Kind)
			}
		}
	}
	return nil
}
