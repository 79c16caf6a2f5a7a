package components

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/slidium/internal/deck"
	tuiansi "github.com/interpretive-systems/slidium/internal/tui/ansi"
	"github.com/interpretive-systems/slidium/internal/tui/effects"
	"github.com/interpretive-systems/slidium/internal/tui/widgets"
)

const (
	timelineIndent = 4
	detailIndent   = 6
	chartIndent    = 2
)

// Styler returns the animated style of a slide element.
type Styler interface {
	Style(slide int, t effects.Target, i int, now time.Time) effects.Style
}

// Styles are the lipgloss styles slide content is drawn with.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Card     lipgloss.Style
	Focus    lipgloss.Style
	Bar      lipgloss.Style
	Muted    lipgloss.Style
}

// BuildOptions control how a slide is drawn.
type BuildOptions struct {
	// Styler supplies effect styles; nil draws everything at rest.
	Styler Styler
	Now    time.Time
	// Cards holds the expansion state; nil draws every card expanded
	// without a close control.
	Cards *widgets.Cards
	// Highlight post-processes the finished lines, e.g. search matches.
	Highlight func([]string) []string
}

type cardHit struct {
	line       int
	card       int
	closeStart int
	closeEnd   int
}

// SlideView draws the active slide into a scrollable viewport.
type SlideView struct {
	viewport viewport.Model
	styles   Styles
	mdStyle  string
	md       *glamour.TermRenderer
	mdWidth  int
	bodies   map[int]string
	content  []string
	cardHits []cardHit
}

// NewSlideView creates a slide view rendering markdown with the named
// glamour standard style.
func NewSlideView(styles Styles, mdStyle string) *SlideView {
	if mdStyle == "" {
		mdStyle = "dark"
	}
	return &SlideView{
		viewport: viewport.New(0, 0),
		styles:   styles,
		mdStyle:  mdStyle,
		bodies:   make(map[int]string),
	}
}

// SetSize updates the viewport dimensions.
func (v *SlideView) SetSize(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height
}

// Width returns the viewport width.
func (v *SlideView) Width() int { return v.viewport.Width }

// Height returns the viewport height.
func (v *SlideView) Height() int { return v.viewport.Height }

// Reset drops rendered slide bodies. Call it when a different deck is
// installed, since bodies are cached by slide index.
func (v *SlideView) Reset() {
	v.bodies = make(map[int]string)
	v.content = nil
	v.cardHits = nil
}

// GotoTop scrolls to the top of the slide.
func (v *SlideView) GotoTop() { v.viewport.GotoTop() }

// YOffset returns the first visible content line.
func (v *SlideView) YOffset() int { return v.viewport.YOffset }

// ScrollDown scrolls n lines down.
func (v *SlideView) ScrollDown(n int) { v.viewport.LineDown(n) }

// ScrollUp scrolls n lines up.
func (v *SlideView) ScrollUp(n int) { v.viewport.LineUp(n) }

// View returns the viewport view.
func (v *SlideView) View() string { return v.viewport.View() }

// Content returns the lines set by the last Build.
func (v *SlideView) Content() []string { return v.content }

// Build renders s and replaces the viewport content, keeping the scroll
// position.
func (v *SlideView) Build(s deck.Slide, opt BuildOptions) []string {
	lines, hits := v.render(s, opt)
	v.content = lines
	v.cardHits = hits
	v.viewport.SetContent(strings.Join(lines, "\n"))
	return lines
}

// Lines renders s without touching the viewport.
func (v *SlideView) Lines(s deck.Slide, opt BuildOptions) []string {
	lines, _ := v.render(s, opt)
	return lines
}

// CardAt maps a click at viewport row/col to a card. closeHit is true when
// the click landed on the card's close control.
func (v *SlideView) CardAt(row, col int) (card int, closeHit bool, ok bool) {
	line := v.viewport.YOffset + row
	for _, h := range v.cardHits {
		if h.line != line {
			continue
		}
		if h.closeEnd > h.closeStart && col >= h.closeStart && col < h.closeEnd {
			return h.card, true, true
		}
		return h.card, false, true
	}
	return 0, false, false
}

func (v *SlideView) render(s deck.Slide, opt BuildOptions) ([]string, []cardHit) {
	width := v.viewport.Width
	if width < 20 {
		width = 20
	}
	style := func(t effects.Target, i int) effects.Style {
		if opt.Styler == nil {
			return effects.Rest
		}
		return opt.Styler.Style(s.Index, t, i, opt.Now)
	}

	lines := make([]string, 0, 64)
	if s.HasTitleBlock() {
		lines = append(lines, v.titleBlock(s, style(effects.TargetTitle, 0), width)...)
		lines = append(lines, "")
	}
	lines = append(lines, v.body(s, width)...)

	var hits []cardHit
	if len(s.Cards) > 0 {
		lines = append(lines, "")
		var cardLines []string
		cardLines, hits = v.cards(s, opt.Cards, width, len(lines))
		lines = append(lines, cardLines...)
	}
	for i, c := range s.VisibleCharts() {
		lines = append(lines, "")
		lines = append(lines, v.chart(c, style(effects.TargetChart, i), width)...)
	}
	if len(s.Timeline) > 0 {
		lines = append(lines, "")
		for i, p := range s.Timeline {
			lines = append(lines, v.phase(p, style(effects.TargetPhase, i), width)...)
		}
	}
	if opt.Highlight != nil {
		lines = opt.Highlight(lines)
	}
	return lines, hits
}

func (v *SlideView) titleBlock(s deck.Slide, st effects.Style, width int) []string {
	var block []string
	for i := 0; i < effects.Rows(st.TranslateY); i++ {
		block = append(block, "")
	}
	vis := effects.VisibilityOf(st.Opacity)
	add := func(text string, base lipgloss.Style) {
		if strings.TrimSpace(text) == "" {
			return
		}
		styled := base.Render(text)
		switch vis {
		case effects.Hidden:
			styled = tuiansi.Blank(styled)
		case effects.Faint:
			styled = base.Faint(true).Render(text)
		}
		block = append(block, lipgloss.PlaceHorizontal(width, lipgloss.Center, styled))
	}
	add(s.Title, v.styles.Title)
	add(s.Subtitle, v.styles.Subtitle)
	return block
}

func (v *SlideView) body(s deck.Slide, width int) []string {
	if strings.TrimSpace(s.Body) == "" {
		return nil
	}
	if width != v.mdWidth || v.md == nil {
		v.bodies = make(map[int]string)
		v.mdWidth = width
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(v.mdStyle),
			glamour.WithWordWrap(width-4),
		)
		if err != nil {
			log.Printf("markdown renderer: %v", err)
			v.md = nil
		} else {
			v.md = r
		}
	}
	out, ok := v.bodies[s.Index]
	if !ok {
		out = s.Body
		if v.md != nil {
			rendered, err := v.md.Render(s.Body)
			if err != nil {
				log.Printf("render slide %d: %v", s.Index+1, err)
			} else {
				out = rendered
			}
		}
		out = strings.Trim(out, "\n")
		v.bodies[s.Index] = out
	}
	return strings.Split(out, "\n")
}

func (v *SlideView) cards(s deck.Slide, state *widgets.Cards, width, offset int) ([]string, []cardHit) {
	lines := make([]string, 0, len(s.Cards)*2)
	hits := make([]cardHit, 0, len(s.Cards))
	for i, c := range s.Cards {
		expanded := state == nil || state.Expanded(i)
		prefix := "  "
		base := v.styles.Card
		if state != nil && state.Focus() == i {
			prefix = "> "
			base = v.styles.Focus
		}
		marker := "▸"
		if expanded {
			marker = "▾"
		}
		header := prefix + base.Render(marker+" "+c.Title)
		if c.Summary != "" {
			header += v.styles.Muted.Render(" — " + c.Summary)
		}
		hit := cardHit{line: offset + len(lines), card: i}
		if expanded && state != nil {
			header += "  "
			hit.closeStart = lipgloss.Width(header)
			header += base.Render("[x]")
			hit.closeEnd = lipgloss.Width(header)
		}
		hits = append(hits, hit)
		lines = append(lines, header)
		if expanded && strings.TrimSpace(c.Detail) != "" {
			detail := strings.Split(strings.TrimSpace(c.Detail), "\n")
			for _, l := range tuiansi.WrapLines(detail, width-detailIndent) {
				lines = append(lines, strings.Repeat(" ", detailIndent)+l)
			}
		}
	}
	return lines, hits
}

func (v *SlideView) chart(c deck.Chart, st effects.Style, width int) []string {
	full := width - 2*chartIndent
	scaled := int(float64(full) * st.Scale)
	inset := chartIndent + (full-scaled)/2

	title := "◆ " + c.Title
	if c.Image != "" && c.Width > 0 {
		title += v.styles.Muted.Render(fmt.Sprintf(" (%s, %dx%d)", c.Image, c.Width, c.Height))
	}
	lines := []string{tuiansi.Indent(v.styles.Title.Render(title), inset)}
	if len(c.Data) == 0 {
		return lines
	}

	labelW, maxV, sum := 0, 0.0, 0.0
	for _, d := range c.Data {
		if w := lipgloss.Width(d.Label); w > labelW {
			labelW = w
		}
		if d.Value > maxV {
			maxV = d.Value
		}
		sum += d.Value
	}
	barMax := scaled - labelW - 12
	if barMax < 1 {
		barMax = 1
	}
	for _, d := range c.Data {
		frac, value := 0.0, fmt.Sprintf("%g", d.Value)
		switch c.Kind {
		case deck.ChartPie:
			if sum > 0 {
				frac = d.Value / sum
			}
			value = fmt.Sprintf("%.0f%%", frac*100)
		default:
			if maxV > 0 {
				frac = d.Value / maxV
			}
		}
		n := int(frac*float64(barMax) + 0.5)
		label := d.Label + strings.Repeat(" ", labelW-lipgloss.Width(d.Label))
		line := label + " " + v.styles.Bar.Render(strings.Repeat("█", n)) + " " + value
		lines = append(lines, tuiansi.Indent(line, inset))
	}
	return lines
}

func (v *SlideView) phase(p deck.Phase, st effects.Style, width int) []string {
	indent := timelineIndent + effects.Columns(st.TranslateX)
	if indent < 0 {
		indent = 0
	}
	head := v.styles.Title.Render("● "+p.Name) + "  " + v.styles.Muted.Render(p.Period)
	lines := []string{head}
	if p.Detail != "" {
		lines = append(lines, "  "+p.Detail)
	}
	for i, l := range lines {
		switch effects.VisibilityOf(st.Opacity) {
		case effects.Hidden:
			l = tuiansi.Blank(l)
		case effects.Faint:
			l = lipgloss.NewStyle().Faint(true).Render(tuiansi.Strip(l))
		}
		lines[i] = tuiansi.Indent(l, indent)
	}
	return lines
}
