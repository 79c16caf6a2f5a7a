package widgets

// Cards is a set of expandable cards where at most one is expanded.
type Cards struct {
	expanded []bool
	focus    int
}

// NewCards creates n collapsed cards.
func NewCards(n int) *Cards {
	return &Cards{expanded: make([]bool, n)}
}

// Len returns the number of cards.
func (c *Cards) Len() int { return len(c.expanded) }

// Expanded reports whether card i is expanded.
func (c *Cards) Expanded(i int) bool {
	return i >= 0 && i < len(c.expanded) && c.expanded[i]
}

// ExpandedIndex returns the expanded card, or -1.
func (c *Cards) ExpandedIndex() int {
	for i, e := range c.expanded {
		if e {
			return i
		}
	}
	return -1
}

// Activate collapses every card and expands i.
func (c *Cards) Activate(i int) {
	if i < 0 || i >= len(c.expanded) {
		return
	}
	for j := range c.expanded {
		c.expanded[j] = false
	}
	c.expanded[i] = true
	c.focus = i
}

// Close collapses card i without expanding any other.
func (c *Cards) Close(i int) {
	if i < 0 || i >= len(c.expanded) {
		return
	}
	c.expanded[i] = false
}

// Focus returns the card keyboard activation applies to.
func (c *Cards) Focus() int { return c.focus }

// FocusNext moves keyboard focus forward, wrapping.
func (c *Cards) FocusNext() {
	if len(c.expanded) == 0 {
		return
	}
	c.focus = (c.focus + 1) % len(c.expanded)
}

// FocusPrev moves keyboard focus back, wrapping.
func (c *Cards) FocusPrev() {
	if len(c.expanded) == 0 {
		return
	}
	c.focus = (c.focus - 1 + len(c.expanded)) % len(c.expanded)
}
