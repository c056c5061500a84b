package flex

// Container lays out its children along one axis.
type Container struct {
	// Orientation selects the main axis.
	Orientation Orientation
	// Spacing is the gap inserted between adjacent in-flow children.
	Spacing float64

	children []*Child
}

// New returns an empty container with the given orientation.
func New(o Orientation) *Container {
	return &Container{Orientation: o}
}

// NewRow returns an empty horizontal container.
func NewRow() *Container { return New(Horizontal) }

// NewColumn returns an empty vertical container.
func NewColumn() *Container { return New(Vertical) }

// Add appends e with default attributes modified by opts and returns its
// child record. Order of addition is placement order.
func (c *Container) Add(e Element, opts ...ChildOption) *Child {
	ch := &Child{Element: e, Attributes: DefaultAttributes()}
	for _, opt := range opts {
		opt(&ch.Attributes)
	}
	c.children = append(c.children, ch)
	return ch
}

// Children returns the child records in placement order.
// The slice is shared with the container.
func (c *Container) Children() []*Child { return c.children }

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// Child returns the record for element e.
func (c *Container) Child(e Element) (*Child, bool) {
	for _, ch := range c.children {
		if ch.Element == e {
			return ch, true
		}
	}
	return nil, false
}

// SetSpacing sets the gap between in-flow children. Negative values become zero.
func (c *Container) SetSpacing(s float64) { c.Spacing = nonNegative(s) }

// SetFlex sets the flex attribute of e. It reports whether e is a child.
func (c *Container) SetFlex(e Element, v bool) bool {
	return c.update(e, func(a *Attributes) { a.Flex = v })
}

// Flex returns the flex attribute of e, or false if e is not a child.
func (c *Container) Flex(e Element) bool {
	return c.attrs(e).Flex
}

// SetGrow sets the grow weight of e. It reports whether e is a child.
func (c *Container) SetGrow(e Element, grow int) bool {
	return c.update(e, func(a *Attributes) { a.Grow = grow })
}

// Grow returns the grow weight of e, or DefaultGrow if e is not a child.
func (c *Container) Grow(e Element) int {
	return c.attrs(e).Grow
}

// SetPosition sets the position of e. It reports whether e is a child.
func (c *Container) SetPosition(e Element, p Position) bool {
	return c.update(e, func(a *Attributes) { a.Position = p })
}

// PositionOf returns the position of e, or Relative if e is not a child.
func (c *Container) PositionOf(e Element) Position {
	return c.attrs(e).Position
}

// SetSkipMeasure sets the skip-measure attribute of e. It reports whether e is a child.
func (c *Container) SetSkipMeasure(e Element, v bool) bool {
	return c.update(e, func(a *Attributes) { a.SkipMeasure = v })
}

// SkipMeasure returns the skip-measure attribute of e.
func (c *Container) SkipMeasure(e Element) bool {
	return c.attrs(e).SkipMeasure
}

// SetAlign sets the lateral alignment of e. It reports whether e is a child.
func (c *Container) SetAlign(e Element, al Alignment) bool {
	return c.update(e, func(a *Attributes) { a.Align = al })
}

// Align returns the lateral alignment attribute of e.
func (c *Container) Align(e Element) Alignment {
	return c.attrs(e).Align
}

func (c *Container) attrs(e Element) Attributes {
	if ch, ok := c.Child(e); ok {
		return ch.Attributes
	}
	return DefaultAttributes()
}

func (c *Container) update(e Element, fn func(*Attributes)) bool {
	ch, ok := c.Child(e)
	if ok {
		fn(&ch.Attributes)
	}
	return ok
}

func (c *Container) spacing() float64 { return nonNegative(c.Spacing) }

// flowCount returns the number of in-flow children.
func (c *Container) flowCount() int {
	n := 0
	for _, ch := range c.children {
		if ch.InFlow() {
			n++
		}
	}
	return n
}
