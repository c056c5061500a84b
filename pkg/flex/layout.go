package flex

// Slot is the region an Arrange pass allots to a child, before lateral
// alignment is applied.
type Slot struct {
	Child *Child
	Rect  Rect
}

// pass holds the per-call state shared by Measure, Arrange and Plan.
type pass struct {
	adapters []childAdapter
	content  FlexSize
	spacing  float64
}

func (c *Container) begin(available FlexSize) pass {
	p := pass{adapters: make([]childAdapter, len(c.children))}
	for i, ch := range c.children {
		p.adapters[i] = newAdapter(c.Orientation, ch)
	}
	p.content, p.spacing = AvailableContentSize(available, c.flowCount(), c.spacing())
	return p
}

// items snapshots the children's current desired sizes.
func (c *Container) items(p pass) []Item {
	items := make([]Item, len(c.children))
	for i, ch := range c.children {
		items[i] = Item{Desired: p.adapters[i].DesiredSize(), Attributes: ch.Attributes}
	}
	return items
}

func desiredSizes(items []Item) []FlexSize {
	out := make([]FlexSize, len(items))
	for i, it := range items {
		out[i] = it.Desired
	}
	return out
}

// Measure computes the container's desired size for the available size.
//
// Every child that does not skip measurement is measured at the content
// size. The desired content size is taken from that first measurement; the
// flexible space is then distributed and in-flow children are measured again
// at their allotment. The returned size is the desired content size plus the
// total spacing, never more than available. Redistribution changes how space
// is shared, not how much the container asks for.
func (c *Container) Measure(available Size) Size {
	o := c.Orientation
	avail := clampFlex(o.ToFlex(available))
	if len(c.children) == 0 {
		return o.ToSize(avail)
	}

	p := c.begin(avail)
	for i, ch := range c.children {
		if ch.SkipMeasure {
			continue
		}
		p.adapters[i].Measure(p.content)
	}

	items := c.items(p)
	desired := DesiredContentSize(desiredSizes(items), p.content)
	total := FlexSize{
		Longitudinal: desired.Longitudinal + p.spacing,
		Lateral:      desired.Lateral,
	}

	allot := Allocate(items, p.content)
	for i, ch := range c.children {
		if !ch.InFlow() || ch.SkipMeasure {
			continue
		}
		p.adapters[i].Measure(FlexSize{Longitudinal: allot[i], Lateral: p.content.Lateral})
	}

	return o.ToSize(minFlex(total, avail))
}

// Arrange commits a rectangle on every child for the final size and returns
// final. Children are not measured; their current desired sizes drive the
// distribution. When the children desire no longitudinal space at all,
// Arrange returns without touching them.
func (c *Container) Arrange(final Size) Size {
	slots, ok := c.plan(clampFlex(c.Orientation.ToFlex(final)))
	if !ok {
		return final
	}
	for _, s := range slots {
		s.adapter.Arrange(s.size, s.offset)
	}
	return final
}

// Plan reports the slots an Arrange with the same final size would allot,
// without arranging anything. It returns nil when Arrange would be a no-op.
func (c *Container) Plan(final Size) []Slot {
	slots, ok := c.plan(clampFlex(c.Orientation.ToFlex(final)))
	if !ok {
		return nil
	}
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{Child: c.children[i], Rect: c.Orientation.Rect(s.offset, s.size)}
	}
	return out
}

type flexSlot struct {
	adapter childAdapter
	offset  FlexSize
	size    FlexSize
}

func (c *Container) plan(final FlexSize) ([]flexSlot, bool) {
	if len(c.children) == 0 {
		return nil, false
	}
	p := c.begin(final)
	items := c.items(p)
	if contentSum(desiredSizes(items)).Longitudinal == 0 {
		return nil, false
	}

	allot := Allocate(items, p.content)
	slots := make([]flexSlot, len(items))
	gap := c.spacing()
	var l float64
	for i, it := range items {
		slots[i].adapter = p.adapters[i]
		if !it.InFlow() {
			slots[i].size = p.content
			continue
		}
		slots[i].offset = FlexSize{Longitudinal: l}
		slots[i].size = FlexSize{Longitudinal: allot[i], Lateral: p.content.Lateral}
		l += allot[i] + gap
	}
	return slots, true
}
