package flex

// childAdapter presents a child in longitudinal/lateral terms so that one
// distribution algorithm serves both orientations.
type childAdapter interface {
	DesiredSize() FlexSize
	Measure(available FlexSize)
	Arrange(available, offset FlexSize)
}

func newAdapter(o Orientation, c *Child) childAdapter {
	if o == Vertical {
		return verticalChild{c}
	}
	return horizontalChild{c}
}

// horizontalChild maps longitudinal to width and lateral to height.
type horizontalChild struct{ *Child }

func (h horizontalChild) DesiredSize() FlexSize {
	d := h.Element.DesiredSize()
	return FlexSize{Longitudinal: d.Width, Lateral: d.Height}
}

func (h horizontalChild) Measure(available FlexSize) {
	h.Element.Measure(Size{Width: available.Longitudinal, Height: available.Lateral})
}

func (h horizontalChild) Arrange(available, offset FlexSize) {
	y, height := crossPlacement(h.alignment(Horizontal), available.Lateral, h.DesiredSize().Lateral)
	h.Element.Arrange(Rect{
		X:      offset.Longitudinal,
		Y:      offset.Lateral + y,
		Width:  available.Longitudinal,
		Height: height,
	})
}

// verticalChild maps longitudinal to height and lateral to width.
type verticalChild struct{ *Child }

func (v verticalChild) DesiredSize() FlexSize {
	d := v.Element.DesiredSize()
	return FlexSize{Longitudinal: d.Height, Lateral: d.Width}
}

func (v verticalChild) Measure(available FlexSize) {
	v.Element.Measure(Size{Width: available.Lateral, Height: available.Longitudinal})
}

func (v verticalChild) Arrange(available, offset FlexSize) {
	x, width := crossPlacement(v.alignment(Vertical), available.Lateral, v.DesiredSize().Lateral)
	v.Element.Arrange(Rect{
		X:      offset.Lateral + x,
		Y:      offset.Longitudinal,
		Width:  width,
		Height: available.Longitudinal,
	})
}

// crossPlacement returns the lateral offset and extent of a child with the
// given desired lateral size inside extent. The desired size never exceeds
// the extent.
func crossPlacement(align Alignment, extent, desired float64) (offset, size float64) {
	extent = nonNegative(extent)
	size = nonNegative(desired)
	if size > extent {
		size = extent
	}
	switch align {
	case AlignStart:
		return 0, size
	case AlignCenter:
		return (extent - size) / 2, size
	case AlignEnd:
		return extent - size, size
	default:
		return 0, extent
	}
}
