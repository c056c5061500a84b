package flex

import (
	"fmt"
	"math"
)

// Size is a physical extent in user units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is a physical rectangle relative to the parent container's origin.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Right returns the horizontal end of the rectangle.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the vertical end of the rectangle.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// FlexSize is an extent expressed along a container's axes.
type FlexSize struct {
	Longitudinal float64
	Lateral      float64
}

// Orientation selects which physical dimension is longitudinal.
type Orientation uint8

const (
	// Horizontal lays children out left to right; longitudinal is width.
	Horizontal Orientation = iota
	// Vertical lays children out top to bottom; longitudinal is height.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// ToFlex converts a physical size into o's axis terms.
func (o Orientation) ToFlex(s Size) FlexSize {
	if o == Vertical {
		return FlexSize{Longitudinal: s.Height, Lateral: s.Width}
	}
	return FlexSize{Longitudinal: s.Width, Lateral: s.Height}
}

// ToSize converts an axis-relative size back into physical terms.
func (o Orientation) ToSize(s FlexSize) Size {
	if o == Vertical {
		return Size{Width: s.Lateral, Height: s.Longitudinal}
	}
	return Size{Width: s.Longitudinal, Height: s.Lateral}
}

// Rect builds a physical rectangle from an axis-relative origin and size.
func (o Orientation) Rect(origin, size FlexSize) Rect {
	p := o.ToSize(origin)
	s := o.ToSize(size)
	return Rect{X: p.Width, Y: p.Height, Width: s.Width, Height: s.Height}
}

// nonNegative clamps negative and NaN values to zero.
func nonNegative(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}

func clampFlex(s FlexSize) FlexSize {
	return FlexSize{Longitudinal: nonNegative(s.Longitudinal), Lateral: nonNegative(s.Lateral)}
}

func minFlex(a, b FlexSize) FlexSize {
	return FlexSize{
		Longitudinal: math.Min(a.Longitudinal, b.Longitudinal),
		Lateral:      math.Min(a.Lateral, b.Lateral),
	}
}
