// Package box provides a minimal host element for the flex layout core.
//
// A Box is a named rectangle with an intrinsic size. It may own a
// [flex.Container], in which case its children are Boxes too and the box
// measures and arranges them through the container. Documents, the CLI and
// the tests build trees of boxes; the core only ever sees [flex.Element].
package box

import (
	"math"

	"github.com/matzehuels/flexlayout/pkg/flex"
)

// Box is a host element with an intrinsic size and an optional nested layout.
type Box struct {
	Name string
	// Intrinsic is the size the box wants. A zero dimension means "whatever
	// the nested layout wants" for container boxes and zero for leaves.
	Intrinsic flex.Size
	// HAlign and VAlign are the box's native alignments, consulted by a
	// parent container when the child's Align attribute is AlignAuto.
	HAlign, VAlign flex.Alignment
	// Layout lays out the box's children. Nil for leaves.
	Layout *flex.Container

	desired  flex.Size
	rect     flex.Rect
	measured int
	arranged bool
}

var (
	_ flex.Element = (*Box)(nil)
	_ flex.Aligner = (*Box)(nil)
)

// New returns a leaf box. Its cached desired size starts out as its
// intrinsic size.
func New(name string, width, height float64) *Box {
	s := flex.Size{Width: width, Height: height}
	return &Box{Name: name, Intrinsic: s, desired: s}
}

// NewContainer returns a box that lays out children along o.
func NewContainer(name string, o flex.Orientation, spacing float64) *Box {
	b := &Box{Name: name, Layout: flex.New(o)}
	b.Layout.SetSpacing(spacing)
	return b
}

// Append adds child to the box's layout, creating a horizontal layout if the
// box has none yet.
func (b *Box) Append(child *Box, opts ...flex.ChildOption) *flex.Child {
	if b.Layout == nil {
		b.Layout = flex.NewRow()
	}
	return b.Layout.Add(child, opts...)
}

// Measure implements flex.Element.
func (b *Box) Measure(available flex.Size) {
	b.measured++
	avail := flex.Size{Width: math.Max(available.Width, 0), Height: math.Max(available.Height, 0)}

	if b.Layout == nil {
		b.desired = flex.Size{
			Width:  math.Min(b.Intrinsic.Width, avail.Width),
			Height: math.Min(b.Intrinsic.Height, avail.Height),
		}
		return
	}

	d := b.Layout.Measure(avail)
	if b.Intrinsic.Width > 0 {
		d.Width = math.Min(b.Intrinsic.Width, avail.Width)
	}
	if b.Intrinsic.Height > 0 {
		d.Height = math.Min(b.Intrinsic.Height, avail.Height)
	}
	b.desired = d
}

// Arrange implements flex.Element. r is relative to the parent box.
func (b *Box) Arrange(r flex.Rect) {
	b.rect = r
	b.arranged = true
	if b.Layout != nil {
		b.Layout.Arrange(r.Size())
	}
}

// DesiredSize implements flex.Element.
func (b *Box) DesiredSize() flex.Size { return b.desired }

// CrossAlignment implements flex.Aligner. A horizontal parent asks for the
// vertical alignment and a vertical parent for the horizontal one.
func (b *Box) CrossAlignment(o flex.Orientation) flex.Alignment {
	if o == flex.Horizontal {
		return b.VAlign
	}
	return b.HAlign
}

// Rect returns the last arranged rectangle, relative to the parent.
func (b *Box) Rect() flex.Rect { return b.rect }

// Arranged reports whether the box has been arranged at least once.
func (b *Box) Arranged() bool { return b.arranged }

// MeasureCount returns how many times the box has been measured.
func (b *Box) MeasureCount() int { return b.measured }

// Reset clears the arrangement state and the measure counter. The cached
// desired size is kept.
func (b *Box) Reset() {
	b.Walk(func(v Visit) bool {
		v.Box.rect = flex.Rect{}
		v.Box.arranged = false
		v.Box.measured = 0
		return true
	})
}

// Children returns the box's children in placement order.
func (b *Box) Children() []*Box {
	if b.Layout == nil {
		return nil
	}
	out := make([]*Box, 0, b.Layout.Len())
	for _, ch := range b.Layout.Children() {
		if cb, ok := ch.Element.(*Box); ok {
			out = append(out, cb)
		}
	}
	return out
}

// Find returns the first box named name in depth-first order.
func (b *Box) Find(name string) *Box {
	var found *Box
	b.Walk(func(v Visit) bool {
		if v.Box.Name == name {
			found = v.Box
			return false
		}
		return true
	})
	return found
}

// Compute lays out the tree rooted at root for a viewport: root is measured
// at the viewport size and arranged to fill it.
func Compute(root *Box, viewport flex.Size) {
	root.Measure(viewport)
	root.Arrange(flex.Rect{Width: viewport.Width, Height: viewport.Height})
}
