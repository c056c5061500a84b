package box

import "github.com/matzehuels/flexlayout/pkg/flex"

// Visit describes one box during a Walk.
type Visit struct {
	Box    *Box
	Parent *Box
	Depth  int
	// Attrs are the layout attributes the parent holds for the box.
	// They are the defaults for the root.
	Attrs flex.Attributes
	// Abs is the box's rectangle in root coordinates.
	Abs flex.Rect
}

// Walk visits b and its descendants depth-first in placement order.
// Returning false from fn stops the walk.
func (b *Box) Walk(fn func(Visit) bool) {
	walk(Visit{Box: b, Attrs: flex.DefaultAttributes(), Abs: b.rect}, fn)
}

func walk(v Visit, fn func(Visit) bool) bool {
	if !fn(v) {
		return false
	}
	if v.Box.Layout == nil {
		return true
	}
	for _, ch := range v.Box.Layout.Children() {
		cb, ok := ch.Element.(*Box)
		if !ok {
			continue
		}
		next := Visit{
			Box:    cb,
			Parent: v.Box,
			Depth:  v.Depth + 1,
			Attrs:  ch.Attributes,
			Abs:    cb.rect.Translate(v.Abs.X, v.Abs.Y),
		}
		if !walk(next, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of boxes in the tree rooted at b.
func (b *Box) Count() int {
	n := 0
	b.Walk(func(Visit) bool { n++; return true })
	return n
}
