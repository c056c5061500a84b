package document

import (
	"github.com/matzehuels/flexlayout/pkg/box"
	"github.com/matzehuels/flexlayout/pkg/flex"
)

// Build converts the document's node tree into boxes. It validates first.
func (d *Document) Build() (*box.Box, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return buildNode(d.Root), nil
}

// Attributes returns the attributes the node carries within its parent.
func (n Node) Attributes() flex.Attributes {
	a := flex.DefaultAttributes()
	a.Flex = n.Flex
	if n.Grow != nil {
		a.Grow = *n.Grow
	}
	a.Position = positions[n.Position]
	a.SkipMeasure = n.SkipMeasure
	a.Align = alignments[n.Align]
	return a
}

func buildNode(n Node) *box.Box {
	var b *box.Box
	if n.IsContainer() {
		b = box.NewContainer(n.Name, orientations[n.Orientation], n.Spacing)
		b.Intrinsic = flex.Size{Width: n.Width, Height: n.Height}
	} else {
		b = box.New(n.Name, n.Width, n.Height)
	}
	b.HAlign = alignments[n.HAlign]
	b.VAlign = alignments[n.VAlign]

	for _, c := range n.Children {
		b.Append(buildNode(c), flex.WithAttributes(c.Attributes()))
	}
	return b
}

// Compute builds the document and lays it out in viewport. A zero viewport
// dimension falls back to the document's own viewport.
func Compute(d *Document, viewport flex.Size) (Layout, error) {
	root, err := d.Build()
	if err != nil {
		return Layout{}, err
	}
	if viewport.Width == 0 {
		viewport.Width = d.Viewport.Width
	}
	if viewport.Height == 0 {
		viewport.Height = d.Viewport.Height
	}
	box.Compute(root, viewport)
	return FromBox(root, viewport), nil
}
