package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/flexlayout/pkg/document"
)

// DefaultPalette fills boxes by depth.
var DefaultPalette = []string{"#f4f1de", "#e0ecf4", "#e5f5e0", "#fde0dd", "#efedf5", "#fff7bc"}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels     bool
	dimensions bool
	palette    []string
}

// WithLabels writes each box's name at its center.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithDimensions appends the arranged size to labels. Implies WithLabels.
func WithDimensions() SVGOption {
	return func(r *svgRenderer) { r.labels = true; r.dimensions = true }
}

// WithPalette replaces the fill colors. An empty palette keeps the default.
func WithPalette(colors ...string) SVGOption {
	return func(r *svgRenderer) {
		if len(colors) > 0 {
			r.palette = colors
		}
	}
}

// RenderSVG draws every arranged block of l as a rectangle. Blocks are
// painted in depth-first order so children sit on top of their parents.
func RenderSVG(l document.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{palette: DefaultPalette}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	buf.WriteString("  <style>.box { stroke: #3d405b; stroke-width: 1; } .label { font: 12px sans-serif; fill: #3d405b; }</style>\n")

	for _, b := range l.Boxes {
		if !b.Arranged {
			continue
		}
		r.renderBlock(&buf, b)
	}
	if r.labels {
		for _, b := range l.Boxes {
			if !b.Arranged || b.Width == 0 || b.Height == 0 {
				continue
			}
			r.renderLabel(&buf, b)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderBlock(buf *bytes.Buffer, b document.Block) {
	class := "box"
	if b.Absolute {
		class += " absolute"
	}
	if b.Flex {
		class += " flex"
	}
	fill := r.palette[b.Depth%len(r.palette)]
	fmt.Fprintf(buf, `  <rect id="box-%s" class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"`,
		html.EscapeString(b.ID), class, b.X, b.Y, b.Width, b.Height, fill)
	if b.Absolute {
		buf.WriteString(` fill-opacity="0.6" stroke-dasharray="4 2"`)
	}
	buf.WriteString("/>\n")
}

func (r *svgRenderer) renderLabel(buf *bytes.Buffer, b document.Block) {
	text := b.ID
	if r.dimensions {
		text = fmt.Sprintf("%s %gx%g", b.ID, round2(b.Width), round2(b.Height))
	}
	fmt.Fprintf(buf, `  <text class="label" data-box="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		html.EscapeString(b.ID), b.X+b.Width/2, b.Y+b.Height/2, html.EscapeString(text))
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
