package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flexlayout/pkg/document"
)

// ToDOT converts the box tree of a layout to Graphviz DOT, one node per box
// and one edge from each parent to each child.
//
// Flex boxes are drawn bold and absolute boxes dashed.
func ToDOT(l document.Layout) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, b := range l.Boxes {
		fmt.Fprintf(&buf, "  %q [%s];\n", b.ID, strings.Join(dotAttrs(b), ", "))
	}

	buf.WriteString("\n")
	for _, b := range l.Boxes {
		if b.Parent != "" {
			fmt.Fprintf(&buf, "  %q -> %q;\n", b.Parent, b.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotAttrs(b document.Block) []string {
	label := fmt.Sprintf("%s\n%gx%g", b.ID, round2(b.Width), round2(b.Height))
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case b.Absolute:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	case b.Flex:
		attrs = append(attrs, "style=\"rounded,filled,bold\"", fmt.Sprintf("xlabel=\"grow %d\"", b.Grow))
	}
	if !b.Arranged {
		attrs = append(attrs, "fontcolor=grey")
	}
	return attrs
}

// RenderDOT renders the layout's box tree to SVG using Graphviz.
func RenderDOT(ctx context.Context, l document.Layout) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(l)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's svg tag with one whose viewBox starts
// at the origin and whose size matches it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
