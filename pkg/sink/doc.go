// Package sink renders computed layouts.
//
// Every sink takes a [document.Layout] and produces bytes in one output
// format:
//
//   - [RenderSVG]: nested rectangles, optionally labelled
//   - [RenderJSON]: the layout itself
//   - [RenderText]: a character-grid preview for terminals
//   - [RenderDOT]: the box tree as a Graphviz node-link diagram
//   - [ToPNG], [ToPDF]: rasterized or printable SVG via rsvg-convert
package sink
