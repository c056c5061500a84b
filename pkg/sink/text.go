package sink

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/flexlayout/pkg/document"
)

// TextPalette colors box outlines by depth when color is enabled.
var TextPalette = []lipgloss.Color{"36", "75", "35", "220", "167", "245"}

type TextOption func(*textRenderer)

type textRenderer struct {
	color  bool
	labels bool
}

// WithColor styles each outline with lipgloss by depth.
func WithColor() TextOption { return func(r *textRenderer) { r.color = true } }

// WithoutLabels suppresses box names.
func WithoutLabels() TextOption { return func(r *textRenderer) { r.labels = false } }

type cell struct {
	r     rune
	depth int
}

// RenderText draws the layout as box outlines on a cols x rows character
// grid, scaled to fit. Later blocks overwrite earlier ones.
func RenderText(l document.Layout, cols, rows int, opts ...TextOption) string {
	r := textRenderer{labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	if cols <= 0 || rows <= 0 || l.Width <= 0 || l.Height <= 0 {
		return ""
	}

	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{' ', -1}
		}
	}
	sx, sy := float64(cols)/l.Width, float64(rows)/l.Height

	for _, b := range l.Boxes {
		if !b.Arranged {
			continue
		}
		x0, x1 := span(b.X, b.Width, sx, cols)
		y0, y1 := span(b.Y, b.Height, sy, rows)
		if x1 < x0 || y1 < y0 {
			continue
		}
		drawOutline(grid, x0, y0, x1, y1, b.Depth)
		if r.labels && x1-x0 > 1 {
			drawLabel(grid, b.ID, x0+1, y0, x1-x0-1, b.Depth)
		}
	}

	lines := make([]string, rows)
	for y, row := range grid {
		lines[y] = r.renderRow(row)
	}
	return strings.Join(lines, "\n") + "\n"
}

// span maps an extent to inclusive cell indexes.
func span(pos, size, scale float64, n int) (int, int) {
	lo := int(math.Round(pos * scale))
	hi := int(math.Round((pos+size)*scale)) - 1
	return max(lo, 0), min(hi, n-1)
}

func drawOutline(grid [][]cell, x0, y0, x1, y1, depth int) {
	set := func(x, y int, r rune) { grid[y][x] = cell{r, depth} }
	if x0 == x1 || y0 == y1 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				set(x, y, '█')
			}
		}
		return
	}
	for x := x0 + 1; x < x1; x++ {
		set(x, y0, '─')
		set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y, '│')
		set(x1, y, '│')
	}
	set(x0, y0, '┌')
	set(x1, y0, '┐')
	set(x0, y1, '└')
	set(x1, y1, '┘')
}

func drawLabel(grid [][]cell, label string, x, y, width, depth int) {
	for i, r := range []rune(label) {
		if i >= width {
			break
		}
		grid[y][x+i] = cell{r, depth}
	}
}

func (r *textRenderer) renderRow(row []cell) string {
	var sb strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j].depth == row[i].depth {
			j++
		}
		run := make([]rune, j-i)
		for k := i; k < j; k++ {
			run[k-i] = row[k].r
		}
		sb.WriteString(r.style(row[i].depth, string(run)))
		i = j
	}
	return strings.TrimRight(sb.String(), " ")
}

func (r *textRenderer) style(depth int, s string) string {
	if !r.color || depth < 0 {
		return s
	}
	return lipgloss.NewStyle().Foreground(TextPalette[depth%len(TextPalette)]).Render(s)
}
