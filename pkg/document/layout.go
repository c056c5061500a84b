package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/flexlayout/pkg/box"
	"github.com/matzehuels/flexlayout/pkg/flex"
)

// Layout is a computed layout: every box of a tree with its rectangle in
// viewport coordinates, in depth-first placement order.
type Layout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Root   string  `json:"root"`
	Boxes  []Block `json:"boxes"`
}

// Block is one laid-out box.
type Block struct {
	ID            string  `json:"id"`
	Parent        string  `json:"parent,omitempty"`
	Depth         int     `json:"depth"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	DesiredWidth  float64 `json:"desired_width"`
	DesiredHeight float64 `json:"desired_height"`
	Flex          bool    `json:"flex,omitempty"`
	Grow          int     `json:"grow"`
	Absolute      bool    `json:"absolute,omitempty"`
	SkipMeasure   bool    `json:"skip_measure,omitempty"`
	// Arranged is false for boxes whose parent skipped arrangement because
	// no child wanted any space.
	Arranged bool `json:"arranged"`
}

// Rect returns the block's rectangle.
func (b Block) Rect() flex.Rect {
	return flex.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// FromBox snapshots a laid-out box tree.
func FromBox(root *box.Box, viewport flex.Size) Layout {
	l := Layout{Width: viewport.Width, Height: viewport.Height, Root: root.Name}
	root.Walk(func(v box.Visit) bool {
		b := Block{
			ID:            v.Box.Name,
			Depth:         v.Depth,
			X:             v.Abs.X,
			Y:             v.Abs.Y,
			Width:         v.Abs.Width,
			Height:        v.Abs.Height,
			DesiredWidth:  v.Box.DesiredSize().Width,
			DesiredHeight: v.Box.DesiredSize().Height,
			Flex:          v.Attrs.Flex,
			Grow:          v.Attrs.Grow,
			Absolute:      v.Attrs.Position == flex.Absolute,
			SkipMeasure:   v.Attrs.SkipMeasure,
			Arranged:      v.Box.Arranged(),
		}
		if v.Parent != nil {
			b.Parent = v.Parent.Name
		}
		l.Boxes = append(l.Boxes, b)
		return true
	})
	return l
}

// Block returns the block with the given id.
func (l Layout) Block(id string) (Block, bool) {
	for _, b := range l.Boxes {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

// Children returns the blocks whose parent is id, in placement order.
func (l Layout) Children(id string) []Block {
	var out []Block
	for _, b := range l.Boxes {
		if b.Parent == id {
			out = append(out, b)
		}
	}
	return out
}

// MaxDepth returns the depth of the deepest block.
func (l Layout) MaxDepth() int {
	d := 0
	for _, b := range l.Boxes {
		d = max(d, b.Depth)
	}
	return d
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout converts a layout to indented JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalLayout decodes a layout from JSON bytes.
func UnmarshalLayout(data []byte) (Layout, error) {
	return ReadLayout(bytes.NewReader(data))
}

// WriteLayout writes a layout as JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadLayout decodes a layout from r.
func ReadLayout(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("decode: %w", err)
	}
	return l, nil
}

// WriteLayoutFile writes a layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(l, f)
}

// ReadLayoutFile reads a layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayout(f)
}
