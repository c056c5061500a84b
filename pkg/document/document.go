package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/flexlayout/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported document extension %q (want .toml or .json)", filepath.Ext(path))
	}
}

// Viewport is the size the root node is laid out in.
type Viewport struct {
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// Document is a parsed layout document.
type Document struct {
	Viewport Viewport `toml:"viewport" json:"viewport"`
	Root     Node     `toml:"root" json:"root"`
}

// Node is one box in a document tree.
type Node struct {
	Name   string  `toml:"name" json:"name"`
	Width  float64 `toml:"width,omitempty" json:"width,omitempty"`
	Height float64 `toml:"height,omitempty" json:"height,omitempty"`

	// Container settings, used when the node has children.
	Orientation string  `toml:"orientation,omitempty" json:"orientation,omitempty"`
	Spacing     float64 `toml:"spacing,omitempty" json:"spacing,omitempty"`

	// Attributes within the parent container.
	Flex        bool   `toml:"flex,omitempty" json:"flex,omitempty"`
	Grow        *int   `toml:"grow,omitempty" json:"grow,omitempty"`
	Position    string `toml:"position,omitempty" json:"position,omitempty"`
	SkipMeasure bool   `toml:"skip_measure,omitempty" json:"skip_measure,omitempty"`
	Align       string `toml:"align,omitempty" json:"align,omitempty"`

	// Native alignments, used when Align is auto.
	HAlign string `toml:"halign,omitempty" json:"halign,omitempty"`
	VAlign string `toml:"valign,omitempty" json:"valign,omitempty"`

	Children []Node `toml:"children,omitempty" json:"children,omitempty"`
}

// IsContainer reports whether the node lays out children.
func (n Node) IsContainer() bool {
	return len(n.Children) > 0 || n.Orientation != ""
}

// Parse decodes and validates a document.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidDocument, err, "decode toml")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidDocument, err, "decode json")
		}
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Read decodes a document from r.
func Read(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(data, format)
}

// ReadFile reads a document, choosing the format by extension.
func ReadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "document %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode writes the document to w in the given format.
func (d *Document) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	return nil
}
