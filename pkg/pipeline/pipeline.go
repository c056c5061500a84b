// Package pipeline provides the parse → layout → render pipeline of flexlayout.
//
// The CLI and the HTTP server both go through this package so that defaults,
// caching and output formats behave the same everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, err := pipeline.ParseFile(ctx, "window.toml")
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Formats: []string{"svg"}})
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	l, err := runner.ComputeLayout(ctx, doc, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flexlayout/pkg/cache"
	"github.com/matzehuels/flexlayout/pkg/document"
	errs "github.com/matzehuels/flexlayout/pkg/errors"
	"github.com/matzehuels/flexlayout/pkg/flex"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the viewport width when neither the options nor the
	// document set one.
	DefaultWidth = 800.0

	// DefaultHeight is the viewport height when neither the options nor the
	// document set one.
	DefaultHeight = 600.0

	// DefaultColumns and DefaultRows size the text preview.
	DefaultColumns = 80
	DefaultRows    = 24
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatText = "txt"
	FormatDOT  = "dot"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatText: true,
	FormatDOT:  true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// FormatNames lists the formats in help-text order.
var FormatNames = []string{FormatSVG, FormatJSON, FormatText, FormatDOT, FormatPNG, FormatPDF}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options. Zero values fall back to the document's viewport.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Labels     bool     `json:"labels,omitempty"`
	Dimensions bool     `json:"dimensions,omitempty"`
	Columns    int      `json:"columns,omitempty"`
	Rows       int      `json:"rows,omitempty"`

	// Refresh bypasses cached results (they are still rewritten).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DocumentHash is the content hash of the input document.
	DocumentHash string

	// Layout is the computed layout.
	Layout document.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BoxCount   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if !validSize(o.Width) || !validSize(o.Height) {
		return errs.New(errs.ErrCodeInvalidInput, "viewport size must be finite and non-negative")
	}
	if o.Columns < 0 || o.Rows < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "text preview size must be non-negative")
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

func validSize(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
}

// Viewport resolves the layout viewport: explicit options win over the
// document's viewport, which wins over the defaults.
func (o *Options) Viewport(doc *document.Document) flex.Size {
	v := flex.Size{Width: o.Width, Height: o.Height}
	if v.Width == 0 && doc != nil {
		v.Width = doc.Viewport.Width
	}
	if v.Height == 0 && doc != nil {
		v.Height = doc.Viewport.Height
	}
	if v.Width == 0 {
		v.Width = DefaultWidth
	}
	if v.Height == 0 {
		v.Height = DefaultHeight
	}
	return v
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(viewport flex.Size) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: viewport.Width, Height: viewport.Height}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Options that do not affect a format are left out of its key.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG, FormatPNG, FormatPDF:
		k.Labels = o.Labels
		k.Dimensions = o.Dimensions
	case FormatText:
		k.Labels = o.Labels
		k.Columns = o.Columns
		k.Rows = o.Rows
	}
	return k
}
