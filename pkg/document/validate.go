package document

import (
	"math"

	errs "github.com/matzehuels/flexlayout/pkg/errors"
	"github.com/matzehuels/flexlayout/pkg/flex"
)

var orientations = map[string]flex.Orientation{
	"":           flex.Horizontal,
	"horizontal": flex.Horizontal,
	"row":        flex.Horizontal,
	"vertical":   flex.Vertical,
	"column":     flex.Vertical,
}

var alignments = map[string]flex.Alignment{
	"":        flex.AlignAuto,
	"auto":    flex.AlignAuto,
	"stretch": flex.AlignStretch,
	"start":   flex.AlignStart,
	"center":  flex.AlignCenter,
	"end":     flex.AlignEnd,
}

var positions = map[string]flex.Position{
	"":         flex.Relative,
	"relative": flex.Relative,
	"absolute": flex.Absolute,
}

// Validate checks the document for structural errors: node names must be
// valid and unique, sizes finite and non-negative, and enum fields known.
func (d *Document) Validate() error {
	if !validSize(d.Viewport.Width) || !validSize(d.Viewport.Height) {
		return errs.New(errs.ErrCodeInvalidDocument, "viewport size must be finite and non-negative")
	}
	return validateNode(d.Root, make(map[string]bool))
}

func validateNode(n Node, seen map[string]bool) error {
	if err := errs.ValidateName(n.Name); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidDocument, err, "invalid node")
	}
	if seen[n.Name] {
		return errs.New(errs.ErrCodeInvalidDocument, "duplicate node name %q", n.Name)
	}
	seen[n.Name] = true

	if !validSize(n.Width) || !validSize(n.Height) {
		return errs.New(errs.ErrCodeInvalidDocument, "node %q: size must be finite and non-negative", n.Name)
	}
	if !validSize(n.Spacing) {
		return errs.New(errs.ErrCodeInvalidDocument, "node %q: spacing must be finite and non-negative", n.Name)
	}
	if n.Grow != nil && *n.Grow < 0 {
		return errs.New(errs.ErrCodeInvalidDocument, "node %q: grow must be non-negative", n.Name)
	}
	if _, ok := orientations[n.Orientation]; !ok {
		return errs.New(errs.ErrCodeInvalidDocument, "node %q: unknown orientation %q", n.Name, n.Orientation)
	}
	if _, ok := positions[n.Position]; !ok {
		return errs.New(errs.ErrCodeInvalidDocument, "node %q: unknown position %q", n.Name, n.Position)
	}
	for _, f := range [...]struct{ name, value string }{
		{"align", n.Align},
		{"halign", n.HAlign},
		{"valign", n.VAlign},
	} {
		if _, ok := alignments[f.value]; !ok {
			return errs.New(errs.ErrCodeInvalidDocument, "node %q: unknown %s %q", n.Name, f.name, f.value)
		}
	}

	for _, c := range n.Children {
		if err := validateNode(c, seen); err != nil {
			return err
		}
	}
	return nil
}

func validSize(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
