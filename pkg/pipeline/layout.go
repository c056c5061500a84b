package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/flexlayout/pkg/box"
	"github.com/matzehuels/flexlayout/pkg/document"
	"github.com/matzehuels/flexlayout/pkg/flex"
	"github.com/matzehuels/flexlayout/pkg/observability"
)

// ComputeLayout builds the document's box tree and lays it out in viewport.
// It does not use a cache; see [Runner.ComputeLayout].
func ComputeLayout(ctx context.Context, doc *document.Document, viewport flex.Size) (document.Layout, error) {
	root, err := doc.Build()
	if err != nil {
		return document.Layout{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, root.Name, root.Count())
	start := time.Now()

	box.Compute(root, viewport)
	l := document.FromBox(root, viewport)

	hooks.OnLayoutComplete(ctx, root.Name, time.Since(start), nil)
	return l, nil
}
