package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/flexlayout/pkg/document"
	"github.com/matzehuels/flexlayout/pkg/observability"
)

// ParseFile reads a document from path. The format follows the extension.
func ParseFile(ctx context.Context, path string) (*document.Document, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, path)
	start := time.Now()

	doc, err := document.ReadFile(path)
	hooks.OnParseComplete(ctx, path, nodeCount(doc), time.Since(start), err)
	return doc, err
}

// ParseBytes decodes a document from data. source names the input in hook
// events, for example "request" or "stdin".
func ParseBytes(ctx context.Context, data []byte, format document.Format, source string) (*document.Document, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, source)
	start := time.Now()

	doc, err := document.Parse(data, format)
	hooks.OnParseComplete(ctx, source, nodeCount(doc), time.Since(start), err)
	return doc, err
}

func nodeCount(doc *document.Document) int {
	if doc == nil {
		return 0
	}
	var count func(n document.Node) int
	count = func(n document.Node) int {
		c := 1
		for _, ch := range n.Children {
			c += count(ch)
		}
		return c
	}
	return count(doc.Root)
}
