package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/flexlayout/pkg/document"
	"github.com/matzehuels/flexlayout/pkg/observability"
	"github.com/matzehuels/flexlayout/pkg/sink"
)

// pngScale is the resolution multiplier for PNG output.
const pngScale = 2.0

// Render generates output artifacts in the requested formats. Formats are
// rendered concurrently; the first failure cancels the rest.
func Render(ctx context.Context, l document.Layout, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, err := renderFormat(gctx, l, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, l document.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, svgOptions(opts)...), nil
	case FormatJSON:
		return sink.RenderJSON(l)
	case FormatText:
		var textOpts []sink.TextOption
		if !opts.Labels {
			textOpts = append(textOpts, sink.WithoutLabels())
		}
		return []byte(sink.RenderText(l, opts.Columns, opts.Rows, textOpts...)), nil
	case FormatDOT:
		return []byte(sink.ToDOT(l)), nil
	case FormatPNG:
		return sink.ToPNG(ctx, sink.RenderSVG(l, svgOptions(opts)...), pngScale)
	case FormatPDF:
		return sink.ToPDF(ctx, sink.RenderSVG(l, svgOptions(opts)...))
	default:
		return nil, ValidateFormat(format)
	}
}

func svgOptions(opts Options) []sink.SVGOption {
	var out []sink.SVGOption
	if opts.Labels {
		out = append(out, sink.WithLabels())
	}
	if opts.Dimensions {
		out = append(out, sink.WithDimensions())
	}
	return out
}
