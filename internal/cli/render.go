package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flexlayout/pkg/document"
	"github.com/matzehuels/flexlayout/pkg/pipeline"
	"github.com/matzehuels/flexlayout/pkg/sink"
)

// renderOpts holds the render command's flags that are not pipeline options.
type renderOpts struct {
	output      string // output file (single format) or base path (multiple)
	formats     string // comma-separated formats
	noCache     bool
	fromLayout  bool   // input is a layout.json instead of a document
	inputFormat string // document format when reading stdin
}

// renderCommand creates the render command for generating artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts
	opts := pipeline.Options{Labels: true}

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Render a box document to SVG, PNG, PDF, text, DOT or JSON",
		Long: `Render a box document.

The document is laid out first (or read as a finished layout with
--from-layout) and then rendered once per requested format. One format writes
to --output; several formats write <base>.<format> files next to each other.

PNG and PDF output require rsvg-convert (librsvg) on the PATH.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(ro.formats)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, ro)
		},
	}

	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), json, txt, dot, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&ro.fromLayout, "from-layout", false, "treat the input as a layout.json produced by 'layout'")
	cmd.Flags().StringVar(&ro.inputFormat, "input-format", string(document.FormatTOML), "document format when reading stdin: toml, json")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&opts.Labels, "labels", opts.Labels, "draw box names")
	cmd.Flags().BoolVar(&opts.Dimensions, "dimensions", false, "annotate boxes with their size (svg, png, pdf)")
	cmd.Flags().IntVar(&opts.Columns, "cols", pipeline.DefaultColumns, "text output width in characters")
	cmd.Flags().IntVar(&opts.Rows, "rows", pipeline.DefaultRows, "text output height in lines")
	addViewportFlags(cmd, &opts)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, ro renderOpts) error {
	logger := loggerFromContext(ctx)

	if needsRSVG(opts.Formats) && !sink.HasRSVG() {
		return fmt.Errorf("png and pdf output require rsvg-convert (install librsvg)")
	}

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = logger

	prog := newProgress(logger, "render")
	l, layoutHit, err := c.loadLayout(ctx, runner, input, opts, ro)
	if err != nil {
		return err
	}
	prog.lap("layout ready", "boxes", len(l.Boxes), "cached", layoutHit)

	spinner := newSpinner(ctx, "Rendering...")
	spinner.Start()
	artifacts, renderHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done("Rendered", "formats", opts.Formats, "cached", renderHit)

	paths, err := writeArtifacts(artifacts, opts.Formats, ro.output, input)
	if err != nil {
		return err
	}

	printSuccess("Rendered %d format(s)", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(l.Boxes), l.MaxDepth(), layoutHit && renderHit)
	return nil
}

// loadLayout returns the layout for input, computing it unless --from-layout.
func (c *CLI) loadLayout(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options, ro renderOpts) (document.Layout, bool, error) {
	if ro.fromLayout {
		l, err := document.ReadLayoutFile(input)
		if err != nil {
			return document.Layout{}, false, fmt.Errorf("load layout %s: %w", input, err)
		}
		return l, true, nil
	}

	doc, err := loadDocument(ctx, input, ro.inputFormat)
	if err != nil {
		return document.Layout{}, false, err
	}
	l, hit, err := runner.ComputeLayoutWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return document.Layout{}, false, fmt.Errorf("compute layout: %w", err)
	}
	return l, hit, nil
}

// writeArtifacts writes each artifact and returns the paths in format order.
// A single format honors output verbatim; "-" writes it to stdout.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	if len(formats) == 1 {
		data := artifacts[formats[0]]
		if output == "-" {
			_, err := os.Stdout.Write(data)
			return []string{"stdout"}, err
		}
		path := output
		if path == "" {
			path = basePath("", input) + "." + formats[0]
		}
		return []string{path}, writeFile(path, data)
	}

	base := basePath(output, input)
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := base + "." + f
		if err := writeFile(path, artifacts[f]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func needsRSVG(formats []string) bool {
	return slices.Contains(formats, pipeline.FormatPNG) || slices.Contains(formats, pipeline.FormatPDF)
}
