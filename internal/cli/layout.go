package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flexlayout/pkg/document"
	"github.com/matzehuels/flexlayout/pkg/pipeline"
)

// layoutCommand creates the layout command for computing box rectangles.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output      string
		noCache     bool
		inputFormat string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [document]",
		Short: "Compute a layout from a box document",
		Long: `Compute a layout from a box document.

The document is a TOML or JSON file describing a tree of boxes. Use "-" to
read it from stdin together with --input-format. The output is a layout.json
file (same format as 'render -f json') holding the rectangle of every box in
viewport coordinates. It can be rendered with 'render --from-layout'.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], inputFormat, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json, - for stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when a cached layout exists")
	cmd.Flags().StringVar(&inputFormat, "input-format", string(document.FormatTOML), "document format when reading stdin: toml, json")
	addViewportFlags(cmd, &opts)

	return cmd
}

// addViewportFlags registers --width and --height.
// Zero means the document's own viewport.
func addViewportFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "viewport width (default: document viewport, then 800)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "viewport height (default: document viewport, then 600)")
}

// loadDocument reads a document from a file, or from stdin when path is "-".
func loadDocument(ctx context.Context, path, inputFormat string) (*document.Document, error) {
	if path != "-" {
		return pipeline.ParseFile(ctx, path)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return pipeline.ParseBytes(ctx, data, document.Format(inputFormat), "stdin")
}

// runLayout loads the document, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, inputFormat string, opts pipeline.Options, output string, noCache bool) error {
	doc, err := loadDocument(ctx, input, inputFormat)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger, "layout")

	spinner := newSpinner(ctx, "Computing layout...")
	spinner.Start()

	l, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done("Laid out", "boxes", len(l.Boxes), "cached", cacheHit)

	if output == "-" {
		return document.WriteLayout(l, os.Stdout)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", input) + layoutSuffix
	}
	if err := document.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Boxes), l.MaxDepth(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render --from-layout "+outputPath)

	return nil
}
