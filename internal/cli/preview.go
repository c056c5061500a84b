package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flexlayout/pkg/document"
	"github.com/matzehuels/flexlayout/pkg/flex"
	"github.com/matzehuels/flexlayout/pkg/pipeline"
	"github.com/matzehuels/flexlayout/pkg/sink"
)

const (
	defaultPreviewStep = 10.0
	// previewChrome is the number of terminal lines used by the header and footer.
	previewChrome = 4
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		step        float64
		inputFormat string
		noColor     bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [document]",
		Short: "Resize a document's viewport interactively in the terminal",
		Long: `Preview a document in the terminal.

The layout is recomputed every time the viewport changes:
  ←/→ or h/l   shrink/grow the width
  ↓/↑ or j/k   shrink/grow the height
  r            reset to the document viewport
  q            quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := loadDocument(ctx, args[0], inputFormat)
			if err != nil {
				return err
			}
			m := newPreviewModel(ctx, doc, opts.Viewport(doc), step)
			m.color = !noColor
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().Float64Var(&step, "step", defaultPreviewStep, "viewport change per key press")
	cmd.Flags().StringVar(&inputFormat, "input-format", string(document.FormatTOML), "document format when reading stdin: toml, json")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "draw outlines without color")
	addViewportFlags(cmd, &opts)

	return cmd
}

// =============================================================================
// previewModel - Interactive viewport resizing
// =============================================================================

type previewModel struct {
	ctx      context.Context
	doc      *document.Document
	initial  flex.Size
	viewport flex.Size
	step     float64
	cols     int
	rows     int
	color    bool

	layout document.Layout
	err    error
}

func newPreviewModel(ctx context.Context, doc *document.Document, viewport flex.Size, step float64) previewModel {
	if step <= 0 {
		step = defaultPreviewStep
	}
	m := previewModel{
		ctx:      ctx,
		doc:      doc,
		initial:  viewport,
		viewport: viewport,
		step:     step,
		cols:     pipeline.DefaultColumns,
		rows:     pipeline.DefaultRows - previewChrome,
	}
	m.relayout()
	return m
}

func (m *previewModel) relayout() {
	m.layout, m.err = pipeline.ComputeLayout(m.ctx, m.doc, m.viewport)
}

func (m *previewModel) resize(dw, dh float64) {
	m.viewport.Width = max(m.viewport.Width+dw, 0)
	m.viewport.Height = max(m.viewport.Height+dh, 0)
	m.relayout()
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.resize(-m.step, 0)
		case "right", "l":
			m.resize(m.step, 0)
		case "down", "j":
			m.resize(0, -m.step)
		case "up", "k":
			m.resize(0, m.step)
		case "r":
			m.viewport = m.initial
			m.relayout()
		}
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 1)
		m.rows = max(msg.Height-previewChrome, 1)
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.doc.Root.Name))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  viewport %sx%s", formatNumber(m.viewport.Width), formatNumber(m.viewport.Height))))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error() + "\n")
	} else {
		var opts []sink.TextOption
		if m.color {
			opts = append(opts, sink.WithColor())
		}
		b.WriteString(sink.RenderText(m.layout, m.cols, m.rows, opts...))
	}

	b.WriteString(StyleDim.Render("←/→ width  ↓/↑ height  r reset  q quit"))
	return b.String()
}
