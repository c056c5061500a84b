package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flexlayout/pkg/document"
	"github.com/matzehuels/flexlayout/pkg/pipeline"
)

// inspectCommand creates the inspect command, which prints every box's
// rectangle as a table.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		fromLayout  bool
		inputFormat string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "inspect [document]",
		Short: "Print the computed rectangle of every box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.inspectLayout(cmd.Context(), args[0], inputFormat, fromLayout, opts)
			if err != nil {
				return err
			}
			fmt.Println(StyleTitle.Render(fmt.Sprintf("%s  %sx%s", l.Root, formatNumber(l.Width), formatNumber(l.Height))))
			fmt.Println(inspectTable(l))
			fmt.Println(statsLine(len(l.Boxes), l.MaxDepth(), false))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromLayout, "from-layout", false, "treat the input as a layout.json produced by 'layout'")
	cmd.Flags().StringVar(&inputFormat, "input-format", string(document.FormatTOML), "document format when reading stdin: toml, json")
	addViewportFlags(cmd, &opts)

	return cmd
}

func (c *CLI) inspectLayout(ctx context.Context, input, inputFormat string, fromLayout bool, opts pipeline.Options) (document.Layout, error) {
	if fromLayout {
		return document.ReadLayoutFile(input)
	}
	doc, err := loadDocument(ctx, input, inputFormat)
	if err != nil {
		return document.Layout{}, err
	}
	return pipeline.ComputeLayout(ctx, doc, opts.Viewport(doc))
}

// inspectTable renders the layout's boxes as a table, indented by depth.
func inspectTable(l document.Layout) string {
	rows := make([][]string, 0, len(l.Boxes))
	for _, b := range l.Boxes {
		rows = append(rows, []string{
			strings.Repeat("  ", b.Depth) + b.ID,
			formatNumber(b.X),
			formatNumber(b.Y),
			formatNumber(b.Width),
			formatNumber(b.Height),
			formatNumber(b.DesiredWidth) + "x" + formatNumber(b.DesiredHeight),
			blockFlags(b),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Box", "X", "Y", "W", "H", "Desired", "Flags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < len(l.Boxes) && !l.Boxes[row].Arranged {
				return base.Foreground(colorDim)
			}
			if col >= 1 && col <= 4 {
				return base.Foreground(colorCyan)
			}
			return base
		})
	return t.Render()
}

// blockFlags summarizes a block's attributes, e.g. "flex(2) absolute".
func blockFlags(b document.Block) string {
	var flags []string
	if b.Flex {
		flags = append(flags, fmt.Sprintf("flex(%d)", b.Grow))
	}
	if b.Absolute {
		flags = append(flags, "absolute")
	}
	if b.SkipMeasure {
		flags = append(flags, "skip-measure")
	}
	if !b.Arranged {
		flags = append(flags, "unarranged")
	}
	return strings.Join(flags, " ")
}
