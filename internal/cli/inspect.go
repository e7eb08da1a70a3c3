package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shelfcraft/pkg/core/dimension"
	"github.com/matzehuels/shelfcraft/pkg/core/hardware"
	"github.com/matzehuels/shelfcraft/pkg/core/pricing"
	"github.com/matzehuels/shelfcraft/pkg/pipeline"
)

// inspectCommand builds a command that runs the pipeline without rendering
// and prints part of the result.
func (c *CLI) inspectCommand(use, short string, show func(loaded, *pipeline.Result)) *cobra.Command {
	var (
		design designFlags
		caches cacheFlags
	)
	cmd := &cobra.Command{
		Use:   use + " [design]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign(cmd, args[0], &design)
			if err != nil {
				return err
			}
			result, err := c.inspect(cmd.Context(), d, caches)
			if err != nil {
				return err
			}
			show(d, result)
			return nil
		},
	}
	design.register(cmd)
	caches.register(cmd)
	return cmd
}

func (c *CLI) inspect(ctx context.Context, d loaded, caches cacheFlags) (*pipeline.Result, error) {
	runner, err := c.newRunner(ctx, caches)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	return runner.Execute(ctx, d.options())
}

// hardwareCommand lists door and drawer placements.
func (c *CLI) hardwareCommand() *cobra.Command {
	return c.inspectCommand("hardware", "List the doors and drawers of a shelf design", func(d loaded, r *pipeline.Result) {
		if d.plan.Empty() {
			printInfo("No doors or drawers in %s", d.path)
			return
		}
		if len(r.Placements.Doors)+len(r.Placements.Drawers) == 0 {
			printWarning("%s cannot hold hardware", r.Layout.Style)
			return
		}
		printTable([]string{"Kind", "Row", "X", "Y", "Width", "Height", "Depth", "Hinge"}, hardwareRows(r.Placements))
	})
}

// priceCommand quotes a design.
func (c *CLI) priceCommand() *cobra.Command {
	return c.inspectCommand("price", "Quote the price of a shelf design", func(d loaded, r *pipeline.Result) {
		printTable([]string{"", ""}, quoteRows(r.Quote))
	})
}

// dimsCommand lists the dimension labels of a design.
func (c *CLI) dimsCommand() *cobra.Command {
	return c.inspectCommand("dims", "List the dimension labels of a shelf design", func(d loaded, r *pipeline.Result) {
		printTable([]string{"Kind", "Row", "Label"}, dimensionRows(r.Dimensions))
	})
}

func hardwareRows(p hardware.Placements) [][]string {
	var rows [][]string
	for _, door := range p.Doors {
		rows = append(rows, []string{
			"door", fmt.Sprint(door.Layer),
			cm(door.X), cm(door.Y), cm(door.Width), cm(door.Height), cm(door.Thickness),
			door.Hinge.String(),
		})
	}
	for _, dr := range p.Drawers {
		rows = append(rows, []string{
			"drawer", fmt.Sprint(dr.Layer),
			cm(dr.X), cm(dr.Y), cm(dr.Width), cm(dr.Height), cm(dr.Depth),
			"",
		})
	}
	return rows
}

func quoteRows(q pricing.Quote) [][]string {
	return [][]string{
		{"Category", string(q.Category)},
		{"Volume", fmt.Sprintf("%.0f cm³", q.Volume)},
		{"List price", pricing.Format(q.Original)},
		{"Discount", fmt.Sprintf("%.0f%%", q.DiscountRate)},
		{"Price", pricing.Format(q.Final)},
	}
}

func dimensionRows(a dimension.Annotations) [][]string {
	rows := make([][]string, 0, len(a.Labels))
	for _, l := range a.Labels {
		row := ""
		if !l.Kind.Outer() {
			row = fmt.Sprint(l.Row)
		}
		rows = append(rows, []string{l.Kind.String(), row, l.Text})
	}
	return rows
}

func cm(v float64) string { return fmt.Sprintf("%.1f", v) }
