package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	shelfio "github.com/matzehuels/shelfcraft/pkg/io"
)

// layoutCommand creates the layout command for computing shelf panels.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		design designFlags
		caches cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [design]",
		Short: "Compute the panels of a shelf design",
		Long: `Compute the panels of a shelf design.

The layout command reads a design document (.json, .toml, .yaml) and writes
a layout.json holding the configuration, every panel, the door and drawer
placements and the price quote.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign(cmd, args[0], &design)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), d, output, caches)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <design>.layout.json)")
	design.register(cmd)
	caches.register(cmd)

	return cmd
}

// runLayout computes the layout and writes the document.
func (c *CLI) runLayout(ctx context.Context, d loaded, output string, caches cacheFlags) error {
	runner, err := c.newRunner(ctx, caches)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, d.options())
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath(d.path) + ".layout.json"
	}

	quote := result.Quote
	doc := shelfio.Document{
		Config:  d.config,
		Layout:  result.Layout,
		Doors:   result.Placements.Doors,
		Drawers: result.Placements.Drawers,
		Quote:   &quote,
	}
	if err := shelfio.ExportLayout(doc, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result, result.CacheInfo.LayoutHit)
	if result.Layout.Fallback {
		printWarning("%s fell back to %s for this size", result.Layout.Requested, result.Layout.Style)
	}
	printNewline()
	printNextStep("Render", appName+" render "+d.path)

	return nil
}
