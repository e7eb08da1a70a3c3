package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shelfcraft/pkg/pipeline"
	"github.com/matzehuels/shelfcraft/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file (single format) or base path (several)
	formats    []string // output formats: "svg", "pdf", "png", "json"
	scale      float64  // PNG raster scale
	hardware   bool     // draw doors and drawers
	dimensions bool     // draw dimension labels
}

// renderCommand creates the render command for drawing a design's front
// elevation.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		opts       = renderOpts{scale: pipeline.DefaultScale, hardware: true}
		design     designFlags
		caches     cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "render [design]",
		Short: "Render the front elevation of a shelf design",
		Long: `Render the front elevation of a shelf design.

SVG and JSON are written directly. PNG and PDF are converted from the SVG
with rsvg-convert, which must be on the PATH.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			d, err := loadDesign(cmd, args[0], &design)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), d, opts, caches)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.hardware, "hardware", opts.hardware, "draw doors and drawers")
	cmd.Flags().BoolVar(&opts.dimensions, "dims", false, "draw dimension labels")
	design.register(cmd)
	caches.register(cmd)

	return cmd
}

// runRender runs the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, d loaded, opts renderOpts, caches cacheFlags) error {
	if needsConverter(opts.formats) && !render.Available() {
		return fmt.Errorf("%s not found: install librsvg to render png or pdf", render.Converter)
	}

	runner, err := c.newRunner(ctx, caches)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts := d.options()
	popts.Formats = opts.formats
	popts.Scale = opts.scale
	popts.Hardware = opts.hardware
	popts.Dimensions = opts.dimensions

	var spinner *Spinner
	if needsConverter(opts.formats) {
		spinner = newSpinnerWithContext(ctx, "Rendering "+strings.Join(opts.formats, ", ")+"...")
		spinner.Start()
	}
	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		printError("Render failed")
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(result.Artifacts)))

	paths := outputPaths(opts.output, d.path, opts.formats)
	printSuccess("Render complete")
	for _, format := range opts.formats {
		if err := os.WriteFile(paths[format], result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", paths[format], err)
		}
		printFile(paths[format])
	}
	printStats(result, result.CacheInfo.RenderHit)
	return nil
}

// outputPaths maps each format to its output file. A single format writes
// to output as given; several formats treat output as a base path.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}

	base := basePath(input)
	if output != "" {
		base = output
		if ext := filepath.Ext(output); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			base = strings.TrimSuffix(output, ext)
		}
	}
	for _, f := range formats {
		if f == pipeline.FormatJSON && output == "" {
			paths[f] = base + ".layout.json"
			continue
		}
		paths[f] = base + "." + f
	}
	return paths
}

func needsConverter(formats []string) bool {
	return slices.Contains(formats, pipeline.FormatPNG) || slices.Contains(formats, pipeline.FormatPDF)
}
