package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shelfcraft/pkg/core/hardware"
	"github.com/matzehuels/shelfcraft/pkg/core/pricing"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	shelfio "github.com/matzehuels/shelfcraft/pkg/io"
	"github.com/matzehuels/shelfcraft/pkg/pipeline"
)

// designFlags override individual fields of a design document.
// Only flags set on the command line take effect.
type designFlags struct {
	style     string
	density   float64
	width     float64
	backPanel bool
}

func (f *designFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.style, "style", "", "layout style: "+styleNames())
	cmd.Flags().Float64Var(&f.density, "density", shelf.DefaultDensity, "divider density (0-100)")
	cmd.Flags().Float64Var(&f.width, "width", shelf.DefaultWidth, "outer width in cm")
	cmd.Flags().BoolVar(&f.backPanel, "back-panel", false, "add back panels to every row")
}

// apply copies the changed flags onto the design.
func (f *designFlags) apply(cmd *cobra.Command, d *shelfio.Design) {
	flags := cmd.Flags()
	if flags.Changed("style") {
		d.Style = f.style
	}
	if flags.Changed("density") {
		d.Density = &f.density
	}
	if flags.Changed("width") {
		d.Width = &f.width
	}
	if flags.Changed("back-panel") {
		d.HasBackPanel = f.backPanel
	}
}

// loaded is a design resolved into pipeline inputs.
type loaded struct {
	path     string
	config   shelf.Config
	plan     hardware.Plan
	category pricing.Category
}

// options returns the pipeline options for the design.
func (l loaded) options() pipeline.Options {
	return pipeline.Options{
		Config:   l.config,
		Plan:     l.plan,
		Category: l.category,
	}
}

// loadDesign reads the design at path and applies the override flags.
func loadDesign(cmd *cobra.Command, path string, f *designFlags) (loaded, error) {
	d, err := shelfio.ImportDesign(path)
	if err != nil {
		return loaded{}, err
	}
	f.apply(cmd, &d)

	cfg, err := d.Config()
	if err != nil {
		return loaded{}, fmt.Errorf("%s: %w", path, err)
	}
	category, err := d.Category()
	if err != nil {
		return loaded{}, fmt.Errorf("%s: %w", path, err)
	}
	plan := d.Plan()
	plan.Prune(cfg.NumRows)

	return loaded{path: path, config: cfg, plan: plan, category: category}, nil
}

// basePath strips the extension from a design path.
func basePath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}

func styleNames() string {
	var names []string
	for _, s := range shelf.Styles() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
