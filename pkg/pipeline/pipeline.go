// Package pipeline runs the shelfcraft stages behind the CLI.
//
// # Architecture
//
// A run has five stages:
//
//  1. Layout: compute the panels for the configuration
//  2. Hardware: place the doors and drawers of the hardware plan
//  3. Dimensions: derive dimension labels and guide lines
//  4. Price: quote the panel volume for the color category
//  5. Render: produce artifacts (SVG, PNG, PDF, JSON)
//
// Layouts and artifacts are memoized through a [cache.Cache]; the other
// stages are cheap and always recomputed.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Config:  cfg,
//	    Plan:    design.Plan(),
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shelfcraft/pkg/cache"
	"github.com/matzehuels/shelfcraft/pkg/core/dimension"
	"github.com/matzehuels/shelfcraft/pkg/core/hardware"
	"github.com/matzehuels/shelfcraft/pkg/core/pricing"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

// DefaultScale is the PNG raster scale.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options configures a pipeline run.
type Options struct {
	Config   shelf.Config     `json:"config"`
	Plan     hardware.Plan    `json:"plan"`
	Category pricing.Category `json:"category,omitempty"`

	// Render options. No formats means no render stage.
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Hardware   bool     `json:"hardware,omitempty"`
	Dimensions bool     `json:"dimensions,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger     *log.Logger         `json:"-"`
	Calculator *pricing.Calculator `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// ConfigHash is the content hash of the configuration.
	ConfigHash string

	Layout     shelf.Result
	Placements hardware.Placements
	Dimensions dimension.Annotations
	Quote      pricing.Quote

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PanelCount int
	Doors      int
	Drawers    int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each cached stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the configuration and formats and fills in
// defaults. Layers of the hardware plan are added to Config.HardwareLayers.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Category == "" {
		o.Category = pricing.Classic
	}
	if o.Calculator == nil {
		c := pricing.Default
		o.Calculator = &c
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.Plan.Prune(o.Config.NumRows)
	o.Config.HardwareLayers = mergeLayers(o.Config.HardwareLayers, o.Plan.Layers())
	o.validated = true
	return nil
}

// mergeLayers returns the sorted union of two layer sets in a new slice.
// Rows carrying planned hardware must be laid out with back panels.
func mergeLayers(a, b []int) []int {
	if len(b) == 0 {
		return a
	}
	out := append(append([]int(nil), a...), b...)
	slices.Sort(out)
	return slices.Compact(out)
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:     format,
		Hardware:   o.Hardware,
		Dimensions: o.Dimensions,
	}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
