package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/shelfcraft/pkg/core/dimension"
	"github.com/matzehuels/shelfcraft/pkg/core/hardware"
	"github.com/matzehuels/shelfcraft/pkg/core/pricing"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	shelfio "github.com/matzehuels/shelfcraft/pkg/io"
	"github.com/matzehuels/shelfcraft/pkg/render"
	"github.com/matzehuels/shelfcraft/pkg/render/elevation"
)

// Scene is everything the render stage draws or exports.
type Scene struct {
	Config     shelf.Config
	Layout     shelf.Result
	Placements hardware.Placements
	Dimensions dimension.Annotations
	Quote      pricing.Quote
}

// Render generates output artifacts in the requested formats. PNG and PDF
// are converted from the SVG and need rsvg-convert on the PATH.
func Render(ctx context.Context, scene Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	svgOnce := func() []byte {
		if svg == nil {
			svg = elevation.RenderSVG(scene.Config, scene.Layout, svgOptions(scene, opts)...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svgOnce()
		case FormatPNG:
			data, err = render.ToPNG(ctx, svgOnce(), opts.Scale)
		case FormatPDF:
			data, err = render.ToPDF(ctx, svgOnce())
		case FormatJSON:
			data, err = marshalDocument(scene)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// svgOptions builds the elevation options for a scene.
func svgOptions(scene Scene, opts Options) []elevation.RenderOption {
	var svgOpts []elevation.RenderOption
	if opts.Hardware {
		svgOpts = append(svgOpts,
			elevation.WithDoors(scene.Placements.Doors),
			elevation.WithDrawers(scene.Placements.Drawers))
	}
	if opts.Dimensions {
		svgOpts = append(svgOpts, elevation.WithDimensions(scene.Dimensions))
	}
	return svgOpts
}

func marshalDocument(scene Scene) ([]byte, error) {
	quote := scene.Quote
	doc := shelfio.Document{
		Config:  scene.Config,
		Layout:  scene.Layout,
		Doors:   scene.Placements.Doors,
		Drawers: scene.Placements.Drawers,
		Quote:   &quote,
	}
	var buf bytes.Buffer
	if err := shelfio.WriteLayout(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
