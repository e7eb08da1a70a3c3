// Package render draws computed shelves and converts the drawings.
//
// The [elevation] subpackage renders a shelf's front elevation as SVG:
// panels by role, Mosaic cells by color, optional doors, drawers and
// dimension labels. [ToPDF] and [ToPNG] convert any SVG with the external
// rsvg-convert tool from librsvg:
//
//	svg := elevation.RenderSVG(cfg, res, elevation.WithDimensions(dims))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// [elevation]: github.com/matzehuels/shelfcraft/pkg/render/elevation
package render
