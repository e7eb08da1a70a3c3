// Package elevation renders a shelf's front elevation as SVG.
//
// The drawing is an orthographic view from the front: every panel becomes a
// rectangle of its width and height at its x/y position, colored by role.
// Mosaic cells take their color from the cell's color index. Doors and
// drawers are drawn semi-transparent over their compartments and dimension
// labels float around the shelf. One SVG unit is one centimeter; [WithScale]
// sets the pixel size.
//
//	res, _ := layout.Compute(cfg)
//	svg := elevation.RenderSVG(cfg, res,
//	    elevation.WithDoors(doors),
//	    elevation.WithDimensions(dimension.Annotate(cfg, res)),
//	)
package elevation
