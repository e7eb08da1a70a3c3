// Package io reads shelf design documents and writes computed layouts.
//
// # Design Documents
//
// A design document is the configurator's saved state: the shelf's
// dimensions, style, density, row heights, color and the layers carrying
// doors or drawers. The same shape is accepted as JSON, TOML or YAML:
//
//	style: slant
//	density: 60
//	width: 180
//	depth: 32
//	rowHeights: [32, 32, 18, 38]
//	numRows: 4
//	color: N_OAK
//	doorsCreatedLayers: [1]
//	drawersCreatedLayers: [0]
//
// Use [ImportDesign] to read a file (the format follows the extension) or
// [ReadDesign] with an explicit [Format] for any io.Reader. Missing fields
// take the configurator defaults; [Design.Config] turns the document into a
// shelf.Config whose hardware layers come from the door and drawer plan.
//
// # Layout Export
//
// [WriteLayout] and [ExportLayout] encode a [Document] (the input config, the
// computed panels, door and drawer placements and the price quote) as
// indented JSON for downstream tools.
package io
