// Package layout computes shelf panel layouts for the six styles.
//
// # Overview
//
// [Compute] is the single entry point. It validates a [shelf.Config], then
// dispatches on the style to one generator:
//
//   - Grid: uniform compartments from the Grid spacing rule
//   - Slant: uniform compartments on an inset width whose interior dividers
//     zig-zag from row to row
//   - Pixel: fixed gap brackets with alternating open sides and broken
//     top/bottom boards
//   - Gradient: column widths graded outward from the center
//   - Pattern: per-row seeded packing of compartments from a size set
//   - Mosaic: seeded rectangular tiling of an abstract grid
//
// Every generator checks its own fallback threshold first and produces
// exactly the Grid layout when the shelf is too small for its geometry.
// [Effective] reports which generator actually runs for a config.
//
// # Shared Geometry
//
// [Dividers] and [Compartments] return a row's divider faces and the open
// spans between them. Generators emit their vertical, back and support
// panels from these functions, and the hardware and dimension packages call
// the same functions with the PanelCount and PanelSpacing of a [shelf.Result].
// Doors, drawers and labels therefore line up with the panels by
// construction.
//
// # Determinism
//
// Pattern and Mosaic draw from [rng] sources seeded only from the config, so
// identical configs produce identical results.
package layout
