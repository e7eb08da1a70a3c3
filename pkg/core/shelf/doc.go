// Package shelf defines the data model shared by every part of the layout
// engine: the input [Config], the [Panel] output unit and the [Result] a
// style generator returns.
//
// # Coordinate Frame
//
// All lengths are centimeters. Panels are boxes described by their extents
// (W, H, D) and center (X, Y, Z):
//
//   - x = 0 is the horizontal middle of the shelf, so the outer faces sit at
//     -Width/2 and +Width/2
//   - y = 0 is the outer bottom face of the floor panel
//   - z runs from 0 (front) to Depth (back)
//
// # Rows
//
// A shelf is a stack of NumRows rows. Row i has clear height RowHeights[i]
// and is bounded below and above by horizontal panels of the configured
// Thickness. [Config.RowBottom] and [Config.TotalHeight] derive the vertical
// positions every generator and consumer uses.
//
// # Immutability
//
// Values in this package are plain data. A [Result] owns its panel slice;
// consumers read it and never mutate it.
package shelf
