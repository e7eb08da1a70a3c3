// Package spacing resolves how many compartments a shelf row gets and how
// wide they are.
//
// # Boundary Tables
//
// Uniform styles (Grid, Slant) describe their density curve with two
// [BoundaryTable] values: the compartment count at density 0 and at density
// 100, each as a sorted list of width thresholds. The count for a width is
// the number of thresholds at or below it. A [Rule] interpolates between the
// two counts and then clamps the resulting spacing into a physical range:
//
//	count   = minCols + floor(density * (maxCols - minCols + 1) / 101)
//	spacing = (usable - thickness) / count
//
// The clamp always wins over the density interpolation.
//
// # Non-uniform Styles
//
// [PixelGaps] maps a width onto one of six gap brackets and [InternalWidths]
// grades Gradient columns outward from the center. Both return widths whose
// sum plus the divider thicknesses is exactly the shelf width.
//
// Everything here is pure. Generators, hardware placement and dimension
// labels call the same functions so their coordinates cannot drift apart.
package spacing
