package spacing

import (
	"math"
	"sort"
)

// eps absorbs floating-point noise in bound comparisons.
const eps = 1e-9

// BoundaryTable is an ascending list of width thresholds forming a step
// function from width to compartment count.
type BoundaryTable []float64

// Count returns the number of thresholds at or below width, minimum 1.
func (t BoundaryTable) Count(width float64) int {
	n := sort.Search(len(t), func(i int) bool { return t[i] > width+eps })
	return max(n, 1)
}

// Sorted reports whether the thresholds are strictly ascending.
func (t BoundaryTable) Sorted() bool {
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return false
		}
	}
	return true
}

// Interpolate blends two compartment counts by density in [0,100].
func Interpolate(minCols, maxCols int, density float64) int {
	if maxCols < minCols {
		minCols, maxCols = maxCols, minCols
	}
	return minCols + int(math.Floor(density*float64(maxCols-minCols+1)/101))
}

// Tables used by the uniform styles.
var (
	// GridMin spaces thresholds one 74 cm compartment apart, giving 6
	// compartments at full width.
	GridMin = BoundaryTable{30, 104, 178, 252, 326, 400}
	// GridMax spaces thresholds 30 cm apart, giving 15 compartments at
	// full width.
	GridMax = BoundaryTable{30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330, 360, 390, 420, 450}

	SlantMin = BoundaryTable{30, 69, 136, 200, 261, 319, 374, 426}
	SlantMax = BoundaryTable{30, 59, 87, 115, 143, 173, 200, 230, 256, 285, 312, 341, 369, 399, 425}
)
