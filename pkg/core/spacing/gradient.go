package spacing

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Gradient grading constants.
const (
	GradientMinWidth  = 60.0
	GradientPitch     = 40.0
	GradientMinColumn = 25.0
	GradientMaxColumn = 66.0
	GradientRatio     = 1.12
)

// GradientColumns returns the column count for a Gradient shelf.
func GradientColumns(width, thickness float64) int {
	return int(math.Floor((width-thickness)/GradientPitch)) + 1
}

// GradientUsable is the total clear width shared by n columns.
func GradientUsable(width, thickness float64, n int) float64 {
	return width - float64(n+1)*thickness
}

// InternalWidths grades n column widths that sum exactly to usable.
//
// At density 50 widths grow geometrically by GradientRatio per step away from
// the center column. Other densities tilt the widths linearly from one side
// to the other, by up to a quarter of the base width. Widths are clamped to
// [GradientMinColumn, GradientMaxColumn], the residual is spread evenly over
// the columns that can still move, and the last column absorbs what is left.
func InternalWidths(n int, usable, density float64) []float64 {
	if n <= 0 {
		return nil
	}
	base := usable / float64(n)
	center := n / 2
	widths := make([]float64, n)

	for i := range widths {
		if density == 50 {
			dist := math.Abs(float64(i - center))
			widths[i] = base * math.Pow(GradientRatio, dist)
		} else {
			var pos float64
			if n > 1 {
				pos = float64(i)/float64(n-1)*2 - 1
			}
			widths[i] = base + base*0.5*(density/100-0.5)*pos
		}
		widths[i] = clampColumn(widths[i])
	}

	for pass := 0; pass < n; pass++ {
		residual := usable - floats.Sum(widths)
		if math.Abs(residual) < eps {
			break
		}
		var free []int
		for i, w := range widths {
			if (residual > 0 && w < GradientMaxColumn) || (residual < 0 && w > GradientMinColumn) {
				free = append(free, i)
			}
		}
		if len(free) == 0 {
			break
		}
		share := residual / float64(len(free))
		for _, i := range free {
			widths[i] = clampColumn(widths[i] + share)
		}
	}

	widths[n-1] += usable - floats.Sum(widths)
	return widths
}

func clampColumn(w float64) float64 {
	return math.Max(GradientMinColumn, math.Min(GradientMaxColumn, w))
}
