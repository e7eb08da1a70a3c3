package spacing

import "math"

// Pixel bracket thresholds. A width below Thresholds[i] uses bracket i; the
// last bracket covers everything from 396 upward.
var pixelThresholds = [...]float64{110, 185, 241, 319, 396}

// PixelMinWidth is the narrowest width the Pixel brackets are defined for.
const PixelMinWidth = 78.0

// DensityRatio skews Pixel's center gaps: positive widens them below
// density 50, negative narrows them above. Narrow shelves ignore density.
func DensityRatio(width, density float64) float64 {
	switch {
	case width < pixelThresholds[0]:
		return 0
	case density >= 50:
		return -(density - 50) / 30
	default:
		return -(density - 50) / 70
	}
}

// PixelBracket returns the bracket index (0..5) for width.
func PixelBracket(width float64) int {
	for i, th := range pixelThresholds {
		if width < th {
			return i
		}
	}
	return len(pixelThresholds)
}

// PixelGaps returns the compartment widths of a Pixel row, left to right.
// There are 3, 5, 7, 9, 11 or 13 gaps depending on the bracket and their
// sum plus one thickness per divider equals width. ok is false when the
// thickness leaves a gap without positive width.
func PixelGaps(width, density, thickness float64) (gaps []float64, ok bool) {
	bracket := PixelBracket(width)
	n := 2*bracket + 3
	avail := width - float64(n+1)*thickness
	k := 1 + DensityRatio(width, density)*0.2

	switch bracket {
	case 0:
		c := math.Min(50, avail-34) * k
		s := (avail - c) / 2
		gaps = []float64{s, c, s}
	case 1:
		c := math.Min(50, avail-68) * k
		s := (avail - c) / 4
		gaps = []float64{s - 3, s + 3, c, s + 3, s - 3}
	case 2:
		c := (math.Min(50, avail-85) - 12) * k
		s := (avail - 2*c) / 5
		gaps = []float64{s - 3, s + 3, c, s, c, s + 3, s - 3}
	case 3:
		c := (math.Min(50, avail-102) - 15) * k
		s := (avail - 3*c) / 6
		gaps = []float64{s - 5, s + 2, c + 2, s + 1, c, s + 1, c + 2, s + 2, s - 5}
	case 4:
		c := (math.Min(50, avail-119) - 10) * k
		s := (avail - 4*c) / 7
		gaps = []float64{s - 5, s + 3, c + 2, s, c, s, c, s, c + 2, s + 3, s - 5}
	default:
		c := (math.Min(50, avail-136) - 8) * k
		s := (avail - 5*c) / 8
		gaps = []float64{s - 4, s + 4, c, s, c, s, c, s, c, s, c, s + 4, s - 4}
	}

	for _, g := range gaps {
		if !(g > 0) {
			return gaps, false
		}
	}
	return gaps, true
}
