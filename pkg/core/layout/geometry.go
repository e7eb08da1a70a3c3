package layout

import (
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/core/spacing"
)

// Divider is one vertical board of a row, given by its outer faces.
type Divider struct {
	// Index is the divider's position in the style's full divider sequence.
	// Rows that omit dividers (Pixel even rows) keep the original indices.
	Index int
	Left  float64
	Right float64
}

// Center returns the x of the divider's center.
func (d Divider) Center() float64 { return (d.Left + d.Right) / 2 }

// Compartment is the open span between two consecutive dividers of a row.
type Compartment struct {
	Row int
	// Index is the Index of the divider on the compartment's left.
	Index int
	// Left and Right are the inner faces of the bounding dividers.
	Left  float64
	Right float64
	// Floor and Ceiling report whether boards close the span below and
	// above. Only Pixel's broken boards leave them open.
	Floor   bool
	Ceiling bool
}

// Width is the clear width between the two divider faces.
func (c Compartment) Width() float64 { return c.Right - c.Left }

// Center returns the x of the compartment's center.
func (c Compartment) Center() float64 { return (c.Left + c.Right) / 2 }

// Enclosed reports whether the compartment is closed on all four sides.
func (c Compartment) Enclosed() bool { return c.Floor && c.Ceiling }

// Dividers returns the vertical dividers of row from left to right, as the
// generator for cfg places them. panelCount and panelSpacing are the values
// reported by Compute for the same config; the non-uniform styles derive
// their positions from cfg alone. Mosaic and out-of-range rows have none.
func Dividers(cfg shelf.Config, row, panelCount int, panelSpacing float64) []Divider {
	if row < 0 || row >= cfg.NumRows || row >= len(cfg.RowHeights) {
		return nil
	}
	switch Effective(cfg) {
	case shelf.StyleGrid:
		return uniformDividers(cfg, max(panelCount-1, 1), panelSpacing)
	case shelf.StyleSlant:
		return slantDividers(cfg, row, max(panelCount-1, 1), panelSpacing)
	case shelf.StylePixel:
		gaps, _ := spacing.PixelGaps(cfg.Width, cfg.Density, cfg.Thickness)
		return pixelDividers(cfg, row, gaps)
	case shelf.StyleGradient:
		return cumulativeDividers(cfg, gradientWidths(cfg))
	case shelf.StylePattern:
		return patternDividers(cfg, row)
	}
	return nil
}

// Compartments returns the open spans between consecutive dividers of row.
func Compartments(cfg shelf.Config, row, panelCount int, panelSpacing float64) []Compartment {
	divs := Dividers(cfg, row, panelCount, panelSpacing)
	if len(divs) < 2 {
		return nil
	}
	pixel := Effective(cfg) == shelf.StylePixel
	comps := make([]Compartment, 0, len(divs)-1)
	for i := 0; i+1 < len(divs); i++ {
		c := Compartment{
			Row:     row,
			Index:   divs[i].Index,
			Left:    divs[i].Right,
			Right:   divs[i+1].Left,
			Floor:   true,
			Ceiling: true,
		}
		if pixel {
			c.Floor = !brokenBoard(cfg, row) || c.Index%2 == 1
			c.Ceiling = !brokenBoard(cfg, row+1) || c.Index%2 == 1
		}
		comps = append(comps, c)
	}
	return comps
}

// openSpans reports whether every pair of consecutive dividers leaves a
// positive gap.
func openSpans(divs []Divider) bool {
	for i := 1; i < len(divs); i++ {
		if divs[i].Left-divs[i-1].Right <= 0 {
			return false
		}
	}
	return true
}

// uniformDividers places count+1 dividers pitch apart starting at the left
// outer face.
func uniformDividers(cfg shelf.Config, count int, pitch float64) []Divider {
	left := -cfg.Width / 2
	divs := make([]Divider, count+1)
	for i := range divs {
		x := left + float64(i)*pitch
		divs[i] = Divider{Index: i, Left: x, Right: x + cfg.Thickness}
	}
	return divs
}

// cumulativeDividers places a divider before, between and after widths.
func cumulativeDividers(cfg shelf.Config, widths []float64) []Divider {
	t := cfg.Thickness
	x := -cfg.Width / 2
	divs := make([]Divider, 0, len(widths)+1)
	for i := 0; i <= len(widths); i++ {
		divs = append(divs, Divider{Index: i, Left: x, Right: x + t})
		if i < len(widths) {
			x += t + widths[i]
		}
	}
	return divs
}
