package layout

import (
	"math"
	"slices"

	"github.com/matzehuels/shelfcraft/pkg/core/rng"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/core/spacing"
)

const (
	// PatternMaxFallbackWidth is the widest shelf laid out as a single
	// compartment instead of a pattern.
	PatternMaxFallbackWidth = 43.0
	// pinnedWidth is the fixed compartment a shifted row pins to one side.
	pinnedWidth = 12.0
	// minCompartment is the narrowest compartment the packer leaves.
	minCompartment = 28.0
	// patternSeedScale spreads row numbers over the sine source.
	patternSeedScale = 1234567
	// nudgeAmplitude is the boundary shift at density 0 or 100.
	nudgeAmplitude = 8.0
)

// compartmentSizes are the widths the packer draws from, smallest first.
var compartmentSizes = [...]float64{28, 45, 62, 75, 95}

// Shift says where a Pattern row pins its fixed compartment.
type Shift int

const (
	ShiftNone Shift = iota
	ShiftLeft
	ShiftRight
)

// PatternShift returns the shift rule for a 1-based row number. The rule
// repeats every ten rows.
func PatternShift(rowNumber int) Shift {
	switch ((rowNumber-1)%10+10)%10 + 1 {
	case 3, 5, 8, 10:
		return ShiftLeft
	case 4, 7, 9:
		return ShiftRight
	}
	return ShiftNone
}

func patternFallback(cfg shelf.Config) bool {
	return cfg.Width <= PatternMaxFallbackWidth
}

// pattern packs every row independently from a seeded size sequence.
func pattern(cfg shelf.Config) shelf.Result {
	if patternFallback(cfg) {
		res := gridWith(cfg, spacing.Spacing{
			Count:        1,
			PanelCount:   2,
			PanelSpacing: cfg.Width - cfg.Thickness,
			Usable:       cfg.Width,
		})
		res.Fallback = true
		return res
	}

	b := newBuilder(cfg)
	b.boards()

	panelCount := 2
	for row := 0; row < cfg.NumRows; row++ {
		divs := patternDividers(cfg, row)
		panelCount = max(panelCount, len(divs))
		b.dividers(row, divs)

		if cfg.NeedsBackPanel(row) {
			b.back(row, -cfg.Width/2+cfg.Thickness, cfg.Width/2-cfg.Thickness, shelf.RoleBackPanel)
			continue
		}
		b.frameSupports(row, shelf.RoleSupportPanel)
	}

	return shelf.Result{
		Style:        shelf.StylePattern,
		Panels:       b.panels,
		PanelCount:   panelCount,
		PanelSpacing: cfg.Width / float64(panelCount),
		Params:       shelf.Params{Usable: cfg.Width - 2*cfg.Thickness},
	}
}

// PatternBoundaries returns the x of every divider center of row, left to
// right, including the side walls. It is empty when cfg is not laid out as
// a pattern.
func PatternBoundaries(cfg shelf.Config, row int) []float64 {
	if Effective(cfg) != shelf.StylePattern || row < 0 || row >= cfg.NumRows {
		return nil
	}
	divs := patternDividers(cfg, row)
	xs := make([]float64, len(divs))
	for i, d := range divs {
		xs[i] = d.Center()
	}
	return xs
}

// patternDividers returns the side walls, the pinned divider of shifted
// rows and the packed dividers of row, sorted by position. Rows too narrow
// to hold the pinned compartment and a divider beside it skip the pin.
func patternDividers(cfg shelf.Config, row int) []Divider {
	t := cfg.Thickness
	half := cfg.Width / 2
	rowNumber := row + 1

	start, end := -half+t, half-t
	xs := []float64{-half, half - t}
	shift := PatternShift(rowNumber)
	if end-start <= pinnedWidth+t {
		shift = ShiftNone
	}
	switch shift {
	case ShiftLeft:
		pin := start + pinnedWidth
		xs = append(xs, pin)
		start = pin + t
	case ShiftRight:
		pin := end - pinnedWidth - t
		xs = append(xs, pin)
		end = pin
	}

	for _, pos := range packRow(end-start, rowNumber, cfg.Density, t) {
		xs = append(xs, start+pos)
	}
	slices.Sort(xs)

	divs := make([]Divider, len(xs))
	for i, x := range xs {
		divs[i] = Divider{Index: i, Left: x, Right: x + t}
	}
	return divs
}

// packRow returns the left faces of the dividers packed into a span of
// width avail, relative to the span's start. Every compartment the packer
// leaves is at least minCompartment wide before the density nudge.
func packRow(avail float64, rowNumber int, density, thickness float64) []float64 {
	src := rng.NewSine(float64(rowNumber) * patternSeedScale)

	var positions []float64
	x := 0.0
	for x < avail-minCompartment {
		x += drawCompartment(src.Float64(), avail-x)
		if x+thickness+minCompartment > avail {
			break
		}
		positions = append(positions, x)
		x += thickness
	}

	nudge := (density/100 - 0.5) * nudgeAmplitude
	hi := avail - minCompartment - thickness
	for i := range positions {
		dir := 1.0
		if i%2 == 1 {
			dir = -1
		}
		positions[i] = math.Max(minCompartment, math.Min(hi, positions[i]+nudge*dir))
	}
	return positions
}

// drawCompartment maps a draw onto a compartment width, weighted by the
// width still free.
func drawCompartment(r, remaining float64) float64 {
	switch {
	case remaining < 50:
		return math.Min(remaining, compartmentSizes[0])
	case remaining < 80:
		if r < 0.6 {
			return compartmentSizes[0]
		}
		return compartmentSizes[1]
	case r < 0.25:
		return compartmentSizes[0]
	case r < 0.5:
		return compartmentSizes[1]
	case r < 0.7:
		return compartmentSizes[2]
	case r < 0.9:
		return compartmentSizes[3]
	}
	return compartmentSizes[4]
}
