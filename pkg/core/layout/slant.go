package layout

import (
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/core/spacing"
)

// SlantMinWidth is the narrowest shelf laid out as Slant.
const SlantMinWidth = 78.0

// slantFallback also applies when the shifted dividers of either row
// parity would close a compartment, as thick boards on a short pitch do.
func slantFallback(cfg shelf.Config) bool {
	if cfg.NumRows <= 1 || cfg.Width < SlantMinWidth {
		return true
	}
	s := spacing.SlantRule.Resolve(cfg.Width, cfg.Density, cfg.Thickness)
	for row := 0; row < 2; row++ {
		if !openSpans(slantDividers(cfg, row, s.Count, s.PanelSpacing)) {
			return true
		}
	}
	return false
}

// SlantOffset is the zig-zag shift of interior dividers for a divider pitch.
func SlantOffset(pitch float64) float64 {
	return pitch / 4
}

// slantShift is the signed offset applied to interior dividers of row:
// left on even rows, right on odd rows.
func slantShift(row int, pitch float64) float64 {
	if row%2 == 0 {
		return -SlantOffset(pitch)
	}
	return SlantOffset(pitch)
}

// slant divides an inset width uniformly and shifts the interior dividers
// of alternate rows in opposite directions. The side walls stay put.
func slant(cfg shelf.Config) shelf.Result {
	if slantFallback(cfg) {
		return grid(cfg)
	}
	s := spacing.SlantRule.Resolve(cfg.Width, cfg.Density, cfg.Thickness)

	b := newBuilder(cfg)
	b.boards()
	for row := 0; row < cfg.NumRows; row++ {
		divs := Dividers(cfg, row, s.PanelCount, s.PanelSpacing)
		b.dividers(row, divs)

		if cfg.NeedsBackPanel(row) {
			b.backs(row, Compartments(cfg, row, s.PanelCount, s.PanelSpacing))
			continue
		}
		b.frameSupports(row, shelf.RoleSupportPanel)
		b.interiorSupports(row, divs)
	}

	return shelf.Result{
		Style:        shelf.StyleSlant,
		Panels:       b.panels,
		PanelCount:   s.PanelCount,
		PanelSpacing: s.PanelSpacing,
		Params: shelf.Params{
			Usable: s.Usable,
			Margin: spacing.SlantMargin,
			Offset: SlantOffset(s.PanelSpacing),
		},
	}
}

// slantDividers returns the side walls plus count-1 interior dividers laid
// out over the inset width and shifted for row.
func slantDividers(cfg shelf.Config, row, count int, pitch float64) []Divider {
	t := cfg.Thickness
	half := cfg.Width / 2
	start := -(cfg.Width - spacing.SlantMargin) / 2
	shift := slantShift(row, pitch)

	divs := make([]Divider, 0, count+1)
	divs = append(divs, Divider{Index: 0, Left: -half, Right: -half + t})
	for i := 1; i < count; i++ {
		x := start + float64(i)*pitch + shift
		divs = append(divs, Divider{Index: i, Left: x, Right: x + t})
	}
	divs = append(divs, Divider{Index: count, Left: half - t, Right: half})
	return divs
}
