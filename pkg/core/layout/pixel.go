package layout

import (
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/core/spacing"
)

func pixelFallback(cfg shelf.Config) bool {
	if cfg.NumRows == 1 || cfg.Width < spacing.PixelMinWidth {
		return true
	}
	_, ok := spacing.PixelGaps(cfg.Width, cfg.Density, cfg.Thickness)
	return !ok
}

// pixel lays out fixed gap brackets with alternating rows: even rows drop
// the two side walls so their outer gaps stay open, and the outermost
// boards break into pieces over every second gap.
func pixel(cfg shelf.Config) shelf.Result {
	if pixelFallback(cfg) {
		return grid(cfg)
	}
	gaps, _ := spacing.PixelGaps(cfg.Width, cfg.Density, cfg.Thickness)
	all := cumulativeDividers(cfg, gaps)

	b := newBuilder(cfg)
	for k := 0; k <= cfg.NumRows; k++ {
		top := cfg.RowBottom(k)
		if !brokenBoard(cfg, k) {
			b.board(-cfg.Width/2, cfg.Width, top)
			continue
		}
		for i := 1; i < len(gaps); i += 2 {
			b.board(all[i].Left, gaps[i]+2*cfg.Thickness, top)
		}
	}

	for row := 0; row < cfg.NumRows; row++ {
		b.dividers(row, pixelDividers(cfg, row, gaps))

		comps := Compartments(cfg, row, len(gaps)+1, 0)
		if cfg.NeedsBackPanel(row) {
			b.backs(row, comps)
			continue
		}
		for i := 0; i < len(comps); i += 2 {
			b.back(row, comps[i].Left, comps[i].Right, shelf.RoleSupportPanel)
		}
	}

	return shelf.Result{
		Style:      shelf.StylePixel,
		Panels:     b.panels,
		PanelCount: len(gaps) + 1,
		Params: shelf.Params{
			Usable: cfg.Width,
			Widths: gaps,
		},
	}
}

// pixelDividers returns the cumulative dividers for gaps, without the two
// side walls on even rows.
func pixelDividers(cfg shelf.Config, row int, gaps []float64) []Divider {
	divs := cumulativeDividers(cfg, gaps)
	if row%2 == 0 && len(divs) > 2 {
		return divs[1 : len(divs)-1]
	}
	return divs
}

// brokenBoard reports whether the board on boundary k (0 is the floor,
// NumRows the top) is split into pieces over the odd gaps. The floor always
// is; the top is when the row count is odd.
func brokenBoard(cfg shelf.Config, k int) bool {
	if k == 0 {
		return true
	}
	return k == cfg.NumRows && cfg.NumRows%2 == 1
}
