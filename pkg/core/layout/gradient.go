package layout

import (
	"slices"

	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/core/spacing"
)

// gradientFallback also applies when the boards leave the last column no
// width once the others sit at their minimum.
func gradientFallback(cfg shelf.Config) bool {
	if cfg.Width < spacing.GradientMinWidth {
		return true
	}
	n := spacing.GradientColumns(cfg.Width, cfg.Thickness)
	return spacing.GradientUsable(cfg.Width, cfg.Thickness, n) <= float64(n-1)*spacing.GradientMinColumn
}

// gradientWidths grades the column widths of a Gradient shelf.
func gradientWidths(cfg shelf.Config) []float64 {
	n := spacing.GradientColumns(cfg.Width, cfg.Thickness)
	usable := spacing.GradientUsable(cfg.Width, cfg.Thickness, n)
	return spacing.InternalWidths(n, usable, cfg.Density)
}

// gradient lays out columns whose widths grade across the shelf.
func gradient(cfg shelf.Config) shelf.Result {
	if gradientFallback(cfg) {
		return grid(cfg)
	}
	widths := gradientWidths(cfg)
	divs := cumulativeDividers(cfg, widths)

	b := newBuilder(cfg)
	b.boards()
	for row := 0; row < cfg.NumRows; row++ {
		b.dividers(row, divs)
		if cfg.NeedsBackPanel(row) {
			b.backs(row, Compartments(cfg, row, len(divs), 0))
			continue
		}
		b.frameSupports(row, shelf.RoleSupportPanel)
	}

	return shelf.Result{
		Style:          shelf.StyleGradient,
		Panels:         b.panels,
		PanelCount:     len(divs),
		InternalWidths: widths,
		Params: shelf.Params{
			Usable: spacing.GradientUsable(cfg.Width, cfg.Thickness, len(widths)),
			Widths: slices.Clone(widths),
		},
	}
}
