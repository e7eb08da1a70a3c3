package layout

import (
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/core/spacing"
)

// grid is the universal layout: uniform compartments from the Grid rule.
func grid(cfg shelf.Config) shelf.Result {
	return gridWith(cfg, spacing.GridRule.Resolve(cfg.Width, cfg.Density, cfg.Thickness))
}

// gridWith lays out a Grid shelf with an already resolved spacing.
func gridWith(cfg shelf.Config, s spacing.Spacing) shelf.Result {
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
		Style:        shelf.StyleGrid,
		Panels:       b.panels,
		PanelCount:   s.PanelCount,
		PanelSpacing: s.PanelSpacing,
		Params:       shelf.Params{Usable: s.Usable},
	}
}
