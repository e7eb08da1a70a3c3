package layout

import (
	"math"

	"github.com/matzehuels/shelfcraft/pkg/core/rng"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

const (
	// mosaicUnit is the nominal column width of the Mosaic grid.
	mosaicUnit = 30.0
	// mosaicColors is the number of cell color indices.
	mosaicColors = 4
	// mosaicMaxDraw bounds a drawn cell extent before capping.
	mosaicMaxDraw = 3
	// mosaicMaxShare is the largest share of the grid one cell may span at
	// full density.
	mosaicMaxShare = 0.4
)

// mosaicGrid returns the abstract grid resolution of cfg.
func mosaicGrid(cfg shelf.Config) (cols, rows int) {
	cols = int(math.Floor(cfg.Width / mosaicUnit))
	rows = int(math.Floor(cfg.EffectiveHeight() / cfg.RowHeights[0]))
	return cols, rows
}

func mosaicFallback(cfg shelf.Config) bool {
	cols, rows := mosaicGrid(cfg)
	if cols < 2 || rows < 2 {
		return true
	}
	cellH := cfg.EffectiveHeight() / float64(rows)
	cellW := cfg.Width / float64(cols)
	return cellH <= 2*cfg.Thickness || cellW <= 2*cfg.Thickness
}

// MosaicCells tiles a cols x rows grid with non-overlapping rectangles.
//
// Cells are placed in row-major order at every free grid position. Each
// extent is drawn from 1..3 units, capped by a density-scaled maximum and the
// grid edge; a cell whose drawn rectangle would overlap an earlier one is
// placed as 1x1. The same inputs always produce the same tiling.
func MosaicCells(cols, rows int, density float64) []shelf.MosaicCell {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	src := rng.NewParkMiller(int64(math.Floor(density*1000 + float64(cols*100+rows))))

	factor := density / 100
	maxW := max(2, int(math.Floor(float64(cols)*mosaicMaxShare*factor)))
	maxH := max(2, int(math.Floor(float64(rows)*mosaicMaxShare*factor)))

	occupied := make([][]bool, rows)
	for r := range occupied {
		occupied[r] = make([]bool, cols)
	}
	free := func(c0, r0, w, h int) bool {
		for r := r0; r < r0+h; r++ {
			for c := c0; c < c0+w; c++ {
				if occupied[r][c] {
					return false
				}
			}
		}
		return true
	}

	var cells []shelf.MosaicCell
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if occupied[r][c] {
				continue
			}
			w := min(maxW, rng.Pick(src, mosaicMaxDraw)+1, cols-c)
			h := min(maxH, rng.Pick(src, mosaicMaxDraw)+1, rows-r)
			if !free(c, r, w, h) {
				w, h = 1, 1
			}
			cells = append(cells, shelf.MosaicCell{
				Col: c, Row: r, W: w, H: h,
				ColorIndex: rng.Pick(src, mosaicColors),
			})
			for rr := r; rr < r+h; rr++ {
				for cc := c; cc < c+w; cc++ {
					occupied[rr][cc] = true
				}
			}
		}
	}
	return cells
}

// mosaic maps a random tiling onto decorative compartment panels.
func mosaic(cfg shelf.Config) shelf.Result {
	if mosaicFallback(cfg) {
		return grid(cfg)
	}
	cols, rows := mosaicGrid(cfg)
	cells := MosaicCells(cols, rows, cfg.Density)

	t, depth := cfg.Thickness, cfg.Depth
	cellW := cfg.Width / float64(cols)
	cellH := cfg.EffectiveHeight() / float64(rows)

	b := newBuilder(cfg)
	for _, c := range cells {
		b.add(shelf.Panel{
			W: float64(c.W)*cellW - 2*t,
			H: float64(c.H)*cellH - 2*t,
			D: depth - t,
			X: -cfg.Width/2 + (float64(c.Col)+float64(c.W)/2)*cellW,
			Y: (float64(c.Row) + float64(c.H)/2) * cellH,
			Z: (depth - t) / 2,

			Role:       shelf.RoleVerticalBase,
			CastShadow: true, ReceiveShadow: true,
		})
	}

	for row := 0; row < cfg.NumRows; row++ {
		if cfg.NeedsBackPanel(row) {
			b.back(row, -cfg.Width/2+t, cfg.Width/2-t, shelf.RoleBackPanel)
			continue
		}
		b.frameSupports(row, shelf.RoleVerticalEdge)
	}

	return shelf.Result{
		Style:      shelf.StyleMosaic,
		Panels:     b.panels,
		PanelCount: len(cells),
		Params:     shelf.Params{Usable: cfg.Width},
		Cells:      cells,
	}
}
