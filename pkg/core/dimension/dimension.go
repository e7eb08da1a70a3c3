// Package dimension derives the measurement labels and guide lines drawn
// over a shelf.
//
// Labels are pure annotations: they read the config and the layout result
// and never change geometry. Anchors and guides use the layout coordinate
// frame (x centered, y up from the floor, z from the front at 0 to the back
// at Depth). Front labels float one centimeter in front of the shelf.
package dimension

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/shelfcraft/pkg/core/layout"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

// Kind classifies a label.
type Kind int

const (
	KindWidth Kind = iota
	KindHeight
	KindDepth
	KindInnerWidth
	KindRowHeight
)

var kindNames = [...]string{"width", "height", "depth", "inner-width", "row-height"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Outer reports whether the label measures the whole shelf.
func (k Kind) Outer() bool { return k <= KindDepth }

const (
	// labelOffset is how far labels sit outside the shelf's sides.
	labelOffset = 10.0
	// frontOffset is how far labels float in front of the shelf.
	frontOffset = 1.0
	// shortRow is the row height whose label is pushed further out.
	shortRow = 18.0
	// shortRowGap is the extra push for shortRow labels.
	shortRowGap = 7.0
	// tickLength is the length of the marks closing a guide.
	tickLength = 3.0
)

// Guide is a straight measurement line.
type Guide struct {
	Start r3.Vec
	End   r3.Vec
}

// Length is the distance between the guide's ends.
func (g Guide) Length() float64 { return r3.Norm(r3.Sub(g.End, g.Start)) }

// Ticks returns the short marks across each end of the guide, perpendicular
// to it in the front plane. Guides running along z get vertical ticks.
func (g Guide) Ticks() [2]Guide {
	dir := r3.Sub(g.End, g.Start)
	if r3.Norm(dir) == 0 {
		return [2]Guide{{g.Start, g.Start}, {g.End, g.End}}
	}
	dir = r3.Unit(dir)
	perp := r3.Vec{Y: 1}
	if math.Abs(dir.Z) < 0.999 {
		perp = r3.Unit(r3.Vec{X: -dir.Y, Y: dir.X})
	}
	half := r3.Scale(tickLength/2, perp)
	tick := func(p r3.Vec) Guide { return Guide{r3.Sub(p, half), r3.Add(p, half)} }
	return [2]Guide{tick(g.Start), tick(g.End)}
}

// Label is one measurement. Row is -1 for outer labels.
type Label struct {
	Kind   Kind
	Text   string
	Value  float64
	Row    int
	Anchor r3.Vec
	Guide  Guide
}

// Annotations are the labels of one shelf.
type Annotations struct {
	Labels []Label
}

// ByKind returns the labels of kind k in order.
func (a Annotations) ByKind(k Kind) []Label {
	var out []Label
	for _, l := range a.Labels {
		if l.Kind == k {
			out = append(out, l)
		}
	}
	return out
}

// Annotate derives the labels for cfg and its layout res. Every style gets
// the outer width, height and depth; every style but Mosaic also gets one
// width label per enclosed compartment and one height label per row.
func Annotate(cfg shelf.Config, res shelf.Result) Annotations {
	var a Annotations
	a.outer(cfg)
	if res.Style == shelf.StyleMosaic || len(cfg.RowHeights) < cfg.NumRows {
		return a
	}
	a.inner(cfg, res)
	a.rows(cfg)
	return a
}

func (a *Annotations) outer(cfg shelf.Config) {
	w, h, d := cfg.Width, cfg.EffectiveHeight(), cfg.Depth
	top := h + 3*cfg.Thickness
	side := w/2 + labelOffset

	a.Labels = append(a.Labels,
		Label{
			Kind: KindWidth, Text: format(w), Value: w, Row: -1,
			Anchor: r3.Vec{Y: top, Z: -frontOffset},
			Guide:  Guide{r3.Vec{X: -w / 2, Y: top, Z: -frontOffset}, r3.Vec{X: w / 2, Y: top, Z: -frontOffset}},
		},
		Label{
			Kind: KindHeight, Text: format(h), Value: h, Row: -1,
			Anchor: r3.Vec{X: side, Y: h / 2, Z: -frontOffset},
			Guide:  Guide{r3.Vec{X: side, Z: -frontOffset}, r3.Vec{X: side, Y: h, Z: -frontOffset}},
		},
		Label{
			Kind: KindDepth, Text: format(math.Ceil(d)), Value: d, Row: -1,
			Anchor: r3.Vec{X: side, Y: top, Z: d / 2},
			Guide:  Guide{r3.Vec{X: side, Y: top}, r3.Vec{X: side, Y: top, Z: d}},
		},
	)
}

func (a *Annotations) inner(cfg shelf.Config, res shelf.Result) {
	for row := 0; row < cfg.NumRows; row++ {
		y := cfg.RowCenter(row)
		for _, c := range layout.Compartments(cfg, row, res.PanelCount, res.PanelSpacing) {
			if !c.Enclosed() {
				continue
			}
			w := c.Width()
			a.Labels = append(a.Labels, Label{
				Kind: KindInnerWidth, Text: format(math.Round(w)), Value: w, Row: row,
				Anchor: r3.Vec{X: c.Center(), Y: y, Z: -frontOffset},
				Guide:  Guide{r3.Vec{X: c.Left, Y: y, Z: -frontOffset}, r3.Vec{X: c.Right, Y: y, Z: -frontOffset}},
			})
		}
	}
}

func (a *Annotations) rows(cfg shelf.Config) {
	for row := 0; row < cfg.NumRows; row++ {
		rh := cfg.RowHeights[row]
		x := -cfg.Width/2 - labelOffset
		if rh == shortRow {
			x -= shortRowGap
		}
		bottom := cfg.RowBottom(row)
		a.Labels = append(a.Labels, Label{
			Kind: KindRowHeight, Text: format(math.Round(rh)), Value: rh, Row: row,
			Anchor: r3.Vec{X: x, Y: bottom + rh/2, Z: -frontOffset},
			Guide:  Guide{r3.Vec{X: x, Y: bottom, Z: -frontOffset}, r3.Vec{X: x, Y: bottom + rh, Z: -frontOffset}},
		})
	}
}

func format(v float64) string {
	return fmt.Sprintf("%g", v)
}
