package elevation

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"slices"

	"github.com/matzehuels/shelfcraft/pkg/core/dimension"
	"github.com/matzehuels/shelfcraft/pkg/core/hardware"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

const (
	// margin is the space around the shelf, in cm, kept for labels.
	margin = 30.0
	// fontSize is the label size in cm.
	fontSize = 4.0
)

type RenderOption func(*renderer)

type renderer struct {
	palette Palette
	scale   float64
	doors   []hardware.Door
	drawers []hardware.Drawer
	dims    *dimension.Annotations
}

// WithPalette overrides the colors.
func WithPalette(p Palette) RenderOption { return func(r *renderer) { r.palette = p } }

// WithScale sets the pixels per centimeter of the output size.
func WithScale(s float64) RenderOption {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

func WithDoors(d []hardware.Door) RenderOption     { return func(r *renderer) { r.doors = d } }
func WithDrawers(d []hardware.Drawer) RenderOption { return func(r *renderer) { r.drawers = d } }
func WithDimensions(a dimension.Annotations) RenderOption {
	return func(r *renderer) { r.dims = &a }
}

// RenderSVG draws the front elevation of res, the layout computed for cfg.
// Panels are drawn back to front: back panels, supports, then the boards.
func RenderSVG(cfg shelf.Config, res shelf.Result, opts ...RenderOption) []byte {
	r := renderer{palette: DefaultPalette, scale: 4}
	for _, opt := range opts {
		opt(&r)
	}

	height := max(cfg.TotalHeight(), cfg.EffectiveHeight())
	v := view{
		minX: -cfg.Width/2 - margin,
		top:  height + margin/2,
		w:    cfg.Width + 2*margin,
		h:    height + 1.5*margin,
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		v.w, v.h, v.w*r.scale, v.h*r.scale)
	fmt.Fprintf(&buf, "  <title>%s shelf %gx%gx%g</title>\n", res.Style, cfg.Width, height, cfg.Depth)

	r.renderPanels(&buf, v, res)
	r.renderHardware(&buf, v)
	if r.dims != nil {
		r.renderDimensions(&buf, v, *r.dims)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// view maps layout coordinates onto the SVG canvas, flipping y.
type view struct {
	minX, top float64
	w, h      float64
}

func (v view) x(x float64) float64 { return x - v.minX }
func (v view) y(y float64) float64 { return v.top - y }

func drawOrder(r shelf.Role) int {
	switch r {
	case shelf.RoleBackPanel:
		return 0
	case shelf.RoleSupportPanel, shelf.RoleVerticalEdge:
		return 1
	}
	return 2
}

func (r *renderer) renderPanels(buf *bytes.Buffer, v view, res shelf.Result) {
	type indexed struct {
		i int
		p shelf.Panel
	}
	panels := make([]indexed, len(res.Panels))
	for i, p := range res.Panels {
		panels[i] = indexed{i, p}
	}
	slices.SortStableFunc(panels, func(a, b indexed) int {
		return cmp.Compare(drawOrder(a.p.Role), drawOrder(b.p.Role))
	})

	mosaic := res.Style == shelf.StyleMosaic
	buf.WriteString("  <g id=\"panels\">\n")
	for _, ip := range panels {
		p := ip.p
		fill := r.palette.Fill(p.Role)
		class := p.Role.String()
		if mosaic && ip.i < len(res.Cells) {
			fill = r.palette.MosaicFill(res.Cells[ip.i].ColorIndex)
			class = "mosaic-cell"
		}
		fmt.Fprintf(buf, `    <rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="0.2"/>`+"\n",
			class, v.x(p.Left()), v.y(p.Top()), p.W, p.H, fill, r.palette.Stroke)
	}
	buf.WriteString("  </g>\n")
}

func (r *renderer) renderHardware(buf *bytes.Buffer, v view) {
	if len(r.doors) == 0 && len(r.drawers) == 0 {
		return
	}
	buf.WriteString("  <g id=\"hardware\">\n")
	for _, d := range r.doors {
		fmt.Fprintf(buf, `    <rect class="door" data-layer="%d" data-hinge="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="0.2"/>`+"\n",
			d.Layer, d.Hinge, v.x(d.Left()), v.y(d.Y+d.Height/2), d.Width, d.Height, r.palette.Door, r.palette.Opacity, r.palette.Stroke)
		knob := d.X - d.PivotOffsetX*0.85
		fmt.Fprintf(buf, `    <circle class="knob" cx="%.2f" cy="%.2f" r="0.8" fill="%s"/>`+"\n", v.x(knob), v.y(d.Y), r.palette.Stroke)
	}
	for _, d := range r.drawers {
		fmt.Fprintf(buf, `    <rect class="drawer" data-layer="%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="0.2"/>`+"\n",
			d.Layer, v.x(d.Left()), v.y(d.Y+d.Height/2), d.Width, d.Height, r.palette.Drawer, r.palette.Opacity, r.palette.Stroke)
		fmt.Fprintf(buf, `    <line class="handle" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.8"/>`+"\n",
			v.x(d.X-d.Width/6), v.y(d.Y+d.Height/4), v.x(d.X+d.Width/6), v.y(d.Y+d.Height/4), r.palette.Stroke)
	}
	buf.WriteString("  </g>\n")
}

func (r *renderer) renderDimensions(buf *bytes.Buffer, v view, a dimension.Annotations) {
	buf.WriteString("  <g id=\"dimensions\">\n")
	for _, l := range a.Labels {
		// The depth guide runs along z and has no extent in the front view.
		if l.Kind != dimension.KindDepth {
			r.line(buf, v, l.Guide)
			for _, t := range l.Guide.Ticks() {
				r.line(buf, v, t)
			}
		}
		var text bytes.Buffer
		xml.EscapeText(&text, []byte(l.Text))
		fmt.Fprintf(buf, `    <text class="%s" x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" text-anchor="middle" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
			l.Kind, v.x(l.Anchor.X), v.y(l.Anchor.Y), fontSize, r.palette.Label, text.String())
	}
	buf.WriteString("  </g>\n")
}

func (r *renderer) line(buf *bytes.Buffer, v view, g dimension.Guide) {
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.25"/>`+"\n",
		v.x(g.Start.X), v.y(g.Start.Y), v.x(g.End.X), v.y(g.End.Y), r.palette.Guide)
}
