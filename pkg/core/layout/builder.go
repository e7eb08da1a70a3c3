package layout

import (
	"math"

	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

const (
	// supportWidth is the width of a support stub.
	supportWidth = 12.0
	// twoSupportMin is the narrowest shelf that gets a right frame stub.
	twoSupportMin = 44.0
	// interiorSupportMin is the width from which uniform styles add two
	// interior stubs.
	interiorSupportMin = 256.0
)

// builder accumulates the panels of one layout.
type builder struct {
	cfg    shelf.Config
	panels []shelf.Panel
}

func newBuilder(cfg shelf.Config) *builder {
	return &builder{cfg: cfg}
}

func (b *builder) add(p shelf.Panel) {
	b.panels = append(b.panels, p)
}

// board adds a horizontal board with the given left face and width whose
// top face is at top.
func (b *builder) board(left, width, top float64) {
	t, depth := b.cfg.Thickness, b.cfg.Depth
	b.add(shelf.Panel{
		W: width, H: t, D: depth,
		X: left + width/2, Y: top - t/2, Z: depth / 2,
		Role:       shelf.RoleHorizontalBase,
		CastShadow: true, ReceiveShadow: true,
	})
}

// boards adds NumRows+1 full-width boards, one below each row and one on
// top.
func (b *builder) boards() {
	for k := 0; k <= b.cfg.NumRows; k++ {
		b.board(-b.cfg.Width/2, b.cfg.Width, b.cfg.RowBottom(k))
	}
}

// dividers adds one full-depth vertical per divider spanning row.
func (b *builder) dividers(row int, divs []Divider) {
	rh, depth := b.cfg.RowHeights[row], b.cfg.Depth
	y := b.cfg.RowCenter(row)
	for _, d := range divs {
		b.add(shelf.Panel{
			W: d.Right - d.Left, H: rh, D: depth,
			X: d.Center(), Y: y, Z: depth / 2,
			Role:       shelf.RoleVerticalBase,
			CastShadow: true, ReceiveShadow: true,
		})
	}
}

// back adds a thin panel closing the rear of the span [left, right].
func (b *builder) back(row int, left, right float64, role shelf.Role) {
	t, depth := b.cfg.Thickness, b.cfg.Depth
	p := shelf.Panel{
		W: right - left, H: b.cfg.RowHeights[row], D: t,
		X: (left + right) / 2, Y: b.cfg.RowCenter(row), Z: depth - t/2,
		Role:          role,
		ReceiveShadow: true,
	}
	if role != shelf.RoleBackPanel {
		p.CastShadow = true
	}
	b.add(p)
}

// backs closes every compartment of the row.
func (b *builder) backs(row int, comps []Compartment) {
	for _, c := range comps {
		b.back(row, c.Left, c.Right, shelf.RoleBackPanel)
	}
}

// stub adds a support stub centered at x.
func (b *builder) stub(row int, x float64, role shelf.Role) {
	b.back(row, x-supportWidth/2, x+supportWidth/2, role)
}

// frameSupports adds stubs against the inner faces of the side walls.
// Shelves narrower than twoSupportMin only get the left one. A stub never
// exceeds the clear width between the walls.
func (b *builder) frameSupports(row int, role shelf.Role) {
	inner := b.cfg.Width/2 - b.cfg.Thickness
	w := math.Min(supportWidth, 2*inner)
	b.back(row, -inner, -inner+w, role)
	if b.cfg.Width >= twoSupportMin {
		b.back(row, inner-w, inner, role)
	}
}

// interiorSupports adds two stubs beside the interior dividers nearest one
// and two thirds of the inner width: the left stub against the left face of
// its divider, the right stub against the right face of its divider.
func (b *builder) interiorSupports(row int, divs []Divider) {
	if b.cfg.Width < interiorSupportMin || len(divs) < 3 {
		return
	}
	interior := divs[1 : len(divs)-1]
	t := b.cfg.Thickness
	span := b.cfg.Width - 2*t
	start := -b.cfg.Width/2 + t

	li := nearestDivider(interior, start+span/3)
	ri := nearestDivider(interior, start+2*span/3)
	if li == ri {
		switch {
		case ri+1 < len(interior):
			ri++
		case li > 0:
			li--
		default:
			b.stub(row, interior[li].Left-supportWidth/2, shelf.RoleSupportPanel)
			return
		}
	}
	b.stub(row, interior[li].Left-supportWidth/2, shelf.RoleSupportPanel)
	b.stub(row, interior[ri].Right+supportWidth/2, shelf.RoleSupportPanel)
}

// nearestDivider returns the index of the divider whose center is closest
// to x. Ties go to the leftmost.
func nearestDivider(divs []Divider, x float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, d := range divs {
		if dist := math.Abs(d.Center() - x); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
