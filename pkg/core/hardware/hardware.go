package hardware

import (
	"fmt"

	"github.com/matzehuels/shelfcraft/pkg/core/layout"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

const (
	// DoorGap is subtracted from a door's opening in both directions.
	DoorGap = 0.6
	// DrawerGap is subtracted from a drawer front's height.
	DrawerGap = 0.3
)

// Hinge is the side a door rotates around.
type Hinge int

const (
	HingeLeft Hinge = iota
	HingeRight
)

func (h Hinge) String() string {
	if h == HingeRight {
		return "right"
	}
	return "left"
}

func (h Hinge) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *Hinge) UnmarshalText(b []byte) error {
	switch string(b) {
	case "left":
		*h = HingeLeft
	case "right":
		*h = HingeRight
	default:
		return fmt.Errorf("unknown hinge %q", b)
	}
	return nil
}

// Door is a closed door in front of one compartment. X, Y, Z locate its
// center.
type Door struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
	Layer     int     `json:"layer"`
	Hinge     Hinge   `json:"hinge"`
	// PivotOffsetX is the signed distance from the door's center to its
	// hinge axis.
	PivotOffsetX float64 `json:"pivot_offset_x"`
}

// Left returns the x of the door's left edge.
func (d Door) Left() float64 { return d.X - d.Width/2 }

// Right returns the x of the door's right edge.
func (d Door) Right() float64 { return d.X + d.Width/2 }

// Drawer is a drawer box filling one compartment. X, Y, Z locate its center.
type Drawer struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
	Layer  int     `json:"layer"`
}

// Left returns the x of the drawer's left side.
func (d Drawer) Left() float64 { return d.X - d.Width/2 }

// Right returns the x of the drawer's right side.
func (d Drawer) Right() float64 { return d.X + d.Width/2 }

// Doors returns one door per enclosed compartment of layer, as laid out for
// cfg with the given style. panelCount and panelSpacing must come from the
// matching layout.Compute call.
func Doors(style shelf.Style, layer int, cfg shelf.Config, panelCount int, panelSpacing float64) []Door {
	comps := openings(style, layer, cfg, panelCount, panelSpacing)
	if len(comps) == 0 {
		return nil
	}
	rh := cfg.RowHeights[layer]
	y := cfg.RowCenter(layer)
	t := cfg.Thickness

	doors := make([]Door, 0, len(comps))
	for _, c := range comps {
		d := Door{
			X:         c.Center(),
			Y:         y,
			Z:         t / 2,
			Width:     c.Width() - DoorGap,
			Height:    rh - DoorGap,
			Thickness: t,
			Layer:     layer,
		}
		if c.Center() < 0 {
			d.Hinge = HingeLeft
			d.PivotOffsetX = -d.Width / 2
		} else {
			d.Hinge = HingeRight
			d.PivotOffsetX = d.Width / 2
		}
		doors = append(doors, d)
	}
	return doors
}

// Drawers returns one drawer per enclosed compartment of layer. Drawers use
// the full inner width and stop one thickness short of the back.
func Drawers(style shelf.Style, layer int, cfg shelf.Config, panelCount int, panelSpacing float64) []Drawer {
	comps := openings(style, layer, cfg, panelCount, panelSpacing)
	if len(comps) == 0 {
		return nil
	}
	depth := cfg.Depth - cfg.Thickness
	drawers := make([]Drawer, 0, len(comps))
	for _, c := range comps {
		drawers = append(drawers, Drawer{
			X:      c.Center(),
			Y:      cfg.RowCenter(layer),
			Z:      depth / 2,
			Width:  c.Width(),
			Height: cfg.RowHeights[layer] - DrawerGap,
			Depth:  depth,
			Layer:  layer,
		})
	}
	return drawers
}

// openings returns the enclosed compartments of layer, or nil when the
// shelf cannot carry hardware there.
func openings(style shelf.Style, layer int, cfg shelf.Config, panelCount int, panelSpacing float64) []layout.Compartment {
	cfg.Style = style
	if cfg.Validate() != nil || layer < 0 || layer >= cfg.NumRows {
		return nil
	}
	if layout.Effective(cfg) == shelf.StyleMosaic {
		return nil
	}
	var out []layout.Compartment
	for _, c := range layout.Compartments(cfg, layer, panelCount, panelSpacing) {
		if c.Enclosed() && c.Width() > DoorGap {
			out = append(out, c)
		}
	}
	return out
}
