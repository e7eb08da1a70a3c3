package shelf

// Panel is one rectangular board. X, Y, Z locate its center.
type Panel struct {
	W    float64 `json:"w"`
	H    float64 `json:"h"`
	D    float64 `json:"d"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Role Role    `json:"mat_type"`

	CastShadow    bool `json:"cast_shadow"`
	ReceiveShadow bool `json:"receive_shadow"`
}

// Left returns the x of the panel's left face.
func (p Panel) Left() float64 { return p.X - p.W/2 }

// Right returns the x of the panel's right face.
func (p Panel) Right() float64 { return p.X + p.W/2 }

// Bottom returns the y of the panel's bottom face.
func (p Panel) Bottom() float64 { return p.Y - p.H/2 }

// Top returns the y of the panel's top face.
func (p Panel) Top() float64 { return p.Y + p.H/2 }

// Volume is W*H*D.
func (p Panel) Volume() float64 { return p.W * p.H * p.D }

// MosaicCell is one tile of a Mosaic layout in abstract grid units.
type MosaicCell struct {
	Col        int `json:"col"`
	Row        int `json:"row"`
	W          int `json:"w"`
	H          int `json:"h"`
	ColorIndex int `json:"color_index"`
}

// Params carries the numeric inputs a generator derived its dividers from,
// so hardware and dimension code reproduce positions without re-deriving
// the formulas.
type Params struct {
	// Usable is the width the spacing resolver worked against.
	Usable float64 `json:"usable"`
	// Margin is the frame inset subtracted from Width (Slant).
	Margin float64 `json:"margin,omitempty"`
	// Offset is the per-row zig-zag shift of interior dividers (Slant).
	Offset float64 `json:"offset,omitempty"`
	// Widths are the compartment widths for non-uniform styles
	// (Pixel gaps, Gradient columns).
	Widths []float64 `json:"widths,omitempty"`
}

// Result is the output of a layout computation.
type Result struct {
	// Requested is the style asked for; Style is the one that produced the
	// geometry. They differ when Fallback is set.
	Requested Style `json:"requested"`
	Style     Style `json:"style"`
	Fallback  bool  `json:"fallback"`

	Panels []Panel `json:"panels"`

	// PanelCount is the number of primary vertical dividers. Pattern reports
	// the maximum over rows, Mosaic the number of cells.
	PanelCount int `json:"panel_count"`
	// PanelSpacing is the nominal center-to-center divider spacing, or 0 for
	// styles without a single spacing (Pixel, Gradient, Mosaic).
	PanelSpacing float64 `json:"panel_spacing"`

	Params Params `json:"params"`

	InternalWidths []float64    `json:"internal_widths,omitempty"`
	Cells          []MosaicCell `json:"cells,omitempty"`
}

// Volume sums the box volume of every panel.
func (r Result) Volume() float64 {
	var v float64
	for _, p := range r.Panels {
		v += p.Volume()
	}
	return v
}

// PanelsByRole returns the panels with the given role, in order.
func (r Result) PanelsByRole(role Role) []Panel {
	var out []Panel
	for _, p := range r.Panels {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out
}

// CountRole counts panels with the given role.
func (r Result) CountRole(role Role) int {
	n := 0
	for _, p := range r.Panels {
		if p.Role == role {
			n++
		}
	}
	return n
}
