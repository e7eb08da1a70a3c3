package spacing

import "math"

// Rule is the spacing policy of a uniform style.
type Rule struct {
	Min BoundaryTable // counts at density 0
	Max BoundaryTable // counts at density 100

	// Margin is subtracted from the shelf width before resolving.
	Margin float64

	// MinInner and MaxInner bound the clear compartment width
	// (spacing - thickness). Zero disables a bound.
	MinInner float64
	MaxInner float64

	// MinSpacing is a center-to-center floor applied after the inner
	// bounds. Zero disables it.
	MinSpacing float64
}

// Spacing is a resolved uniform division of a width.
type Spacing struct {
	// Count is the number of compartments.
	Count int
	// PanelCount is Count+1, the number of dividers including the frame.
	PanelCount int
	// PanelSpacing is the center-to-center divider distance.
	PanelSpacing float64
	// Usable is the width that was divided (width minus margin).
	Usable float64
	// Clamped is set when a physical bound overrode the density count.
	Clamped bool
}

// Inner is the clear width of one compartment.
func (s Spacing) Inner(thickness float64) float64 {
	return s.PanelSpacing - thickness
}

// Predefined rules.
var (
	GridRule = Rule{
		Min:      GridMin,
		Max:      GridMax,
		MinInner: 28,
		MaxInner: 72,
	}

	SlantRule = Rule{
		Min:        SlantMin,
		Max:        SlantMax,
		Margin:     SlantMargin,
		MinSpacing: 30,
	}
)

// SlantMargin is the frame inset Slant resolves against.
const SlantMargin = 24.0

// Resolve divides width (less the rule's margin) for the given density.
func (r Rule) Resolve(width, density, thickness float64) Spacing {
	usable := width - r.Margin
	span := usable - thickness

	count := Interpolate(r.Min.Count(usable), r.Max.Count(usable), density)
	s := Spacing{Usable: usable}

	pitch := func() float64 { return span / float64(count) }

	if r.MaxInner > 0 && pitch()-thickness > r.MaxInner+eps {
		count = int(math.Ceil(span/(r.MaxInner+thickness) - eps))
		s.Clamped = true
	}
	if r.MinInner > 0 && pitch()-thickness < r.MinInner-eps {
		count = max(int(math.Floor(span/(r.MinInner+thickness)+eps)), 1)
		s.Clamped = true
	}
	if r.MinSpacing > 0 && pitch() < r.MinSpacing-eps {
		count = max(int(math.Floor(span/r.MinSpacing+eps)), 1)
		s.Clamped = true
	}

	s.Count = count
	s.PanelCount = count + 1
	s.PanelSpacing = pitch()
	return s
}

// FromPanels rebuilds a Spacing from the panelCount/panelSpacing pair a
// layout result reports.
func FromPanels(panelCount int, panelSpacing, usable float64) Spacing {
	count := max(panelCount-1, 1)
	return Spacing{
		Count:        count,
		PanelCount:   count + 1,
		PanelSpacing: panelSpacing,
		Usable:       usable,
	}
}
