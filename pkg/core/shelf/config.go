package shelf

import (
	"math"
	"slices"

	"github.com/matzehuels/shelfcraft/pkg/errors"
)

// Configurator defaults and clamp ranges.
const (
	DefaultWidth     = 90.0
	DefaultHeight    = 112.0
	DefaultDepth     = 32.0
	DefaultThickness = 2.0
	DefaultDensity   = 50.0
	DefaultRowHeight = 28.0
	DefaultRows      = 4

	MinWidth  = 30.0
	MaxWidth  = 450.0
	MinHeight = 38.0
	MaxHeight = 228.0
	MinDepth  = 24.0
	MaxDepth  = 40.0

	MinDensity = 0.0
	MaxDensity = 100.0
)

// Config is the immutable input to a layout computation.
type Config struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height,omitempty"`
	Depth     float64 `json:"depth"`
	Thickness float64 `json:"thickness"`
	Style     Style   `json:"style"`
	Density   float64 `json:"density"`

	// RowHeights holds one clear height per row; only the first NumRows
	// entries are used.
	RowHeights []float64 `json:"row_heights"`
	NumRows    int       `json:"num_rows"`

	HasBackPanel bool `json:"has_back_panel"`

	// HardwareLayers lists rows carrying a door or drawer. Those rows always
	// receive back panels. Order and duplicates are irrelevant.
	HardwareLayers []int `json:"hardware_layers,omitempty"`
}

// Default returns the configurator's initial shelf.
func Default() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Depth:      DefaultDepth,
		Thickness:  DefaultThickness,
		Style:      StyleGrid,
		Density:    DefaultDensity,
		RowHeights: []float64{DefaultRowHeight, DefaultRowHeight, DefaultRowHeight, DefaultRowHeight},
		NumRows:    DefaultRows,
	}
}

// Validate rejects configurations that would feed non-finite or
// non-positive values into the spacing formulas.
func (c Config) Validate() error {
	if !c.Style.Valid() {
		return errors.New(errors.ErrCodeInvalidStyle, "unknown style %d", int(c.Style))
	}
	if err := errors.ValidatePositive("width", c.Width); err != nil {
		return err
	}
	if err := errors.ValidatePositive("depth", c.Depth); err != nil {
		return err
	}
	if err := errors.ValidatePositive("thickness", c.Thickness); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("height", c.Height); err != nil {
		return err
	}
	if c.Thickness*2 >= c.Width {
		return errors.New(errors.ErrCodeInvalidDimension,
			"thickness %g leaves no room inside width %g", c.Thickness, c.Width)
	}
	if c.Thickness >= c.Depth {
		return errors.New(errors.ErrCodeInvalidDimension,
			"thickness %g must be less than depth %g", c.Thickness, c.Depth)
	}
	if err := errors.ValidateRange(errors.ErrCodeInvalidDensity, "density", c.Density, MinDensity, MaxDensity); err != nil {
		return err
	}
	if c.NumRows < 1 {
		return errors.New(errors.ErrCodeInvalidRows, "num_rows must be at least 1, got %d", c.NumRows)
	}
	if c.NumRows > len(c.RowHeights) {
		return errors.New(errors.ErrCodeInvalidRows,
			"num_rows %d exceeds the %d row heights given", c.NumRows, len(c.RowHeights))
	}
	for i := 0; i < c.NumRows; i++ {
		rh := c.RowHeights[i]
		if math.IsNaN(rh) || math.IsInf(rh, 0) || rh <= 0 {
			return errors.New(errors.ErrCodeInvalidRows, "row %d height must be positive, got %g", i, rh)
		}
	}
	return nil
}

// Clamp returns a copy with width, height, depth and density forced into
// the configurator ranges. A zero height stays zero (derived from rows).
func (c Config) Clamp() Config {
	c.Width = clamp(c.Width, MinWidth, MaxWidth)
	if c.Height != 0 {
		c.Height = clamp(c.Height, MinHeight, MaxHeight)
	}
	c.Depth = clamp(c.Depth, MinDepth, MaxDepth)
	c.Density = clamp(c.Density, MinDensity, MaxDensity)
	c.RowHeights = slices.Clone(c.RowHeights)
	c.HardwareLayers = slices.Clone(c.HardwareLayers)
	return c
}

// HasHardware reports whether row carries a door or drawer.
func (c Config) HasHardware(row int) bool {
	return slices.Contains(c.HardwareLayers, row)
}

// NeedsBackPanel reports whether row gets full back panels instead of
// support stubs.
func (c Config) NeedsBackPanel(row int) bool {
	return c.HasBackPanel || c.HasHardware(row)
}

// RowBottom returns the y of the top face of the board below row.
func (c Config) RowBottom(row int) float64 {
	y := c.Thickness
	for i := 0; i < row && i < len(c.RowHeights); i++ {
		y += c.RowHeights[i] + c.Thickness
	}
	return y
}

// RowCenter returns the vertical center of row's clear space.
func (c Config) RowCenter(row int) float64 {
	return c.RowBottom(row) + c.RowHeights[row]/2
}

// TotalHeight is the outer height implied by the first NumRows rows.
func (c Config) TotalHeight() float64 {
	return c.RowBottom(c.NumRows)
}

// EffectiveHeight returns Height when set, otherwise TotalHeight.
func (c Config) EffectiveHeight() float64 {
	if c.Height > 0 {
		return c.Height
	}
	return c.TotalHeight()
}

// IsLastRow reports whether row is the topmost row.
func (c Config) IsLastRow(row int) bool {
	return row == c.NumRows-1
}

// RowsForHeight counts how many of rowHeights fit a shelf of the given
// outer height, accounting for the floor board and one board per row.
func RowsForHeight(height float64, rowHeights []float64, thickness float64) int {
	used := thickness
	n := 0
	for _, rh := range rowHeights {
		used += rh + thickness
		if used > height {
			break
		}
		n++
	}
	return n
}

// HeightForRows is the outer height of the first n rows.
func HeightForRows(rowHeights []float64, n int, thickness float64) float64 {
	h := thickness
	for i := 0; i < n && i < len(rowHeights); i++ {
		h += rowHeights[i] + thickness
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
