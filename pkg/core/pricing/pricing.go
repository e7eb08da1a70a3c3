// Package pricing turns panel volume into a quoted price.
//
// A shelf costs a fixed rate per cubic centimeter of board. Custom color
// categories carry a surcharge; every quote shows a list price rounded to
// the nearest thousand and a discounted price rounded to the nearest ten.
package pricing

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/errors"
)

// Category is a color family.
type Category string

const (
	Classic Category = "classic"
	Natural Category = "natural"
	Solid   Category = "solid"
	EdgeMix Category = "edgeMix"
)

// Categories lists every known category.
func Categories() []Category {
	return []Category{Classic, Natural, Solid, EdgeMix}
}

// Custom reports whether the category carries the custom color surcharge.
func (c Category) Custom() bool {
	return c == Solid || c == EdgeMix
}

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidColor, "unknown color category %q", s)
}

// CategoryOf infers the category from a color name: mixed edge colors
// contain a '+', the others carry a C_, N_ or S_ prefix. Unknown names are
// classic.
func CategoryOf(color string) Category {
	switch {
	case strings.Contains(color, "+"):
		return EdgeMix
	case strings.HasPrefix(color, "S_"):
		return Solid
	case strings.HasPrefix(color, "N_"):
		return Natural
	}
	return Classic
}

// Calculator holds the pricing rates.
type Calculator struct {
	// PerCubicCm is the price of one cubic centimeter of board.
	PerCubicCm float64
	// SurchargePct is added for custom color categories.
	SurchargePct float64
	// DiscountPct is taken off the list price.
	DiscountPct float64
}

// Default carries the standard rates.
var Default = Calculator{PerCubicCm: 8, SurchargePct: 20, DiscountPct: 20}

// Quote is a priced shelf.
type Quote struct {
	Volume       float64  `json:"volume"`
	Category     Category `json:"category"`
	Original     float64  `json:"original"`
	DiscountRate float64  `json:"discount_rate"`
	Final        float64  `json:"final"`
}

// Savings is the discount amount.
func (q Quote) Savings() float64 { return q.Original - q.Final }

// Quote prices a total board volume.
func (c Calculator) Quote(volume float64, category Category) Quote {
	original := volume * c.PerCubicCm
	if category.Custom() {
		original += original * c.SurchargePct / 100
	}
	original = roundTo(original, 1000)
	final := roundTo(original-original*c.DiscountPct/100, 10)
	return Quote{
		Volume:       volume,
		Category:     category,
		Original:     original,
		DiscountRate: c.DiscountPct,
		Final:        final,
	}
}

// QuoteLayout prices every panel of res.
func (c Calculator) QuoteLayout(res shelf.Result, category Category) Quote {
	return c.Quote(Volume(res.Panels), category)
}

// Volume sums the box volume of panels.
func Volume(panels []shelf.Panel) float64 {
	if len(panels) == 0 {
		return 0
	}
	v := make([]float64, len(panels))
	for i, p := range panels {
		v[i] = p.Volume()
	}
	return floats.Sum(v)
}

var printer = message.NewPrinter(language.Korean)

// Format renders a price in won with thousands separators, e.g. "12,340원".
func Format(price float64) string {
	return printer.Sprintf("%d원", int64(math.Round(price)))
}

func roundTo(v, unit float64) float64 {
	return math.Round(v/unit) * unit
}
