package pipeline

import (
	"github.com/matzehuels/shelfcraft/pkg/core/dimension"
	"github.com/matzehuels/shelfcraft/pkg/core/hardware"
	"github.com/matzehuels/shelfcraft/pkg/core/layout"
	"github.com/matzehuels/shelfcraft/pkg/core/pricing"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

// =============================================================================
// Uncached stages
// =============================================================================

// ComputeLayout computes the layout for cfg without caching.
func ComputeLayout(cfg shelf.Config) (shelf.Result, error) {
	return layout.Compute(cfg)
}

// PlaceHardware resolves the hardware plan against a computed layout.
// Layers the layout cannot hold (Mosaic, or rows without enclosed
// compartments) contribute nothing.
func PlaceHardware(cfg shelf.Config, res shelf.Result, plan hardware.Plan) hardware.Placements {
	return plan.Place(cfg, res)
}

// Annotate derives the dimension labels of a computed layout.
func Annotate(cfg shelf.Config, res shelf.Result) dimension.Annotations {
	return dimension.Annotate(cfg, res)
}

// Price quotes a computed layout. A nil calculator uses the standard rates.
func Price(res shelf.Result, category pricing.Category, calc *pricing.Calculator) pricing.Quote {
	c := pricing.Default
	if calc != nil {
		c = *calc
	}
	return c.QuoteLayout(res, category)
}
