// Package pkg provides the core libraries for Shelfcraft parametric shelves.
//
// # Overview
//
// Shelfcraft turns a handful of abstract dimensions (width, row heights,
// depth, board thickness), a style and a density into the structural panels
// of a shelf, the doors and drawers that fit between them, dimension labels
// and a price quote. The pkg directory is organized into three main areas:
//
//  1. [core] - Domain logic (layout styles, hardware, dimensions, pricing)
//  2. [pipeline] - Orchestration (layout → hardware → dimensions → price → render)
//  3. [render] and [io] - Output (front elevation SVG/PNG/PDF, design documents)
//
// # Architecture
//
// The typical data flow through Shelfcraft:
//
//	Design document (JSON/TOML/YAML)
//	         ↓
//	    [io] package (shelf.Config + hardware plan)
//	         ↓
//	    [core/layout] package (style router → panels)
//	         ↓
//	    [core/hardware], [core/dimension], [core/pricing]
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/shelfcraft/pkg/core/layout"
//	    "github.com/matzehuels/shelfcraft/pkg/core/pricing"
//	    "github.com/matzehuels/shelfcraft/pkg/core/shelf"
//	    "github.com/matzehuels/shelfcraft/pkg/render/elevation"
//	)
//
//	cfg := shelf.Default()
//	cfg.Style = shelf.StyleSlant
//	cfg.Width = 160
//
//	res, err := layout.Compute(cfg)
//	if err != nil {
//	    return err
//	}
//	quote := pricing.Default.QuoteLayout(res, pricing.Classic)
//	svg := elevation.RenderSVG(cfg, res)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/shelf] - The data model: configuration, styles, panel roles, panels
// and layout results, plus row geometry helpers.
//
// [core/spacing] - Density to divider spacing, per style.
//
// [core/layout] - The six style generators (grid, slant, pixel, gradient,
// pattern, mosaic) behind one router, and the per-row divider geometry every
// other package reuses.
//
// [core/hardware] - Door and drawer placement and the per-row hardware plan.
//
// [core/dimension] - Dimension labels and guide lines.
//
// [core/pricing] - Volume pricing and color categories.
//
// ## Infrastructure
//
// [pipeline] - The staged runner used by the CLI, memoized through [cache].
//
// [cache] - File, Redis and null cache backends.
//
// [observability] - Hooks for metrics and tracing.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/core/layout/...        # Specific package
//	go test -run Example                 # Examples only
//
// [core]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/core
// [core/shelf]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/core/shelf
// [core/spacing]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/core/spacing
// [core/layout]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/core/layout
// [core/hardware]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/core/hardware
// [core/dimension]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/core/dimension
// [core/pricing]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/core/pricing
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/shelfcraft/pkg/io
package pkg
