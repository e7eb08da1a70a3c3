package layout

import (
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/errors"
)

// Compute returns the complete panel layout for cfg.
//
// Out-of-range dimensions are rejected with a validation error. Shapes too
// small for the requested style fall back to Grid (or to a single-compartment
// Grid for Pattern) and are reported through Result.Fallback. Compute never
// panics on a config that passes validation.
func Compute(cfg shelf.Config) (shelf.Result, error) {
	if err := cfg.Validate(); err != nil {
		return shelf.Result{}, err
	}

	var res shelf.Result
	switch cfg.Style {
	case shelf.StyleGrid:
		res = grid(cfg)
	case shelf.StyleSlant:
		res = slant(cfg)
	case shelf.StylePixel:
		res = pixel(cfg)
	case shelf.StyleGradient:
		res = gradient(cfg)
	case shelf.StylePattern:
		res = pattern(cfg)
	case shelf.StyleMosaic:
		res = mosaic(cfg)
	default:
		return shelf.Result{}, errors.New(errors.ErrCodeInvalidStyle, "unknown style %d", int(cfg.Style))
	}

	res.Requested = cfg.Style
	res.Fallback = res.Style != cfg.Style || res.Fallback
	return res, nil
}

// Effective returns the style whose geometry Compute produces for cfg:
// the requested style, or Grid when that style's fallback applies.
func Effective(cfg shelf.Config) shelf.Style {
	if fallsBack(cfg) {
		return shelf.StyleGrid
	}
	return cfg.Style
}

// fallsBack reports whether cfg's style is replaced by Grid.
func fallsBack(cfg shelf.Config) bool {
	switch cfg.Style {
	case shelf.StyleSlant:
		return slantFallback(cfg)
	case shelf.StylePixel:
		return pixelFallback(cfg)
	case shelf.StyleGradient:
		return gradientFallback(cfg)
	case shelf.StylePattern:
		return patternFallback(cfg)
	case shelf.StyleMosaic:
		return mosaicFallback(cfg)
	}
	return false
}
