package errors

import "math"

// ValidateFinite rejects NaN and infinite values.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number, got %v", name, v)
	}
	return nil
}

// ValidatePositive checks that v is finite and strictly greater than zero.
//
// Zero and negative extents would otherwise propagate NaN or Inf through
// the spacing formulas, so they are rejected at the boundary.
func ValidatePositive(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateNonNegative checks that v is finite and not below zero.
func ValidateNonNegative(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidDimension, "%s cannot be negative, got %g", name, v)
	}
	return nil
}

// ValidateRange checks that v lies in the closed interval [lo, hi].
// The returned error carries code.
func ValidateRange(code Code, name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return New(code, "%s must be between %g and %g, got %g", name, lo, hi, v)
	}
	return nil
}
