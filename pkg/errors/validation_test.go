package errors

import (
	"math"
	"testing"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"valid", 90, false},
		{"small", 0.1, false},

		{"zero", 0, true},
		{"negative", -2, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimension) {
				t.Errorf("ValidatePositive(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidDimension)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 12, false},
		{"negative", -0.5, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative("height", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNonNegative(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 100, false},
		{"middle", 50, false},
		{"below", -1, true},
		{"above", 100.5, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(ErrCodeInvalidDensity, "density", tt.input, 0, 100)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRange(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidDensity {
				t.Errorf("ValidateRange(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidDensity)
			}
		})
	}
}
