package spacing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestBoundaryTableCount(t *testing.T) {
	table := BoundaryTable{30, 60, 90}
	tests := []struct {
		width float64
		want  int
	}{
		{10, 1},
		{30, 1},
		{59.9, 1},
		{60, 2},
		{90, 3},
		{1000, 3},
	}
	for _, tt := range tests {
		if got := table.Count(tt.width); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestTablesSorted(t *testing.T) {
	for name, table := range map[string]BoundaryTable{
		"GridMin": GridMin, "GridMax": GridMax, "SlantMin": SlantMin, "SlantMax": SlantMax,
	} {
		if !table.Sorted() {
			t.Errorf("%s is not ascending", name)
		}
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		min, max int
		density  float64
		want     int
	}{
		{1, 3, 0, 1},
		{1, 3, 50, 2},
		{1, 3, 100, 3},
		{6, 15, 100, 15},
		{4, 4, 100, 4},
	}
	for _, tt := range tests {
		if got := Interpolate(tt.min, tt.max, tt.density); got != tt.want {
			t.Errorf("Interpolate(%d, %d, %v) = %d, want %d", tt.min, tt.max, tt.density, got, tt.want)
		}
	}
}

func TestGridRuleBounds(t *testing.T) {
	const thickness = 2.0
	for width := 32.0; width <= 450; width += 1 {
		for density := 0.0; density <= 100; density += 5 {
			s := GridRule.Resolve(width, density, thickness)
			inner := s.Inner(thickness)
			if inner < 28-1e-6 || inner > 72+1e-6 {
				t.Fatalf("width=%v density=%v: inner %v outside [28,72]", width, density, inner)
			}
			if s.PanelCount != s.Count+1 {
				t.Fatalf("PanelCount %d != Count+1 (%d)", s.PanelCount, s.Count+1)
			}
		}
	}
}

func TestGridRuleMonotonic(t *testing.T) {
	for width := 32.0; width <= 450; width += 3 {
		prev := 0
		for density := 0.0; density <= 100; density++ {
			s := GridRule.Resolve(width, density, 2)
			if s.PanelCount < prev {
				t.Fatalf("width=%v: panelCount dropped from %d to %d at density %v", width, prev, s.PanelCount, density)
			}
			prev = s.PanelCount
		}
	}
}

func TestGridRuleScenario(t *testing.T) {
	s := GridRule.Resolve(90, 50, 2)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 3, s.PanelCount)
	assert.InDelta(t, 44.0, s.PanelSpacing, 1e-9)
	assert.False(t, s.Clamped)
}

func TestSlantRuleFloor(t *testing.T) {
	for width := 78.0; width <= 450; width += 2 {
		for _, density := range []float64{0, 50, 100} {
			s := SlantRule.Resolve(width, density, 2)
			require.InDelta(t, width-SlantMargin, s.Usable, 1e-9)
			if s.Count > 1 && s.PanelSpacing < 30-1e-6 {
				t.Fatalf("width=%v density=%v: spacing %v below floor", width, density, s.PanelSpacing)
			}
		}
	}
}

func TestPixelGapsCoverWidth(t *testing.T) {
	const thickness = 2.0
	widths := []float64{78, 100, 109.9, 110, 150, 184, 185, 240, 241, 300, 318, 319, 395, 396, 420, 450}
	for _, width := range widths {
		for _, density := range []float64{0, 25, 50, 75, 100} {
			t.Run(fmt.Sprintf("w%v_d%v", width, density), func(t *testing.T) {
				gaps, ok := PixelGaps(width, density, thickness)
				require.True(t, ok, "gaps %v", gaps)
				assert.Equal(t, 2*PixelBracket(width)+3, len(gaps))
				total := floats.Sum(gaps) + float64(len(gaps)+1)*thickness
				assert.InDelta(t, width, total, 1e-9)
			})
		}
	}
}

func TestPixelGapsSymmetric(t *testing.T) {
	gaps, ok := PixelGaps(300, 30, 2)
	require.True(t, ok)
	for i := range gaps {
		assert.InDelta(t, gaps[i], gaps[len(gaps)-1-i], 1e-9)
	}
}

func TestPixelGapsDegenerate(t *testing.T) {
	if _, ok := PixelGaps(80, 50, 12); ok {
		t.Error("PixelGaps should report thick panels that consume the width")
	}
}

func TestDensityRatio(t *testing.T) {
	assert.Equal(t, 0.0, DensityRatio(100, 100))
	assert.InDelta(t, -50.0/30, DensityRatio(200, 100), 1e-12)
	assert.InDelta(t, 50.0/70, DensityRatio(200, 0), 1e-12)
	assert.Equal(t, 0.0, DensityRatio(200, 50))
}

func TestInternalWidths(t *testing.T) {
	const thickness = 2.0
	for width := GradientMinWidth; width <= 450; width += 7 {
		for _, density := range []float64{0, 20, 50, 80, 100} {
			n := GradientColumns(width, thickness)
			usable := GradientUsable(width, thickness, n)
			widths := InternalWidths(n, usable, density)

			require.Len(t, widths, n)
			assert.InDelta(t, usable, floats.Sum(widths), 1e-9, "width=%v density=%v", width, density)
			for i, w := range widths {
				assert.Greater(t, w, 0.0, "width=%v density=%v column %d", width, density, i)
			}
		}
	}
}

func TestInternalWidthsGraded(t *testing.T) {
	n := GradientColumns(300, 2)
	widths := InternalWidths(n, GradientUsable(300, 2, n), 50)
	center := n / 2
	assert.LessOrEqual(t, widths[center], widths[0])
	assert.LessOrEqual(t, widths[center], widths[n-2])

	tilted := InternalWidths(n, GradientUsable(300, 2, n), 100)
	assert.Less(t, tilted[0], tilted[n-2], "density above 50 widens the right side")
}
