package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shelfcraft/pkg/core/layout"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/errors"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		volume   float64
		category Category
		original float64
		final    float64
	}{
		{"classic", 10000, Classic, 80000, 64000},
		{"natural rounds to thousands", 10070, Natural, 81000, 64800},
		{"solid surcharge", 10000, Solid, 96000, 76800},
		{"edge mix surcharge", 12345, EdgeMix, 119000, 95200},
		{"empty", 0, Classic, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Default.Quote(tt.volume, tt.category)
			assert.Equal(t, tt.original, q.Original)
			assert.Equal(t, tt.final, q.Final)
			assert.Equal(t, 20.0, q.DiscountRate)
			assert.Equal(t, tt.original-tt.final, q.Savings())
		})
	}
}

func TestQuoteRounding(t *testing.T) {
	for _, style := range shelf.Styles() {
		cfg := shelf.Default()
		cfg.Style = style
		cfg.Width = 250
		res, err := layout.Compute(cfg)
		require.NoError(t, err)

		for _, cat := range Categories() {
			q := Default.QuoteLayout(res, cat)
			assert.InDelta(t, res.Volume(), q.Volume, 1e-6)
			assert.Zero(t, math.Mod(q.Original, 1000), "%s %s", style, cat)
			assert.Zero(t, math.Mod(q.Final, 10), "%s %s", style, cat)
			assert.LessOrEqual(t, q.Final, q.Original)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	tests := map[string]Category{
		"C_WHITE":       Classic,
		"N_OAK":         Natural,
		"S_SAGE":        Solid,
		"C_WHITE+S_RED": EdgeMix,
		"unknown":       Classic,
	}
	for color, want := range tests {
		assert.Equal(t, want, CategoryOf(color), color)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("EDGEMIX")
	require.NoError(t, err)
	assert.Equal(t, EdgeMix, c)

	_, err = ParseCategory("gold")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidColor))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12,340원", Format(12340))
	assert.Equal(t, "0원", Format(0))
	assert.Equal(t, "1,234,567원", Format(1234567))
}

func TestVolume(t *testing.T) {
	panels := []shelf.Panel{{W: 2, H: 3, D: 4}, {W: 1, H: 1, D: 1}}
	assert.Equal(t, 25.0, Volume(panels))
	assert.Zero(t, Volume(nil))
}
