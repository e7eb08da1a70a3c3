package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/shelfcraft/pkg/core/layout"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

func annotate(t *testing.T, cfg shelf.Config) (shelf.Result, Annotations) {
	t.Helper()
	res, err := layout.Compute(cfg)
	require.NoError(t, err)
	return res, Annotate(cfg, res)
}

func TestOuterLabels(t *testing.T) {
	cfg := shelf.Default()
	cfg.Depth = 31.5
	_, a := annotate(t, cfg)

	width := a.ByKind(KindWidth)
	require.Len(t, width, 1)
	assert.Equal(t, "90", width[0].Text)
	assert.InDelta(t, 90.0, width[0].Guide.Length(), 1e-9)
	assert.Equal(t, -1, width[0].Row)

	height := a.ByKind(KindHeight)
	require.Len(t, height, 1)
	assert.Equal(t, "112", height[0].Text)
	assert.InDelta(t, 112.0, height[0].Guide.Length(), 1e-9)

	depth := a.ByKind(KindDepth)
	require.Len(t, depth, 1)
	assert.Equal(t, "32", depth[0].Text, "depth rounds up")
	assert.InDelta(t, 31.5, depth[0].Guide.Length(), 1e-9)
}

func TestInnerLabelsGrid(t *testing.T) {
	cfg := shelf.Default()
	res, a := annotate(t, cfg)

	inner := a.ByKind(KindInnerWidth)
	require.Len(t, inner, cfg.NumRows*(res.PanelCount-1))
	for _, l := range inner {
		assert.Equal(t, "42", l.Text)
		assert.InDelta(t, 42.0, l.Guide.Length(), 1e-9)
	}

	rows := a.ByKind(KindRowHeight)
	require.Len(t, rows, cfg.NumRows)
	for i, l := range rows {
		assert.Equal(t, i, l.Row)
		assert.InDelta(t, cfg.RowCenter(i), l.Anchor.Y, 1e-9)
	}
}

func TestShortRowsPushOutward(t *testing.T) {
	cfg := shelf.Default()
	cfg.RowHeights = []float64{18, 38, 32, 18}
	_, a := annotate(t, cfg)

	rows := a.ByKind(KindRowHeight)
	require.Len(t, rows, 4)
	assert.InDelta(t, rows[1].Anchor.X-shortRowGap, rows[0].Anchor.X, 1e-9)
	assert.InDelta(t, rows[1].Anchor.X, rows[2].Anchor.X, 1e-9)
	assert.Equal(t, "18", rows[3].Text)
}

func TestMosaicOuterOnly(t *testing.T) {
	cfg := shelf.Default()
	cfg.Style = shelf.StyleMosaic
	cfg.Width = 300
	res, a := annotate(t, cfg)
	require.Equal(t, shelf.StyleMosaic, res.Style)

	require.Len(t, a.Labels, 3)
	for _, l := range a.Labels {
		assert.True(t, l.Kind.Outer())
	}
}

func TestPixelSkipsOpenCompartments(t *testing.T) {
	cfg := shelf.Default()
	cfg.Style = shelf.StylePixel
	cfg.Width = 200
	_, a := annotate(t, cfg)

	perRow := map[int]int{}
	for _, l := range a.ByKind(KindInnerWidth) {
		perRow[l.Row]++
	}
	assert.Equal(t, map[int]int{0: 3, 1: 7, 2: 5, 3: 7}, perRow)
}

func TestGuideTicks(t *testing.T) {
	g := Guide{r3.Vec{X: -10}, r3.Vec{X: 10}}
	ticks := g.Ticks()
	assert.InDelta(t, tickLength, ticks[0].Length(), 1e-9)
	assert.InDelta(t, -10.0, ticks[0].Start.X, 1e-9)
	assert.InDelta(t, -tickLength/2, ticks[0].Start.Y, 1e-9)

	depth := Guide{r3.Vec{}, r3.Vec{Z: 30}}
	ticks = depth.Ticks()
	assert.InDelta(t, tickLength/2, ticks[1].End.Y, 1e-9)
	assert.InDelta(t, 30.0, ticks[1].End.Z, 1e-9)
}
