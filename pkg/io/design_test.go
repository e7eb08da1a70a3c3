package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shelfcraft/pkg/core/layout"
	"github.com/matzehuels/shelfcraft/pkg/core/pricing"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/errors"
)

const jsonDesign = `{
  "style": "slant",
  "density": 60,
  "width": 180,
  "depth": 32,
  "color": "N_OAK",
  "rowHeights": [32, 32, 18, 38],
  "numRows": 3,
  "doorsCreatedLayers": [1, 3],
  "drawersCreatedLayers": [0]
}`

const tomlDesign = `
style = "slant"
density = 60.0
width = 180.0
depth = 32.0
color = "N_OAK"
rowHeights = [32.0, 32.0, 18.0, 38.0]
numRows = 3
doorsCreatedLayers = [1, 3]
drawersCreatedLayers = [0]
`

const yamlDesign = `
style: slant
density: 60
width: 180
depth: 32
color: N_OAK
rowHeights: [32, 32, 18, 38]
numRows: 3
doorsCreatedLayers: [1, 3]
drawersCreatedLayers: [0]
`

func TestReadDesignFormats(t *testing.T) {
	inputs := map[Format]string{
		FormatJSON: jsonDesign,
		FormatTOML: tomlDesign,
		FormatYAML: yamlDesign,
	}
	for format, src := range inputs {
		t.Run(string(format), func(t *testing.T) {
			d, err := ReadDesign(strings.NewReader(src), format)
			require.NoError(t, err)

			cfg, err := d.Config()
			require.NoError(t, err)
			assert.Equal(t, shelf.StyleSlant, cfg.Style)
			assert.Equal(t, 60.0, cfg.Density)
			assert.Equal(t, 180.0, cfg.Width)
			assert.Equal(t, 3, cfg.NumRows)
			assert.Equal(t, []float64{32, 32, 18, 38}, cfg.RowHeights)
			assert.Zero(t, cfg.Height, "height derives from rows")
			assert.Equal(t, []int{0, 1}, cfg.HardwareLayers, "layer 3 is beyond the row count")

			cat, err := d.Category()
			require.NoError(t, err)
			assert.Equal(t, pricing.Natural, cat)
		})
	}
}

func TestReadDesignRejectsUnknownFields(t *testing.T) {
	inputs := map[Format]string{
		FormatJSON: `{"widht": 90}`,
		FormatTOML: `widht = 90`,
		FormatYAML: `widht: 90`,
	}
	for format, src := range inputs {
		_, err := ReadDesign(strings.NewReader(src), format)
		require.Error(t, err, format)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat), format)
	}
}

func TestDesignDefaults(t *testing.T) {
	d, err := ReadDesign(strings.NewReader(`{}`), FormatJSON)
	require.NoError(t, err)
	cfg, err := d.Config()
	require.NoError(t, err)
	assert.Equal(t, shelf.Default(), cfg)

	cat, err := d.Category()
	require.NoError(t, err)
	assert.Equal(t, pricing.Classic, cat)
}

func TestDesignConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
	}{
		{"bad style", `{"style": "baroque"}`, errors.ErrCodeInvalidStyle},
		{"too many rows", `{"rowHeights": [32], "numRows": 2}`, errors.ErrCodeInvalidRows},
		{"negative width", `{"width": -4}`, errors.ErrCodeInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ReadDesign(strings.NewReader(tt.src), FormatJSON)
			require.NoError(t, err)
			_, err = d.Config()
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.json": FormatJSON, "b.TOML": FormatTOML, "c.yaml": FormatYAML, "d.yml": FormatYAML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := FormatFromPath("shelf.xml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestImportDesign(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDesign), 0o644))

	d, err := ImportDesign(path)
	require.NoError(t, err)
	assert.Equal(t, "slant", d.Style)

	_, err = ImportDesign(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestWriteLayout(t *testing.T) {
	cfg := shelf.Default()
	res, err := layout.Compute(cfg)
	require.NoError(t, err)
	q := pricing.Default.QuoteLayout(res, pricing.Classic)

	var buf bytes.Buffer
	require.NoError(t, WriteLayout(Document{Config: cfg, Layout: res, Quote: &q}, &buf))
	assert.Contains(t, buf.String(), `"mat_type": "horizontalBase"`)
	assert.Contains(t, buf.String(), `"style": "grid"`)

	doc, err := ReadLayout(&buf)
	require.NoError(t, err)
	assert.Equal(t, len(res.Panels), len(doc.Layout.Panels))
	assert.Equal(t, q.Final, doc.Quote.Final)

	path := filepath.Join(t.TempDir(), "shelf.layout.json")
	require.NoError(t, ExportLayout(Document{Config: cfg, Layout: res}, path))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
