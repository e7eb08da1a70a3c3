package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/shelfcraft/pkg/core/hardware"
	"github.com/matzehuels/shelfcraft/pkg/core/pricing"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
	"github.com/matzehuels/shelfcraft/pkg/errors"
)

// Format is a design document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported design file %q (want .json, .toml or .yaml)", path)
}

// Design is a saved configurator state. Pointer fields distinguish "absent"
// from zero so absent fields take the defaults.
type Design struct {
	Style         string    `json:"style,omitempty" toml:"style" yaml:"style,omitempty"`
	Density       *float64  `json:"density,omitempty" toml:"density" yaml:"density,omitempty"`
	Width         *float64  `json:"width,omitempty" toml:"width" yaml:"width,omitempty"`
	Height        *float64  `json:"height,omitempty" toml:"height" yaml:"height,omitempty"`
	Depth         *float64  `json:"depth,omitempty" toml:"depth" yaml:"depth,omitempty"`
	Thickness     *float64  `json:"thickness,omitempty" toml:"thickness" yaml:"thickness,omitempty"`
	HasBackPanel  bool      `json:"hasBackPanel,omitempty" toml:"hasBackPanel" yaml:"hasBackPanel,omitempty"`
	Color         string    `json:"color,omitempty" toml:"color" yaml:"color,omitempty"`
	ColorCategory string    `json:"colorCategory,omitempty" toml:"colorCategory" yaml:"colorCategory,omitempty"`
	RowHeights    []float64 `json:"rowHeights,omitempty" toml:"rowHeights" yaml:"rowHeights,omitempty"`
	NumRows       int       `json:"numRows,omitempty" toml:"numRows" yaml:"numRows,omitempty"`

	DoorLayers   []int `json:"doorsCreatedLayers,omitempty" toml:"doorsCreatedLayers" yaml:"doorsCreatedLayers,omitempty"`
	DrawerLayers []int `json:"drawersCreatedLayers,omitempty" toml:"drawersCreatedLayers" yaml:"drawersCreatedLayers,omitempty"`
}

// ReadDesign decodes a design document from r.
func ReadDesign(r io.Reader, format Format) (Design, error) {
	var d Design
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&d)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(&d)
		if err == nil {
			if keys := md.Undecoded(); len(keys) > 0 {
				err = fmt.Errorf("unknown field %q", keys[0].String())
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&d)
		if err == io.EOF {
			err = nil
		}
	default:
		return Design{}, errors.New(errors.ErrCodeInvalidFormat, "unknown design format %q", format)
	}
	if err != nil {
		return Design{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s design", format)
	}
	return d, nil
}

// ImportDesign reads the design file at path.
func ImportDesign(path string) (Design, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Design{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Design{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "design %s", path)
		}
		return Design{}, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := ReadDesign(bytes.NewReader(data), format)
	if err != nil {
		return Design{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Plan returns the door and drawer plan of the design.
func (d Design) Plan() hardware.Plan {
	return hardware.NewPlan(d.DoorLayers, d.DrawerLayers)
}

// Category returns the color category, inferred from Color when the design
// does not name one.
func (d Design) Category() (pricing.Category, error) {
	if d.ColorCategory != "" {
		return pricing.ParseCategory(d.ColorCategory)
	}
	return pricing.CategoryOf(d.Color), nil
}

// Config builds the shelf configuration. Absent fields take the defaults.
// When rows are given without a count, every row is used; a zero height is
// derived from the rows. Hardware layers beyond the row count are dropped.
func (d Design) Config() (shelf.Config, error) {
	cfg := shelf.Default()
	if d.Style != "" {
		s, err := shelf.ParseStyle(d.Style)
		if err != nil {
			return shelf.Config{}, err
		}
		cfg.Style = s
	}
	setIf(&cfg.Density, d.Density)
	setIf(&cfg.Width, d.Width)
	setIf(&cfg.Depth, d.Depth)
	setIf(&cfg.Thickness, d.Thickness)
	cfg.HasBackPanel = d.HasBackPanel

	if len(d.RowHeights) > 0 {
		cfg.RowHeights = append([]float64(nil), d.RowHeights...)
		cfg.NumRows = len(d.RowHeights)
	}
	if d.NumRows > 0 {
		cfg.NumRows = d.NumRows
	}

	switch {
	case d.Height != nil:
		cfg.Height = *d.Height
	case len(d.RowHeights) > 0 || d.NumRows > 0:
		cfg.Height = 0
	}

	plan := d.Plan()
	plan.Prune(cfg.NumRows)
	if layers := plan.Layers(); len(layers) > 0 {
		cfg.HardwareLayers = layers
	}

	if err := cfg.Validate(); err != nil {
		return shelf.Config{}, err
	}
	return cfg, nil
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
