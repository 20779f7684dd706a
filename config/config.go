// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the figure theme from YAML.
//
// A configuration file overrides any subset of the defaults:
//
//	font:
//	  family: serif
//	  size: 14
//	  label_size: 18
//	  tick_label_size: 14
//	figure:
//	  width: 8
//	  height: 6
//	  line_width: 1.5
//	  marker_size: 2
//	dpi:
//	  default: 150
//	  erfarg: 100
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lumfunc/lumplot/gg"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for configurations that load but can't be
// used.
var ErrInvalid = errors.New("invalid config")

// Font is the text family and point sizes.
type Font struct {
	Family        string  `yaml:"family"`
	Size          float64 `yaml:"size"`
	LabelSize     float64 `yaml:"label_size"`
	TickLabelSize float64 `yaml:"tick_label_size"`
}

// Figure is the figure size in inches and the stroke and marker sizes.
type Figure struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	LineWidth  float64 `yaml:"line_width"`
	MarkerSize float64 `yaml:"marker_size"`
}

// DPI is the resolution of raster output.
type DPI struct {
	Default float64 `yaml:"default"`
	ErfArg  float64 `yaml:"erfarg"`
}

// Config is a complete theme, as read from a YAML file.
type Config struct {
	Font   Font   `yaml:"font"`
	Figure Figure `yaml:"figure"`
	DPI    DPI    `yaml:"dpi"`
}

// Default returns the built-in configuration.
func Default() Config {
	t := gg.DefaultTheme()
	return Config{
		Font: Font{
			Family:        "serif",
			Size:          t.FontSize,
			LabelSize:     t.LabelSize,
			TickLabelSize: t.TickLabelSize,
		},
		Figure: Figure{
			Width:      t.Width,
			Height:     t.Height,
			LineWidth:  t.LineWidth,
			MarkerSize: 2,
		},
		DPI: DPI{Default: 150, ErfArg: 100},
	}
}

// Load returns the defaults overlaid with the YAML file at path. If
// path is empty, it returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse returns the defaults overlaid with the YAML document in data.
// Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every size in c is positive and the font
// family is one the renderers know.
func (c Config) Validate() error {
	sizes := []struct {
		name string
		v    float64
	}{
		{"font.size", c.Font.Size},
		{"font.label_size", c.Font.LabelSize},
		{"font.tick_label_size", c.Font.TickLabelSize},
		{"figure.width", c.Figure.Width},
		{"figure.height", c.Figure.Height},
		{"figure.line_width", c.Figure.LineWidth},
		{"figure.marker_size", c.Figure.MarkerSize},
		{"dpi.default", c.DPI.Default},
		{"dpi.erfarg", c.DPI.ErfArg},
	}
	for _, s := range sizes {
		if !(s.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalid, s.name, s.v)
		}
	}
	switch c.Font.Family {
	case "serif", "sans-serif":
	default:
		return fmt.Errorf("%w: font.family must be serif or sans-serif, got %q", ErrInvalid, c.Font.Family)
	}
	return nil
}

// Theme returns the plotting theme described by c.
func (c Config) Theme() gg.Theme {
	t := gg.DefaultTheme()
	t.FontSize = c.Font.Size
	t.LabelSize = c.Font.LabelSize
	t.TickLabelSize = c.Font.TickLabelSize
	t.Width = c.Figure.Width
	t.Height = c.Figure.Height
	t.LineWidth = c.Figure.LineWidth
	return t
}

// Options returns the output options for raster output at dpi.
func (c Config) Options(dpi float64) gg.Options {
	return gg.Options{DPI: dpi, FontFamily: c.Font.Family}
}
