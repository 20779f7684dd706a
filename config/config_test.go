// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 14.0, cfg.Font.Size)
	assert.Equal(t, 18.0, cfg.Font.LabelSize)
	assert.Equal(t, 150.0, cfg.DPI.Default)
	assert.Equal(t, 100.0, cfg.DPI.ErfArg)
	require.NoError(t, cfg.Validate())
}

func TestParseOverlay(t *testing.T) {
	cfg, err := Parse([]byte("font:\n  size: 10\n  family: sans-serif\ndpi:\n  default: 300\n"))
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Font.Size)
	assert.Equal(t, "sans-serif", cfg.Font.Family)
	assert.Equal(t, 300.0, cfg.DPI.Default)
	// Untouched keys keep their defaults.
	assert.Equal(t, 18.0, cfg.Font.LabelSize)
	assert.Equal(t, 100.0, cfg.DPI.ErfArg)

	th := cfg.Theme()
	assert.Equal(t, 10.0, th.FontSize)
	assert.Equal(t, 8.0, th.Width)
	assert.Equal(t, "sans-serif", cfg.Options(72).FontFamily)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("font:\n  colour: red\n"))
	assert.Error(t, err, "unknown key")

	_, err = Parse([]byte("figure:\n  width: -1\n"))
	assert.True(t, errors.Is(err, ErrInvalid), "negative width: %v", err)

	_, err = Parse([]byte("font:\n  family: fantasy\n"))
	assert.True(t, errors.Is(err, ErrInvalid), "bad family: %v", err)

	_, err = Parse([]byte("font: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("figure:\n  width: 4\n  height: 3\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Figure.Width)
	assert.Equal(t, 3.0, cfg.Figure.Height)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.yaml")
}
