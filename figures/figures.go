// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figures generates the figures of the luminosity-function
// analysis: the error-function argument transform, the hierarchical
// model diagram, the performance benchmarks, and MCMC trace and pairs
// plots.
//
// Each generator builds its figures with package gg, writes them to
// Options.OutDir, and returns the paths it wrote. Generators check
// their context between files, so a cancelled multi-figure run stops
// after the file in progress.
package figures

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumfunc/lumplot/config"
	"github.com/lumfunc/lumplot/gg"
	"go.uber.org/zap"
)

// Options control where and how figures are written.
type Options struct {
	// OutDir is the directory figures are written to. It is
	// created if necessary. If empty, the current directory is
	// used.
	OutDir string

	// Format, if set, replaces the extension of every output
	// file. It must be one of "svg", "png", or "pdf".
	Format string

	// Config supplies the theme and raster resolution. The zero
	// Config is treated as config.Default().
	Config config.Config

	// Logger receives a record of each file written. If nil,
	// nothing is logged.
	Logger *zap.Logger
}

func (o Options) config() config.Config {
	if o.Config == (config.Config{}) {
		return config.Default()
	}
	return o.Config
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// validate checks o.Format.
func (o Options) validate() error {
	if o.Format == "" {
		return nil
	}
	ext := "." + strings.TrimPrefix(strings.ToLower(o.Format), ".")
	for _, f := range gg.Formats {
		if f == ext {
			return nil
		}
	}
	return &gg.FormatError{Path: o.Format, Ext: ext}
}

// path returns the output path of the file name, with the extension
// replaced by o.Format if set.
func (o Options) path(name string) string {
	if o.Format != "" {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + "." + strings.TrimPrefix(strings.ToLower(o.Format), ".")
	}
	dir := o.OutDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}

// save writes d to the file name in o.OutDir. dpi applies to raster
// output.
func (o Options) save(ctx context.Context, name string, d gg.Drawer, dpi float64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := o.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if err := gg.Save(path, d, o.config().Options(dpi)); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	o.logger().Info("wrote figure", zap.String("path", path))
	return path, nil
}
