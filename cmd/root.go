// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the lumplot command line.
package cmd

import (
	"context"
	"strings"

	"github.com/lumfunc/lumplot/config"
	"github.com/lumfunc/lumplot/figures"
	"github.com/lumfunc/lumplot/gg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// globals holds the persistent flags and the state built from them
// before a subcommand runs.
type globals struct {
	cfgFile string
	outDir  string
	format  string
	verbose bool

	logger *zap.Logger
	cfg    config.Config
}

// setup loads the configuration and, unless one was supplied, builds
// the logger.
func (g *globals) setup() error {
	if g.logger == nil {
		var err error
		if g.verbose {
			g.logger, err = zap.NewDevelopment()
		} else {
			g.logger, err = zap.NewProduction()
		}
		if err != nil {
			return err
		}
	}
	gg.Warning = g.logger.Named("gg")

	cfg, err := config.Load(g.cfgFile)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.logger.Debug("loaded config", zap.String("path", g.cfgFile), zap.Any("config", cfg))
	return nil
}

func (g *globals) options() figures.Options {
	return figures.Options{
		OutDir: g.outDir,
		Format: g.format,
		Config: g.cfg,
		Logger: g.logger,
	}
}

// dashFlags lets flags be spelled with underscores, as in
// --pdf_format.
func dashFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// newRootCmd returns the lumplot command. If logger is nil, one is
// built from the --verbose flag.
func newRootCmd(logger *zap.Logger) (*cobra.Command, *globals) {
	g := &globals{logger: logger}
	rootCmd := &cobra.Command{
		Use:           "lumplot",
		Short:         "lumplot - figures for luminosity-function inference",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid by now; later errors aren't
			// usage errors.
			cmd.SilenceUsage = true
			return g.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = g.logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.cfgFile, "config", "", "YAML theme file")
	pf.StringVar(&g.outDir, "out-dir", ".", "Directory to write figures to")
	pf.StringVar(&g.format, "format", "", "Override the output format (svg, png or pdf)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newErfArgCmd(g))
	rootCmd.AddCommand(newModelCmd(g))
	rootCmd.AddCommand(newPerfCmd(g))
	rootCmd.AddCommand(newThetasCmd(g))
	rootCmd.SetGlobalNormalizationFunc(dashFlags)
	return rootCmd, g
}

// Execute runs the lumplot command line with the process arguments.
// Errors are logged before being returned.
func Execute(ctx context.Context) error {
	rootCmd, g := newRootCmd(nil)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger := g.logger
		if logger == nil {
			// Failed before setup, e.g. on a bad flag.
			logger, _ = zap.NewProduction()
		}
		if logger != nil {
			logger.Error("lumplot failed", zap.Error(err))
			_ = logger.Sync()
		}
	}
	return err
}
