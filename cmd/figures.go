// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/lumfunc/lumplot/figures"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func report(cmd *cobra.Command, g *globals, paths []string) {
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	g.logger.Debug("done", zap.String("command", cmd.Name()), zap.Int("files", len(paths)))
}

// boolValue is a boolean flag that always takes a value, so both
// --flag=false and --flag false parse.
type boolValue bool

func (b *boolValue) String() string { return strconv.FormatBool(bool(*b)) }
func (b *boolValue) Type() string   { return "bool" }

func (b *boolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b = boolValue(v)
	return nil
}

func newErfArgCmd(g *globals) *cobra.Command {
	p := figures.DefaultErfArgParams()
	cmd := &cobra.Command{
		Use:   "erfarg",
		Short: "Plot the error-function argument of the flux-limit selection model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := figures.ErfArg(cmd.Context(), g.options(), p)
			if err != nil {
				return err
			}
			report(cmd, g, paths)
			return nil
		},
	}
	cmd.Flags().Float64Var(&p.Selection.T, "T", p.Selection.T, "The flux limit")
	cmd.Flags().Float64Var(&p.Selection.Sigma0, "sig0", p.Selection.Sigma0, "The constant noise level σ0")
	cmd.Flags().Float64Var(&p.Selection.C, "c", p.Selection.C, "The erf threshold")
	cmd.Flags().Var((*boolValue)(&p.PDF), "pdf-format", "Write a PDF (true) or a PNG (false)")
	return cmd
}

func newModelCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "model",
		Short: "Draw the hierarchical Bayesian model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := figures.Model(cmd.Context(), g.options())
			if err != nil {
				return err
			}
			report(cmd, g, paths)
			return nil
		},
	}
}

func newPerfCmd(g *globals) *cobra.Command {
	var dataDir string
	cmd := &cobra.Command{
		Use:   "perf",
		Short: "Plot the performance benchmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := figures.Perf(cmd.Context(), g.options(), dataDir)
			report(cmd, g, paths)
			return err
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", ".", "Directory containing the benchmark data files")
	return cmd
}

func newThetasCmd(g *globals) *cobra.Command {
	p := figures.DefaultThetasParams()
	cmd := &cobra.Command{
		Use:   "thetas FILE PREFIX",
		Short: "Plot MCMC traces and pairs of the theta samples in FILE",
		Long: "Plot MCMC traces and pairs of the theta samples in FILE.\n\n" +
			"FILE holds β, the lower scale and the upper scale in three\n" +
			"whitespace-separated columns. Six PNGs are written, named\n" +
			"PREFIX followed by beta, upperscale, lowerscale,\n" +
			"beta_lowerscale, beta_upperscale and lowerscale_upperscale.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.File, p.Prefix = args[0], args[1]
			paths, err := figures.Thetas(cmd.Context(), g.options(), p)
			report(cmd, g, paths)
			return err
		},
	}
	cmd.Flags().Float64Var(&p.LowerScale, "lower-scale-factor", p.LowerScale, "Factor multiplying the lower scale samples")
	cmd.Flags().Float64Var(&p.UpperScale, "upper-scale-factor", p.UpperScale, "Factor multiplying the upper scale samples")
	return cmd
}
