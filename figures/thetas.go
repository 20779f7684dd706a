// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figures

import (
	"context"

	"github.com/lumfunc/lumplot/gg"
	"github.com/lumfunc/lumplot/table"
	"github.com/lumfunc/lumplot/trace"
	"go.uber.org/zap"
)

// ThetasParams are the parameters of the Thetas figures.
type ThetasParams struct {
	// File is the theta table to plot.
	File string

	// Prefix is prepended to each output file name.
	Prefix string

	// LowerScale and UpperScale multiply the lower and upper
	// scale samples.
	LowerScale, UpperScale float64
}

// DefaultThetasParams returns parameters that leave the samples
// unscaled.
func DefaultThetasParams() ThetasParams {
	return ThetasParams{LowerScale: 1, UpperScale: 1}
}

// A ThetaPlot is one trace or pairs plot. An empty X plots Y against
// iteration number.
type ThetaPlot struct {
	Suffix string
	X, Y   string
}

// ThetaPlots lists the plots Thetas writes, in order.
var ThetaPlots = []ThetaPlot{
	{Suffix: "beta", Y: trace.Beta},
	{Suffix: "upperscale", Y: trace.Upper},
	{Suffix: "lowerscale", Y: trace.Lower},
	{Suffix: "beta_lowerscale", X: trace.Beta, Y: trace.Lower},
	{Suffix: "beta_upperscale", X: trace.Beta, Y: trace.Upper},
	{Suffix: "lowerscale_upperscale", X: trace.Lower, Y: trace.Upper},
}

// Figure plots t according to tp. Each point is colored by its row
// along the trace ramp and has radius r.
func (tp ThetaPlot) Figure(theme gg.Theme, t *table.Table, r float64) *gg.Figure {
	xs, xlabel := trace.Iterations(t.Len()), trace.IterLabel
	if tp.X != "" {
		xs, xlabel = t.MustColumn(tp.X), trace.Labels[tp.X]
	}
	f := gg.NewFigure(theme)
	f.Panel().
		SetXLabel(xlabel).
		SetYLabel(trace.Labels[tp.Y]).
		Add(&gg.LayerPoints{X: xs, Y: t.MustColumn(tp.Y), Colors: trace.Colors(t.Len()), Radius: r})
	return f
}

// Thetas writes the trace and pairs plots of the theta samples in
// p.File as PNGs named p.Prefix followed by each plot's suffix.
func Thetas(ctx context.Context, o Options, p ThetasParams) ([]string, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	cfg := o.config()
	t, err := trace.Load(p.File)
	if err != nil {
		return nil, err
	}
	t = trace.Rescale(t, p.LowerScale, p.UpperScale)
	o.logger().Debug("loaded thetas",
		zap.String("file", p.File),
		zap.Int("rows", t.Len()),
		zap.Float64("lower_scale_factor", p.LowerScale),
		zap.Float64("upper_scale_factor", p.UpperScale))

	var paths []string
	for _, tp := range ThetaPlots {
		f := tp.Figure(cfg.Theme(), t, cfg.Figure.MarkerSize/2)
		path, err := o.save(ctx, p.Prefix+tp.Suffix+".png", f, cfg.DPI.Default)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
