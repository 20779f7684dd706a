// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figures

import (
	"context"
	"path/filepath"

	"github.com/lumfunc/lumplot/gg"
	"github.com/lumfunc/lumplot/lumfunc"
	"github.com/lumfunc/lumplot/stat"
	"go.uber.org/zap"
)

// Legend labels of the error-function argument figure.
const (
	ArgLabel       = "(χ − T) / √(2(σ₀² + (0.01χ)²))"
	AsymptoteLabel = "1 / (0.01√2)"
	ThresholdLabel = "c"
	CrossingLabel  = "(T + √2c√((1 − 2(0.01)²c²)σ₀² + (0.01)²T²)) / (1 − 2(0.01)²c²)"
)

// ErfArgParams are the parameters of the ErfArg figure.
type ErfArgParams struct {
	Selection lumfunc.Selection

	// PDF selects PDF output. Otherwise the figure is a PNG. PNG
	// output, however chosen, uses the erfarg resolution.
	PDF bool
}

// DefaultErfArgParams returns the default flux limit, noise level and
// threshold.
func DefaultErfArgParams() ErfArgParams {
	return ErfArgParams{
		Selection: lumfunc.Selection{T: 5, Sigma0: 1, C: 6},
		PDF:       true,
	}
}

// ErfArg writes erfArg.pdf (or erfArg.png) showing the error-function
// argument of the selection model, its asymptote, the threshold c and
// the flux at which the argument crosses c.
func ErfArg(ctx context.Context, o Options, p ErfArgParams) ([]string, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	cfg := o.config()
	log := o.logger()
	log.Debug("erfarg",
		zap.Float64("T", p.Selection.T),
		zap.Float64("sigma0", p.Selection.Sigma0),
		zap.Float64("c", p.Selection.C))

	f := ErfArgFigure(cfg.Theme(), p.Selection, log)
	name := "erfArg.pdf"
	if !p.PDF {
		name = "erfArg.png"
	}
	dpi := cfg.DPI.Default
	if filepath.Ext(o.path(name)) == ".png" {
		dpi = cfg.DPI.ErfArg
	}
	path, err := o.save(ctx, name, f, dpi)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// ErfArgFigure builds the error-function argument figure. If the
// threshold has no crossing, the crossing line is left out and a
// warning is logged to log, which may be nil.
func ErfArgFigure(theme gg.Theme, sel lumfunc.Selection, log *zap.Logger) *gg.Figure {
	const (
		xmin, xmax = -200, 1000
		samples    = 300
		refWidth   = 2
	)
	if log == nil {
		log = zap.NewNop()
	}
	f := gg.NewFigure(theme)

	curve := sel.Curve(xmin, xmax, samples)
	ap := f.Panel().SetXLim(xmin, xmax).SetYLim(-80, 80).SetXLabel("χ")
	ap.Add(
		&gg.LayerVLine{X: 0, Line: gg.LineStyle{Color: gg.Black, Width: refWidth}},
		&gg.LayerPath{
			X:     curve.MustColumn("flux"),
			Y:     curve.MustColumn("arg"),
			Line:  gg.LineStyle{Color: gg.Blue, Width: 3},
			Label: ArgLabel,
		},
		&gg.LayerHLine{Y: sel.Asymptote(), Line: gg.LineStyle{Color: gg.Red, Width: refWidth, Dash: gg.Dashed}, Label: AsymptoteLabel},
		&gg.LayerHLine{Y: sel.C, Line: gg.LineStyle{Color: gg.Green, Width: refWidth}, Label: ThresholdLabel},
	)
	if x, err := sel.Crossing(); err != nil {
		log.Warn("omitting crossing line", zap.Float64("c", sel.C), zap.Error(err))
	} else {
		ap.Add(&gg.LayerVLine{X: x, Line: gg.LineStyle{Color: gg.Magenta, Width: refWidth, Dash: gg.Dotted}, Label: CrossingLabel})
	}
	ap.Legend(gg.LegendBest)

	erf := lumfunc.ErfCurve(-7, 7, samples)
	ys := erf.MustColumn("erf")
	lo, hi := stat.Bounds(ys, 1.1)
	inset := f.Inset(0.65, 0.65, 0.18, 0.18).
		SetTitle("Error function").
		HideTicks().
		SetXLim(-7, 7).
		SetYLim(lo-0.5, hi+0.5)
	inset.Add(
		&gg.LayerPath{X: erf.MustColumn("x"), Y: ys, Line: gg.LineStyle{Color: gg.Red, Width: 1}},
		&gg.LayerAnnotation{Text: "c", X: sel.C, Y: 0, DX: -20, DY: -20, Color: gg.Green, Size: 12, Arrow: true},
		&gg.LayerVLine{X: sel.C, Line: gg.LineStyle{Color: gg.Green, Width: 1}},
	)
	return f
}
