// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figures

import (
	"context"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/lumfunc/lumplot/gg"
	"github.com/lumfunc/lumplot/table"
	"go.uber.org/zap"
)

// A Benchmark describes one performance figure: elapsed time against
// a workload size, with one series per value of a second size.
type Benchmark struct {
	// Name is the output file name.
	Name string

	// Pattern is the input file name of each series, with %d
	// standing for the series size.
	Pattern string

	Sizes []int

	// Unit follows the size in each series' legend label.
	Unit string

	XMax   float64
	XLabel string
	Legend gg.LegendLoc
}

// The performance benchmarks, with the input files the benchmark
// harness writes.
var (
	IterVsTime = Benchmark{
		Name:    "performance_iter_vs_time.pdf",
		Pattern: "performance_iter_vs_time_data_%d_with_fl.dat",
		Sizes:   []int{10000, 100000, 300000},
		Unit:    "obj",
		XMax:    1010000,
		XLabel:  "Iteration numbers",
		Legend:  gg.LegendUpperLeft,
	}
	ObjVsTime = Benchmark{
		Name:    "performance_obj_vs_time.pdf",
		Pattern: "performance_obj_vs_time_data_%d_with_fl.dat",
		Sizes:   []int{10000, 100000, 200000, 500000, 1000000},
		Unit:    "iter",
		XMax:    303000,
		XLabel:  "Object numbers",
		Legend:  gg.LegendBest,
	}

	Benchmarks = []Benchmark{IterVsTime, ObjVsTime}
)

const (
	perfYMax   = 60
	perfYLabel = "Elapsed time (min)"
)

// perfColors is the color cycle of benchmark series.
var perfColors = []color.Color{gg.Blue, gg.Green, gg.Red, gg.Yellow, gg.Magenta}

// Columns of a benchmark series.
const (
	colSize = "size"
	colTime = "time"
)

// Files returns the input file names of b, in series order.
func (b Benchmark) Files() []string {
	names := make([]string, len(b.Sizes))
	for i, n := range b.Sizes {
		names[i] = fmt.Sprintf(b.Pattern, n)
	}
	return names
}

// Load reads the series of b from dir. Each file has two columns,
// the workload size and the elapsed time in minutes.
func (b Benchmark) Load(dir string) ([]*table.Table, error) {
	var series []*table.Table
	for _, name := range b.Files() {
		t, err := table.LoadText(filepath.Join(dir, name), colSize, colTime)
		if err != nil {
			return nil, fmt.Errorf("loading benchmark: %w", err)
		}
		series = append(series, t)
	}
	return series, nil
}

// Figure plots series, which correspond to b.Sizes, as points joined
// by dashed lines. Points have radius r.
func (b Benchmark) Figure(theme gg.Theme, series []*table.Table, r float64) *gg.Figure {
	f := gg.NewFigure(theme)
	p := f.Panel().
		SetXLim(0, b.XMax).
		SetYLim(0, perfYMax).
		SetXLabel(b.XLabel).
		SetYLabel(perfYLabel)
	for i, t := range series {
		col := perfColors[i%len(perfColors)]
		xs, ys := t.MustColumn(colSize), t.MustColumn(colTime)
		p.Add(
			&gg.LayerPoints{X: xs, Y: ys, Color: col, Radius: r, Label: fmt.Sprintf("%d %s", b.Sizes[i], b.Unit)},
			&gg.LayerPath{X: xs, Y: ys, Line: gg.LineStyle{Color: col, Width: theme.LineWidth, Dash: gg.Dashed}},
		)
	}
	p.Legend(b.Legend)
	return f
}

// Perf writes the performance figures from the benchmark data in
// dataDir.
func Perf(ctx context.Context, o Options, dataDir string) ([]string, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	cfg := o.config()
	var paths []string
	for _, b := range Benchmarks {
		series, err := b.Load(dataDir)
		if err != nil {
			return paths, err
		}
		o.logger().Debug("loaded benchmark", zap.String("figure", b.Name), zap.Int("series", len(series)))
		f := b.Figure(cfg.Theme(), series, cfg.Figure.MarkerSize)
		path, err := o.save(ctx, b.Name, f, cfg.DPI.Default)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
