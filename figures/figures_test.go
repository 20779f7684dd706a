// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figures

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lumfunc/lumplot/config"
	"github.com/lumfunc/lumplot/gg"
	"github.com/lumfunc/lumplot/lumfunc"
	"github.com/lumfunc/lumplot/table"
	"github.com/lumfunc/lumplot/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func hasPrefix(t *testing.T, path, magic string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte(magic)), "%s should start with %q", path, magic)
}

func TestOptionsPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".", "erfArg.pdf"), Options{}.path("erfArg.pdf"))
	assert.Equal(t, filepath.Join("out", "erfArg.svg"), Options{OutDir: "out", Format: "svg"}.path("erfArg.pdf"))
	assert.Equal(t, filepath.Join("out", "run1_beta.png"), Options{OutDir: "out", Format: ".PNG"}.path("run1_beta.png"))
}

func TestOptionsValidate(t *testing.T) {
	for _, f := range []string{"", "svg", "png", "pdf", ".pdf"} {
		assert.NoError(t, Options{Format: f}.validate(), f)
	}
	err := Options{Format: "gif"}.validate()
	var ferr *gg.FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, ".gif", ferr.Ext)
}

func TestErfArg(t *testing.T) {
	dir := t.TempDir()
	core, logs := observer.New(zapcore.InfoLevel)
	o := Options{OutDir: dir, Logger: zap.New(core)}

	paths, err := ErfArg(context.Background(), o, DefaultErfArgParams())
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "erfArg.pdf")}, paths)
	hasPrefix(t, paths[0], "%PDF")
	require.Equal(t, 1, logs.FilterMessage("wrote figure").Len())

	p := DefaultErfArgParams()
	p.PDF = false
	paths, err = ErfArg(context.Background(), o, p)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "erfArg.png")}, paths)
	hasPrefix(t, paths[0], "\x89PNG")
}

func TestErfArgFormatDPI(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	paths, err := ErfArg(context.Background(), Options{OutDir: dir, Format: "png", Config: cfg}, DefaultErfArgParams())
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "erfArg.png")}, paths)

	fh, err := os.Open(paths[0])
	require.NoError(t, err)
	defer fh.Close()
	ic, err := png.DecodeConfig(fh)
	require.NoError(t, err)
	assert.Equal(t, int(cfg.Figure.Width*cfg.DPI.ErfArg), ic.Width)
}

func TestErfArgFigure(t *testing.T) {
	sel := lumfunc.Selection{T: 5, Sigma0: 1, C: 6}
	f := ErfArgFigure(gg.DefaultTheme(), sel, nil)
	panels := f.Panels()
	require.Len(t, panels, 2)

	lo, hi := panels[0].X().Scale.Domain()
	assert.Equal(t, []float64{-200, 1000}, []float64{lo, hi})
	lo, hi = panels[0].Y().Scale.Domain()
	assert.Equal(t, []float64{-80, 80}, []float64{lo, hi})
	// Axis line, curve, asymptote, threshold and crossing.
	assert.Len(t, panels[0].Layers(), 5)

	inset := panels[1]
	assert.Equal(t, "Error function", inset.Title())
	assert.True(t, inset.X().NoTicks)
	assert.True(t, inset.Y().NoTicks)
	lo, hi = inset.Y().Scale.Domain()
	assert.Less(t, lo, -1.5)
	assert.Greater(t, hi, 1.5)
	assert.InDelta(t, -hi, lo, 1e-9)
}

func TestErfArgFigureUnstable(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sel := lumfunc.Selection{T: 5, Sigma0: 1, C: 80}
	f := ErfArgFigure(gg.DefaultTheme(), sel, zap.New(core))
	assert.Len(t, f.Panels()[0].Layers(), 4)
	entries := logs.FilterMessage("omitting crossing line").All()
	require.Len(t, entries, 1)
}

func TestModel(t *testing.T) {
	m, err := HierarchicalModel()
	require.NoError(t, err)
	nodes := m.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "θ", nodes[0].Label)
	assert.Equal(t, [][2]string{{"theta", "characteristic"}, {"characteristic", "data"}}, m.Edges())
	require.Len(t, m.Plates(), 1)
	assert.Equal(t, "N", m.Plates()[0].Label)

	dir := t.TempDir()
	paths, err := Model(context.Background(), Options{OutDir: dir})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "hierarchical_bayesian_model.png")}, paths)
	hasPrefix(t, paths[0], "\x89PNG")
}

func writeBenchmark(t *testing.T, dir string, b Benchmark) {
	for _, name := range b.Files() {
		tab := new(table.Table).
			Add(colSize, []float64{0, 1000, 2000}).
			Add(colTime, []float64{0, 1.5, 3.25})
		require.NoError(t, table.SaveText(filepath.Join(dir, name), tab))
	}
}

func TestBenchmarkFiles(t *testing.T) {
	assert.Equal(t, []string{
		"performance_iter_vs_time_data_10000_with_fl.dat",
		"performance_iter_vs_time_data_100000_with_fl.dat",
		"performance_iter_vs_time_data_300000_with_fl.dat",
	}, IterVsTime.Files())
	assert.Len(t, ObjVsTime.Files(), 5)
}

func TestPerf(t *testing.T) {
	data := t.TempDir()
	for _, b := range Benchmarks {
		writeBenchmark(t, data, b)
	}
	out := filepath.Join(t.TempDir(), "figs")
	paths, err := Perf(context.Background(), Options{OutDir: out, Format: "svg"}, data)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(out, "performance_iter_vs_time.svg"),
		filepath.Join(out, "performance_obj_vs_time.svg"),
	}, paths)

	svg, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	for _, label := range []string{"10000 iter", "1000000 iter", "Object numbers", "Elapsed time (min)"} {
		assert.Contains(t, string(svg), ">"+label+"</text>")
	}
}

func TestPerfMissingData(t *testing.T) {
	_, err := Perf(context.Background(), Options{OutDir: t.TempDir()}, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "performance_iter_vs_time_data_10000_with_fl.dat")
}

func TestBenchmarkFigure(t *testing.T) {
	series := []*table.Table{
		new(table.Table).Add(colSize, []float64{1, 2}).Add(colTime, []float64{3, 4}),
		new(table.Table).Add(colSize, []float64{1, 2}).Add(colTime, []float64{5, 6}),
	}
	f := IterVsTime.Figure(gg.DefaultTheme(), series, 2)
	p := f.Panels()[0]
	// A points layer and a dashed path per series.
	require.Len(t, p.Layers(), 4)
	pts := p.Layers()[2].(*gg.LayerPoints)
	assert.Equal(t, gg.Green, pts.Color)
	assert.Equal(t, "100000 obj", pts.Label)
	path := p.Layers()[3].(*gg.LayerPath)
	assert.Equal(t, gg.Dashed, path.Line.Dash)
	lo, hi := p.X().Scale.Domain()
	assert.Equal(t, []float64{0, 1010000}, []float64{lo, hi})
}

func writeThetas(t *testing.T, path string) {
	tab := new(table.Table).
		Add(trace.Beta, []float64{-1.2, -1.3, -1.25, -1.22}).
		Add(trace.Lower, []float64{1e-10, 2e-10, 1.5e-10, 1.2e-10}).
		Add(trace.Upper, []float64{1e-12, 3e-12, 2e-12, 1.1e-12})
	require.NoError(t, table.SaveText(path, tab))
}

func TestThetas(t *testing.T) {
	in := filepath.Join(t.TempDir(), "thetas.dat")
	writeThetas(t, in)
	out := t.TempDir()
	p := ThetasParams{File: in, Prefix: "run1_", LowerScale: 1e10, UpperScale: 1e12}
	paths, err := Thetas(context.Background(), Options{OutDir: out, Format: "svg"}, p)
	require.NoError(t, err)
	require.Len(t, paths, len(ThetaPlots))
	for i, tp := range ThetaPlots {
		assert.Equal(t, filepath.Join(out, "run1_"+tp.Suffix+".svg"), paths[i])
		hasPrefix(t, paths[i], "<?xml")
	}

	svg, err := os.ReadFile(filepath.Join(out, "run1_beta_upperscale.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), ">β</text>")
	assert.Contains(t, string(svg), ">upper scale</text>")
}

func TestThetasPNG(t *testing.T) {
	in := filepath.Join(t.TempDir(), "thetas.dat")
	writeThetas(t, in)
	out := t.TempDir()
	paths, err := Thetas(context.Background(), Options{OutDir: out}, ThetasParams{File: in, Prefix: "p"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "pbeta.png"), paths[0])
	hasPrefix(t, paths[0], "\x89PNG")
}

func TestThetasScaleFactors(t *testing.T) {
	assert.Equal(t, ThetasParams{LowerScale: 1, UpperScale: 1}, DefaultThetasParams())

	in := filepath.Join(t.TempDir(), "thetas.dat")
	writeThetas(t, in)
	out := t.TempDir()
	core, logs := observer.New(zapcore.DebugLevel)
	p := DefaultThetasParams()
	p.File, p.Prefix, p.LowerScale = in, "z_", 0
	paths, err := Thetas(context.Background(), Options{OutDir: out, Format: "svg", Logger: zap.New(core)}, p)
	require.NoError(t, err)
	require.Len(t, paths, len(ThetaPlots))

	loaded := logs.FilterMessage("loaded thetas").All()
	require.Len(t, loaded, 1)
	fields := loaded[0].ContextMap()
	assert.Equal(t, 0.0, fields["lower_scale_factor"])
	assert.Equal(t, 1.0, fields["upper_scale_factor"])

	tab, err := trace.Load(in)
	require.NoError(t, err)
	tab = trace.Rescale(tab, p.LowerScale, p.UpperScale)
	for _, v := range tab.Column(trace.Lower) {
		assert.Equal(t, 0.0, v)
	}
	pts := ThetaPlots[2].Figure(gg.DefaultTheme(), tab, 1).Panels()[0].Layers()[0].(*gg.LayerPoints)
	assert.Equal(t, make([]float64, tab.Len()), pts.Y)
}

func TestThetaPlotFigure(t *testing.T) {
	tab := new(table.Table).
		Add(trace.Beta, []float64{1, 2, 3}).
		Add(trace.Lower, []float64{4, 5, 6}).
		Add(trace.Upper, []float64{7, 8, 9})
	f := ThetaPlots[0].Figure(gg.DefaultTheme(), tab, 1)
	p := f.Panels()[0]
	assert.Equal(t, trace.IterLabel, p.X().Label)
	assert.Equal(t, "β", p.Y().Label)
	pts := p.Layers()[0].(*gg.LayerPoints)
	assert.Equal(t, []float64{1, 2, 3}, pts.X)
	assert.Equal(t, trace.Ramp(0, 3), pts.Colors[0])
	assert.Equal(t, trace.Ramp(2, 3), pts.Colors[2])

	f = ThetaPlots[5].Figure(gg.DefaultTheme(), tab, 1)
	p = f.Panels()[0]
	assert.Equal(t, "lower scale", p.X().Label)
	assert.Equal(t, "upper scale", p.Y().Label)
}

func TestThetasErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.dat")
	require.NoError(t, os.WriteFile(bad, []byte("1 2 3\n4 five 6\n"), 0o644))
	_, err := Thetas(context.Background(), Options{OutDir: dir}, ThetasParams{File: bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, table.ErrSyntax))
	assert.Contains(t, err.Error(), "bad.dat:2")

	_, err = Thetas(context.Background(), Options{OutDir: dir, Format: "bmp"}, ThetasParams{File: bad})
	var ferr *gg.FormatError
	assert.True(t, errors.As(err, &ferr))
}

func TestThetasCancelled(t *testing.T) {
	in := filepath.Join(t.TempDir(), "thetas.dat")
	writeThetas(t, in)
	out := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := Thetas(ctx, Options{OutDir: out, Format: "svg"}, ThetasParams{File: in, Prefix: "x"})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, paths)
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
