// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lumfunc/lumplot/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thetas() *table.Table {
	return new(table.Table).
		Add(Beta, []float64{-1.2, -1.3, -1.25}).
		Add(Lower, []float64{1e-10, 2e-10, 3e-10}).
		Add(Upper, []float64{100, 110, 105})
}

func TestRescale(t *testing.T) {
	in := thetas()
	out := Rescale(in, 1e10, 2)
	assert.Equal(t, in.Column(Beta), out.Column(Beta))
	for i, v := range in.Column(Lower) {
		assert.Equal(t, v*1e10, out.Column(Lower)[i])
	}
	for i, v := range in.Column(Upper) {
		assert.Equal(t, v*2, out.Column(Upper)[i])
	}
	// The input is not modified.
	assert.Equal(t, []float64{100, 110, 105}, in.Column(Upper))
}

func TestRescaleIdentity(t *testing.T) {
	in := thetas()
	out := Rescale(in, 1, 1)
	assert.Equal(t, in.Column(Lower), out.Column(Lower))
	assert.Equal(t, in.Column(Upper), out.Column(Upper))
}

func TestRescaleZero(t *testing.T) {
	out := Rescale(thetas(), 0, 0)
	assert.Equal(t, []float64{0, 0, 0}, out.Column(Lower))
	assert.Equal(t, []float64{0, 0, 0}, out.Column(Upper))
	assert.Equal(t, []float64{-1.2, -1.3, -1.25}, out.Column(Beta))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumfunc_thetas.dat")
	require.NoError(t, table.SaveText(path, thetas()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, thetas().Column(Lower), got.Column(Lower))

	bad := filepath.Join(dir, "bad.dat")
	require.NoError(t, os.WriteFile(bad, []byte("-1.2 1e-10\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, table.ErrSyntax))
}

func TestIterations(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3}, Iterations(3))
	assert.Empty(t, Iterations(0))
}

func TestRamp(t *testing.T) {
	const n = 1000
	assert.Equal(t, RGB{1, 0, 0}, Ramp(0, n))

	last := Ramp(n-1, n)
	assert.InDelta(t, 0, last.R, 1.0/n+1e-12)
	assert.Equal(t, 0.0, last.G)
	assert.InDelta(t, 1, last.B, 1.0/n+1e-12)

	// Linear in the row index.
	for i := 1; i < n; i++ {
		prev, cur := Ramp(i-1, n), Ramp(i, n)
		assert.InDelta(t, 1.0/n, cur.B-prev.B, 1e-12)
		assert.InDelta(t, -1.0/n, cur.R-prev.R, 1e-12)
		assert.InDelta(t, 1, cur.R+cur.B, 1e-12)
	}
}

func TestColors(t *testing.T) {
	cs := Colors(4)
	require.Len(t, cs, 4)
	r, g, b, a := cs[0].RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
	r, g, b, a = cs[2].RGBA()
	assert.Equal(t, []uint32{0x8000, 0, 0x8000, 0xffff}, []uint32{r, g, b, a})
}
