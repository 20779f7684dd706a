// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stat samples functions and summarizes data columns for
// plotting.
package stat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/lumfunc/lumplot/table"
)

// Function samples a continuous univariate function.
//
// Function samples Fn at N evenly spaced values within [Min, Max]. A
// NaN domain, as returned by Bounds for empty data, yields no samples.
//
// The result of Function binds column X to the X values at which the
// function is sampled and column Y to the function values.
type Function struct {
	// X and Y are the names of the output columns. If empty,
	// they default to "x" and "y".
	X, Y string

	// Min and Max bound the sampled domain.
	Min, Max float64

	// N is the number of points to sample the function at. If N
	// is 0, a reasonable default is used.
	N int

	// Fn is the function to sample.
	Fn func(x float64) float64
}

const (
	defaultFunctionSamples = 200
	defaultWiden           = 1.1
)

// F samples f and returns the sampled table.
func (f Function) F() *table.Table {
	xcol, ycol := f.X, f.Y
	if xcol == "" {
		xcol = "x"
	}
	if ycol == "" {
		ycol = "y"
	}
	if f.N <= 0 {
		f.N = defaultFunctionSamples
	}

	// With no domain there are no sample points, but we still
	// produce the output columns.
	var xs []float64
	if math.IsNaN(f.Min) || math.IsNaN(f.Max) {
		xs = []float64{}
	} else {
		xs = vec.Linspace(f.Min, f.Max, f.N)
	}
	ys := vec.Map(f.Fn, xs)

	return new(table.Table).Add(xcol, xs).Add(ycol, ys)
}

// Bounds returns the bounds of the finite values in xs, widened to
// widen times their span (centered). If widen is 0, it is treated as
// 1.1. If xs has no finite values, Bounds returns NaN, NaN.
func Bounds(xs []float64, widen float64) (min, max float64) {
	if widen <= 0 {
		widen = defaultWiden
	}
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return math.NaN(), math.NaN()
	}
	min, max = stats.Bounds(finite)

	// Widen bounds.
	span := max - min
	return min - span*(widen-1)/2, max + span*(widen-1)/2
}
