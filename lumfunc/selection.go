// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lumfunc implements the flux-limit selection model used by
// the luminosity-function figures.
//
// An object with true flux x is detected with probability given by
// an error function of
//
//	Arg(x) = (x - T) / sqrt(2*(σ0² + (k*x)²))
//
// where T is the flux limit, σ0 the constant noise level and k = 0.01
// the fractional noise level.
package lumfunc

import (
	"errors"
	"math"

	"github.com/lumfunc/lumplot/stat"
	"github.com/lumfunc/lumplot/table"
)

// FracNoise is the fractional flux noise level k.
const FracNoise = 0.01

// ErrUnstable is returned by Crossing when the threshold c is at or
// above the asymptote of Arg, so Arg never reaches it.
var ErrUnstable = errors.New("erf threshold at or above the argument asymptote")

// Selection holds the parameters of the selection model.
type Selection struct {
	T      float64 // Flux limit.
	Sigma0 float64 // Constant noise level.
	C      float64 // Erf threshold.
}

// Arg evaluates the error-function argument at flux x.
func (s Selection) Arg(x float64) float64 {
	kx := FracNoise * x
	return (x - s.T) / math.Sqrt(2*(s.Sigma0*s.Sigma0+kx*kx))
}

// Asymptote returns the limit of Arg(x) as x goes to infinity,
// 1/(k*sqrt(2)).
func (s Selection) Asymptote() float64 {
	return 1 / (FracNoise * math.Sqrt2)
}

// Crossing returns the flux x* at which Arg(x*) == C.
//
// x* is the larger root of the quadratic obtained by squaring
// Arg(x) = C:
//
//	x* = (T + sqrt(2)*C*sqrt((1-2k²C²)σ0² + k²T²)) / (1 - 2k²C²)
//
// If 1-2k²C² <= 0, C is not below the asymptote and Crossing returns
// ErrUnstable.
func (s Selection) Crossing() (float64, error) {
	k2 := FracNoise * FracNoise
	d := 1 - 2*k2*s.C*s.C
	if d <= 0 {
		return math.NaN(), ErrUnstable
	}
	disc := d*s.Sigma0*s.Sigma0 + k2*s.T*s.T
	return (s.T + math.Sqrt2*s.C*math.Sqrt(disc)) / d, nil
}

// Curve samples Arg at n evenly spaced fluxes in [min, max]. The
// result has columns "flux" and "arg".
func (s Selection) Curve(min, max float64, n int) *table.Table {
	return stat.Function{X: "flux", Y: "arg", Min: min, Max: max, N: n, Fn: s.Arg}.F()
}

// ErfCurve samples the error function at n evenly spaced points in
// [min, max]. The result has columns "x" and "erf".
func ErfCurve(min, max float64, n int) *table.Table {
	return stat.Function{X: "x", Y: "erf", Min: min, Max: max, N: n, Fn: math.Erf}.F()
}

