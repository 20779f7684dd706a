// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace handles MCMC samples of the luminosity-function
// parameters θ = (β, lower scale, upper scale).
package trace

import (
	"fmt"

	"github.com/lumfunc/lumplot/table"
)

// Column names of a theta table.
const (
	Beta  = "beta"
	Lower = "lower"
	Upper = "upper"
)

// Labels for the columns of a theta table and the iteration axis.
var Labels = map[string]string{
	Beta:  "β",
	Lower: "lower scale",
	Upper: "upper scale",
}

// IterLabel labels the iteration axis of trace plots.
const IterLabel = "Iterations"

// Load reads a theta table from path. The file is whitespace-delimited
// text whose first three fields on each row are β, the lower scale,
// and the upper scale.
func Load(path string) (*table.Table, error) {
	t, err := table.LoadText(path, Beta, Lower, Upper)
	if err != nil {
		return nil, fmt.Errorf("loading thetas: %w", err)
	}
	return t, nil
}

// Rescale returns a copy of t with the lower and upper scale columns
// multiplied by lower and upper. A factor of 1 leaves the column
// unchanged.
func Rescale(t *table.Table, lower, upper float64) *table.Table {
	if lower != 1 {
		t = t.MapColumn(Lower, func(v float64) float64 { return v * lower })
	}
	if upper != 1 {
		t = t.MapColumn(Upper, func(v float64) float64 { return v * upper })
	}
	return t
}

// Iterations returns the iteration numbers 1..n.
func Iterations(n int) []float64 {
	its := make([]float64, n)
	for i := range its {
		its[i] = float64(i + 1)
	}
	return its
}
