// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figures

import (
	"context"

	"github.com/lumfunc/lumplot/pgm"
)

// Model writes hierarchical_bayesian_model.png, the graphical model of
// the luminosity-function inference.
func Model(ctx context.Context, o Options) ([]string, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	cfg := o.config()
	m, err := HierarchicalModel()
	if err != nil {
		return nil, err
	}
	m.FontSize = cfg.Font.Size
	path, err := o.save(ctx, "hierarchical_bayesian_model.png", m, cfg.DPI.Default)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// HierarchicalModel returns the model θ → χᵢ → Dᵢ, with the per-object
// variables on a plate of N objects.
func HierarchicalModel() (*pgm.Model, error) {
	m := pgm.New([2]float64{3.4, 1.9}, [2]float64{0.5, 0})
	for _, n := range []pgm.Node{
		{Name: "theta", Label: "θ", X: 1, Y: 1},
		{Name: "characteristic", Label: "χᵢ", X: 2, Y: 1},
		{Name: "data", Label: "Dᵢ", X: 3, Y: 1},
	} {
		if err := m.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range [][2]string{{"theta", "characteristic"}, {"characteristic", "data"}} {
		if err := m.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	m.AddPlate(pgm.Plate{
		X: 1.5, Y: 0.5, W: 2, H: 1,
		Label:       "N",
		Shift:       -0.1,
		LabelOffset: [2]float64{100, 5},
	})
	return m, nil
}
