// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pgm draws probabilistic graphical models: random variables
// as circles, dependencies as arrows, and plates around variables
// that repeat.
//
// Positions are given in grid units on a canvas of a fixed shape, in
// the style of the daft Python package.
package pgm

import (
	"errors"
	"fmt"
	"math"

	"github.com/lumfunc/lumplot/gg"
)

var (
	// ErrUnknownNode is returned for an edge to a node not in the model.
	ErrUnknownNode = errors.New("unknown node")

	// ErrDuplicateNode is returned when a node name is added twice.
	ErrDuplicateNode = errors.New("duplicate node")
)

const (
	// DefaultGridUnit is the size of one grid unit in inches (2cm).
	DefaultGridUnit = 2 / 2.54

	// DefaultNodeUnit is the diameter of a node in grid units.
	DefaultNodeUnit = 0.5
)

// A Node is a random variable.
type Node struct {
	Name  string // Identifies the node in edges.
	Label string // Drawn inside the node.

	// X and Y are the position of the center in grid units.
	X, Y float64

	// Observed nodes are shaded.
	Observed bool
}

// A Plate groups nodes that repeat.
type Plate struct {
	// X, Y, W, H give the bottom left corner and size of the plate
	// in grid units.
	X, Y, W, H float64

	Label string

	// Shift moves the plate vertically, in grid units.
	Shift float64

	// LabelOffset positions the label relative to the bottom left
	// corner of the plate, in points (right, up).
	LabelOffset [2]float64
}

// A Model is a graphical model laid out on a grid.
type Model struct {
	// GridUnit is the size of a grid unit in inches.
	GridUnit float64

	// NodeUnit is the diameter of a node in grid units.
	NodeUnit float64

	// FontSize is the size of node and plate labels in points.
	FontSize float64

	shape, origin [2]float64
	nodes         []*Node
	index         map[string]*Node
	edges         [][2]string
	plates        []Plate
}

// New returns an empty model whose canvas is shape grid units wide
// and high, with its bottom left corner at grid position origin.
func New(shape, origin [2]float64) *Model {
	return &Model{
		GridUnit: DefaultGridUnit,
		NodeUnit: DefaultNodeUnit,
		FontSize: 14,
		shape:    shape,
		origin:   origin,
		index:    make(map[string]*Node),
	}
}

// AddNode adds a node to m. Node names must be unique.
func (m *Model) AddNode(n Node) error {
	if _, ok := m.index[n.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, n.Name)
	}
	np := &n
	m.nodes = append(m.nodes, np)
	m.index[n.Name] = np
	return nil
}

// AddEdge adds a directed edge between the named nodes.
func (m *Model) AddEdge(from, to string) error {
	for _, name := range []string{from, to} {
		if _, ok := m.index[name]; !ok {
			return fmt.Errorf("edge %s -> %s: %w: %s", from, to, ErrUnknownNode, name)
		}
	}
	m.edges = append(m.edges, [2]string{from, to})
	return nil
}

// AddPlate adds a plate to m.
func (m *Model) AddPlate(p Plate) {
	m.plates = append(m.plates, p)
}

// Nodes returns the nodes of m in the order they were added.
func (m *Model) Nodes() []Node {
	out := make([]Node, len(m.nodes))
	for i, n := range m.nodes {
		out[i] = *n
	}
	return out
}

// Edges returns the edges of m as (from, to) name pairs.
func (m *Model) Edges() [][2]string {
	return m.edges
}

// Plates returns the plates of m.
func (m *Model) Plates() []Plate {
	return m.plates
}

// Size returns the size of m's canvas in inches.
func (m *Model) Size() (w, h float64) {
	return m.shape[0] * m.GridUnit, m.shape[1] * m.GridUnit
}

// Draw draws m onto c, which is w by h points.
func (m *Model) Draw(c gg.Canvas, w, h float64) {
	unit := w / m.shape[0]
	pt := func(x, y float64) gg.Point {
		return gg.Point{X: (x - m.origin[0]) * unit, Y: h - (y-m.origin[1])*unit}
	}
	line := gg.LineStyle{Color: gg.Black, Width: 1}
	labelStyle := gg.TextStyle{Size: m.FontSize, Color: gg.Black, Anchor: gg.AnchorMiddle, Baseline: gg.BaselineMiddle}

	c.Path([]gg.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}, true, gg.LineStyle{}, gg.White)

	for _, p := range m.plates {
		y := p.Y + p.Shift
		bl, tr := pt(p.X, y), pt(p.X+p.W, y+p.H)
		c.Path([]gg.Point{bl, {X: tr.X, Y: bl.Y}, tr, {X: bl.X, Y: tr.Y}}, true, line, nil)
		if p.Label != "" {
			at := gg.Point{X: bl.X + p.LabelOffset[0], Y: bl.Y - p.LabelOffset[1]}
			c.Text(at, p.Label, gg.TextStyle{Size: m.FontSize, Color: gg.Black})
		}
	}

	r := m.NodeUnit * unit / 2
	for _, e := range m.edges {
		a, b := m.index[e[0]], m.index[e[1]]
		pa, pb := pt(a.X, a.Y), pt(b.X, b.Y)
		dx, dy := pb.X-pa.X, pb.Y-pa.Y
		d := math.Hypot(dx, dy)
		if d <= 2*r {
			continue
		}
		ux, uy := dx/d, dy/d
		from := gg.Point{X: pa.X + ux*r, Y: pa.Y + uy*r}
		to := gg.Point{X: pb.X - ux*r, Y: pb.Y - uy*r}
		gg.Arrow(c, from, to, line, 6)
	}

	for _, n := range m.nodes {
		fill := gg.White
		if n.Observed {
			fill = gg.Gray
		}
		ctr := pt(n.X, n.Y)
		c.Circle(ctr, r, line, fill)
		c.Text(ctr, n.Label, labelStyle)
	}
}
