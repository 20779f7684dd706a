// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"image/color"
	"math"

	"go.uber.org/zap"
)

// A Layer is a set of marks drawn in a Panel.
type Layer interface {
	// train expands the panel's scales to cover the layer's data.
	train(x, y *LinearScale)

	// draw draws the layer's marks.
	draw(env *renderEnv)

	// key returns the layer's legend entry, or nil if the layer is
	// not labeled.
	key() *legendKey

	// extent returns the canvas positions of the layer's data,
	// which legend placement tries to avoid.
	extent(env *renderEnv) []Point
}

type legendKey struct {
	label  string
	line   LineStyle
	marker color.Color
	radius float64
}

// LayerPath draws a path connecting successive (X, Y) points. A NaN
// in X or Y breaks the path. The path is clipped to the panel.
type LayerPath struct {
	X, Y  []float64
	Line  LineStyle
	Label string
}

func (l *LayerPath) train(x, y *LinearScale) {
	x.ExpandDomain(l.X)
	y.ExpandDomain(l.Y)
}

func (l *LayerPath) draw(env *renderEnv) {
	n := pairLen("path", l.X, l.Y)
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = env.pt(l.X[i], l.Y[i])
	}
	for _, run := range clipPolyline(pts, env.area) {
		env.c.Path(run, false, l.Line, nil)
	}
}

func (l *LayerPath) key() *legendKey {
	if l.Label == "" {
		return nil
	}
	return &legendKey{label: l.Label, line: l.Line}
}

func (l *LayerPath) extent(env *renderEnv) []Point {
	return env.pts(l.X, l.Y)
}

// LayerPoints draws a filled circle at each (X, Y) point. Points
// outside the panel or with NaN coordinates are not drawn.
type LayerPoints struct {
	X, Y []float64

	// Color is the color of all points, unless Colors is set, in
	// which case Colors[i] is the color of point i.
	Color  color.Color
	Colors []color.Color

	// Radius is the radius of each point in points. If Radius is
	// 0, it is treated as 2.
	Radius float64

	Label string
}

func (l *LayerPoints) radius() float64 {
	if l.Radius <= 0 {
		return 2
	}
	return l.Radius
}

func (l *LayerPoints) train(x, y *LinearScale) {
	x.ExpandDomain(l.X)
	y.ExpandDomain(l.Y)
}

func (l *LayerPoints) draw(env *renderEnv) {
	n := pairLen("points", l.X, l.Y)
	if l.Colors != nil && len(l.Colors) < n {
		Warning.Warn("fewer colors than points", zap.Int("colors", len(l.Colors)), zap.Int("points", n))
		n = len(l.Colors)
	}
	r := l.radius()
	for i := 0; i < n; i++ {
		p := env.pt(l.X[i], l.Y[i])
		if !env.area.contains(p) {
			continue
		}
		c := l.Color
		if l.Colors != nil {
			c = l.Colors[i]
		}
		env.c.Circle(p, r, LineStyle{}, c)
	}
}

func (l *LayerPoints) key() *legendKey {
	if l.Label == "" {
		return nil
	}
	c := l.Color
	if c == nil && len(l.Colors) > 0 {
		c = l.Colors[0]
	}
	return &legendKey{label: l.Label, marker: c, radius: l.radius()}
}

func (l *LayerPoints) extent(env *renderEnv) []Point {
	return env.pts(l.X, l.Y)
}

// LayerHLine draws a horizontal line across the panel at Y.
type LayerHLine struct {
	Y     float64
	Line  LineStyle
	Label string
}

func (l *LayerHLine) train(x, y *LinearScale) {
	y.Include(l.Y)
}

func (l *LayerHLine) draw(env *renderEnv) {
	py := env.pt(0, l.Y).Y
	if !env.area.containsY(py) {
		return
	}
	env.c.Path([]Point{{env.area.x0, py}, {env.area.x1, py}}, false, l.Line, nil)
}

func (l *LayerHLine) key() *legendKey {
	if l.Label == "" {
		return nil
	}
	return &legendKey{label: l.Label, line: l.Line}
}

func (l *LayerHLine) extent(env *renderEnv) []Point { return nil }

// LayerVLine draws a vertical line across the panel at X.
type LayerVLine struct {
	X     float64
	Line  LineStyle
	Label string
}

func (l *LayerVLine) train(x, y *LinearScale) {
	x.Include(l.X)
}

func (l *LayerVLine) draw(env *renderEnv) {
	px := env.pt(l.X, 0).X
	if !env.area.containsX(px) {
		return
	}
	env.c.Path([]Point{{px, env.area.y0}, {px, env.area.y1}}, false, l.Line, nil)
}

func (l *LayerVLine) key() *legendKey {
	if l.Label == "" {
		return nil
	}
	return &legendKey{label: l.Label, line: l.Line}
}

func (l *LayerVLine) extent(env *renderEnv) []Point { return nil }

// LayerAnnotation draws Text offset from the data point (X, Y) by
// (DX, DY) points, with DY increasing upward. If Arrow is set, an
// arrow points from the text to (X, Y).
type LayerAnnotation struct {
	Text   string
	X, Y   float64
	DX, DY float64
	Color  color.Color
	Size   float64 // Points. If 0, the theme font size is used.
	Arrow  bool
}

func (l *LayerAnnotation) train(x, y *LinearScale) {}

func (l *LayerAnnotation) draw(env *renderEnv) {
	size := l.Size
	if size <= 0 {
		size = env.theme.FontSize
	}
	col := l.Color
	if col == nil {
		col = Black
	}
	target := env.pt(l.X, l.Y)
	at := Point{target.X + l.DX, target.Y - l.DY}
	env.c.Text(at, l.Text, TextStyle{Size: size, Color: col, Anchor: AnchorMiddle, Baseline: BaselineMiddle})
	if !l.Arrow {
		return
	}
	// Start the arrow clear of the text.
	dx, dy := target.X-at.X, target.Y-at.Y
	d := math.Hypot(dx, dy)
	gap := 0.6 * size
	if d <= gap {
		return
	}
	from := Point{at.X + dx*gap/d, at.Y + dy*gap/d}
	Arrow(env.c, from, target, LineStyle{Color: Black, Width: 1}, 6)
}

func (l *LayerAnnotation) key() *legendKey { return nil }

func (l *LayerAnnotation) extent(env *renderEnv) []Point {
	return []Point{env.pt(l.X, l.Y)}
}

// Arrow draws a line from from to to, ending in a filled arrowhead of
// length head points at to.
func Arrow(c Canvas, from, to Point, line LineStyle, head float64) {
	dx, dy := to.X-from.X, to.Y-from.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return
	}
	ux, uy := dx/d, dy/d
	if head > d {
		head = d
	}
	base := Point{to.X - ux*head, to.Y - uy*head}
	half := head * 0.4
	c.Path([]Point{from, base}, false, line, nil)
	c.Path([]Point{
		to,
		{base.X - uy*half, base.Y + ux*half},
		{base.X + uy*half, base.Y - ux*half},
	}, true, LineStyle{}, line.Color)
}

// pairLen returns the number of (x, y) pairs, warning if xs and ys
// differ in length.
func pairLen(what string, xs, ys []float64) int {
	if len(xs) != len(ys) {
		Warning.Warn("x and y lengths differ", zap.String("layer", what), zap.Int("x", len(xs)), zap.Int("y", len(ys)))
	}
	return min(len(xs), len(ys))
}
