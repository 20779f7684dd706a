// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"go.uber.org/zap"
)

// tickDistance is the minimum distance in points between major
// ticks.
const tickDistance = 50

// labelGap is the distance in points between tick labels and the
// axis label.
const labelGap = 6

// A rect is an axis-aligned rectangle in canvas points.
type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) w() float64 { return r.x1 - r.x0 }
func (r rect) h() float64 { return r.y1 - r.y0 }

func (r rect) points() []Point {
	return []Point{{r.x0, r.y0}, {r.x1, r.y0}, {r.x1, r.y1}, {r.x0, r.y1}}
}

func (r rect) containsX(x float64) bool { return x >= r.x0 && x <= r.x1 }
func (r rect) containsY(y float64) bool { return y >= r.y0 && y <= r.y1 }

func (r rect) contains(p Point) bool {
	return r.containsX(p.X) && r.containsY(p.Y)
}

type renderEnv struct {
	c      Canvas
	theme  *Theme
	area   rect
	xs, ys scale.Linear
}

// pt maps the data point (x, y) to the canvas.
func (env *renderEnv) pt(x, y float64) Point {
	return Point{
		env.area.x0 + env.xs.Map(x)*env.area.w(),
		env.area.y0 + (1-env.ys.Map(y))*env.area.h(),
	}
}

func (env *renderEnv) pts(xs, ys []float64) []Point {
	out := make([]Point, 0, min(len(xs), len(ys)))
	for i := 0; i < len(xs) && i < len(ys); i++ {
		out = append(out, env.pt(xs[i], ys[i]))
	}
	return out
}

// Draw draws f onto c, which is w by h points.
func (f *Figure) Draw(c Canvas, w, h float64) {
	c.Path(rect{0, 0, w, h}.points(), true, LineStyle{}, White)
	for _, p := range f.panels {
		p.draw(c, w, h)
	}
}

func (p *Panel) draw(c Canvas, fw, fh float64) {
	theme := &p.fig.Theme
	x0, y0 := p.left*fw, (1-p.bottom-p.height)*fh
	area := rect{x0, y0, x0 + p.width*fw, y0 + p.height*fh}

	// Train the scales.
	for _, l := range p.layers {
		l.train(p.x.Scale, p.y.Scale)
	}
	env := &renderEnv{c: c, theme: theme, area: area, xs: p.x.Scale.get(), ys: p.y.Scale.get()}
	if len(p.layers) == 0 {
		Warning.Debug("drawing empty panel", zap.String("title", p.title))
	}

	c.Path(area.points(), true, LineStyle{}, White)
	for _, l := range p.layers {
		l.draw(env)
	}
	c.Path(area.points(), true, LineStyle{Color: Black, Width: theme.FrameWidth}, nil)

	p.drawXAxis(env)
	p.drawYAxis(env)
	if p.title != "" {
		c.Text(Point{(area.x0 + area.x1) / 2, area.y0 - labelGap}, p.title, TextStyle{Size: theme.FontSize, Color: Black, Anchor: AnchorMiddle})
	}
	if p.legend != LegendNone {
		p.drawLegend(env)
	}
}

// ticks returns the major ticks of s that lie within its domain and
// their labels, for an axis of the given length.
func ticks(s *LinearScale, length float64) ([]float64, []string) {
	n := int(length/tickDistance) + 1
	if n > 10 {
		n = 10
	}
	major, labels := s.Ticks(n)
	lo, hi := s.Domain()
	eps := (hi - lo) * 1e-9
	var outM []float64
	var outL []string
	for i, t := range major {
		if t >= lo-eps && t <= hi+eps {
			outM = append(outM, t)
			outL = append(outL, labels[i])
		}
	}
	return outM, outL
}

func (p *Panel) drawXAxis(env *renderEnv) {
	theme, area := env.theme, env.area
	y := area.y1
	if !p.x.NoTicks {
		major, labels := ticks(p.x.Scale, area.w())
		tickLine := LineStyle{Color: Black, Width: theme.FrameWidth}
		for i, t := range major {
			px := env.pt(t, 0).X
			env.c.Path([]Point{{px, area.y1}, {px, area.y1 + theme.TickLength}}, false, tickLine, nil)
			env.c.Text(Point{px, area.y1 + theme.TickLength + theme.TickPad}, labels[i], TextStyle{Size: theme.TickLabelSize, Color: Black, Anchor: AnchorMiddle, Baseline: BaselineHanging})
		}
		y += theme.TickLength + theme.TickPad + theme.TickLabelSize
	}
	if p.x.Label != "" {
		env.c.Text(Point{(area.x0 + area.x1) / 2, y + labelGap}, p.x.Label, TextStyle{Size: theme.LabelSize, Color: Black, Anchor: AnchorMiddle, Baseline: BaselineHanging})
	}
}

func (p *Panel) drawYAxis(env *renderEnv) {
	theme, area := env.theme, env.area
	x := area.x0
	if !p.y.NoTicks {
		major, labels := ticks(p.y.Scale, area.h())
		tickLine := LineStyle{Color: Black, Width: theme.FrameWidth}
		maxw := 0.0
		for i, t := range major {
			py := env.pt(0, t).Y
			env.c.Path([]Point{{area.x0, py}, {area.x0 - theme.TickLength, py}}, false, tickLine, nil)
			env.c.Text(Point{area.x0 - theme.TickLength - theme.TickPad, py}, labels[i], TextStyle{Size: theme.TickLabelSize, Color: Black, Anchor: AnchorEnd, Baseline: BaselineMiddle})
			maxw = math.Max(maxw, textWidth(labels[i], theme.TickLabelSize))
		}
		x -= theme.TickLength + theme.TickPad + maxw
	}
	if p.y.Label != "" {
		env.c.Text(Point{x - labelGap, (area.y0 + area.y1) / 2}, p.y.Label, TextStyle{Size: theme.LabelSize, Color: Black, Anchor: AnchorMiddle, Rotate: 90})
	}
}

// clipSegment clips the segment a-b to r using the Liang-Barsky
// algorithm. It reports false if no part of the segment is inside r.
func clipSegment(a, b Point, r rect) (Point, Point, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := b.X-a.X, b.Y-a.Y
	edges := [4][2]float64{
		{-dx, a.X - r.x0},
		{dx, r.x1 - a.X},
		{-dy, a.Y - r.y0},
		{dy, r.y1 - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = Point{a.X + t0*dx, a.Y + t0*dy}
	}
	if t1 < 1 {
		cb = Point{a.X + t1*dx, a.Y + t1*dy}
	}
	return ca, cb, true
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// clipPolyline clips the polyline through pts to r, returning the
// visible runs. Non-finite points break the polyline.
func clipPolyline(pts []Point, r rect) [][]Point {
	var out [][]Point
	var cur []Point
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if !finite(a) || !finite(b) {
			flush()
			continue
		}
		ca, cb, ok := clipSegment(a, b, r)
		if !ok {
			flush()
			continue
		}
		if len(cur) == 0 || ca != a {
			flush()
			cur = append(cur, ca)
		}
		cur = append(cur, cb)
		if cb != b {
			flush()
		}
	}
	flush()
	return out
}
