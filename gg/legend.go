// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import "math"

// LegendLoc is the placement of a panel legend.
type LegendLoc int

const (
	LegendNone LegendLoc = iota

	// LegendBest places the legend in the corner that covers the
	// fewest data points, preferring the upper right.
	LegendBest

	LegendUpperRight
	LegendUpperLeft
	LegendLowerLeft
	LegendLowerRight
)

// legendBox returns the rectangle of a w by h legend at loc inside
// area.
func legendBox(loc LegendLoc, area rect, w, h, margin float64) rect {
	var x0, y0 float64
	switch loc {
	case LegendUpperLeft, LegendLowerLeft:
		x0 = area.x0 + margin
	default:
		x0 = area.x1 - margin - w
	}
	switch loc {
	case LegendLowerLeft, LegendLowerRight:
		y0 = area.y1 - margin - h
	default:
		y0 = area.y0 + margin
	}
	return rect{x0, y0, x0 + w, y0 + h}
}

func (p *Panel) drawLegend(env *renderEnv) {
	var keys []*legendKey
	for _, l := range p.layers {
		if k := l.key(); k != nil {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		Warning.Debug("legend requested but no layers are labeled")
		return
	}

	fs := env.theme.FontSize
	pad, rowH, sampleW := 0.5*fs, 1.4*fs, 2*fs
	textW := 0.0
	for _, k := range keys {
		textW = math.Max(textW, textWidth(k.label, fs))
	}
	w := pad + sampleW + pad + textW + pad
	h := 2*pad + float64(len(keys))*rowH

	loc := p.legend
	if loc == LegendBest {
		loc = bestLegendLoc(p.layers, env, w, h, pad)
	}
	box := legendBox(loc, env.area, w, h, pad)

	env.c.Path(box.points(), true, LineStyle{Color: Gray, Width: env.theme.FrameWidth}, White)
	for i, k := range keys {
		y := box.y0 + pad + (float64(i)+0.5)*rowH
		sx0, sx1 := box.x0+pad, box.x0+pad+sampleW
		if k.line.visible() {
			env.c.Path([]Point{{sx0, y}, {sx1, y}}, false, k.line, nil)
		}
		if k.marker != nil {
			env.c.Circle(Point{(sx0 + sx1) / 2, y}, k.radius, LineStyle{}, k.marker)
		}
		env.c.Text(Point{sx1 + pad, y}, k.label, TextStyle{Size: fs, Color: Black, Baseline: BaselineMiddle})
	}
}

// bestLegendLoc returns the corner where a w by h legend covers the
// fewest data points of layers.
func bestLegendLoc(layers []Layer, env *renderEnv, w, h, margin float64) LegendLoc {
	var pts []Point
	for _, l := range layers {
		pts = append(pts, l.extent(env)...)
	}
	best, bestN := LegendUpperRight, -1
	for _, loc := range []LegendLoc{LegendUpperRight, LegendUpperLeft, LegendLowerLeft, LegendLowerRight} {
		box := legendBox(loc, env.area, w, h, margin)
		n := 0
		for _, p := range pts {
			if box.contains(p) {
				n++
			}
		}
		if bestN < 0 || n < bestN {
			best, bestN = loc, n
		}
	}
	return best
}
