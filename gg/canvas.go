// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/ajstarks/svgo"
)

// A Point is a location on a Canvas in points, with the origin at the
// top left and y increasing downward.
type Point struct {
	X, Y float64
}

// A Canvas is a drawing surface.
type Canvas interface {
	// Path draws a polyline through pts, closing it if closed. It
	// is filled with fill (nil for no fill) and then stroked with
	// line.
	Path(pts []Point, closed bool, line LineStyle, fill color.Color)

	// Circle draws a circle of radius r centered on c.
	Circle(c Point, r float64, line LineStyle, fill color.Color)

	// Text draws s at position at.
	Text(at Point, s string, style TextStyle)
}

// A Drawer is anything that can draw itself on a Canvas, such as a
// Figure.
type Drawer interface {
	// Size returns the width and height of the drawing in
	// inches.
	Size() (w, h float64)

	// Draw draws onto c, which is w by h points.
	Draw(c Canvas, w, h float64)
}

type svgCanvas struct {
	svg *svg.SVG
}

func appendPoint(path []byte, p Point) []byte {
	path = strconv.AppendFloat(path, round2(p.X), 'f', -1, 64)
	path = append(path, ' ')
	path = strconv.AppendFloat(path, round2(p.Y), 'f', -1, 64)
	return path
}

// round2 rounds x to 1/100th of a point, which keeps SVG output
// compact.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func lineCSS(l LineStyle) string {
	if !l.visible() {
		return "stroke:none"
	}
	css := cssPaint("stroke", l.Color) + ";stroke-width:" + strconv.FormatFloat(l.Width, 'g', 4, 64)
	if ds := l.dashes(); ds != nil {
		parts := make([]string, len(ds))
		for i, d := range ds {
			parts[i] = strconv.FormatFloat(round2(d), 'f', -1, 64)
		}
		css += ";stroke-dasharray:" + strings.Join(parts, ",")
	}
	return css + ";stroke-linejoin:round"
}

func (c svgCanvas) Path(pts []Point, closed bool, line LineStyle, fill color.Color) {
	if len(pts) == 0 {
		return
	}
	path := []byte("M")
	for i, p := range pts {
		if i > 0 {
			path = append(path, 'L')
		}
		path = appendPoint(path, p)
	}
	if closed {
		path = append(path, 'Z')
	}
	c.svg.Path(string(path), lineCSS(line)+";"+cssPaint("fill", fill))
}

func (c svgCanvas) Circle(center Point, r float64, line LineStyle, fill color.Color) {
	// Two arcs, since a single arc can't draw a full circle.
	rs := strconv.FormatFloat(round2(r), 'f', -1, 64)
	ds := strconv.FormatFloat(round2(2*r), 'f', -1, 64)
	d := []byte("M")
	d = appendPoint(d, Point{center.X - r, center.Y})
	d = append(d, fmt.Sprintf("a%s %s 0 1 0 %s 0a%s %s 0 1 0 -%s 0Z", rs, rs, ds, rs, rs, ds)...)
	c.svg.Path(string(d), lineCSS(line)+";"+cssPaint("fill", fill))
}

func (c svgCanvas) Text(at Point, s string, style TextStyle) {
	x, y := round(at.X), round(at.Y)
	anchor := "start"
	switch style.Anchor {
	case AnchorMiddle:
		anchor = "middle"
	case AnchorEnd:
		anchor = "end"
	}
	attrs := fmt.Sprintf(`text-anchor="%s" font-size="%.6g" style="%s"`, anchor, style.Size, cssPaint("fill", style.Color))
	if sh := style.Baseline.shift(); sh != 0 {
		attrs += fmt.Sprintf(` dy="%.2gem"`, sh)
	}
	if style.Rotate != 0 {
		// SVG rotates clockwise.
		attrs += fmt.Sprintf(` transform="rotate(%.6g %d %d)"`, -style.Rotate, x, y)
	}
	c.svg.Text(x, y, s, attrs)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
