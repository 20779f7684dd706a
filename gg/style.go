// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"
	"image/color"
	"strconv"
	"unicode/utf8"
)

// Named colors, matching the single-letter colors of common plotting
// tools.
var (
	Black   = color.NRGBA{0, 0, 0, 0xff}
	White   = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	Blue    = color.NRGBA{0, 0, 0xff, 0xff}
	Green   = color.NRGBA{0, 0x80, 0, 0xff}
	Red     = color.NRGBA{0xff, 0, 0, 0xff}
	Magenta = color.NRGBA{0xbf, 0, 0xbf, 0xff}
	Yellow  = color.NRGBA{0xbf, 0xbf, 0, 0xff}
	Gray    = color.NRGBA{0xcc, 0xcc, 0xcc, 0xff}
)

// A Dash is a line dash pattern.
type Dash int

const (
	Solid Dash = iota
	Dashed
	Dotted
	DashDot
)

// LineStyle describes how to stroke a line. A nil Color or a
// non-positive Width means the line is not stroked.
type LineStyle struct {
	Color color.Color
	Width float64 // Points.
	Dash  Dash
}

func (l LineStyle) visible() bool {
	return l.Color != nil && l.Width > 0
}

// dashes returns the on/off dash lengths in points, or nil for a
// solid line. Dash lengths scale with the line width.
func (l LineStyle) dashes() []float64 {
	w := l.Width
	switch l.Dash {
	case Dashed:
		return []float64{3.7 * w, 1.6 * w}
	case Dotted:
		return []float64{1 * w, 1.65 * w}
	case DashDot:
		return []float64{6.4 * w, 1.6 * w, 1 * w, 1.6 * w}
	}
	return nil
}

// Anchor is the horizontal alignment of text relative to its
// position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Baseline is the vertical alignment of text relative to its
// position.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineMiddle
	BaselineHanging
)

// shift returns how far below the text position the alphabetic
// baseline sits, as a fraction of the font size.
func (b Baseline) shift() float64 {
	switch b {
	case BaselineMiddle:
		return 0.35
	case BaselineHanging:
		return 0.8
	}
	return 0
}

// TextStyle describes how to draw a string.
type TextStyle struct {
	Size     float64 // Points.
	Color    color.Color
	Anchor   Anchor
	Baseline Baseline
	Rotate   float64 // Degrees counter-clockwise.
}

// textWidth estimates the width in points of s set at size.
//
// TODO: Use font metrics from the canvas so legend boxes fit
// proportional fonts exactly.
func textWidth(s string, size float64) float64 {
	return 0.55 * size * float64(utf8.RuneCountInString(s))
}

// cssPaint returns a CSS fragment for setting CSS property prop to
// color c.
func cssPaint(prop string, c color.Color) string {
	if c == nil {
		return prop + ":none"
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		// No paint.
		return prop + ":none"
	}

	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	r, g, b = r>>8, g>>8, b>>8

	var css string
	if r>>4 == r&0xF && g>>4 == g&0xF && b>>4 == b&0xF {
		// Use #rgb form.
		css = fmt.Sprintf("%s:#%x%x%x", prop, r>>4, g>>4, b>>4)
	} else {
		css = fmt.Sprintf("%s:#%02x%02x%02x", prop, r, g, b)
	}

	if a != 0xffff {
		// SVG 1.1 only supports CSS2 color formats, which
		// unfortunately does not include rgba, so we have to
		// use a separate CSS property.
		css += ";" + prop + "-opacity:" + strconv.FormatFloat(float64(a)/0xffff, 'g', 3, 64)
	}
	return css
}
