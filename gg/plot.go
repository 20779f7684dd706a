// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gg renders static two dimensional figures.
//
// A Figure holds one or more Panels, each a set of axes with its own
// scales. Layers (paths, points, reference lines, annotations) are
// added to a Panel in drawing order. A Figure is a Drawer, so it can
// be saved as SVG, PNG, or PDF with Save.
package gg

import (
	"go.uber.org/zap"
)

// Warning is a logger for reporting conditions that don't prevent the
// production of a plot, but may lead to unexpected results. It
// discards everything until replaced.
var Warning = zap.NewNop()

// Theme collects the sizes used to lay out a figure.
type Theme struct {
	// Width and Height are the default figure size in inches.
	Width, Height float64

	FontSize      float64 // Legend, title, and annotation text, in points.
	LabelSize     float64 // Axis labels.
	TickLabelSize float64

	TickLength float64 // Points.
	TickPad    float64 // Gap between ticks and their labels.
	LineWidth  float64 // Default line width.
	FrameWidth float64

	// Margins of the main panel, as fractions of the figure. Left
	// and Bottom are measured from the left and bottom edges;
	// Right and Top are the positions of those edges.
	Left, Bottom, Right, Top float64
}

// DefaultTheme returns the theme used when none is configured.
func DefaultTheme() Theme {
	return Theme{
		Width:         8,
		Height:        6,
		FontSize:      14,
		LabelSize:     18,
		TickLabelSize: 14,
		TickLength:    3.5,
		TickPad:       8,
		LineWidth:     1.5,
		FrameWidth:    0.8,
		Left:          0.125,
		Bottom:        0.125,
		Right:         0.95,
		Top:           0.95,
	}
}

// A Figure is a drawing made of Panels.
type Figure struct {
	Theme Theme

	width, height float64
	panels        []*Panel
}

// NewFigure returns an empty figure of the theme's default size.
func NewFigure(theme Theme) *Figure {
	return &Figure{Theme: theme, width: theme.Width, height: theme.Height}
}

// SetSize sets the size of f in inches.
func (f *Figure) SetSize(w, h float64) *Figure {
	f.width, f.height = w, h
	return f
}

// Size returns the size of f in inches.
func (f *Figure) Size() (w, h float64) {
	return f.width, f.height
}

// Panel adds a panel filling the figure inside the theme margins and
// returns it.
func (f *Figure) Panel() *Panel {
	t := f.Theme
	return f.Inset(t.Left, t.Bottom, t.Right-t.Left, t.Top-t.Bottom)
}

// Inset adds a panel whose frame is at the given position, in
// fractions of the figure measured from the bottom left corner, and
// returns it. Panels are drawn in the order they are added, so an
// inset added after another panel is drawn on top of it.
func (f *Figure) Inset(left, bottom, width, height float64) *Panel {
	p := &Panel{
		fig:    f,
		left:   left,
		bottom: bottom,
		width:  width,
		height: height,
		x:      &Axis{Scale: NewLinearScale()},
		y:      &Axis{Scale: NewLinearScale()},
	}
	f.panels = append(f.panels, p)
	return p
}

// Panels returns the panels of f in drawing order.
func (f *Figure) Panels() []*Panel {
	return f.panels
}

// An Axis is one axis of a Panel.
type Axis struct {
	Label   string
	Scale   *LinearScale
	NoTicks bool
}

// A Panel is a set of axes inside a Figure.
type Panel struct {
	fig                         *Figure
	left, bottom, width, height float64

	x, y   *Axis
	title  string
	layers []Layer
	legend LegendLoc
}

// X returns the horizontal axis of p.
func (p *Panel) X() *Axis { return p.x }

// Y returns the vertical axis of p.
func (p *Panel) Y() *Axis { return p.y }

// SetXLim fixes the domain of p's horizontal axis.
func (p *Panel) SetXLim(min, max float64) *Panel {
	p.x.Scale.SetMin(min).SetMax(max)
	return p
}

// SetYLim fixes the domain of p's vertical axis.
func (p *Panel) SetYLim(min, max float64) *Panel {
	p.y.Scale.SetMin(min).SetMax(max)
	return p
}

// SetXLabel sets the label of p's horizontal axis.
func (p *Panel) SetXLabel(label string) *Panel {
	p.x.Label = label
	return p
}

// SetYLabel sets the label of p's vertical axis.
func (p *Panel) SetYLabel(label string) *Panel {
	p.y.Label = label
	return p
}

// SetTitle sets the title drawn above p.
func (p *Panel) SetTitle(title string) *Panel {
	p.title = title
	return p
}

// Title returns the title of p.
func (p *Panel) Title() string {
	return p.title
}

// HideTicks suppresses the ticks and tick labels of both axes.
func (p *Panel) HideTicks() *Panel {
	p.x.NoTicks = true
	p.y.NoTicks = true
	return p
}

// Add adds layers to p. Layers are drawn in the order they are
// added.
func (p *Panel) Add(layers ...Layer) *Panel {
	p.layers = append(p.layers, layers...)
	return p
}

// Layers returns the layers of p in drawing order.
func (p *Panel) Layers() []Layer {
	return p.layers
}

// Legend places a legend of the labeled layers of p at loc.
func (p *Panel) Legend(loc LegendLoc) *Panel {
	p.legend = loc
	return p
}
