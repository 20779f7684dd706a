// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajstarks/svgo"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

func init() {
	font.DefaultCache.Add(liberation.Collection())
}

// Options control how a Drawer is encoded.
type Options struct {
	// DPI is the resolution of raster output. If DPI is 0, it is
	// treated as 100.
	DPI float64

	// FontFamily is the generic font family of text, "serif" or
	// "sans-serif". If empty, it is treated as "serif".
	FontFamily string
}

func (o Options) dpi() int {
	if o.DPI <= 0 {
		return 100
	}
	return int(math.Round(o.DPI))
}

func (o Options) family() string {
	if o.FontFamily == "" {
		return "serif"
	}
	return o.FontFamily
}

// Formats lists the file extensions Save understands.
var Formats = []string{".svg", ".png", ".pdf"}

// Save writes d to the file at path. The image format is chosen by
// the extension of path. If encoding fails, the partial file is
// removed.
func Save(path string, d Drawer, o Options) (err error) {
	var write func(io.Writer, Drawer, Options) error
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".svg":
		write = WriteSVG
	case ".png":
		write = WritePNG
	case ".pdf":
		write = WritePDF
	default:
		return &FormatError{path, ext}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return write(f, d, o)
}

// WriteSVG writes d to w as an SVG image. SVG user units are points.
func WriteSVG(w io.Writer, d Drawer, o Options) error {
	win, hin := d.Size()
	width, height := win*72, hin*72
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(int(math.Ceil(width)), int(math.Ceil(height)), fmt.Sprintf(`font-family="%s"`, o.family()))
	d.Draw(svgCanvas{canvas}, width, height)
	canvas.End()
	return ew.err
}

// errWriter records the first error from w, since svgo does not
// report write errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return len(p), nil
	}
	_, w.err = w.w.Write(p)
	return len(p), nil
}

// WritePNG writes d to w as a PNG image at o.DPI.
func WritePNG(w io.Writer, d Drawer, o Options) error {
	win, hin := d.Size()
	c := vgimg.NewWith(vgimg.UseWH(vg.Length(win)*vg.Inch, vg.Length(hin)*vg.Inch), vgimg.UseDPI(o.dpi()))
	d.Draw(newVGCanvas(c, hin*72, o.family()), win*72, hin*72)
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// WritePDF writes d to w as a PDF document.
func WritePDF(w io.Writer, d Drawer, o Options) error {
	win, hin := d.Size()
	c := vgpdf.New(vg.Length(win)*vg.Inch, vg.Length(hin)*vg.Inch)
	d.Draw(newVGCanvas(c, hin*72, o.family()), win*72, hin*72)
	_, err := c.WriteTo(w)
	return err
}

// vgCanvas draws on a gonum vg.Canvas, whose origin is at the bottom
// left.
type vgCanvas struct {
	c       vg.Canvas
	h       float64
	variant string
	faces   map[float64]font.Face
}

func newVGCanvas(c vg.Canvas, h float64, family string) *vgCanvas {
	variant := "Serif"
	if family == "sans-serif" {
		variant = "Sans"
	}
	return &vgCanvas{c: c, h: h, variant: variant, faces: make(map[float64]font.Face)}
}

func (c *vgCanvas) pt(p Point) vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(c.h - p.Y)}
}

func (c *vgCanvas) stroke(path vg.Path, line LineStyle) {
	if !line.visible() {
		return
	}
	c.c.SetColor(line.Color)
	c.c.SetLineWidth(vg.Length(line.Width))
	var dashes []vg.Length
	for _, d := range line.dashes() {
		dashes = append(dashes, vg.Length(d))
	}
	c.c.SetLineDash(dashes, 0)
	c.c.Stroke(path)
}

func (c *vgCanvas) fill(path vg.Path, fill color.Color) {
	if fill == nil {
		return
	}
	if _, _, _, a := fill.RGBA(); a == 0 {
		return
	}
	c.c.SetColor(fill)
	c.c.Fill(path)
}

func (c *vgCanvas) Path(pts []Point, closed bool, line LineStyle, fill color.Color) {
	if len(pts) == 0 {
		return
	}
	var path vg.Path
	path.Move(c.pt(pts[0]))
	for _, p := range pts[1:] {
		path.Line(c.pt(p))
	}
	if closed {
		path.Close()
	}
	c.fill(path, fill)
	c.stroke(path, line)
}

func (c *vgCanvas) Circle(center Point, r float64, line LineStyle, fill color.Color) {
	var path vg.Path
	ctr := c.pt(center)
	path.Move(vg.Point{X: ctr.X + vg.Length(r), Y: ctr.Y})
	path.Arc(ctr, vg.Length(r), 0, 2*math.Pi)
	path.Close()
	c.fill(path, fill)
	c.stroke(path, line)
}

func (c *vgCanvas) face(size float64) font.Face {
	f, ok := c.faces[size]
	if !ok {
		f = font.DefaultCache.Lookup(font.Font{Typeface: "Liberation", Variant: font.Variant(c.variant)}, vg.Points(size))
		c.faces[size] = f
	}
	return f
}

func (c *vgCanvas) Text(at Point, s string, style TextStyle) {
	if style.Color == nil {
		return
	}
	f := c.face(style.Size)
	w := f.Width(s)
	var dx vg.Length
	switch style.Anchor {
	case AnchorMiddle:
		dx = -w / 2
	case AnchorEnd:
		dx = -w
	}
	dy := -vg.Length(style.Baseline.shift() * style.Size)

	c.c.Push()
	defer c.c.Pop()
	c.c.Translate(c.pt(at))
	if style.Rotate != 0 {
		c.c.Rotate(style.Rotate * math.Pi / 180)
	}
	c.c.SetColor(style.Color)
	c.c.FillString(f, vg.Point{X: dx, Y: dy}, s)
}
