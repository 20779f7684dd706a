// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import "image/color"

// RGB is a color with float components in [0, 1].
type RGB struct {
	R, G, B float64
}

// RGBA implements color.Color. RGB colors are opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	conv := func(v float64) uint32 {
		if v <= 0 {
			return 0
		} else if v >= 1 {
			return 0xffff
		}
		return uint32(v*0xffff + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B), 0xffff
}

// Ramp returns the color of row i of n: (1 - i/n, 0, i/n). Early
// rows are red and late rows are blue.
func Ramp(i, n int) RGB {
	f := float64(i) / float64(n)
	return RGB{1 - f, 0, f}
}

// Colors returns Ramp(i, n) for each i in [0, n).
func Colors(n int) []color.Color {
	cs := make([]color.Color, n)
	for i := range cs {
		cs[i] = Ramp(i, n)
	}
	return cs
}
