// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/lumfunc/lumplot/stat"
)

// autoWiden is how much an automatic scale widens the span of the
// data, so the extremes of the data don't sit on the plot frame.
const autoWiden = 1.1

// A LinearScale maps a continuous data interval linearly onto [0, 1].
//
// The interval is either fixed with SetMin and SetMax or trained from
// the data of the layers that use the scale.
type LinearScale struct {
	min, max         float64
	dataMin, dataMax float64
}

// NewLinearScale returns a continuous linear scale with automatic
// bounds.
func NewLinearScale() *LinearScale {
	return &LinearScale{
		min:     math.NaN(),
		max:     math.NaN(),
		dataMin: math.NaN(),
		dataMax: math.NaN(),
	}
}

func (s *LinearScale) String() string {
	lo, hi := s.Domain()
	return fmt.Sprintf("linear [%g,%g]", lo, hi)
}

// SetMin fixes the lower bound of s's domain.
func (s *LinearScale) SetMin(v float64) *LinearScale {
	s.min = v
	return s
}

// SetMax fixes the upper bound of s's domain.
func (s *LinearScale) SetMax(v float64) *LinearScale {
	s.max = v
	return s
}

// ExpandDomain widens the trained data range of s to include the
// finite values in data.
func (s *LinearScale) ExpandDomain(data []float64) {
	lo, hi := stat.Bounds(data, 1)
	if math.IsNaN(lo) {
		return
	}
	s.Include(lo)
	s.Include(hi)
}

// Include widens the trained data range of s to include v. Include
// ignores NaN and infinite values.
func (s *LinearScale) Include(v float64) *LinearScale {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}
	if math.IsNaN(s.dataMin) {
		s.dataMin, s.dataMax = v, v
	} else {
		s.dataMin = math.Min(s.dataMin, v)
		s.dataMax = math.Max(s.dataMax, v)
	}
	return s
}

// Domain returns the interval that s maps onto [0, 1]. Fixed bounds
// are used as is. Automatic bounds are the trained data range widened
// by 10%.
func (s *LinearScale) Domain() (min, max float64) {
	ls := s.get()
	return ls.Min, ls.Max
}

func (s *LinearScale) get() scale.Linear {
	ls := scale.Linear{Min: s.min, Max: s.max}
	if math.IsNaN(ls.Min) || math.IsNaN(ls.Max) {
		lo, hi := s.dataMin, s.dataMax
		if lo == hi && !math.IsNaN(lo) {
			lo, hi = lo-0.5, hi+0.5
		}
		span := hi - lo
		if math.IsNaN(ls.Min) {
			ls.Min = lo - span*(autoWiden-1)/2
		}
		if math.IsNaN(ls.Max) {
			ls.Max = hi + span*(autoWiden-1)/2
		}
	}
	if ls.Min > ls.Max {
		ls.Min, ls.Max = ls.Max, ls.Min
	}
	if math.IsNaN(ls.Min) || math.IsNaN(ls.Max) {
		// Only possible if there's no data at all.
		ls.Min, ls.Max = -1, 1
	}
	return ls
}

// Map maps v from s's domain onto [0, 1]. Values outside the domain
// map outside [0, 1].
func (s *LinearScale) Map(v float64) float64 {
	return s.get().Map(v)
}

// Ticks returns at most n major tick positions within s's domain and
// their labels.
func (s *LinearScale) Ticks(n int) (major []float64, labels []string) {
	if n < 2 {
		n = 2
	}
	ls := s.get()
	major, _ = ls.Ticks(scale.TickOptions{Max: n})
	if len(major) == 0 {
		major = []float64{ls.Min, ls.Max}
	}
	return major, tickLabels(major)
}

// tickLabels formats evenly spaced tick values with just enough
// decimal places to tell them apart.
func tickLabels(ticks []float64) []string {
	tol := 1e-9
	if len(ticks) > 1 {
		tol = math.Abs(ticks[1]-ticks[0]) * 1e-6
	}
	digits := 0
digitLoop:
	for ; digits < 12; digits++ {
		for _, t := range ticks {
			v, _ := strconv.ParseFloat(strconv.FormatFloat(t, 'f', digits, 64), 64)
			if math.Abs(v-t) > tol {
				continue digitLoop
			}
		}
		break
	}
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		if t == 0 {
			// Avoid "-0".
			t = 0
		}
		if digits >= 6 || math.Abs(t) >= 1e7 {
			labels[i] = strconv.FormatFloat(t, 'g', 4, 64)
		} else {
			labels[i] = strconv.FormatFloat(t, 'f', digits, 64)
		}
	}
	return labels
}
