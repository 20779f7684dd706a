// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"reflect"
	"regexp"
	"testing"
)

func TestEmptyTable(t *testing.T) {
	var tab Table
	tab.Add("x", []float64{})
	tab.Add("x", []float64{1, 2, 3})
	if v := tab.Len(); v != 0 {
		t.Fatalf("Table{}.Len() should be 0; got %v", v)
	}
	if v := tab.Columns(); v != nil {
		t.Fatalf("Table{}.Columns() should be nil; got %v", v)
	}
	if v := tab.Column("x"); v != nil {
		t.Fatalf("Table{}.Column(\"x\") should be nil; got %v", v)
	}
	if tab.Has("x") {
		t.Fatalf("Table{}.Has(\"x\") should be false")
	}
}

func TestAdd(t *testing.T) {
	tab := new(Table).Add("x", []float64{1, 2, 3}).Add("y", []float64{4, 5, 6})
	if v := tab.Len(); v != 3 {
		t.Fatalf("Len() should be 3; got %v", v)
	}
	if v, w := tab.Columns(), []string{"x", "y"}; !reflect.DeepEqual(v, w) {
		t.Fatalf("Columns() should be %v; got %v", w, v)
	}

	// Replacing a column keeps its position.
	tab2 := tab.Add("x", []float64{7, 8, 9})
	if v, w := tab2.Columns(), []string{"x", "y"}; !reflect.DeepEqual(v, w) {
		t.Fatalf("Columns() after replace should be %v; got %v", w, v)
	}
	if v, w := tab2.Column("x"), []float64{7, 8, 9}; !reflect.DeepEqual(v, w) {
		t.Fatalf("Column(\"x\") should be %v; got %v", w, v)
	}
	// The original is unchanged.
	if v, w := tab.Column("x"), []float64{1, 2, 3}; !reflect.DeepEqual(v, w) {
		t.Fatalf("original Column(\"x\") should be %v; got %v", w, v)
	}

	shouldPanic(t, "cannot add column z with 2 elements to table with 3 rows", func() {
		tab.Add("z", []float64{1, 2})
	})
	shouldPanic(t, "unknown column: z", func() {
		tab.MustColumn("z")
	})
}

func TestMapColumn(t *testing.T) {
	tab := new(Table).Add("x", []float64{1, 2, 3}).Add("y", []float64{4, 5, 6})
	tab2 := tab.MapColumn("y", func(v float64) float64 { return v * 10 })
	if v, w := tab2.Column("y"), []float64{40, 50, 60}; !reflect.DeepEqual(v, w) {
		t.Fatalf("mapped column should be %v; got %v", w, v)
	}
	if v, w := tab.Column("y"), []float64{4, 5, 6}; !reflect.DeepEqual(v, w) {
		t.Fatalf("source column should be %v; got %v", w, v)
	}
}

func shouldPanic(t *testing.T, re string, f func()) {
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(err.(string)) {
			t.Fatalf("want panic matching %q; got %s", re, err)
		}
	}()
	f()
}
