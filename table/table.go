// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements ordered, named columns of numeric data.
//
// A Table is an ordered relation of rows and columns. Every column is
// a []float64 and all columns in a Table have the same number of
// rows.
//
// The structure of a Table is immutable. Adding a column to a Table
// returns a new Table.
package table

import (
	"strconv"
)

// A Table is an ordered two dimensional relation. It consists of a
// set of named columns, where each column is a sequence of float64
// values and all columns have the same length.
//
// The zero value of Table is an empty table with no rows and no
// columns.
//
// A Table's structure is immutable. To construct a Table, start with
// an empty table and add columns to it using Add.
type Table struct {
	cols     map[string][]float64
	colNames []string
	len      int
}

// Add returns a new Table with a new column bound to data. If Table t
// already has a column with the same name, it is replaced in place.
// data must have the same length as any existing columns or Add will
// panic.
//
// The caller must not modify data after this point.
func (t *Table) Add(name string, data []float64) *Table {
	dataLen := len(data)

	// Create the new table, replacing any existing column with
	// the same name but keeping its position.
	nt := &Table{make(map[string][]float64), []string{}, t.len}
	replaced := false
	for _, name2 := range t.colNames {
		nt.colNames = append(nt.colNames, name2)
		if name2 == name {
			replaced = true
			continue
		}
		nt.cols[name2] = t.cols[name2]
	}
	if len(nt.cols) == 0 {
		nt.len = dataLen
	} else if nt.len != dataLen {
		panic("cannot add column " + name + " with " + strconv.Itoa(dataLen) + " elements to table with " + strconv.Itoa(nt.len) + " rows")
	}
	nt.cols[name] = data
	if !replaced {
		nt.colNames = append(nt.colNames, name)
	}
	return nt
}

// Len returns the number of rows in Table t.
func (t *Table) Len() int {
	return t.len
}

// Columns returns the names of the columns in Table t, or nil if this
// Table is empty.
func (t *Table) Columns() []string {
	if len(t.colNames) == 0 {
		return nil
	}
	return t.colNames
}

// Column returns the slice of data in column name of Table t, or nil
// if there is no such column.
func (t *Table) Column(name string) []float64 {
	return t.cols[name]
}

// MustColumn is like Column, but panics if there is no such column.
func (t *Table) MustColumn(name string) []float64 {
	if c, ok := t.cols[name]; ok {
		return c
	}
	panic("unknown column: " + name)
}

// Has reports whether t has a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// MapColumn returns a new Table in which column name is replaced by
// f applied to each of its values. The original column is not
// modified.
func (t *Table) MapColumn(name string, f func(float64) float64) *Table {
	in := t.MustColumn(name)
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return t.Add(name, out)
}
