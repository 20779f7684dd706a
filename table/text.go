// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrSyntax is returned (wrapped in a *SyntaxError) when a row of a
// text table cannot be parsed.
var ErrSyntax = errors.New("malformed table row")

// A SyntaxError records the location of a malformed row.
type SyntaxError struct {
	File string // May be "".
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// ReadText reads a whitespace-delimited numeric table from r and binds
// the first len(names) fields of each row to the named columns.
//
// Blank lines and lines starting with '#' are skipped. Fields beyond
// the named columns are ignored. A row with fewer fields than names,
// or with a field that is not a number, results in a *SyntaxError.
func ReadText(r io.Reader, names ...string) (*Table, error) {
	return readText(r, "", names)
}

// LoadText is like ReadText, but reads from the named file.
func LoadText(path string, names ...string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readText(f, path, names)
}

func readText(r io.Reader, file string, names []string) (*Table, error) {
	if len(names) == 0 {
		panic("ReadText requires at least one column name")
	}

	cols := make([][]float64, len(names))
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < len(names) {
			return nil, &SyntaxError{file, line, fmt.Sprintf("have %d fields, want %d", len(fields), len(names))}
		}
		for i := range names {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, &SyntaxError{file, line, fmt.Sprintf("field %d: %q is not a number", i+1, fields[i])}
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		if file != "" {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		return nil, err
	}

	t := new(Table)
	for i, name := range names {
		if cols[i] == nil {
			cols[i] = []float64{}
		}
		t = t.Add(name, cols[i])
	}
	return t, nil
}

// WriteText writes t to w as a space-delimited numeric table with one
// row per line and columns in t's column order. Values are formatted
// with the shortest representation that reads back exactly.
func WriteText(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	cols := make([][]float64, 0, len(t.Columns()))
	for _, name := range t.Columns() {
		cols = append(cols, t.Column(name))
	}
	var buf []byte
	for row := 0; row < t.Len(); row++ {
		buf = buf[:0]
		for i, col := range cols {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, col[row], 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveText is like WriteText, but writes to the named file.
func SaveText(path string, t *Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteText(f, t)
}
