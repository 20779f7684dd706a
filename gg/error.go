// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

// A FormatError is returned when asked to write an image in a format
// gg cannot produce.
type FormatError struct {
	Path string
	Ext  string
}

func (e *FormatError) Error() string {
	msg := "cannot write " + e.Path + ": "
	if e.Ext == "" {
		return msg + "no image format extension"
	}
	return msg + "unsupported image format " + e.Ext + "; want .svg, .png, or .pdf"
}
