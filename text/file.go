// Copyright 2023-2024 The chumsky-go Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package text

import (
	"errors"
	"fmt"
)

// ErrLine is returned by File.Line for an offset on no known line.
var ErrLine = errors.New("invalid line number")

// Position describes a source position including the file, line, and column
// location. Offsets translate to positions through File.Position.
//
type Position struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number (input unit index)
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File wraps a named input slice and handles offset to line/column
// conversion. Offsets count input units from the start of the slice, the
// same unit the parser errors' spans use.
//
type File[C Char] struct {
	name  string
	src   []C
	lines []int // 0-based line/offset table
}

// NewFile returns a new File for the given input. The line table is built
// immediately: line 1 starts at offset 0 and a new line starts after every
// line feed.
//
func NewFile[C Char](name string, input []C) *File[C] {
	f := &File[C]{name: name, src: input, lines: []int{0}}
	for i, c := range input {
		if c == '\n' {
			f.lines = append(f.lines, i+1)
		}
	}
	return f
}

// Name returns the file name.
//
func (f *File[C]) Name() string {
	return f.name
}

// AddLine adds a new line at the given offset.
//
// line is the 1-based line index.
//
// If pos does not come after the offset of the last known line, or if line
// is not equal to the last known line number plus one, AddLine will panic.
//
func (f *File[C]) AddLine(pos, line int) {
	l := len(f.lines)
	if (l > 0 && f.lines[l-1] >= pos) || l+1 != line {
		panic(ErrLine)
	}
	f.lines = append(f.lines, pos)
}

// Position returns the 1-based line and column for a given offset.
//
func (f *File[C]) Position(pos int) Position {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{f.name, i, pos - f.lines[i-1] + 1}
}

// LinePos returns the offset of the given 1-based line, or -1 if no such
// line is known.
//
func (f *File[C]) LinePos(line int) int {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// Line returns the source line containing the given offset, without its
// line terminator.
//
func (f *File[C]) Line(pos int) ([]C, error) {
	line := f.Position(pos).Line
	start := f.LinePos(line)
	if start < 0 {
		return nil, ErrLine
	}
	end := len(f.src)
	if line < len(f.lines) {
		end = f.lines[line]
	}
	l := f.src[start:end]
	if n := len(l); n > 0 && l[n-1] == '\n' {
		l = l[:n-1]
	}
	if n := len(l); n > 0 && l[n-1] == '\r' {
		l = l[:n-1]
	}
	return l, nil
}
