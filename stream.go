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

package chumsky

import "fmt"

// A Span is the half-open range [Start, End) of input units matched by a
// parser, counted in units (runes, bytes or tokens) from the start of the
// stream. Spans are attached to errors for reporting; parsers never make
// decisions based on a span's contents.
//
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Len returns the number of input units covered by the span.
//
func (s Span) Len() int {
	return s.End - s.Start
}

// A Checkpoint is an opaque stream position returned by Stream.Save and
// consumed by Stream.Revert. Checkpoints have value semantics: they can be
// copied freely and reverted to any number of times while the stream is in
// use.
//
type Checkpoint struct {
	pos int
}

// A Stream is the input to a parser: a finite sequence of input units read
// strictly left to right. Position can be saved and restored, which is how
// combinators implement speculative matching.
//
// A Stream must not be shared between goroutines.
//
type Stream[I comparable] struct {
	input []I
	pos   int
}

// NewStream returns a stream reading from input. The slice is not copied;
// callers must not mutate it while the stream is in use.
//
func NewStream[I comparable](input []I) *Stream[I] {
	return &Stream[I]{input: input}
}

// FromString returns a stream of the runes of s.
//
func FromString(s string) *Stream[rune] {
	return NewStream([]rune(s))
}

// FromBytes returns a stream of the bytes of b. The slice is not copied.
//
func FromBytes(b []byte) *Stream[byte] {
	return NewStream(b)
}

// Next consumes and returns the next input unit. The second return value is
// false if the stream is exhausted, in which case the stream position is left
// unchanged.
//
func (s *Stream[I]) Next() (I, bool) {
	if s.pos >= len(s.input) {
		var zero I
		return zero, false
	}
	i := s.input[s.pos]
	s.pos++
	return i, true
}

// Save returns a checkpoint for the current position.
//
func (s *Stream[I]) Save() Checkpoint {
	return Checkpoint{pos: s.pos}
}

// Revert restores the stream position to a previously saved checkpoint.
//
func (s *Stream[I]) Revert(c Checkpoint) {
	s.pos = c.pos
}

// Pos returns the number of input units consumed so far. It is the offset of
// the next unit Next would return, and the natural Start or End of a Span.
//
func (s *Stream[I]) Pos() int {
	return s.pos
}
