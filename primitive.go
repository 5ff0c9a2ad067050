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

import "slices"

// Just returns a parser that accepts exactly unit and produces it. On a
// mismatch the stream is left untouched and the error records unit as
// expected.
//
func Just[I comparable](unit I) Parser[I, I] {
	return func(s *Stream[I]) (I, error) {
		var zero I
		start := s.Pos()
		cp := s.Save()
		got, ok := s.Next()
		if !ok {
			return zero, ExpectedInputFound(Span{start, start}, []I{unit}, None[I]())
		}
		if got != unit {
			end := s.Pos()
			s.Revert(cp)
			return zero, ExpectedInputFound(Span{start, end}, []I{unit}, Some(got))
		}
		return got, nil
	}
}

// OneOf returns a parser that accepts any one of units and produces the unit
// seen. The error on a mismatch records the whole set as expected.
//
func OneOf[I comparable](units ...I) Parser[I, I] {
	expected := slices.Clone(units)
	return func(s *Stream[I]) (I, error) {
		var zero I
		start := s.Pos()
		cp := s.Save()
		got, ok := s.Next()
		if !ok {
			return zero, ExpectedInputFound(Span{start, start}, expected, None[I]())
		}
		if !slices.Contains(expected, got) {
			end := s.Pos()
			s.Revert(cp)
			return zero, ExpectedInputFound(Span{start, end}, expected, Some(got))
		}
		return got, nil
	}
}

// NoneOf returns a parser that accepts any input unit not in units and
// produces the unit seen.
//
func NoneOf[I comparable](units ...I) Parser[I, I] {
	rejected := slices.Clone(units)
	return func(s *Stream[I]) (I, error) {
		var zero I
		start := s.Pos()
		cp := s.Save()
		got, ok := s.Next()
		if !ok {
			return zero, ExpectedInputFound(Span{start, start}, nil, None[I]())
		}
		if slices.Contains(rejected, got) {
			end := s.Pos()
			s.Revert(cp)
			return zero, ExpectedInputFound(Span{start, end}, nil, Some(got))
		}
		return got, nil
	}
}

// Filter returns a parser that accepts the next input unit if pred allows it
// and produces the unit. The error on a mismatch carries no expected units
// since the predicate is opaque.
//
func Filter[I comparable](pred func(I) bool) Parser[I, I] {
	return func(s *Stream[I]) (I, error) {
		var zero I
		start := s.Pos()
		cp := s.Save()
		got, ok := s.Next()
		if !ok {
			return zero, ExpectedInputFound(Span{start, start}, nil, None[I]())
		}
		if !pred(got) {
			end := s.Pos()
			s.Revert(cp)
			return zero, ExpectedInputFound(Span{start, end}, nil, Some(got))
		}
		return got, nil
	}
}

// End returns a parser that succeeds only at the end of input. It consumes
// nothing and produces nothing.
//
func End[I comparable]() Parser[I, struct{}] {
	return func(s *Stream[I]) (struct{}, error) {
		start := s.Pos()
		cp := s.Save()
		got, ok := s.Next()
		if ok {
			end := s.Pos()
			s.Revert(cp)
			return struct{}{}, ExpectedInputFound(Span{start, end}, nil, Some(got))
		}
		return struct{}{}, nil
	}
}
