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

// A Pair holds the two results of a Then sequence.
//
type Pair[A, B any] struct {
	A A
	B B
}

// Map returns a parser that runs p and applies f to its result.
//
func Map[I comparable, O, U any](p Parser[I, O], f func(O) U) Parser[I, U] {
	return func(s *Stream[I]) (U, error) {
		v, err := p(s)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	}
}

// To returns a parser that runs p and produces v in place of p's result.
//
func To[I comparable, O, U any](p Parser[I, O], v U) Parser[I, U] {
	return Map(p, func(O) U { return v })
}

// Ignored returns a parser that runs p and discards its result.
//
func Ignored[I comparable, O any](p Parser[I, O]) Parser[I, struct{}] {
	return To(p, struct{}{})
}

// TryMap returns a parser that runs p and applies the fallible f to its
// result, passing the span of input p matched. If f fails, the input p
// consumed stays consumed; recovery is up to an enclosing alternative.
//
func TryMap[I comparable, O, U any](p Parser[I, O], f func(O, Span) (U, error)) Parser[I, U] {
	return func(s *Stream[I]) (U, error) {
		start := s.Pos()
		v, err := p(s)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v, Span{start, s.Pos()})
	}
}

// Then returns a parser that runs a then b and produces both results as a
// Pair. If b fails, the input a consumed stays consumed.
//
func Then[I comparable, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, Pair[A, B]] {
	return func(s *Stream[I]) (Pair[A, B], error) {
		var zero Pair[A, B]
		va, err := a(s)
		if err != nil {
			return zero, err
		}
		vb, err := b(s)
		if err != nil {
			return zero, err
		}
		return Pair[A, B]{va, vb}, nil
	}
}

// IgnoreThen returns a parser that runs a then b and produces only b's
// result.
//
func IgnoreThen[I comparable, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, B] {
	return Map(Then(a, b), func(p Pair[A, B]) B { return p.B })
}

// ThenIgnore returns a parser that runs a then b and produces only a's
// result.
//
func ThenIgnore[I comparable, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, A] {
	return Map(Then(a, b), func(p Pair[A, B]) A { return p.A })
}

// DelimitedBy returns a parser matching p between start and end, producing
// only p's result.
//
func DelimitedBy[I comparable, O, A, B any](p Parser[I, O], start Parser[I, A], end Parser[I, B]) Parser[I, O] {
	return IgnoreThen(start, ThenIgnore(p, end))
}

// Or returns a parser that tries a and falls back to b. Each attempt starts
// from the same stream position; a failed attempt is rewound before the next
// one runs. When both fail, the error of the branch that consumed more input
// wins, and on a tie the branches' expected sets are merged.
//
func Or[I comparable, O any](a, b Parser[I, O]) Parser[I, O] {
	return func(s *Stream[I]) (O, error) {
		cp := s.Save()
		v, errA := a(s)
		if errA == nil {
			return v, nil
		}
		posA := s.Pos()
		s.Revert(cp)
		v, errB := b(s)
		if errB == nil {
			return v, nil
		}
		posB := s.Pos()
		s.Revert(cp)
		var zero O
		switch {
		case posA > posB:
			return zero, errA
		case posB > posA:
			return zero, errB
		default:
			return zero, mergeErrors[I](errA, errB)
		}
	}
}

// Choice returns a parser that tries each of parsers in order, producing the
// first success. Errors combine as with Or. Choice panics if called with no
// parsers.
//
func Choice[I comparable, O any](parsers ...Parser[I, O]) Parser[I, O] {
	if len(parsers) == 0 {
		panic("chumsky: Choice requires at least one parser")
	}
	p := parsers[0]
	for _, q := range parsers[1:] {
		p = Or(p, q)
	}
	return p
}

// OrNot returns a parser that tries p and succeeds either way, producing
// Some of p's result or None. A failed attempt consumes nothing.
//
func OrNot[I comparable, O any](p Parser[I, O]) Parser[I, Option[O]] {
	return func(s *Stream[I]) (Option[O], error) {
		cp := s.Save()
		v, err := p(s)
		if err != nil {
			s.Revert(cp)
			return None[O](), nil
		}
		return Some(v), nil
	}
}

// Repeated returns a parser that matches p zero or more times, collecting the
// results. Iteration stops at the first failed attempt, which is rewound and
// forgiven. An attempt that succeeds without consuming input also stops the
// iteration, keeping its result, so that parsers matching the empty input
// cannot loop forever.
//
func Repeated[I comparable, O any](p Parser[I, O]) Parser[I, []O] {
	return func(s *Stream[I]) ([]O, error) {
		var out []O
		for {
			cp := s.Save()
			v, err := p(s)
			if err != nil {
				s.Revert(cp)
				return out, nil
			}
			out = append(out, v)
			if s.Pos() == cp.pos {
				return out, nil
			}
		}
	}
}

// AtLeast returns a parser that matches p as many times as possible, like
// Repeated, but fails unless at least n matches were collected. The error is
// the one p produced for the attempt that fell short.
//
func AtLeast[I comparable, O any](p Parser[I, O], n int) Parser[I, []O] {
	return func(s *Stream[I]) ([]O, error) {
		var out []O
		for {
			cp := s.Save()
			v, err := p(s)
			if err != nil {
				s.Revert(cp)
				if len(out) < n {
					return nil, err
				}
				return out, nil
			}
			out = append(out, v)
			if s.Pos() == cp.pos {
				break
			}
		}
		if len(out) < n {
			start := s.Pos()
			cp := s.Save()
			got, ok := s.Next()
			end := s.Pos()
			s.Revert(cp)
			found := None[I]()
			if ok {
				found = Some(got)
			}
			return nil, ExpectedInputFound(Span{start, end}, nil, found)
		}
		return out, nil
	}
}

// Chain returns a parser that runs head then tail and produces head's result
// prepended to tail's.
//
func Chain[I comparable, O any](head Parser[I, O], tail Parser[I, []O]) Parser[I, []O] {
	return func(s *Stream[I]) ([]O, error) {
		h, err := head(s)
		if err != nil {
			return nil, err
		}
		t, err := tail(s)
		if err != nil {
			return nil, err
		}
		out := make([]O, 0, len(t)+1)
		out = append(out, h)
		return append(out, t...), nil
	}
}
