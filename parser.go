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

// A Parser reads input units of type I from a stream and produces a value of
// type O, or an error describing why the input was rejected.
//
// Parsers follow a single consumption contract: a parser that fails without
// having matched anything leaves the stream where it found it, while a parser
// that fails part-way through a match may leave input consumed. Combinators
// that try alternatives (Or, Choice, OrNot, Repeated) save the stream
// position before each attempt and restore it when the attempt fails, so
// partial consumption never leaks past a decision point.
//
type Parser[I comparable, O any] func(s *Stream[I]) (O, error)

// Parse runs the parser against input, starting at the first unit. Trailing
// input left after a successful match is not an error; compose the parser
// with End to require full consumption.
//
func (p Parser[I, O]) Parse(input []I) (O, error) {
	return p(NewStream(input))
}

// Custom builds a parser directly from a function over the raw stream. The
// function is responsible for honoring the consumption contract: if it fails
// it should first restore the stream to the position it was given.
//
func Custom[I comparable, O any](f func(s *Stream[I]) (O, error)) Parser[I, O] {
	return f
}

// Recursive ties the knot for self-referential grammars. The build function
// receives a placeholder parser that forwards to the parser build returns, so
// the definition can refer to itself:
//
//	expr := chumsky.Recursive(func(expr chumsky.Parser[rune, int]) chumsky.Parser[rune, int] {
//		atom := chumsky.Or(number, chumsky.DelimitedBy(expr, lparen, rparen))
//		// ...
//		return sum
//	})
//
// The placeholder must not be called before build returns.
//
func Recursive[I comparable, O any](build func(Parser[I, O]) Parser[I, O]) Parser[I, O] {
	var p Parser[I, O]
	p = build(func(s *Stream[I]) (O, error) {
		return p(s)
	})
	return p
}
