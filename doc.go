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

/*
Package chumsky provides parser combinators over slices of input units.

A parser here is an ordinary function value, and a grammar is built by
combining small parsers into larger ones. The package is generic over the
input unit type: the same grammar code runs over []byte input and []rune
input, and the text sub-package builds on this to provide lexical parsers
that work for both.

Parsers

Everything revolves around a single function type:

	type Parser[I comparable, O any] func(*Stream[I]) (O, error)

A Parser reads units of type I from a stream and either produces a value of
type O or reports an error. Because parsers are function values, combinators
are plain functions that take parsers and return new ones. There is no
interface to implement and no grammar description to compile; calling the
returned function runs the parse.

The package provides a handful of primitives that consume a single unit
(Just, OneOf, NoneOf, Filter) or none (End), and combinators that transform
results (Map, To, TryMap, Ignored), run parsers in sequence (Then,
IgnoreThen, ThenIgnore, Chain, DelimitedBy), choose between alternatives
(Or, Choice, OrNot) and iterate (Repeated, AtLeast). Recursive ties the knot
for self-referential grammars, and Custom escapes to a hand-written function
when no combination of the above fits.

Backtracking

Combinators backtrack by saving and restoring the stream position, not by
buffering input. The contract is:

A parser that fails without matching anything leaves the stream untouched.
All single-unit primitives behave this way.

A parser that fails after a partial match may leave input consumed. Then,
Chain and TryMap make no attempt to rewind what their left-hand side already
matched.

Every decision point rewinds. Or, Choice, OrNot, Repeated and AtLeast save
the position before each attempt and restore it when the attempt fails, so
partial consumption never leaks out of an alternative. A grammar therefore
gets unlimited lookahead exactly where it asks for it, and pays for no
buffering anywhere else.

Error handling

Failures are reported as *Error values carrying the span of the offending
input, the set of units the parser would have accepted, and the unit
actually found (absent at end of input). Primitives fill in as much as they
know. When every branch of an alternative fails, the error of the branch
that consumed the most input is kept, on the grounds that it comes from the
interpretation that got furthest; if several branches fail at the same
position their expected sets are merged into one error.

The span is expressed in unit offsets. Mapping offsets to line:column
positions for user-facing diagnostics is the job of the text sub-package's
File type.

Text sub-package

The text sub-package provides the lexical building blocks common to most
textual grammars: whitespace and padding, newlines, digit runs, integers,
identifiers and keywords. Its parsers are generic over a Char type that is
either byte or rune, so a grammar can lex ASCII bytes and Unicode text with
the same code.
*/
package chumsky
