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

import (
	"fmt"
	"slices"
	"strings"
)

// Error describes why a parser rejected its input. Span locates the offending
// input, Expected lists the units the parser would have accepted (when it
// knows them) and Found holds the unit actually seen, or None at the end of
// input.
//
// Primitives fill in as much as they know: Just and OneOf record their
// expected units, Filter and NoneOf only what they found. Or and Choice keep
// the error of the branch that consumed the most input; on a tie they merge
// the Expected sets of both branches.
//
type Error[I comparable] struct {
	Span     Span
	Expected []I
	Found    Option[I]
}

// ExpectedInputFound returns an Error reporting that a parser wanted one of
// expected (nil when unknown) and saw found at span.
//
func ExpectedInputFound[I comparable](span Span, expected []I, found Option[I]) *Error[I] {
	return &Error[I]{Span: span, Expected: expected, Found: found}
}

// Error implements the error interface.
//
func (e *Error[I]) Error() string {
	var b strings.Builder
	if found, ok := e.Found.Get(); ok {
		fmt.Fprintf(&b, "unexpected %s", formatUnit(found))
	} else {
		b.WriteString("unexpected end of input")
	}
	switch len(e.Expected) {
	case 0:
	case 1:
		fmt.Fprintf(&b, ", expected %s", formatUnit(e.Expected[0]))
	default:
		b.WriteString(", expected one of ")
		for i, u := range e.Expected {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatUnit(u))
		}
	}
	return b.String()
}

// formatUnit renders a single input unit for an error message. Bytes and
// runes print in %#U form, anything else with %v.
func formatUnit[I comparable](u I) string {
	switch v := any(u).(type) {
	case rune:
		return fmt.Sprintf("%#U", v)
	case byte:
		return fmt.Sprintf("%#U", rune(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// mergeErrors combines two errors raised at the same input position into one
// carrying the union of their expected units. The first error's span and
// found unit win. Errors of foreign types pass through unmerged.
func mergeErrors[I comparable](a, b error) error {
	ea, okA := a.(*Error[I])
	eb, okB := b.(*Error[I])
	if !okA || !okB {
		return a
	}
	expected := slices.Clone(ea.Expected)
	for _, u := range eb.Expected {
		if !slices.Contains(expected, u) {
			expected = append(expected, u)
		}
	}
	return &Error[I]{Span: ea.Span, Expected: expected, Found: ea.Found}
}
