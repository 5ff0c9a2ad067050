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

// Package text provides parsers for the lexical building blocks of textual
// grammars: whitespace, newlines, digit runs, integers, identifiers and
// keywords.
//
// All parsers in this package are generic over the Char constraint, so the
// same grammar code lexes raw ASCII bytes and Unicode runes. The byte
// instantiation uses ASCII semantics (is_ascii_whitespace and friends), the
// rune instantiation full Unicode semantics; predicates that differ between
// the two, like IsWhitespace, say so explicitly.
//
// Parsers follow the package chumsky consumption contract: they consume
// nothing when they fail from the starting position, and what a wrapping
// combinator already matched stays consumed. Keyword is the documented
// exception, see its comment.
package text

import (
	"unicode"

	"github.com/muja/chumsky"
)

// Char constrains the two character representations the parsers in this
// package work over: byte for ASCII-oriented input and rune for Unicode
// text. The union is deliberately closed; functions switching on the dynamic
// type handle exactly these two cases.
//
type Char interface {
	byte | rune
}

// IsWhitespace reports whether c is whitespace. For bytes this is the
// five-character ASCII set (space, tab, line feed, form feed, carriage
// return); for runes it is the Unicode White_Space property. The vertical
// tab is whitespace as a rune but not as a byte.
//
func IsWhitespace[C Char](c C) bool {
	switch v := any(c).(type) {
	case byte:
		switch v {
		case ' ', '\t', '\n', '\f', '\r':
			return true
		}
		return false
	case rune:
		return unicode.IsSpace(v)
	}
	panic("text: Char is neither byte nor rune")
}

// IsDigit reports whether c is a digit in the given radix. Digits beyond 9
// are the ASCII letters, case-insensitively, so both 'f' and 'F' are hex
// digits. IsDigit panics if radix is outside 2 through 36.
//
func IsDigit[C Char](c C, radix int) bool {
	checkRadix(radix)
	r := rune(c)
	var v int
	switch {
	case '0' <= r && r <= '9':
		v = int(r - '0')
	case 'a' <= r && r <= 'z':
		v = int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return false
	}
	return v < radix
}

// DigitZero returns the zero digit in the representation C.
//
func DigitZero[C Char]() C {
	return C('0')
}

// ToRune returns the canonical codepoint of c. Bytes map to their value as a
// codepoint, which matches the character for ASCII input.
//
func ToRune[C Char](c C) rune {
	return rune(c)
}

// String returns the textual view of a character sequence, typically one
// produced by Digits, Int or Ident.
//
func String[C Char](cs []C) string {
	switch v := any(cs).(type) {
	case []byte:
		return string(v)
	case []rune:
		return string(v)
	}
	panic("text: Char is neither byte nor rune")
}

func checkRadix(radix int) {
	if radix < 2 || radix > 36 {
		panic("text: radix must be between 2 and 36")
	}
}

func isIdentStart[C Char](c C) bool {
	r := rune(c)
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isIdentPart[C Char](c C) bool {
	return isIdentStart(c) || '0' <= rune(c) && rune(c) <= '9'
}

// Whitespace returns a parser that skips as much whitespace as it can find,
// including none at all. It never fails and never consumes a non-whitespace
// unit. The scan works directly on the stream rather than through Repeated,
// saving the position before each read and rewinding the one read too many.
//
func Whitespace[C Char]() chumsky.Parser[C, struct{}] {
	return func(s *chumsky.Stream[C]) (struct{}, error) {
		for {
			cp := s.Save()
			c, ok := s.Next()
			if !ok || !IsWhitespace(c) {
				s.Revert(cp)
				return struct{}{}, nil
			}
		}
	}
}

// Padded returns a parser that matches p surrounded by any amount of
// whitespace on either side. The leading skip is committed before p runs: if
// p then fails, the whitespace stays consumed and rewinding is left to the
// enclosing alternative.
//
func Padded[C Char, O any](p chumsky.Parser[C, O]) chumsky.Parser[C, O] {
	return chumsky.ThenIgnore(chumsky.IgnoreThen(Whitespace[C](), p), Whitespace[C]())
}

// Newline returns a parser matching a single end-of-line sequence. The CR LF
// pair counts as one newline; the single-unit forms are the line feed,
// vertical tab, form feed, carriage return, next line (U+0085), line
// separator (U+2028) and paragraph separator (U+2029). The last three do not
// fit in a byte, so Newline exists for rune input only.
//
func Newline() chumsky.Parser[rune, struct{}] {
	return chumsky.Ignored(chumsky.Choice(
		chumsky.IgnoreThen(chumsky.OrNot(chumsky.Just('\r')), chumsky.Just('\n')),
		chumsky.Just('\v'),
		chumsky.Just('\f'),
		chumsky.Just('\r'),
		chumsky.Just('\u0085'),
		chumsky.Just('\u2028'),
		chumsky.Just('\u2029'),
	))
}

// Digits returns a parser matching one or more digits in the given radix,
// producing them as they appeared, leading zeros included. Digits panics if
// radix is outside 2 through 36.
//
func Digits[C Char](radix int) chumsky.Parser[C, []C] {
	checkRadix(radix)
	return chumsky.AtLeast(chumsky.Filter(func(c C) bool { return IsDigit(c, radix) }), 1)
}

// Int returns a parser matching a canonical integer in the given radix:
// either a single zero digit, or a nonzero digit followed by any number of
// digits. Int does not reject input like "007" outright, it matches the
// leading zero and stops, leaving "07" for the next parser; compose with End
// to turn trailing digits into an error. Int panics if radix is outside 2
// through 36.
//
func Int[C Char](radix int) chumsky.Parser[C, []C] {
	checkRadix(radix)
	digit := func(c C) bool { return IsDigit(c, radix) }
	return chumsky.Or(
		chumsky.Chain(
			chumsky.Filter(func(c C) bool { return digit(c) && c != DigitZero[C]() }),
			chumsky.Repeated(chumsky.Filter(digit)),
		),
		chumsky.Map(chumsky.Just(DigitZero[C]()), func(c C) []C { return []C{c} }),
	)
}

// Ident returns a parser matching a C-style identifier: an ASCII letter or
// underscore followed by any number of ASCII letters, digits or underscores.
//
func Ident[C Char]() chumsky.Parser[C, []C] {
	return chumsky.Chain(
		chumsky.Filter(isIdentStart[C]),
		chumsky.Repeated(chumsky.Filter(isIdentPart[C])),
	)
}

// Keyword returns a parser matching the exact identifier kw and nothing
// more: Keyword("def") matches "def" but not "define". It works by parsing a
// full identifier and comparing, so on a mismatch the identifier has already
// been consumed and the enclosing alternative decides whether to rewind.
// The mismatch error reports only the span: it names neither the keyword
// that was wanted nor the identifier that was found.
//
func Keyword[C Char](kw string) chumsky.Parser[C, struct{}] {
	return chumsky.TryMap(Ident[C](), func(cs []C, span chumsky.Span) (struct{}, error) {
		if String(cs) != kw {
			// TODO: report the expected keyword instead of a bare span.
			return struct{}{}, chumsky.ExpectedInputFound(span, nil, chumsky.None[C]())
		}
		return struct{}{}, nil
	})
}
