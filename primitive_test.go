package chumsky_test

import (
	"testing"

	"github.com/muja/chumsky"
)

type parseTest[O comparable] struct {
	name string
	in   string
	v    O
	p    int    // stream position after the parse
	err  string // expected error message, "" for success
}

func runParser[O comparable](t *testing.T, p chumsky.Parser[rune, O], td []parseTest[O]) {
	t.Helper()
	for _, sample := range td {
		t.Run(sample.name, func(t *testing.T) {
			s := chumsky.FromString(sample.in)
			v, err := p(s)
			switch {
			case sample.err != "":
				if err == nil {
					t.Fatalf("expected error %q, got value %v", sample.err, v)
				}
				if err.Error() != sample.err {
					t.Errorf("\nGot     : %v\nExpected: %v", err, sample.err)
				}
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			case v != sample.v:
				t.Errorf("expected %v, got %v", sample.v, v)
			}
			if s.Pos() != sample.p {
				t.Errorf("expected pos %d, got %d", sample.p, s.Pos())
			}
		})
	}
}

func TestJust(t *testing.T) {
	runParser(t, chumsky.Just('a'), []parseTest[rune]{
		{"match", "abc", 'a', 1, ""},
		{"mismatch", "xyz", 0, 0, "unexpected U+0078 'x', expected U+0061 'a'"},
		{"empty", "", 0, 0, "unexpected end of input, expected U+0061 'a'"},
	})
}

func TestOneOf(t *testing.T) {
	runParser(t, chumsky.OneOf('a', 'b'), []parseTest[rune]{
		{"first", "a", 'a', 1, ""},
		{"second", "b!", 'b', 1, ""},
		{"mismatch", "c", 0, 0, "unexpected U+0063 'c', expected one of U+0061 'a', U+0062 'b'"},
		{"empty", "", 0, 0, "unexpected end of input, expected one of U+0061 'a', U+0062 'b'"},
	})
}

func TestNoneOf(t *testing.T) {
	runParser(t, chumsky.NoneOf(')', ']'), []parseTest[rune]{
		{"match", "x", 'x', 1, ""},
		{"reject", ")", 0, 0, "unexpected U+0029 ')'"},
		{"empty", "", 0, 0, "unexpected end of input"},
	})
}

func TestFilter(t *testing.T) {
	digit := chumsky.Filter(func(r rune) bool { return '0' <= r && r <= '9' })
	runParser(t, digit, []parseTest[rune]{
		{"match", "7x", '7', 1, ""},
		{"mismatch", "x7", 0, 0, "unexpected U+0078 'x'"},
		{"empty", "", 0, 0, "unexpected end of input"},
	})
}

func TestEnd(t *testing.T) {
	runParser(t, chumsky.End[rune](), []parseTest[struct{}]{
		{"empty", "", struct{}{}, 0, ""},
		{"trailing", "a", struct{}{}, 0, "unexpected U+0061 'a'"},
	})
}

// Primitives are generic over the input unit; a quick pass over byte input.
func TestJust_Bytes(t *testing.T) {
	p := chumsky.Just(byte('a'))
	s := chumsky.FromBytes([]byte("ab"))
	v, err := p(s)
	if err != nil || v != 'a' || s.Pos() != 1 {
		t.Fatalf("expected 'a' at pos 1, got %q/%v at pos %d", v, err, s.Pos())
	}
	s = chumsky.FromBytes([]byte("ba"))
	_, err = p(s)
	if err == nil || s.Pos() != 0 {
		t.Fatalf("expected error at pos 0, got %v at pos %d", err, s.Pos())
	}
	if want := "unexpected U+0062 'b', expected U+0061 'a'"; err.Error() != want {
		t.Errorf("\nGot     : %v\nExpected: %v", err, want)
	}
}
