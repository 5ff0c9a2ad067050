package chumsky_test

import (
	"testing"

	"github.com/muja/chumsky"
)

// Test proper behavior of Next/Save/Revert, including reusing a checkpoint
// for several reverts.
func TestStream_Next(t *testing.T) {
	s := chumsky.FromString("aéb")
	var cp chumsky.Checkpoint
	save := func() (rune, bool) { cp = s.Save(); return 0, false }
	revert := func() (rune, bool) { s.Revert(cp); return 0, false }

	data := []struct {
		name string
		fn   func() (rune, bool)
		r    rune
		ok   bool
		p    int
	}{
		{"a", s.Next, 'a', true, 1},
		{"save", save, 0, false, 1},
		{"é", s.Next, 'é', true, 2},
		{"b", s.Next, 'b', true, 3},
		{"eof1", s.Next, 0, false, 3},
		{"eof2", s.Next, 0, false, 3},
		{"revert1", revert, 0, false, 1},
		{"é2", s.Next, 'é', true, 2},
		{"revert2", revert, 0, false, 1},
		{"é3", s.Next, 'é', true, 2},
	}

	for _, td := range data {
		r, ok := td.fn()
		if r != td.r || ok != td.ok {
			t.Errorf("%s: expected %q/%v, got %q/%v", td.name, td.r, td.ok, r, ok)
		}
		if s.Pos() != td.p {
			t.Errorf("%s: expected pos %d, got %d", td.name, td.p, s.Pos())
		}
	}
}

func TestStream_Bytes(t *testing.T) {
	s := chumsky.FromBytes([]byte("ab"))
	if s.Pos() != 0 {
		t.Fatalf("expected pos 0, got %d", s.Pos())
	}
	cp := s.Save()
	for _, want := range []byte("ab") {
		b, ok := s.Next()
		if !ok || b != want {
			t.Fatalf("expected %q/true, got %q/%v", want, b, ok)
		}
	}
	if b, ok := s.Next(); ok || b != 0 {
		t.Errorf("expected zero byte at EOF, got %q/%v", b, ok)
	}
	s.Revert(cp)
	if b, ok := s.Next(); !ok || b != 'a' {
		t.Errorf("expected %q after revert, got %q/%v", 'a', b, ok)
	}
}

func TestSpan(t *testing.T) {
	sp := chumsky.Span{Start: 2, End: 5}
	if got := sp.String(); got != "2..5" {
		t.Errorf("expected %q, got %q", "2..5", got)
	}
	if got := sp.Len(); got != 3 {
		t.Errorf("expected len 3, got %d", got)
	}
}
