package chumsky

import (
	"math/rand"
	"strings"
	"testing"
)

func BenchmarkStream(b *testing.B) {
	input := make([]rune, 4096)
	for i := range input {
		input[i] = 'a'
	}
	s := NewStream(input)
	start := s.Save()
	cp := start

	rng := rand.New(rand.NewSource(123456))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		switch rng.Intn(4) {
		case 0:
			cp = s.Save()
		case 1:
			s.Revert(cp)
		default:
			if _, ok := s.Next(); !ok {
				cp = start
				s.Revert(start)
			}
		}
	}
}

func BenchmarkRepeated(b *testing.B) {
	word := AtLeast(Filter(func(r rune) bool { return r != ' ' }), 1)
	words := Repeated(ThenIgnore(word, OrNot(Just(' '))))
	input := []rune(strings.Repeat("lorem ipsum dolor sit amet ", 64))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := words.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
