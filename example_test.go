package chumsky_test

import (
	"fmt"
	"strconv"

	"github.com/muja/chumsky"
	"github.com/muja/chumsky/text"
)

// A tiny arithmetic evaluator: the grammar is assembled from combinators and
// evaluated on the fly, without an AST in between.
func Example_calculator() {
	op := func(r rune) chumsky.Parser[rune, rune] {
		return text.Padded(chumsky.Just(r))
	}

	number := text.Padded(chumsky.TryMap(text.Int[rune](10),
		func(digits []rune, _ chumsky.Span) (int64, error) {
			return strconv.ParseInt(text.String(digits), 10, 64)
		}))

	// foldOps evaluates a leading operand followed by operator/operand pairs.
	foldOps := func(p chumsky.Pair[int64, []chumsky.Pair[rune, int64]]) int64 {
		n := p.A
		for _, t := range p.B {
			switch t.A {
			case '+':
				n += t.B
			case '-':
				n -= t.B
			case '*':
				n *= t.B
			case '/':
				n /= t.B
			}
		}
		return n
	}

	expr := chumsky.Recursive(func(expr chumsky.Parser[rune, int64]) chumsky.Parser[rune, int64] {
		atom := chumsky.Or(chumsky.DelimitedBy(expr, op('('), op(')')), number)
		product := chumsky.Map(
			chumsky.Then(atom, chumsky.Repeated(chumsky.Then(chumsky.Or(op('*'), op('/')), atom))),
			foldOps)
		sum := chumsky.Map(
			chumsky.Then(product, chumsky.Repeated(chumsky.Then(chumsky.Or(op('+'), op('-')), product))),
			foldOps)
		return sum
	})
	calc := chumsky.ThenIgnore(expr, chumsky.End[rune]())

	for _, src := range []string{"6 * 7", "3 + 4 * (2 - 12)", " ((42)) ", "(1 + 2"} {
		n, err := calc.Parse([]rune(src))
		if err != nil {
			fmt.Printf("%q: %v\n", src, err)
			continue
		}
		fmt.Printf("%q = %d\n", src, n)
	}

	// Output:
	// "6 * 7" = 42
	// "3 + 4 * (2 - 12)" = -37
	// " ((42)) " = 42
	// "(1 + 2": unexpected end of input, expected U+0029 ')'
}
