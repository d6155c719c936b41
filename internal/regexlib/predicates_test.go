package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type predCase struct {
	in   string
	want bool
}

func runPred(t *testing.T, pred func(*Expr) bool, cases []predCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, pred(MustParse(tt.in)))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	runPred(t, IsEmpty, []predCase{
		{"/", true},
		{"a", false},
		{"/ *", false},
		{"/ / +", true},
		{"a / +", false},
		{"/ a .", true},
		{"a / .", true},
		{"a b .", false},
		{"/ a . *", false},
	})
}

func TestHasEpsilon(t *testing.T) {
	runPred(t, HasEpsilon, []predCase{
		{"/", false},
		{"a", false},
		{"a *", true},
		{"a / * +", true},
		{"a * b .", false},
		{"a * b * .", true},
		{"a b + a b + +", false},
	})
}

func TestHasNonEpsilon(t *testing.T) {
	runPred(t, HasNonEpsilon, []predCase{
		{"/", false},
		{"a", true},
		{"/ *", false},
		{"a *", true},
		{"/ * / * +", false},
		{"/ * / * .", false},
		{"a / .", false},
		{"a / * .", true},
		{"/ * a .", true},
		{"a b .", true},
		{"a / * + / * .", true},
	})
}

func TestIsInfinite(t *testing.T) {
	runPred(t, IsInfinite, []predCase{
		{"a", false},
		{"a *", true},
		{"/ *", false},
		{"/ * *", false},
		{"a * / .", false},
		{"a * b .", true},
		{"b a * .", true},
		{"a b +", false},
		{"a b + *", true},
		{"a / . *", false},
	})
}

func TestUsesSymbol(t *testing.T) {
	uses := func(e *Expr) bool { return UsesSymbol(e, 'a') }
	runPred(t, uses, []predCase{
		{"a", true},
		{"b", false},
		{"/", false},
		{"a / .", false},
		{"/ a .", false},
		{"a b .", true},
		{"b a * .", true},
		{"a * / .", false},
		{"b a +", true},
		{"a b . *", true},
	})
}

func TestStartsWith(t *testing.T) {
	starts := func(e *Expr) bool { return StartsWith(e, 'a') }
	runPred(t, starts, []predCase{
		{"a *", true},
		{"a", true},
		{"b", false},
		{"/", false},
		{"b a .", false},
		{"a * b .", true},
		{"/ * a .", true},
		{"b * a .", true},
		{"a / .", false},
	})
}

func TestEndsWith(t *testing.T) {
	ends := func(e *Expr) bool { return EndsWith(e, 'a') }
	runPred(t, ends, []predCase{
		{"a b .", false},
		{"b a .", true},
		{"a b * .", true},
		{"a b + *", true},
		{"/ a .", false},
	})
}

func TestPredicatesAgainstWords(t *testing.T) {
	for _, e := range randomExprs(200) {
		var found, nonEps, withA bool
		for _, w := range testWords {
			if !member(e, w) {
				continue
			}
			found = true
			nonEps = nonEps || w != ""
			withA = withA || hasRune(w, 'a')
		}
		p := Prefix(e)
		if found {
			assert.False(t, IsEmpty(e), p)
		}
		if nonEps {
			assert.True(t, HasNonEpsilon(e), p)
		}
		if withA {
			assert.True(t, UsesSymbol(e, 'a'), p)
		}
		if IsEmpty(e) {
			assert.False(t, HasEpsilon(e) || HasNonEpsilon(e) || IsInfinite(e), p)
		}
	}
}

func TestStartsWithIsDerivativeNonEmpty(t *testing.T) {
	for _, e := range randomExprs(200) {
		for _, sym := range "ab" {
			assert.Equal(t, !IsEmpty(Derivative(e, sym)), StartsWith(e, sym), Prefix(e))
			assert.Equal(t, StartsWith(Reverse(e), sym), EndsWith(e, sym), Prefix(e))
		}
	}
}

func TestLanguageLaws(t *testing.T) {
	for _, e := range randomExprs(50) {
		assert.False(t, IsEmpty(Star(e.Clone())))
		assert.True(t, HasEpsilon(Star(e.Clone())))
	}
	assert.True(t, IsEmpty(Empty()))
	assert.False(t, HasEpsilon(Char('c')))
}
