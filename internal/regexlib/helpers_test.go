package regexlib

import (
	"math/rand"
	"strings"
	"testing"
)

// ------------------------------------------------------------------- helpers

// member decides w ∈ L(e) by taking one derivative per symbol.
func member(e *Expr, w string) bool {
	d := e
	for _, r := range w {
		d = Derivative(d, r)
	}
	return HasEpsilon(d)
}

// words lists every string over alpha of length 0..n.
func words(alpha string, n int) []string {
	out := []string{""}
	layer := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range layer {
			for _, r := range alpha {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

func randomExpr(rng *rand.Rand, depth int) *Expr {
	if depth == 0 || rng.Intn(4) == 0 {
		switch rng.Intn(6) {
		case 0:
			return Empty()
		case 1:
			return Epsilon()
		case 2, 3:
			return Char('a')
		default:
			return Char('b')
		}
	}
	switch rng.Intn(3) {
	case 0:
		return Star(randomExpr(rng, depth-1))
	case 1:
		return Union(randomExpr(rng, depth-1), randomExpr(rng, depth-1))
	default:
		return Concat(randomExpr(rng, depth-1), randomExpr(rng, depth-1))
	}
}

func randomExprs(n int) []*Expr {
	rng := rand.New(rand.NewSource(7))
	out := make([]*Expr, n)
	for i := range out {
		out[i] = randomExpr(rng, 4)
	}
	return out
}

// nodes collects the addresses of every node in e.
func nodes(e *Expr, into map[*Expr]bool) {
	if e == nil {
		return
	}
	into[e] = true
	nodes(e.left, into)
	nodes(e.right, into)
}

// requireNoSharing fails if any node of out is also a node of in, or if
// out reaches the same node twice.
func requireNoSharing(t *testing.T, in, out *Expr) {
	t.Helper()
	seen := map[*Expr]bool{}
	nodes(in, seen)
	var walk func(*Expr)
	walk = func(n *Expr) {
		if n == nil {
			return
		}
		if seen[n] {
			t.Fatalf("node %s of %s is shared", Prefix(n), Prefix(out))
		}
		seen[n] = true
		walk(n.left)
		walk(n.right)
	}
	walk(out)
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func withoutIndex(s string, i int) string {
	return s[:i] + s[i+1:]
}

var testWords = words("ab", 4)

func hasRune(s string, r rune) bool { return strings.ContainsRune(s, r) }
