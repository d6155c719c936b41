package regexlib

// Derivative returns the Brzozowski derivative of e by sym, an expression
// for { w : sym·w ∈ L(e) }. Subtrees of e that reappear in the result are
// copied.
func Derivative(e *Expr, sym rune) *Expr {
	if e == nil {
		return Empty()
	}
	switch e.typ {
	case nEmpty:
		return Empty()
	case nChar:
		if e.ch == sym {
			return Epsilon()
		}
		return Empty()
	case nUnion:
		return Union(Derivative(e.left, sym), Derivative(e.right, sym))
	case nConcat:
		d := Concat(Derivative(e.left, sym), e.right.Clone())
		if HasEpsilon(e.left) {
			return Union(d, Derivative(e.right, sym))
		}
		return d
	case nStar:
		return Concat(Derivative(e.left, sym), e.Clone())
	}
	return Empty()
}

// StripSymbol is the left quotient of L(e) by sym.
func StripSymbol(e *Expr, sym rune) *Expr { return Derivative(e, sym) }
