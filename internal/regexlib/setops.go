package regexlib

// Reverse mirrors e so that L(Reverse(e)) holds the reversal of every
// string of L(e).
func Reverse(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	switch e.typ {
	case nStar:
		return Star(Reverse(e.left))
	case nUnion:
		return Union(Reverse(e.left), Reverse(e.right))
	case nConcat:
		return Concat(Reverse(e.right), Reverse(e.left))
	}
	return e.Clone()
}

// NotUsing keeps the strings of L(e) that do not contain sym. Branches
// that cannot avoid sym collapse to ∅ on the way up.
func NotUsing(e *Expr, sym rune) *Expr {
	if e == nil {
		return Empty()
	}
	switch e.typ {
	case nEmpty:
		return Empty()
	case nChar:
		if e.ch == sym {
			return Empty()
		}
		return Char(e.ch)
	case nUnion:
		l, r := NotUsing(e.left, sym), NotUsing(e.right, sym)
		switch {
		case isExactlyEmpty(l) && isExactlyEmpty(r):
			return Empty()
		case isExactlyEmpty(l):
			return r
		case isExactlyEmpty(r):
			return l
		}
		return Union(l, r)
	case nConcat:
		l, r := NotUsing(e.left, sym), NotUsing(e.right, sym)
		if isExactlyEmpty(l) || isExactlyEmpty(r) {
			return Empty()
		}
		return Concat(l, r)
	case nStar:
		return Star(NotUsing(e.left, sym))
	}
	return Empty()
}

// Prefixes returns an expression for every prefix of every string of L(e).
func Prefixes(e *Expr) *Expr {
	if e == nil {
		return Empty()
	}
	switch e.typ {
	case nEmpty:
		return Empty()
	case nChar:
		return Union(Char(e.ch), Epsilon())
	case nUnion:
		return Union(Prefixes(e.left), Prefixes(e.right))
	case nConcat:
		if IsEmpty(e.right) {
			return Empty()
		}
		return Union(Prefixes(e.left), Concat(e.left.Clone(), Prefixes(e.right)))
	case nStar:
		if IsEmpty(e.left) {
			return Epsilon()
		}
		return Concat(e.Clone(), Prefixes(e.left))
	}
	return Empty()
}

// InsertSymbol returns an expression for { u·sym·v : u·v ∈ L(e) }: every
// string of L(e) with exactly one sym added at any position.
func InsertSymbol(e *Expr, sym rune) *Expr {
	if e == nil {
		return Empty()
	}
	switch e.typ {
	case nEmpty:
		return Empty()
	case nChar:
		return Union(Concat(Char(sym), Char(e.ch)), Concat(Char(e.ch), Char(sym)))
	case nUnion:
		return Union(InsertSymbol(e.left, sym), InsertSymbol(e.right, sym))
	case nConcat:
		return Union(
			Concat(InsertSymbol(e.left, sym), e.right.Clone()),
			Concat(e.left.Clone(), InsertSymbol(e.right, sym)),
		)
	case nStar:
		// Between two whole copies of the body, or inside one copy.
		between := Concat(e.Clone(), Concat(Char(sym), e.Clone()))
		inside := Concat(e.Clone(), Concat(InsertSymbol(e.left, sym), e.Clone()))
		return Union(between, inside)
	}
	return Empty()
}

// Substitute replaces every Char leaf whose symbol is a key of subst with
// a copy of the mapped expression. The rest of the tree is copied as is.
func Substitute(e *Expr, subst map[rune]*Expr) *Expr {
	if e == nil {
		return nil
	}
	switch e.typ {
	case nChar:
		if img, ok := subst[e.ch]; ok {
			return img.Clone()
		}
		return Char(e.ch)
	case nStar:
		return Star(Substitute(e.left, subst))
	case nUnion:
		return Union(Substitute(e.left, subst), Substitute(e.right, subst))
	case nConcat:
		return Concat(Substitute(e.left, subst), Substitute(e.right, subst))
	}
	return e.Clone()
}

// BsForA applies the homomorphism a -> b*.
func BsForA(e *Expr) *Expr {
	return Substitute(e, map[rune]*Expr{'a': Star(Char('b'))})
}
