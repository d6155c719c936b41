package regexlib

// Equal reports whether a and b have the same shape: the same node type
// everywhere, the same symbols and equal children. Equal trees denote the
// same language, but a+a and a are not Equal.
func Equal(a, b *Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.typ != b.typ || a.ch != b.ch {
		return false
	}
	return Equal(a.left, b.left) && Equal(a.right, b.right)
}

// Simplify rewrites e until no rule applies and returns the result. The
// input is not modified.
func Simplify(e *Expr) *Expr {
	cur := SimplifyOnce(e)
	for {
		next := SimplifyOnce(cur)
		if Equal(next, cur) {
			return next
		}
		cur = next
	}
}

// SimplifyOnce makes one bottom-up pass over e, rewriting each node with
// the first matching rule after its children have been rewritten:
//
//	x**        -> x*
//	(x|ε)*     -> x*    (either side)
//	∅|x, x|∅   -> x
//	x|x        -> x
//	∅x, x∅     -> ∅
//	εx, xε     -> x
//
// Every node of the result is freshly allocated.
func SimplifyOnce(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	switch e.typ {
	case nEmpty:
		return Empty()
	case nChar:
		return Char(e.ch)
	case nStar:
		return simplifyStar(SimplifyOnce(e.left))
	case nUnion:
		return simplifyUnion(SimplifyOnce(e.left), SimplifyOnce(e.right))
	case nConcat:
		return simplifyConcat(SimplifyOnce(e.left), SimplifyOnce(e.right))
	}
	return e.Clone()
}

func simplifyStar(x *Expr) *Expr {
	if x.typ == nStar {
		return x
	}
	if x.typ == nUnion {
		if IsEpsilon(x.left) {
			return Star(x.right)
		}
		if IsEpsilon(x.right) {
			return Star(x.left)
		}
	}
	return Star(x)
}

func simplifyUnion(l, r *Expr) *Expr {
	switch {
	case isExactlyEmpty(l):
		return r
	case isExactlyEmpty(r):
		return l
	case Equal(l, r):
		return l
	}
	return Union(l, r)
}

func simplifyConcat(l, r *Expr) *Expr {
	switch {
	case isExactlyEmpty(l), isExactlyEmpty(r):
		return Empty()
	case IsEpsilon(l):
		return r
	case IsEpsilon(r):
		return l
	}
	return Concat(l, r)
}
