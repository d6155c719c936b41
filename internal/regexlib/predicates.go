package regexlib

// IsEmpty reports whether L(e) contains no strings at all.
func IsEmpty(e *Expr) bool {
	if e == nil {
		return true
	}
	switch e.typ {
	case nEmpty:
		return true
	case nChar, nStar:
		return false
	case nUnion:
		return IsEmpty(e.left) && IsEmpty(e.right)
	case nConcat:
		return IsEmpty(e.left) || IsEmpty(e.right)
	}
	return true
}

// HasEpsilon reports whether the empty string is in L(e).
func HasEpsilon(e *Expr) bool {
	if e == nil {
		return false
	}
	switch e.typ {
	case nEmpty, nChar:
		return false
	case nStar:
		return true
	case nUnion:
		return HasEpsilon(e.left) || HasEpsilon(e.right)
	case nConcat:
		return HasEpsilon(e.left) && HasEpsilon(e.right)
	}
	return false
}

// HasNonEpsilon reports whether L(e) contains a string of length >= 1.
func HasNonEpsilon(e *Expr) bool {
	if e == nil {
		return false
	}
	switch e.typ {
	case nEmpty:
		return false
	case nChar:
		return true
	case nStar:
		return HasNonEpsilon(e.left)
	case nUnion:
		return HasNonEpsilon(e.left) || HasNonEpsilon(e.right)
	case nConcat:
		// A non-empty word from one side needs any word at all from the
		// other side; for the other side {ε} is enough.
		return (HasNonEpsilon(e.left) && !IsEmpty(e.right)) ||
			(HasNonEpsilon(e.right) && !IsEmpty(e.left))
	}
	return false
}

// IsInfinite reports whether L(e) has infinitely many strings.
func IsInfinite(e *Expr) bool {
	if e == nil {
		return false
	}
	switch e.typ {
	case nEmpty, nChar:
		return false
	case nUnion:
		return IsInfinite(e.left) || IsInfinite(e.right)
	case nConcat:
		return (IsInfinite(e.left) && !IsEmpty(e.right)) ||
			(IsInfinite(e.right) && !IsEmpty(e.left))
	case nStar:
		return HasNonEpsilon(e.left)
	}
	return false
}

// UsesSymbol reports whether some string of L(e) contains sym.
func UsesSymbol(e *Expr, sym rune) bool {
	if e == nil {
		return false
	}
	switch e.typ {
	case nEmpty:
		return false
	case nChar:
		return e.ch == sym
	case nStar:
		return UsesSymbol(e.left, sym)
	case nUnion:
		return UsesSymbol(e.left, sym) || UsesSymbol(e.right, sym)
	case nConcat:
		return (UsesSymbol(e.left, sym) && !IsEmpty(e.right)) ||
			(UsesSymbol(e.right, sym) && !IsEmpty(e.left))
	}
	return false
}

// StartsWith reports whether some string of L(e) begins with sym.
func StartsWith(e *Expr, sym rune) bool {
	return !IsEmpty(Derivative(e, sym))
}

// EndsWith reports whether some string of L(e) ends with sym.
func EndsWith(e *Expr, sym rune) bool {
	return StartsWith(Reverse(e), sym)
}
