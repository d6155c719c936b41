package regexlib

import "strings"

// Prefix renders e in Polish notation with no separators:
// ∅ is "/", star is "*x", union is "+xy", concatenation is ".xy".
func Prefix(e *Expr) string {
	var b strings.Builder
	writePrefix(&b, e)
	return b.String()
}

func writePrefix(b *strings.Builder, e *Expr) {
	if e == nil {
		return
	}
	switch e.typ {
	case nEmpty:
		b.WriteByte('/')
	case nChar:
		b.WriteRune(e.ch)
	case nStar:
		b.WriteByte('*')
		writePrefix(b, e.left)
	case nUnion:
		b.WriteByte('+')
		writePrefix(b, e.left)
		writePrefix(b, e.right)
	case nConcat:
		b.WriteByte('.')
		writePrefix(b, e.left)
		writePrefix(b, e.right)
	}
}

// Postfix renders e in the notation Parse reads, tokens separated by a
// single space, so that Parse(Postfix(e)) is Equal to e.
func Postfix(e *Expr) string {
	var toks []string
	var walk func(*Expr)
	walk = func(n *Expr) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		switch n.typ {
		case nEmpty:
			toks = append(toks, "/")
		case nChar:
			toks = append(toks, string(n.ch))
		case nStar:
			toks = append(toks, "*")
		case nUnion:
			toks = append(toks, "+")
		case nConcat:
			toks = append(toks, ".")
		}
	}
	walk(e)
	return strings.Join(toks, " ")
}

const (
	precUnion = iota + 1
	precConcat
	precStar
	precAtom
)

// Infix renders e in the usual textual form, e.g. "a(b|c)*". Union and
// concatenation are printed without grouping among themselves, so the
// result is meant for reading, not for parsing back.
func Infix(e *Expr) string {
	s, _ := infix(e)
	return s
}

func infix(e *Expr) (string, int) {
	if e == nil {
		return "", precAtom
	}
	switch e.typ {
	case nEmpty:
		return "∅", precAtom
	case nChar:
		return string(e.ch), precAtom
	case nStar:
		if isExactlyEmpty(e.left) {
			return "ε", precAtom
		}
		return group(e.left, precAtom) + "*", precStar
	case nUnion:
		return group(e.left, precUnion) + "|" + group(e.right, precUnion), precUnion
	case nConcat:
		return group(e.left, precConcat) + group(e.right, precConcat), precConcat
	}
	return "", precAtom
}

// group parenthesises e when it binds looser than min.
func group(e *Expr, min int) string {
	s, prec := infix(e)
	if prec < min {
		return "(" + s + ")"
	}
	return s
}
