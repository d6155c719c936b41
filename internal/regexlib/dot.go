package regexlib

import (
	"fmt"
	"io"
)

// WriteDOT prints a Graphviz rendering of the expression tree to w.
func WriteDOT(w io.Writer, e *Expr) error {
	ew := &errWriter{w: w}
	ew.printf("digraph G {\n")
	ew.printf("    node [shape=circle];\n")

	id := 0
	var walk func(*Expr) int
	walk = func(n *Expr) int {
		self := id
		id++
		ew.printf("    n%d [label=%q];\n", self, dotLabel(n))
		if IsEpsilon(n) {
			return self
		}
		for _, child := range []*Expr{n.left, n.right} {
			if child == nil {
				continue
			}
			c := walk(child)
			ew.printf("    n%d -> n%d;\n", self, c)
		}
		return self
	}
	if e != nil {
		walk(e)
	}

	ew.printf("}\n")
	return ew.err
}

func dotLabel(n *Expr) string {
	switch n.typ {
	case nEmpty:
		return "∅"
	case nChar:
		return string(n.ch)
	case nStar:
		if isExactlyEmpty(n.left) {
			return "ε"
		}
		return "*"
	case nUnion:
		return "|"
	case nConcat:
		return "·"
	}
	return "?"
}

// errWriter keeps the first write error and drops later output.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
