package regexlib

type nodeType int

const (
	nEmpty  nodeType = iota // ∅
	nChar                   // single symbol
	nUnion                  // left | right
	nConcat                 // left right
	nStar                   // left*
)

func (t nodeType) String() string {
	switch t {
	case nEmpty:
		return "empty"
	case nChar:
		return "char"
	case nUnion:
		return "union"
	case nConcat:
		return "concat"
	case nStar:
		return "star"
	}
	return "unknown"
}

// Expr is a node of a regular expression tree. A Union or Concat owns both
// children, a Star owns left only. Subtrees are never shared between nodes.
//
// There is no epsilon node: the language {""} is written Star(Empty).
type Expr struct {
	typ   nodeType
	left  *Expr
	right *Expr
	ch    rune // for nChar
}

func Empty() *Expr { return &Expr{typ: nEmpty} }

func Char(r rune) *Expr { return &Expr{typ: nChar, ch: r} }

func Union(l, r *Expr) *Expr { return &Expr{typ: nUnion, left: l, right: r} }

func Concat(l, r *Expr) *Expr { return &Expr{typ: nConcat, left: l, right: r} }

func Star(x *Expr) *Expr { return &Expr{typ: nStar, left: x} }

// Epsilon returns a fresh Star(Empty).
func Epsilon() *Expr { return Star(Empty()) }

// IsEpsilon reports whether e is exactly the shape Star(Empty).
func IsEpsilon(e *Expr) bool {
	return e != nil && e.typ == nStar && isExactlyEmpty(e.left)
}

func isExactlyEmpty(e *Expr) bool { return e != nil && e.typ == nEmpty }

// Symbol returns the symbol of a Char node and false for every other node.
func (e *Expr) Symbol() (rune, bool) {
	if e == nil || e.typ != nChar {
		return 0, false
	}
	return e.ch, true
}

// Clone returns a deep copy of e.
func (e *Expr) Clone() *Expr {
	if e == nil {
		return nil
	}
	return &Expr{typ: e.typ, left: e.left.Clone(), right: e.right.Clone(), ch: e.ch}
}

// Size counts the nodes of e.
func (e *Expr) Size() int {
	if e == nil {
		return 0
	}
	return 1 + e.left.Size() + e.right.Size()
}

// Depth is the number of nodes on the longest root-to-leaf path.
func (e *Expr) Depth() int {
	if e == nil {
		return 0
	}
	return 1 + max(e.left.Depth(), e.right.Depth())
}

// String renders e in prefix notation.
func (e *Expr) String() string { return Prefix(e) }
