package session

import (
	"errors"
	"fmt"

	"regextool/internal/regexlib"
)

var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrBadSymbol   = errors.New("symbol must be exactly one character")
	ErrBadFormat   = errors.New("unknown output format")
)

// Mode is one operation of the tool. Exactly one of Predicate and
// Transform is set; predicates print yes/no, transforms print a tree.
type Mode struct {
	Name        string
	Usage       string
	NeedsSymbol bool
	Predicate   func(e *regexlib.Expr, sym rune) bool
	Transform   func(e *regexlib.Expr, sym rune) *regexlib.Expr
}

func (m Mode) IsPredicate() bool { return m.Predicate != nil }

func unary(f func(*regexlib.Expr) *regexlib.Expr) func(*regexlib.Expr, rune) *regexlib.Expr {
	return func(e *regexlib.Expr, _ rune) *regexlib.Expr { return f(e) }
}

func test(f func(*regexlib.Expr) bool) func(*regexlib.Expr, rune) bool {
	return func(e *regexlib.Expr, _ rune) bool { return f(e) }
}

var modes = []Mode{
	{Name: "no-op", Usage: "print the expression unchanged",
		Transform: unary(func(e *regexlib.Expr) *regexlib.Expr { return e })},
	{Name: "simplify", Usage: "rewrite the expression to its simplified form",
		Transform: unary(regexlib.Simplify)},
	{Name: "empty", Usage: "is the language empty",
		Predicate: test(regexlib.IsEmpty)},
	{Name: "has-epsilon", Usage: "does the language contain the empty string",
		Predicate: test(regexlib.HasEpsilon)},
	{Name: "has-nonepsilon", Usage: "does the language contain a non-empty string",
		Predicate: test(regexlib.HasNonEpsilon)},
	{Name: "uses", Usage: "does some string of the language contain `symbol`", NeedsSymbol: true,
		Predicate: regexlib.UsesSymbol},
	{Name: "not-using", Usage: "keep only the strings without `symbol`", NeedsSymbol: true,
		Transform: regexlib.NotUsing},
	{Name: "infinite", Usage: "is the language infinite",
		Predicate: test(regexlib.IsInfinite)},
	{Name: "starts-with", Usage: "does some string begin with `symbol`", NeedsSymbol: true,
		Predicate: regexlib.StartsWith},
	{Name: "reverse", Usage: "reverse every string of the language",
		Transform: unary(regexlib.Reverse)},
	{Name: "ends-with", Usage: "does some string end with `symbol`", NeedsSymbol: true,
		Predicate: regexlib.EndsWith},
	{Name: "prefixes", Usage: "all prefixes of all strings",
		Transform: unary(regexlib.Prefixes)},
	{Name: "bs-for-a", Usage: "replace every a with b*",
		Transform: unary(regexlib.BsForA)},
	{Name: "insert", Usage: "insert one `symbol` anywhere in each string", NeedsSymbol: true,
		Transform: regexlib.InsertSymbol},
	{Name: "strip", Usage: "remove a leading `symbol` (left quotient)", NeedsSymbol: true,
		Transform: regexlib.StripSymbol},
}

// Modes returns every mode in command-line order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

func Lookup(name string) (Mode, error) {
	for _, m := range modes {
		if m.Name == name {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// ParseSymbol checks a symbol argument: one character, any character.
func ParseSymbol(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w, got %q", ErrBadSymbol, s)
	}
	return r[0], nil
}
