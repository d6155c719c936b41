package regexlib

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned when an operator finds too few operands.
	ErrStackUnderflow = errors.New("operator needs more operands")
	// ErrNoExpression is returned for a line without any operand.
	ErrNoExpression = errors.New("no expression")
	// ErrExtraOperands is returned when more than one tree is left over.
	ErrExtraOperands = errors.New("operands left without an operator")
)

type parser struct {
	lex   *postfixLexer
	stack []*Expr
}

// Parse reads one expression in postfix notation. Whitespace and
// unrecognised characters are skipped; the line must reduce to exactly
// one tree.
func Parse(line string) (*Expr, error) {
	lex, err := newLexer(line)
	if err != nil {
		return nil, err
	}
	p := &parser{lex: lex}
	return p.parse()
}

func MustParse(line string) *Expr {
	e, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return e
}

func (p *parser) parse() (*Expr, error) {
	for {
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		switch tok.typ {
		case tEOF:
			switch len(p.stack) {
			case 0:
				return nil, ErrNoExpression
			case 1:
				return p.stack[0], nil
			default:
				return nil, fmt.Errorf("%w: %d trees on the stack", ErrExtraOperands, len(p.stack))
			}
		case tEmpty:
			p.push(Empty())
		case tChar:
			p.push(Char(tok.ch))
		case tStar:
			x, err := p.pop(tok, 1)
			if err != nil {
				return nil, err
			}
			p.push(Star(x[0]))
		case tUnion:
			x, err := p.pop(tok, 2)
			if err != nil {
				return nil, err
			}
			p.push(Union(x[0], x[1]))
		case tConcat:
			x, err := p.pop(tok, 2)
			if err != nil {
				return nil, err
			}
			p.push(Concat(x[0], x[1]))
		}
	}
}

func (p *parser) push(e *Expr) { p.stack = append(p.stack, e) }

// pop removes n operands and returns them in push order, so for a binary
// operator the second-to-top element becomes the left operand.
func (p *parser) pop(tok token, n int) ([]*Expr, error) {
	if len(p.stack) < n {
		return nil, fmt.Errorf("%w: column %d wants %d, have %d", ErrStackUnderflow, tok.col, n, len(p.stack))
	}
	top := len(p.stack) - n
	out := make([]*Expr, n)
	copy(out, p.stack[top:])
	p.stack = p.stack[:top]
	return out, nil
}
