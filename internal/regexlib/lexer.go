package regexlib

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type tokenType int

const (
	tEOF    tokenType = iota
	tEmpty            // /
	tChar             // alphanumeric symbol
	tStar             // *
	tUnion            // +
	tConcat           // .
)

type token struct {
	typ tokenType
	ch  rune // for tChar
	col int  // 1-based column
}

// Rules whose name starts with a lower-case letter are elided by the
// lexer, so whitespace and unknown characters never reach the parser.
var postfixDef = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "space", Pattern: `\s+`},
	{Name: "Empty", Pattern: `/`},
	{Name: "Char", Pattern: `[A-Za-z0-9]`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Union", Pattern: `\+`},
	{Name: "Concat", Pattern: `\.`},
	{Name: "other", Pattern: `(?s).`},
})

var symbolTypes = func() map[lexer.TokenType]tokenType {
	syms := postfixDef.Symbols()
	return map[lexer.TokenType]tokenType{
		syms["Empty"]:  tEmpty,
		syms["Char"]:   tChar,
		syms["Star"]:   tStar,
		syms["Union"]:  tUnion,
		syms["Concat"]: tConcat,
	}
}()

type postfixLexer struct {
	lex lexer.Lexer
}

func newLexer(line string) (*postfixLexer, error) {
	lex, err := postfixDef.LexString("", line)
	if err != nil {
		return nil, err
	}
	return &postfixLexer{lex: lex}, nil
}

func (l *postfixLexer) next() (token, error) {
	tok, err := l.lex.Next()
	if err != nil {
		return token{}, err
	}
	if tok.EOF() {
		return token{typ: tEOF, col: tok.Pos.Column}, nil
	}
	out := token{typ: symbolTypes[tok.Type], col: tok.Pos.Column}
	if out.typ == tChar {
		out.ch = rune(tok.Value[0])
	}
	return out, nil
}
