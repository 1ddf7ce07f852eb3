package interpreter

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: no more tokens

	// Paired delimiters
	LPAREN // (
	RPAREN // )

	// Arithmetic operators
	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /

	// Assignment
	EQUAL // =

	// Literals
	IDENTIFIER // variable name
	NUMBER     // decimal digits, unparsed
	STRING     // string literal "...", quotes stripped

	// Keywords
	OUT // "out"
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:        "EOF",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	ASTERISK:   "ASTERISK",
	SLASH:      "SLASH",
	EQUAL:      "EQUAL",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	OUT:        "OUT",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Pos is a location in the source text.
type Pos struct {
	Offset int // 0-based byte offset
	Line   int // 1-based
	Column int // 1-based, in bytes
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Column)
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Pos    Pos
}

func (t Token) String() string {
	return fmt.Sprintf("<%s, %s>  %s", t.Type, t.Lexeme, t.Pos)
}
