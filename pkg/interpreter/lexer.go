package interpreter

import "unicode/utf8"

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"out": OUT,
}

// single maps one-character tokens to their TokenType.
var single = map[byte]TokenType{
	'(': LPAREN,
	')': RPAREN,
	'+': PLUS,
	'-': MINUS,
	'*': ASTERISK,
	'/': SLASH,
	'=': EQUAL,
}

// Lexer hands out one token per NextToken call from an immutable source
// buffer. Only the cursor moves.
type Lexer struct {
	src  string
	pos  int // byte offset of the next character to consume
	line int // current 1-based source line
	col  int // current 1-based column
	err  error
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// peek returns the byte at the current position, or 0 at end of input.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one byte and returns it.
func (l *Lexer) advance() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) here() Pos {
	return Pos{Offset: l.pos, Line: l.line, Column: l.col}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && isSpace(l.peek()) {
		l.advance()
	}
}

// scanIdent collects an identifier or keyword. The first character must
// still be at l.peek().
func (l *Lexer) scanIdent() Token {
	start := l.here()
	for l.pos < len(l.src) && (isLetter(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}
	lexeme := l.src[start.Offset:l.pos]
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Pos: start}
}

// scanNumber collects a run of decimal digits. Conversion to an integer
// is left to the parser.
func (l *Lexer) scanNumber() Token {
	start := l.here()
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	return Token{Type: NUMBER, Lexeme: l.src[start.Offset:l.pos], Pos: start}
}

// scanString collects a string literal "...". There are no escape
// sequences; the literal ends at the next double quote.
func (l *Lexer) scanString() (Token, error) {
	start := l.here()
	l.advance() // consume opening "
	from := l.pos
	for l.pos < len(l.src) && l.peek() != '"' {
		l.advance()
	}
	if l.pos >= len(l.src) {
		return Token{}, &Error{Kind: ErrUnterminatedString, Pos: start}
	}
	value := l.src[from:l.pos]
	l.advance() // consume closing "
	return Token{Type: STRING, Lexeme: value, Pos: start}, nil
}

// NextToken skips whitespace and returns the next Token. At end of input
// it returns a token of type EOF and a nil error. Once an error has been
// returned, every later call returns the same error.
func (l *Lexer) NextToken() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	tok, err := l.scan()
	if err != nil {
		l.err = err
	}
	return tok, err
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Pos: l.here()}, nil
	}

	ch := l.peek()
	switch {
	case isLetter(ch):
		return l.scanIdent(), nil
	case isDigit(ch):
		return l.scanNumber(), nil
	case ch == '"':
		return l.scanString()
	}

	if tt, ok := single[ch]; ok {
		pos := l.here()
		l.advance()
		return Token{Type: tt, Lexeme: string(ch), Pos: pos}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return Token{}, &Error{Kind: ErrUnexpectedCharacter, Pos: l.here(), Char: r}
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It returns the tokens scanned so far and a non-nil error on the first
// lexical failure.
func Lex(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
