package interpreter

import "strconv"

// TokenSource is anything that hands out tokens one at a time, ending
// with an EOF token. *Lexer is the usual implementation.
type TokenSource interface {
	NextToken() (Token, error)
}

// Parser pulls tokens from a TokenSource through a single-token lookahead
// and builds the statement list.
//
// Grammar:
//
//	program    = statement* EOF
//	statement  = assignment | output
//	assignment = IDENTIFIER "="? expression
//	output     = "out" expression
//	expression = term (("+" | "-") term)*
//	term       = factor (("*" | "/") factor)*
//	factor     = NUMBER | IDENTIFIER | STRING | "(" expression ")"
type Parser struct {
	src     TokenSource
	current Token
}

// NewParser returns a Parser reading from src. It pulls the first token
// immediately, so a lexical error at the very start is reported here.
func NewParser(src TokenSource) (*Parser, error) {
	p := &Parser{src: src}
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	p.current = tok
	return p, nil
}

// consume advances past the current token if it has type tt, otherwise
// it fails with ErrExpectedToken. It returns the consumed token.
func (p *Parser) consume(tt TokenType) (Token, error) {
	tok := p.current
	if tok.Type != tt {
		return tok, &Error{Kind: ErrExpectedToken, Pos: tok.Pos, Expected: tt, Actual: tok.Type}
	}
	next, err := p.src.NextToken()
	if err != nil {
		return tok, err
	}
	p.current = next
	return tok, nil
}

func (p *Parser) unexpected() error {
	return &Error{Kind: ErrUnexpectedToken, Pos: p.current.Pos, Actual: p.current.Type, Lexeme: p.current.Lexeme}
}

// Parse parses statements until the token source is exhausted.
func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt
	for p.current.Type != EOF {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch p.current.Type {
	case IDENTIFIER:
		return p.parseAssignment()
	case OUT:
		return p.parseOutput()
	default:
		return nil, p.unexpected()
	}
}

// parseAssignment handles `name = expr` and `name expr`.
func (p *Parser) parseAssignment() (Stmt, error) {
	name, err := p.consume(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if p.current.Type == EQUAL {
		if _, err := p.consume(EQUAL); err != nil {
			return nil, err
		}
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Assignment{Identifier: name.Lexeme, Value: value, Pos: name.Pos}, nil
}

func (p *Parser) parseOutput() (Stmt, error) {
	kw, err := p.consume(OUT)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Output{Expression: expr, Pos: kw.Pos}, nil
}

// parseExpression handles + and -
func (p *Parser) parseExpression() (Expr, error) {
	return p.parseBinary(p.parseTerm, PLUS, MINUS)
}

// parseTerm handles * and /
func (p *Parser) parseTerm() (Expr, error) {
	return p.parseBinary(p.parseFactor, ASTERISK, SLASH)
}

// parseBinary parses operand (op operand)* for the given operator tokens,
// folding left so that a - b - c is (a - b) - c.
func (p *Parser) parseBinary(operand func() (Expr, error), ops ...TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.matches(ops...) {
		tok, err := p.consume(p.current.Type)
		if err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: binaryOperators[tok.Type], Left: expr, Right: right, Pos: tok.Pos}
	}
	return expr, nil
}

func (p *Parser) matches(types ...TokenType) bool {
	for _, tt := range types {
		if p.current.Type == tt {
			return true
		}
	}
	return false
}

func (p *Parser) parseFactor() (Expr, error) {
	tok := p.current
	switch tok.Type {
	case NUMBER:
		val, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil || !allDigits(tok.Lexeme) {
			return nil, &Error{Kind: ErrInvalidNumberLiteral, Pos: tok.Pos, Lexeme: tok.Lexeme}
		}
		if _, err := p.consume(NUMBER); err != nil {
			return nil, err
		}
		return &NumberLiteral{Value: val, Pos: tok.Pos}, nil

	case STRING:
		if _, err := p.consume(STRING); err != nil {
			return nil, err
		}
		return &StringLiteral{Value: tok.Lexeme, Pos: tok.Pos}, nil

	case IDENTIFIER:
		if _, err := p.consume(IDENTIFIER); err != nil {
			return nil, err
		}
		return &Identifier{Name: tok.Lexeme, Pos: tok.Pos}, nil

	case LPAREN:
		if _, err := p.consume(LPAREN); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.unexpected()
	}
}

// Parse lexes and parses src into a statement list.
func Parse(src string) ([]Stmt, error) {
	p, err := NewParser(NewLexer(src))
	if err != nil {
		return nil, err
	}
	return p.Parse()
}
