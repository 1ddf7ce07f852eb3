package interpreter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ignorePos drops source positions from AST comparisons.
var ignorePos = cmp.FilterPath(func(p cmp.Path) bool {
	return p.Last().String() == ".Pos"
}, cmp.Ignore())

func num(v int64) *NumberLiteral    { return &NumberLiteral{Value: v} }
func str(v string) *StringLiteral   { return &StringLiteral{Value: v} }
func ident(name string) *Identifier { return &Identifier{Name: name} }
func bin(op Operator, l, r Expr) *BinaryOp {
	return &BinaryOp{Op: op, Left: l, Right: r}
}

// TestParse verifies that Parse produces the correct AST for valid inputs.
func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Stmt
	}{
		{
			name:     "Empty Program",
			input:    "  \n ",
			expected: nil,
		},
		{
			name:  "Assignment",
			input: "x = 5",
			expected: []Stmt{
				&Assignment{Identifier: "x", Value: num(5)},
			},
		},
		{
			name:  "Assignment Without Equals",
			input: "x 5",
			expected: []Stmt{
				&Assignment{Identifier: "x", Value: num(5)},
			},
		},
		{
			name:  "Output String",
			input: `out "Hello"`,
			expected: []Stmt{
				&Output{Expression: str("Hello")},
			},
		},
		{
			name:  "Precedence",
			input: "out 3 + 4 * 2",
			expected: []Stmt{
				&Output{Expression: bin(Add, num(3), bin(Mul, num(4), num(2)))},
			},
		},
		{
			name:  "Left Associative Subtraction",
			input: "out 10 - 2 - 3",
			expected: []Stmt{
				&Output{Expression: bin(Sub, bin(Sub, num(10), num(2)), num(3))},
			},
		},
		{
			name:  "Left Associative Division",
			input: "out 100 / 10 / 5",
			expected: []Stmt{
				&Output{Expression: bin(Div, bin(Div, num(100), num(10)), num(5))},
			},
		},
		{
			name:  "Parentheses Override Precedence",
			input: "out (2 + 3) * 4",
			expected: []Stmt{
				&Output{Expression: bin(Mul, bin(Add, num(2), num(3)), num(4))},
			},
		},
		{
			name:  "Nested Parentheses",
			input: "out ((x))",
			expected: []Stmt{
				&Output{Expression: ident("x")},
			},
		},
		{
			name: "Multiple Statements",
			input: `x = 5
y = 10
out x + y * z
out "Hello, World!"`,
			expected: []Stmt{
				&Assignment{Identifier: "x", Value: num(5)},
				&Assignment{Identifier: "y", Value: num(10)},
				&Output{Expression: bin(Add, ident("x"), bin(Mul, ident("y"), ident("z")))},
				&Output{Expression: str("Hello, World!")},
			},
		},
		{
			name:  "Statements On One Line",
			input: "a 1 b = a out b",
			expected: []Stmt{
				&Assignment{Identifier: "a", Value: num(1)},
				&Assignment{Identifier: "b", Value: ident("a")},
				&Output{Expression: ident("b")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := Parse(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, stmts, ignorePos); diff != "" {
				t.Errorf("AST mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseOptionalEqualsIsIdentical(t *testing.T) {
	with, err := Parse("x = 5")
	require.NoError(t, err)
	without, err := Parse("x 5")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(with, without, ignorePos))
}

func TestParsePositions(t *testing.T) {
	stmts, err := Parse("x = 1\nout x + 2")
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	assign := stmts[0].(*Assignment)
	assert.Equal(t, Pos{Offset: 0, Line: 1, Column: 1}, assign.Pos)

	out := stmts[1].(*Output)
	assert.Equal(t, Pos{Offset: 6, Line: 2, Column: 1}, out.Pos)
	op := out.Expression.(*BinaryOp)
	assert.Equal(t, Pos{Offset: 12, Line: 2, Column: 7}, op.Pos)
	assert.Equal(t, Pos{Offset: 10, Line: 2, Column: 5}, op.Left.(*Identifier).Pos)
}

func TestStmtString(t *testing.T) {
	stmts, err := Parse(`x = (1 + 2) * y out "hi"`)
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	assert.Equal(t, "Assignment(x = ((1 + 2) * y))", stmts[0].String())
	assert.Equal(t, `Output("hi")`, stmts[1].String())
}

// TestParseErrors verifies that malformed programs fail with the right
// error kind and context.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     error
		actual   TokenType
		expected TokenType
		line     int
		column   int
	}{
		{name: "Statement Starts With Number", input: "5", kind: ErrUnexpectedToken, actual: NUMBER, line: 1, column: 1},
		{name: "Statement Starts With Equals", input: "= 5", kind: ErrUnexpectedToken, actual: EQUAL, line: 1, column: 1},
		{name: "Statement Starts With String", input: `x = 1 "s"`, kind: ErrUnexpectedToken, actual: STRING, line: 1, column: 7},
		{name: "Out Without Expression", input: "out", kind: ErrUnexpectedToken, actual: EOF, line: 1, column: 4},
		{name: "Assignment Without Value", input: "x =", kind: ErrUnexpectedToken, actual: EOF, line: 1, column: 4},
		{name: "Dangling Operator", input: "out 1 +", kind: ErrUnexpectedToken, actual: EOF, line: 1, column: 8},
		{name: "Double Operator", input: "out 1 * * 2", kind: ErrUnexpectedToken, actual: ASTERISK, line: 1, column: 9},
		{name: "Double Equals", input: "x = = 2", kind: ErrUnexpectedToken, actual: EQUAL, line: 1, column: 5},
		{name: "Missing Close Paren", input: "out (1 + 2", kind: ErrExpectedToken, expected: RPAREN, actual: EOF, line: 1, column: 11},
		{name: "Wrong Close Token", input: "out (1 + 2 = 3", kind: ErrExpectedToken, expected: RPAREN, actual: EQUAL, line: 1, column: 12},
		{name: "Stray Close Paren", input: "out 1)", kind: ErrUnexpectedToken, actual: RPAREN, line: 1, column: 6},
		{name: "Error On Second Line", input: "x = 1\n)", kind: ErrUnexpectedToken, actual: RPAREN, line: 2, column: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, stmts)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.actual, perr.Actual)
			if tt.kind == ErrExpectedToken {
				assert.Equal(t, tt.expected, perr.Expected)
			}
			assert.Equal(t, tt.line, perr.Pos.Line)
			assert.Equal(t, tt.column, perr.Pos.Column)
		})
	}
}

func TestParsePropagatesLexErrors(t *testing.T) {
	_, err := Parse("x = 1\nout 2 $ 3")
	require.ErrorIs(t, err, ErrUnexpectedCharacter)

	_, err = Parse(`out "abc`)
	require.ErrorIs(t, err, ErrUnterminatedString)

	_, err = NewParser(NewLexer("#"))
	require.ErrorIs(t, err, ErrUnexpectedCharacter)
}

func TestParseNumberOutOfRange(t *testing.T) {
	_, err := Parse("out 99999999999999999999")
	require.ErrorIs(t, err, ErrInvalidNumberLiteral)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "99999999999999999999", perr.Lexeme)
}

// sliceSource replays a fixed token list, standing in for a front end
// other than the Lexer.
type sliceSource struct {
	tokens []Token
	pos    int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.tokens) {
		return Token{Type: EOF}, nil
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

func TestParseCustomTokenSource(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := NewParser(&sliceSource{tokens: []Token{
			{Type: OUT, Lexeme: "out"},
			{Type: NUMBER, Lexeme: "7"},
			{Type: SLASH, Lexeme: "/"},
			{Type: IDENTIFIER, Lexeme: "n"},
		}})
		require.NoError(t, err)
		stmts, err := p.Parse()
		require.NoError(t, err)
		want := []Stmt{&Output{Expression: bin(Div, num(7), ident("n"))}}
		assert.Empty(t, cmp.Diff(want, stmts, ignorePos))
	})

	for _, lexeme := range []string{"12a", "-5", "+5", "", "0x10"} {
		t.Run("Invalid "+lexeme, func(t *testing.T) {
			p, err := NewParser(&sliceSource{tokens: []Token{
				{Type: OUT, Lexeme: "out"},
				{Type: NUMBER, Lexeme: lexeme},
			}})
			require.NoError(t, err)
			_, err = p.Parse()
			require.ErrorIs(t, err, ErrInvalidNumberLiteral)
		})
	}
}
