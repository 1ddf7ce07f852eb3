package interpreter

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Every *Error unwraps to exactly one of these, so
// callers test with errors.Is.
var (
	// Lexical
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string literal")

	// Syntactic
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrExpectedToken        = errors.New("expected token")
	ErrInvalidNumberLiteral = errors.New("invalid number literal")

	// Runtime
	ErrUnboundVariable = errors.New("unbound variable")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnknownOperator = errors.New("unknown operator")
)

// Error is the single error type returned by every pipeline stage.
// Only the fields relevant to Kind are set.
type Error struct {
	Kind error
	Pos  Pos

	Char     rune      // ErrUnexpectedCharacter
	Expected TokenType // ErrExpectedToken
	Actual   TokenType // ErrExpectedToken, ErrUnexpectedToken
	Lexeme   string    // ErrUnexpectedToken, ErrInvalidNumberLiteral
	Name     string    // ErrUnboundVariable
	Op       Operator  // ErrTypeMismatch, ErrUnknownOperator

	// Operand kinds for ErrTypeMismatch, e.g. "int" and "string".
	Left, Right string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.detail())
}

func (e *Error) detail() string {
	switch e.Kind {
	case ErrUnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q", e.Char)
	case ErrUnterminatedString:
		return "unterminated string literal"
	case ErrUnexpectedToken:
		if e.Actual == EOF {
			return "unexpected end of input"
		}
		return fmt.Sprintf("unexpected token %s (%q)", e.Actual, e.Lexeme)
	case ErrExpectedToken:
		return fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	case ErrInvalidNumberLiteral:
		return fmt.Sprintf("invalid number literal %q", e.Lexeme)
	case ErrUnboundVariable:
		return fmt.Sprintf("unbound variable %q", e.Name)
	case ErrTypeMismatch:
		return fmt.Sprintf("type mismatch: %s %s %s", e.Left, e.Op, e.Right)
	case ErrDivisionByZero:
		return "division by zero"
	case ErrUnknownOperator:
		return fmt.Sprintf("unknown operator %s", e.Op)
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error { return e.Kind }

// Snippet formats err together with the source line it points at:
//
//	line 2, col 7: division by zero
//	  |> out 5 / 0
//	           ^
//
// Errors that carry no position are returned as plain text.
func Snippet(src string, err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Pos.Line < 1 {
		return err.Error()
	}
	lines := strings.Split(src, "\n")
	if e.Pos.Line > len(lines) {
		return err.Error()
	}
	line := strings.TrimRight(lines[e.Pos.Line-1], "\r")

	// Keep tabs so the caret lines up under tab-indented source.
	var pad strings.Builder
	for i := 0; i < e.Pos.Column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	caret := pad.String() + "^"
	return fmt.Sprintf("%s\n  |> %s\n     %s", err.Error(), line, caret)
}
