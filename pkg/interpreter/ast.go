package interpreter

import (
	"fmt"
	"strconv"
)

// Operator is one of the four arithmetic operators.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

var operatorSymbols = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
}

func (op Operator) String() string {
	if int(op) >= 0 && int(op) < len(operatorSymbols) {
		return operatorSymbols[op]
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// binaryOperators maps operator tokens to the Operator they build.
var binaryOperators = map[TokenType]Operator{
	PLUS:     Add,
	MINUS:    Sub,
	ASTERISK: Mul,
	SLASH:    Div,
}

//  Expression nodes

// Expr is implemented by every node that produces a value. The set of
// implementations is closed by the unexported marker method.
type Expr interface {
	exprNode()
	String() string
}

// NumberLiteral is an integer constant.
//
//	out 42
//	    ^^  NumberLiteral{Value: 42}
type NumberLiteral struct {
	Value int64
	Pos   Pos
}

func (*NumberLiteral) exprNode()        {}
func (n *NumberLiteral) String() string { return strconv.FormatInt(n.Value, 10) }

// StringLiteral is a string constant "...".
type StringLiteral struct {
	Value string
	Pos   Pos
}

func (*StringLiteral) exprNode()        {}
func (s *StringLiteral) String() string { return strconv.Quote(s.Value) }

// Identifier is a read of a named variable.
type Identifier struct {
	Name string
	Pos  Pos
}

func (*Identifier) exprNode()        {}
func (i *Identifier) String() string { return i.Name }

// BinaryOp represents Left Op Right. Pos is the operator token.
//
//	x + 1
//	^ ^ ^
//	| | |
//	| | Right
//	| Op
//	Left
type BinaryOp struct {
	Op    Operator
	Left  Expr
	Right Expr
	Pos   Pos
}

func (*BinaryOp) exprNode() {}
func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

//  Statement nodes

// Stmt is a top-level statement: *Assignment or *Output.
type Stmt interface {
	stmtNode()
	String() string
}

// Assignment binds the value of an expression to a global variable.
// The "=" is optional in source: `x 5` and `x = 5` build the same node.
type Assignment struct {
	Identifier string
	Value      Expr
	Pos        Pos
}

func (*Assignment) stmtNode() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s = %s)", a.Identifier, a.Value)
}

// Output emits the value of an expression as one line.
type Output struct {
	Expression Expr
	Pos        Pos
}

func (*Output) stmtNode()        {}
func (o *Output) String() string { return fmt.Sprintf("Output(%s)", o.Expression) }
