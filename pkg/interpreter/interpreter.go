package interpreter

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/log"
)

// Interpreter executes a statement list against one global Environment.
type Interpreter struct {
	program []Stmt
	env     *Environment
	out     Sink
	log     log.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithSink sends out-statement lines to s.
func WithSink(s Sink) Option {
	return func(in *Interpreter) { in.out = s }
}

// WithOutput writes out-statement lines to w, one per line.
func WithOutput(w io.Writer) Option {
	return WithSink(WriterSink{W: w})
}

// WithEnvironment runs the program against env instead of a fresh one.
func WithEnvironment(env *Environment) Option {
	return func(in *Interpreter) { in.env = env }
}

// WithLogger replaces the default logger.
func WithLogger(l log.Logger) Option {
	return func(in *Interpreter) { in.log = l }
}

// New returns an Interpreter for program. Without options it starts with
// an empty environment and collects output in a LineBuffer.
func New(program []Stmt, opts ...Option) *Interpreter {
	in := &Interpreter{program: program}
	for _, opt := range opts {
		opt(in)
	}
	if in.env == nil {
		in.env = NewEnvironment()
	}
	if in.out == nil {
		in.out = &LineBuffer{}
	}
	if in.log == nil {
		in.log = log.New("pkg", "interpreter")
	}
	return in
}

// Env returns the interpreter's environment.
func (in *Interpreter) Env() *Environment { return in.env }

// Sink returns where output lines go.
func (in *Interpreter) Sink() Sink { return in.out }

// Interpret runs every statement in order. The first error stops the run;
// statements before it keep their effects.
func (in *Interpreter) Interpret() error {
	for _, stmt := range in.program {
		if err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(stmt Stmt) error {
	switch s := stmt.(type) {
	case *Assignment:
		v, err := in.Evaluate(s.Value)
		if err != nil {
			return err
		}
		in.env.Set(s.Identifier, v)
		in.log.Debug("Assigned variable", "name", s.Identifier, "value", v, "kind", v.Kind())
		return nil

	case *Output:
		v, err := in.Evaluate(s.Expression)
		if err != nil {
			return err
		}
		in.log.Debug("Output", "value", v, "kind", v.Kind())
		return in.out.WriteLine(v.String())

	default:
		return fmt.Errorf("interpreter: unknown statement type %T", stmt)
	}
}

// Evaluate computes the value of expr in the current environment.
func (in *Interpreter) Evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *NumberLiteral:
		return Int(e.Value), nil

	case *StringLiteral:
		return Str(e.Value), nil

	case *Identifier:
		v, ok := in.env.Get(e.Name)
		if !ok {
			return nil, &Error{Kind: ErrUnboundVariable, Pos: e.Pos, Name: e.Name}
		}
		return v, nil

	case *BinaryOp:
		left, err := in.Evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := in.Evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		return apply(e, left, right)

	default:
		return nil, fmt.Errorf("interpreter: unknown expression type %T", expr)
	}
}

// apply combines two evaluated operands. Only Add accepts strings, and
// only when both sides are strings.
func apply(e *BinaryOp, left, right Value) (Value, error) {
	if l, ok := left.(Str); ok && e.Op == Add {
		if r, ok := right.(Str); ok {
			return l + r, nil
		}
	}

	l, lok := left.(Int)
	r, rok := right.(Int)
	if !lok || !rok {
		if e.Op < Add || e.Op > Div {
			return nil, &Error{Kind: ErrUnknownOperator, Pos: e.Pos, Op: e.Op}
		}
		return nil, &Error{Kind: ErrTypeMismatch, Pos: e.Pos, Op: e.Op, Left: left.Kind(), Right: right.Kind()}
	}

	switch e.Op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		if r == 0 {
			return nil, &Error{Kind: ErrDivisionByZero, Pos: e.Pos}
		}
		return floorDiv(l, r), nil
	default:
		return nil, &Error{Kind: ErrUnknownOperator, Pos: e.Pos, Op: e.Op}
	}
}

// floorDiv divides rounding toward negative infinity, so -7 / 2 is -4.
func floorDiv(a, b Int) Int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
