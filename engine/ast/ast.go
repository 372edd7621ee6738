package ast

import "imp/lib/value"

// VisitorValue evaluates expressions to integer values.
type VisitorValue interface {
	VisitVar(name string) (value.Int, error)
	VisitVal(n value.Int) (value.Int, error)
	VisitBinary(left Expr, op value.Op, right Expr) (value.Int, error)
}

type Expr interface {
	AcceptValue(v VisitorValue) (value.Int, error)
	String() string
}

var _ Expr = Var("")
var _ Expr = Val(0)
var _ Expr = Binary{}

// Var reads a variable by name.
type Var string

func (r Var) AcceptValue(v VisitorValue) (value.Int, error) {
	return v.VisitVar(string(r))
}

// Val is an integer literal.
type Val int64

func (l Val) AcceptValue(v VisitorValue) (value.Int, error) {
	return v.VisitVal(value.Int(l))
}

// Binary applies op to the values of Left and Right.
type Binary struct {
	Left  Expr
	Op    value.Op
	Right Expr
}

func (b Binary) AcceptValue(v VisitorValue) (value.Int, error) {
	return v.VisitBinary(b.Left, b.Op, b.Right)
}
