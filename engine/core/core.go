// Package core holds the reduced statement grammar produced by
// desugaring. It is the only grammar the interpreter evaluates, so its
// constructor set is deliberately minimal: assignment, conditional,
// while-loop, sequence and skip. Children of compound nodes are core
// statements, so a lowered tree cannot re-introduce surface forms.
package core

import "imp/engine/ast"

// Visitor runs core statements. Effects thread through the visitor's
// own state, so visits return only an error.
type Visitor interface {
	VisitAssign(name string, expr ast.Expr) error
	VisitIf(cond ast.Expr, then, els Statement) error
	VisitWhile(cond ast.Expr, body Statement) error
	VisitSeq(first, second Statement) error
	VisitSkip() error
}

type Statement interface {
	Accept(v Visitor) error
	String() string
}

var _ Statement = Assign{}
var _ Statement = If{}
var _ Statement = While{}
var _ Statement = Seq{}
var _ Statement = Skip{}

// Assign binds Name to the value of Expr.
type Assign struct {
	Name string
	Expr ast.Expr
}

func (a Assign) Accept(v Visitor) error {
	return v.VisitAssign(a.Name, a.Expr)
}

// If runs Then when Cond is nonzero, Else otherwise.
type If struct {
	Cond ast.Expr
	Then Statement
	Else Statement
}

func (c If) Accept(v Visitor) error {
	return v.VisitIf(c.Cond, c.Then, c.Else)
}

// While re-tests Cond before every run of Body.
type While struct {
	Cond ast.Expr
	Body Statement
}

func (w While) Accept(v Visitor) error {
	return v.VisitWhile(w.Cond, w.Body)
}

// Seq runs First, then Second.
type Seq struct {
	First  Statement
	Second Statement
}

func (s Seq) Accept(v Visitor) error {
	return v.VisitSeq(s.First, s.Second)
}

// Skip does nothing.
type Skip struct{}

func (Skip) Accept(v Visitor) error {
	return v.VisitSkip()
}
