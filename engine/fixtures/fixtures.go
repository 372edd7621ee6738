// Package fixtures holds reference programs as fixed AST literals, the
// way callers are expected to construct programs. They are shared by
// the engine tests.
package fixtures

import (
	"imp/engine/ast"
	"imp/lib/value"
)

// Factorial computes Out = In! with a for-loop.
//
//	Out = 1;
//	for (I = 1; I <= In; I++) { Out = Out * I; }
func Factorial() ast.Statement {
	return ast.Block(
		ast.Assign{Name: "Out", Expr: ast.Val(1)},
		ast.For{
			Init:   ast.Assign{Name: "I", Expr: ast.Val(1)},
			Cond:   ast.Binary{Left: ast.Var("I"), Op: value.Lte, Right: ast.Var("In")},
			Update: ast.Incr{Name: "I"},
			Body:   ast.Assign{Name: "Out", Expr: ast.Binary{Left: ast.Var("Out"), Op: value.Mul, Right: ast.Var("I")}},
		},
	)
}

// Fibonacci computes Out = F(In) where F(0) = F(1) = 1, via a three-way
// branch: the base cases answer directly, the general case iterates.
//
//	if In == 0 { Out = 1; }
//	else if In == 1 { Out = 1; }
//	else { A = 1; B = 1; I = 2; while I <= In { T = A + B; A = B; B = T; I++; } Out = B; }
func Fibonacci() ast.Statement {
	general := ast.Block(
		ast.Assign{Name: "A", Expr: ast.Val(1)},
		ast.Assign{Name: "B", Expr: ast.Val(1)},
		ast.Assign{Name: "I", Expr: ast.Val(2)},
		ast.While{
			Cond: ast.Binary{Left: ast.Var("I"), Op: value.Lte, Right: ast.Var("In")},
			Body: ast.Block(
				ast.Assign{Name: "T", Expr: ast.Binary{Left: ast.Var("A"), Op: value.Add, Right: ast.Var("B")}},
				ast.Assign{Name: "A", Expr: ast.Var("B")},
				ast.Assign{Name: "B", Expr: ast.Var("T")},
				ast.Incr{Name: "I"},
			),
		},
		ast.Assign{Name: "Out", Expr: ast.Var("B")},
	)
	return ast.If{
		Cond: ast.Binary{Left: ast.Var("In"), Op: value.Eq, Right: ast.Val(0)},
		Then: ast.Assign{Name: "Out", Expr: ast.Val(1)},
		Else: ast.If{
			Cond: ast.Binary{Left: ast.Var("In"), Op: value.Eq, Right: ast.Val(1)},
			Then: ast.Assign{Name: "Out", Expr: ast.Val(1)},
			Else: general,
		},
	}
}

// Isqrt computes B = floor(sqrt(A)) by scanning upward until the next
// square exceeds A.
//
//	B = 0;
//	while (B+1)*(B+1) <= A { B++; }
func Isqrt() ast.Statement {
	next := ast.Binary{Left: ast.Var("B"), Op: value.Add, Right: ast.Val(1)}
	return ast.Block(
		ast.Assign{Name: "B", Expr: ast.Val(0)},
		ast.While{
			Cond: ast.Binary{
				Left:  ast.Binary{Left: next, Op: value.Mul, Right: next},
				Op:    value.Lte,
				Right: ast.Var("A"),
			},
			Body: ast.Incr{Name: "B"},
		},
	)
}
