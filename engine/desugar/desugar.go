// Package desugar lowers the surface statement grammar to the core
// grammar. Increment and for-loops are the only surface forms without a
// core counterpart; everything else maps node for node.
package desugar

import (
	"fmt"

	"imp/engine/ast"
	"imp/engine/core"
	"imp/lib/value"
)

// Desugar lowers a surface statement to an equivalent core statement.
// Total over the surface grammar: every variant has exactly one case.
func Desugar(s ast.Statement) core.Statement {
	switch s := s.(type) {
	case ast.Assign:
		return core.Assign{Name: s.Name, Expr: s.Expr}
	case ast.Incr:
		return core.Assign{
			Name: s.Name,
			Expr: ast.Binary{Left: ast.Var(s.Name), Op: value.Add, Right: ast.Val(1)},
		}
	case ast.If:
		return core.If{Cond: s.Cond, Then: Desugar(s.Then), Else: Desugar(s.Else)}
	case ast.While:
		return core.While{Cond: s.Cond, Body: Desugar(s.Body)}
	case ast.For:
		// Init runs exactly once before the first test; Update runs
		// after the body on every iteration.
		return core.Seq{
			First: Desugar(s.Init),
			Second: core.While{
				Cond: s.Cond,
				Body: core.Seq{First: Desugar(s.Body), Second: Desugar(s.Update)},
			},
		}
	case ast.Seq:
		return core.Seq{First: Desugar(s.First), Second: Desugar(s.Second)}
	case ast.Skip:
		return core.Skip{}
	}
	panic(fmt.Sprintf("unexpected statement type: %T", s))
}
