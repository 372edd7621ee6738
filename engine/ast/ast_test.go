package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"imp/lib/value"
)

func TestPrinter(t *testing.T) {
	scenarios := []struct {
		node     Statement
		expected string
	}{
		{Assign{Name: "x", Expr: Val(3)}, "x = 3;"},
		{Incr{Name: "x"}, "x++;"},
		{
			Assign{Name: "x", Expr: Binary{Left: Var("x"), Op: value.Add, Right: Val(1)}},
			"x = $x + 1;",
		},
		{
			If{
				Cond: Binary{Left: Var("x"), Op: value.Gt, Right: Val(0)},
				Then: Assign{Name: "y", Expr: Val(1)},
				Else: Skip{},
			},
			"if $x > 0 { y = 1; } else { skip; }",
		},
		{
			While{
				Cond: Binary{Left: Var("i"), Op: value.Lt, Right: Val(5)},
				Body: Incr{Name: "i"},
			},
			"while $i < 5 { i++; }",
		},
		{
			Seq{First: Assign{Name: "x", Expr: Val(1)}, Second: Skip{}},
			"x = 1; skip;",
		},
	}
	for _, s := range scenarios {
		assert.Equal(t, s.expected, s.node.String())
	}
}

func TestBlock(t *testing.T) {
	assert.Equal(t, Skip{}, Block())
	assert.Equal(t, Skip{}, Block(Skip{}))

	a := Assign{Name: "a", Expr: Val(1)}
	b := Assign{Name: "b", Expr: Val(2)}
	c := Assign{Name: "c", Expr: Val(3)}
	assert.Equal(t, Statement(a), Block(a))
	assert.Equal(t, Statement(Seq{First: a, Second: b}), Block(a, b))
	assert.Equal(t,
		Statement(Seq{First: a, Second: Seq{First: b, Second: c}}),
		Block(a, b, c),
	)
}
