package ast

// Statement is the surface statement grammar. Programs are built as
// literal trees of these nodes; the desugarer lowers them to the core
// grammar before evaluation.
type Statement interface {
	isStatement()
	String() string
}

var _ Statement = Assign{}
var _ Statement = Incr{}
var _ Statement = If{}
var _ Statement = While{}
var _ Statement = For{}
var _ Statement = Seq{}
var _ Statement = Skip{}

// Assign binds Name to the value of Expr.
type Assign struct {
	Name string
	Expr Expr
}

// Incr adds one to the named variable.
type Incr struct {
	Name string
}

// If runs Then when Cond is nonzero, Else otherwise.
type If struct {
	Cond Expr
	Then Statement
	Else Statement
}

// While re-tests Cond before every run of Body; zero iterations when
// Cond starts at zero.
type While struct {
	Cond Expr
	Body Statement
}

// For runs Init once, then repeatedly tests Cond, runs Body and then
// Update. Init and Update are ordinary statements.
type For struct {
	Init   Statement
	Cond   Expr
	Update Statement
	Body   Statement
}

// Seq runs First, then Second. Second observes First's effects.
type Seq struct {
	First  Statement
	Second Statement
}

// Skip does nothing.
type Skip struct{}

func (Assign) isStatement() {}
func (Incr) isStatement()   {}
func (If) isStatement()     {}
func (While) isStatement()  {}
func (For) isStatement()    {}
func (Seq) isStatement()    {}
func (Skip) isStatement()   {}

// Block folds statements into a right-nested Seq. An empty block is Skip.
func Block(stmts ...Statement) Statement {
	if len(stmts) == 0 {
		return Skip{}
	}
	ret := stmts[len(stmts)-1]
	for i := len(stmts) - 2; i >= 0; i-- {
		ret = Seq{First: stmts[i], Second: ret}
	}
	return ret
}
