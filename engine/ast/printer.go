package ast

import "fmt"

func (r Var) String() string {
	return fmt.Sprintf("$%s", string(r))
}

func (l Val) String() string {
	return fmt.Sprintf("%d", int64(l))
}

func (b Binary) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Op, b.Right)
}

func (a Assign) String() string {
	return fmt.Sprintf("%s = %s;", a.Name, a.Expr)
}

func (n Incr) String() string {
	return fmt.Sprintf("%s++;", n.Name)
}

func (c If) String() string {
	return fmt.Sprintf("if %s { %s } else { %s }", c.Cond, c.Then, c.Else)
}

func (w While) String() string {
	return fmt.Sprintf("while %s { %s }", w.Cond, w.Body)
}

func (f For) String() string {
	return fmt.Sprintf("for (%s %s; %s) { %s }", f.Init, f.Cond, f.Update, f.Body)
}

func (s Seq) String() string {
	return fmt.Sprintf("%s %s", s.First, s.Second)
}

func (Skip) String() string {
	return "skip;"
}
