package core

import "fmt"

func (a Assign) String() string {
	return fmt.Sprintf("%s = %s;", a.Name, a.Expr)
}

func (c If) String() string {
	return fmt.Sprintf("if %s { %s } else { %s }", c.Cond, c.Then, c.Else)
}

func (w While) String() string {
	return fmt.Sprintf("while %s { %s }", w.Cond, w.Body)
}

func (s Seq) String() string {
	return fmt.Sprintf("%s %s", s.First, s.Second)
}

func (Skip) String() string {
	return "skip;"
}
