package interpreter

import (
	"fmt"

	"imp/engine/ast"
	"imp/engine/core"
	"imp/lib/value"
)

// Interpreter evaluates core statements against an environment. It
// implements both the expression visitor and the core statement
// visitor; statement effects thread through the held Env.
type Interpreter struct {
	env    *Env
	budget Budget
	stats  *Stats
}

var _ ast.VisitorValue = (*Interpreter)(nil)
var _ core.Visitor = (*Interpreter)(nil)

// NewInterpreter creates an interpreter over env; a nil env starts from
// the default environment where every variable reads as zero.
func NewInterpreter(env *Env, budget Budget) *Interpreter {
	if env == nil {
		env = NewEnv(nil)
	}
	return &Interpreter{
		env:    env,
		budget: budget,
		stats:  &Stats{},
	}
}

// Env returns the environment the interpreter threads effects through.
func (i *Interpreter) Env() *Env {
	return i.env
}

// Stats exposes the live execution counters.
func (i *Interpreter) Stats() *Stats {
	return i.stats
}

// Run interprets program and returns the final environment. The only
// runtime failures are division by zero and, when a budget is set,
// budget exhaustion.
func (i *Interpreter) Run(program core.Statement) (*Env, error) {
	if err := program.Accept(i); err != nil {
		return nil, err
	}
	return i.env, nil
}

// Eval evaluates an expression against the current environment without
// touching it.
func (i *Interpreter) Eval(e ast.Expr) (value.Int, error) {
	return e.AcceptValue(i)
}

func (i *Interpreter) step() error {
	steps := i.stats.Steps.Inc()
	if max, ok := i.budget.MaxSteps.Get(); ok && steps > max {
		return fmt.Errorf("%w: %d statements", ErrBudgetExceeded, max)
	}
	return nil
}

func (i *Interpreter) VisitVar(name string) (value.Int, error) {
	return i.env.Lookup(name), nil
}

func (i *Interpreter) VisitVal(n value.Int) (value.Int, error) {
	return n, nil
}

func (i *Interpreter) VisitBinary(left ast.Expr, op value.Op, right ast.Expr) (value.Int, error) {
	l, err := left.AcceptValue(i)
	if err != nil {
		return 0, err
	}
	r, err := right.AcceptValue(i)
	if err != nil {
		return 0, err
	}
	return value.Apply(op, l, r)
}

func (i *Interpreter) VisitAssign(name string, expr ast.Expr) error {
	if err := i.step(); err != nil {
		return err
	}
	v, err := expr.AcceptValue(i)
	if err != nil {
		return err
	}
	i.env.Define(name, v)
	return nil
}

func (i *Interpreter) VisitIf(cond ast.Expr, then, els core.Statement) error {
	if err := i.step(); err != nil {
		return err
	}
	c, err := cond.AcceptValue(i)
	if err != nil {
		return err
	}
	if c.Truthy() {
		return then.Accept(i)
	}
	return els.Accept(i)
}

// VisitWhile re-tests the condition after every body run. The loop is
// an explicit Go loop rather than recursion on the tree, so long-running
// programs do not grow the stack. A condition that never reaches zero
// loops forever unless a budget is set.
func (i *Interpreter) VisitWhile(cond ast.Expr, body core.Statement) error {
	for {
		if err := i.step(); err != nil {
			return err
		}
		c, err := cond.AcceptValue(i)
		if err != nil {
			return err
		}
		if !c.Truthy() {
			return nil
		}
		i.stats.Iterations.Inc()
		if err := body.Accept(i); err != nil {
			return err
		}
	}
}

func (i *Interpreter) VisitSeq(first, second core.Statement) error {
	if err := first.Accept(i); err != nil {
		return err
	}
	return second.Accept(i)
}

func (i *Interpreter) VisitSkip() error {
	return i.step()
}
