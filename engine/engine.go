// Package engine is the top-level entry point: it desugars a surface
// program to the core grammar and interprets it to a final environment.
package engine

import (
	"context"

	"go.uber.org/zap"

	"imp/engine/ast"
	"imp/engine/desugar"
	"imp/engine/interpreter"
	"imp/lib/timer"
	"imp/lib/value"
)

// Executor runs surface programs end to end.
type Executor struct {
	logger *zap.Logger
	budget interpreter.Budget
}

// NewExecutor creates an executor. A nil logger disables logging; the
// zero budget leaves execution unbounded, matching the language's own
// semantics.
func NewExecutor(logger *zap.Logger, budget interpreter.Budget) Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Executor{logger: logger, budget: budget}
}

// Exec desugars and runs program. args seed a base environment; the
// program runs in a child scope on top of it, so program writes shadow
// the seeds without mutating them. The returned environment resolves
// both. A program whose loops never terminate blocks the caller
// indefinitely unless the executor carries a budget.
func (ex Executor) Exec(ctx context.Context, program ast.Statement, args map[string]value.Int) (*interpreter.Env, error) {
	defer timer.Start("engine.exec").Stop()
	lowered := desugar.Desugar(program)

	base := interpreter.NewEnv(nil)
	for name, v := range args {
		base.Define(name, v)
	}
	in := interpreter.NewInterpreter(base.PushEnv(), ex.budget)

	resch := make(chan *interpreter.Env, 1)
	errch := make(chan error, 1)
	go func() {
		env, err := in.Run(lowered)
		if err != nil {
			errch <- err
		} else {
			resch <- env
		}
	}()
	select {
	case env := <-resch:
		ex.logger.Debug("program finished",
			zap.Int64("steps", in.Stats().Steps.Load()),
			zap.Int64("iterations", in.Stats().Iterations.Load()),
		)
		return env, nil
	case err := <-errch:
		ex.logger.Error("program failed", zap.Error(err))
		return nil, err
	}
}
