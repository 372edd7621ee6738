package interpreter

import (
	"errors"

	"github.com/samber/mo"
	"go.uber.org/atomic"
)

// ErrBudgetExceeded is returned when a budgeted interpreter runs out of
// steps. Callers can test for it with errors.Is.
var ErrBudgetExceeded = errors.New("step budget exceeded")

// Budget bounds execution for diagnostics. The zero value leaves
// execution unbounded, which is the language's own semantics: a while
// loop whose condition never reaches zero runs forever.
type Budget struct {
	MaxSteps mo.Option[int64]
}

// Steps returns a budget capped at n statement executions.
func Steps(n int64) Budget {
	return Budget{MaxSteps: mo.Some(n)}
}

// Stats counts work done by a running interpreter. Counters are atomic
// so a monitoring goroutine can read them while a program runs.
type Stats struct {
	Steps      atomic.Int64
	Iterations atomic.Int64
}
