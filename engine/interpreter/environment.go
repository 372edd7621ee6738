package interpreter

import (
	"sort"

	"github.com/samber/lo"

	"imp/lib/value"
)

// Env maps variable names to integer values. Lookup walks the parent
// chain and bottoms out at zero: every name is implicitly bound to 0
// until assigned.
type Env struct {
	parent *Env
	table  map[string]value.Int
}

func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		table:  make(map[string]value.Int),
	}
}

// Define binds name in the current scope, shadowing any parent binding.
func (e *Env) Define(name string, v value.Int) {
	e.table[name] = v
}

// Lookup resolves name through the scope chain, defaulting to zero.
func (e *Env) Lookup(name string) value.Int {
	if ret, ok := e.table[name]; ok {
		return ret
	}
	if e.parent == nil {
		return value.Int(0)
	}
	return e.parent.Lookup(name)
}

// PushEnv creates an environment that is child of the caller
func (e *Env) PushEnv() *Env {
	return NewEnv(e)
}

// Names lists every explicitly bound name in the scope chain, sorted.
func (e *Env) Names() []string {
	seen := make(map[string]struct{})
	for env := e; env != nil; env = env.parent {
		for k := range env.table {
			seen[k] = struct{}{}
		}
	}
	names := lo.Keys(seen)
	sort.Strings(names)
	return names
}
