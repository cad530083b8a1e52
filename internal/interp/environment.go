package interp

import "fmt"

// Environment is a lexical scope: a mapping from identifier text to
// runtime value, plus an optional enclosing environment forming a
// chain, per spec.md §3/§4.3.
//
// Storage is a plain case-sensitive map[string]interface{} — unlike the
// teacher's pkg/ident.Map-backed runtime.Environment, which folds case
// because DWScript identifiers are case-insensitive. Lox identifiers are
// case-sensitive per the grammar in spec.md §6.1, so that folding has no
// home here (see DESIGN.md).
type Environment struct {
	values map[string]interface{}
	outer  *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]interface{})}
}

// NewEnclosedEnvironment creates a child scope of outer — pushed on
// block entry and call entry per spec.md §3.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), outer: outer}
}

// Define inserts into this environment. Redefinition is allowed —
// duplicate-local detection is the resolver's job, not the
// environment's (spec.md §4.3).
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get walks the chain outward looking for name.
func (e *Environment) Get(name string) (interface{}, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Assign walks the chain outward until it finds an existing binding for
// name and overwrites it. It reports failure via ok rather than an
// error type, leaving the "Undefined variable" diagnostic to the caller
// (which has the failing token and line).
func (e *Environment) Assign(name string, value interface{}) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return false
}

// Ancestor returns the environment depth steps up the chain (0 = self).
// Reaching past the root is a resolver/evaluator logic bug, per
// spec.md §4.3 ("Absence there is a logic bug.").
func (e *Environment) Ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		if env.outer == nil {
			panic(fmt.Sprintf("lox: ancestor(%d) walked past the root environment", depth))
		}
		env = env.outer
	}
	return env
}

// GetAt reads name from exactly the environment depth steps up.
func (e *Environment) GetAt(depth int, name string) interface{} {
	v, ok := e.Ancestor(depth).values[name]
	if !ok {
		panic(fmt.Sprintf("lox: resolver recorded depth %d for %q but it is not bound there", depth, name))
	}
	return v
}

// AssignAt writes value into exactly the environment depth steps up.
func (e *Environment) AssignAt(depth int, name string, value interface{}) {
	e.Ancestor(depth).values[name] = value
}

// Names returns the identifiers bound directly in this environment
// (not its ancestors) — used by the REPL's .globals introspection
// command.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	return names
}
