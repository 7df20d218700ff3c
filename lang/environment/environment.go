// Package environment implements lumen's lexically scoped variable
// bindings: a parent-pointer tree of frames, each mapping names to values,
// walked outward on lookup and assignment.
package environment

import "github.com/mna/lumen/lang/object"

// binding pairs a value with whether it was declared const, so Assign can
// reject writes to it.
type binding struct {
	value    object.Value
	constant bool
}

// Environment is one lexical scope frame: function bodies, block statements
// (if/while/for bodies), and the top-level program each get one, chained to
// their enclosing scope via parent.
type Environment struct {
	parent *Environment
	vars   map[string]binding
}

// New returns a fresh top-level environment with no parent, used for the
// global/universe scope.
func New() *Environment {
	return &Environment{vars: make(map[string]binding)}
}

// Child returns a new environment nested inside e, implementing
// object.Env.Child so object.Function can create a call frame without
// importing this package.
func (e *Environment) Child() object.Env {
	return &Environment{parent: e, vars: make(map[string]binding)}
}

// NewChild is Child with a concrete *Environment return type, for callers in
// package eval that need the concrete type (e.g. to pass loop-body blocks
// their own scope).
func (e *Environment) NewChild() *Environment {
	return &Environment{parent: e, vars: make(map[string]binding)}
}

// Get resolves name by walking outward from e, returning (nil, false) if no
// enclosing scope defines it.
func (e *Environment) Get(name string) (object.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.vars[name]; ok {
			return b.value, true
		}
	}
	return nil, false
}

// Define introduces a new binding in e's own scope (not an enclosing one),
// shadowing any binding of the same name in an outer scope. Redeclaring a
// name already defined in this exact scope is an error; shadowing it from a
// nested child scope is not.
func (e *Environment) Define(name string, v object.Value, constant bool) error {
	if _, ok := e.vars[name]; ok {
		return object.NewError(object.KindAssignment, 0, "%s already declared", name)
	}
	e.vars[name] = binding{value: v, constant: constant}
	return nil
}

// Assign resolves name by walking outward from e and updates its value in
// whichever scope defines it. It fails if name is undefined anywhere in the
// chain, or if it was declared const.
func (e *Environment) Assign(name string, v object.Value) error {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.vars[name]; ok {
			if b.constant {
				return object.NewError(object.KindAssignment, 0, "cannot assign to constant %s", name)
			}
			env.vars[name] = binding{value: v, constant: false}
			return nil
		}
	}
	return object.NewError(object.KindName, 0, "undefined name: %s", name)
}

var _ object.Env = (*Environment)(nil)
