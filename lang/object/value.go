// Package object defines the runtime value representation produced and
// consumed by the evaluator: the segregated Value interface and its
// optional capabilities, plus the concrete primitive, collection, function,
// and class/instance types.
package object

import "github.com/mna/lumen/lang/token"

// Value is the interface implemented by every value the evaluator can
// produce: primitives, collections, functions, classes and instances.
type Value interface {
	// String returns the value's display representation, as printed by the
	// print/println builtins and the REPL.
	String() string
	// Type returns a short, lowercase name for the value's type, used in
	// error messages (e.g. "int", "string", "array").
	Type() string
	// Truth returns the value's boolean interpretation, used by if/while/for
	// conditions and the "!" operator.
	Truth() bool
}

// Side indicates whether a value is the left or right operand of a binary
// operator, needed because a dunder method dispatch differs for reflected
// operators: when the left operand cannot handle the operator, the right
// operand's dunder for the same operator is tried (the mirrored one for
// < <= > >=), e.g. 5 + x calls x.__add__(5).
type Side bool

const (
	Left  Side = false
	Right Side = true
)

// HasBinary is implemented by values that participate in a binary operator
// (+ - * / // % == != < <= > >=) as either operand; && and || short-circuit
// in the evaluator and never reach Binary. An implementation
// declines to handle the operator by returning (nil, false).
type HasBinary interface {
	Value
	Binary(op token.Token, other Value, side Side) (Value, bool, error)
}

// HasUnary is implemented by values that support a unary operator (- !). An
// implementation declines to handle the operator by returning (nil, false).
type HasUnary interface {
	Value
	Unary(op token.Token) (Value, bool, error)
}

// HasAttrs is implemented by values whose fields or methods may be read by a
// property expression (x.f).
type HasAttrs interface {
	Value
	// Attr returns the named field or method, or (nil, false) if it doesn't
	// exist.
	Attr(name string) (Value, bool)
}

// HasSetField is implemented by values whose fields may be written by a
// property assignment (x.f = v).
type HasSetField interface {
	HasAttrs
	SetField(name string, v Value) error
}

// Indexable is implemented by values that support x[i] read access.
type Indexable interface {
	Value
	Index(i Value) (Value, error)
}

// HasSetIndex is implemented by values that support x[i] = v write access.
type HasSetIndex interface {
	Indexable
	SetIndex(i, v Value) error
}

// Iterator produces a sequence of values from an Iterable.
type Iterator interface {
	// Next reports whether there is a value to consume, and if so stores it
	// through p and advances the iterator.
	Next(p *Value) bool
}

// Iterable is implemented by values that can produce an Iterator over their
// elements (strings, arrays, hashes). The evaluator and the higher-order
// builtins do not use it; they read Elems/Keys directly.
type Iterable interface {
	Value
	Iterate() Iterator
}

// Mapping is implemented by values that associate keys with values (Hash).
type Mapping interface {
	Value
	Get(key Value) (Value, bool, error)
	Set(key, v Value) error
	Delete(key Value) (Value, bool, error)
	Len() int
	Keys() []Value
}

// Callable is a marker implemented by every value that may appear in call
// position (fn(...)): Function, BuiltinFunction, BoundMethod, and Class
// (whose call constructs a new Instance). The evaluator dispatches on the
// concrete type to actually invoke it; the interface exists so the
// evaluator can reject a call to a non-callable value before the type
// switch.
type Callable interface {
	Value
	callable()
}

// Invoker lets a builtin call back into user-defined code, e.g. the "map"
// and "filter" array builtins invoking a callback argument. It is
// implemented by the evaluator; package object only depends on the
// interface, avoiding an import cycle with package eval.
type Invoker interface {
	Invoke(fn Value, args []Value) (Value, error)
}

// Env is the interface a Function's closure environment must satisfy. It is
// declared here, rather than imported from package environment, so that
// object.Function can hold a reference to its defining scope without
// package object importing package environment (which itself holds
// object.Value instances) and creating an import cycle.
type Env interface {
	Get(name string) (Value, bool)
	Assign(name string, v Value) error
	Define(name string, v Value, constant bool) error
	Child() Env
}

// Freezable is implemented by mutable collection types that can be made
// immutable by calling Freeze from Go. No builtin or language construct
// calls it.
type Freezable interface {
	Value
	Freeze()
	Frozen() bool
}
