// Package builtin implements the concrete behavior behind every name in
// lumen's built-in function surface, and the registry that binds them into
// an evaluator's global environment.
package builtin

import (
	"github.com/mna/lumen/lang/object"
	"github.com/mna/lumen/lang/token"
)

// registry holds every built-in by name, populated once at init time: a
// read-only name->value table consulted when the global scope is built.
var registry = map[string]object.BuiltinFn{}

func register(name string, fn object.BuiltinFn) {
	registry[name] = fn
}

// Register defines every built-in in env, the global scope an Evaluator
// runs a program against.
func Register(env interface {
	Define(name string, v object.Value, constant bool) error
}) error {
	for name, fn := range registry {
		bf := &object.BuiltinFunction{Name: name, Fn: fn}
		if err := env.Define(name, bf, true); err != nil {
			return err
		}
	}
	return nil
}

func argErrorf(format string, args ...interface{}) error {
	return object.NewError(object.KindArgument, token.NoPos, format, args...)
}

func typeErrorf(format string, args ...interface{}) error {
	return object.NewError(object.KindType, token.NoPos, format, args...)
}

func wantArgs(name string, args []object.Value, n int) error {
	if len(args) != n {
		return argErrorf("%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func wantArgRange(name string, args []object.Value, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return argErrorf("%s expects between %d and %d argument(s), got %d", name, min, max, len(args))
	}
	return nil
}

func asString(name string, v object.Value) (string, error) {
	s, ok := v.(object.String)
	if !ok {
		return "", typeErrorf("%s expects a string, got %s", name, v.Type())
	}
	return string(s), nil
}

func asInt(name string, v object.Value) (int64, error) {
	i, ok := v.(object.Integer)
	if !ok {
		return 0, typeErrorf("%s expects an int, got %s", name, v.Type())
	}
	return int64(i), nil
}

func asFloat(name string, v object.Value) (float64, error) {
	switch x := v.(type) {
	case object.Integer:
		return float64(x), nil
	case object.Float:
		return float64(x), nil
	default:
		return 0, typeErrorf("%s expects a number, got %s", name, v.Type())
	}
}

func asArray(name string, v object.Value) (*object.Array, error) {
	a, ok := v.(*object.Array)
	if !ok {
		return nil, typeErrorf("%s expects an array, got %s", name, v.Type())
	}
	return a, nil
}

func asHash(name string, v object.Value) (*object.Hash, error) {
	h, ok := v.(*object.Hash)
	if !ok {
		return nil, typeErrorf("%s expects a hash, got %s", name, v.Type())
	}
	return h, nil
}

// inspect renders v the way print/println and join do: a string as its raw
// text (no quotes), everything else via its own String().
func inspect(v object.Value) string {
	if s, ok := v.(object.String); ok {
		return string(s)
	}
	return v.String()
}
