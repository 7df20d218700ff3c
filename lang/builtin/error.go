package builtin

import (
	"github.com/mna/lumen/lang/object"
	"github.com/mna/lumen/lang/token"
)

func init() {
	register("error", builtinError)
	register("assert", builtinAssert)
}

// builtinError constructs an Error value directly, without raising it as a
// propagating failure: "error(msg)" hands the caller an inspectable value,
// the same way the language lets a program build and return its own errors.
func builtinError(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("error", args, 1); err != nil {
		return nil, err
	}
	msg, err := asString("error", args[0])
	if err != nil {
		return nil, err
	}
	return object.NewError(object.KindRuntime, token.NoPos, "%s", msg), nil
}

func builtinAssert(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgRange("assert", args, 1, 2); err != nil {
		return nil, err
	}
	if args[0].Truth() {
		return object.NullValue, nil
	}
	msg := "assertion failed"
	if len(args) == 2 {
		m, err := asString("assert", args[1])
		if err != nil {
			return nil, err
		}
		msg = m
	}
	return object.NewError(object.KindAssertion, token.NoPos, "%s", msg), nil
}
