package builtin

import (
	"strconv"
	"strings"

	"github.com/mna/lumen/lang/object"
)

func init() {
	register("len", builtinLen)
	register("type", builtinType)
	register("str", builtinStr)
	register("int", builtinInt)
	register("bool", builtinBool)
}

func builtinLen(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("len", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case object.String:
		return object.Integer(len([]rune(string(v)))), nil
	case *object.Array:
		return object.Integer(v.Len()), nil
	case *object.Hash:
		return object.Integer(v.Len()), nil
	default:
		return nil, typeErrorf("len: unsupported type %s", v.Type())
	}
}

func builtinType(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("type", args, 1); err != nil {
		return nil, err
	}
	return object.String(args[0].Type()), nil
}

func builtinStr(inv object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("str", args, 1); err != nil {
		return nil, err
	}
	if s, ok := inv.(interface{ Stringify(object.Value) (string, error) }); ok {
		text, err := s.Stringify(args[0])
		if err != nil {
			return nil, err
		}
		return object.String(text), nil
	}
	return object.String(args[0].String()), nil
}

func builtinInt(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("int", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case object.Integer:
		return v, nil
	case object.Float:
		return object.Integer(int64(v)), nil
	case object.String:
		n, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
		if err != nil {
			return nil, typeErrorf("int: cannot parse %q as an integer", string(v))
		}
		return object.Integer(n), nil
	default:
		return nil, typeErrorf("int: unsupported type %s", v.Type())
	}
}

func builtinBool(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("bool", args, 1); err != nil {
		return nil, err
	}
	return object.Boolean(args[0].Truth()), nil
}
