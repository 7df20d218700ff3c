package builtin

import (
	"strings"

	"github.com/mna/lumen/lang/object"
)

func init() {
	register("first", builtinFirst)
	register("last", builtinLast)
	register("rest", builtinRest)
	register("push", builtinPush)
	register("pop", builtinPop)
	register("slice", builtinSlice)
	register("concat", builtinConcat)
	register("reverse", builtinReverse)
	register("join", builtinJoin)
}

func builtinFirst(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("first", args, 1); err != nil {
		return nil, err
	}
	a, err := asArray("first", args[0])
	if err != nil {
		return nil, err
	}
	if a.Len() == 0 {
		return object.NullValue, nil
	}
	return a.Elems()[0], nil
}

func builtinLast(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("last", args, 1); err != nil {
		return nil, err
	}
	a, err := asArray("last", args[0])
	if err != nil {
		return nil, err
	}
	if a.Len() == 0 {
		return object.NullValue, nil
	}
	return a.Elems()[a.Len()-1], nil
}

func builtinRest(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("rest", args, 1); err != nil {
		return nil, err
	}
	a, err := asArray("rest", args[0])
	if err != nil {
		return nil, err
	}
	if a.Len() == 0 {
		return object.NewArray(nil), nil
	}
	rest := append([]object.Value(nil), a.Elems()[1:]...)
	return object.NewArray(rest), nil
}

// builtinPush returns a new array with e appended, leaving a untouched, so
// the value stored under a const binding is never mutated through this
// builtin.
func builtinPush(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("push", args, 2); err != nil {
		return nil, err
	}
	a, err := asArray("push", args[0])
	if err != nil {
		return nil, err
	}
	elems := append([]object.Value(nil), a.Elems()...)
	elems = append(elems, args[1])
	return object.NewArray(elems), nil
}

func builtinPop(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("pop", args, 1); err != nil {
		return nil, err
	}
	a, err := asArray("pop", args[0])
	if err != nil {
		return nil, err
	}
	if a.Len() == 0 {
		return nil, typeErrorf("pop: empty array")
	}
	elems := append([]object.Value(nil), a.Elems()[:a.Len()-1]...)
	return object.NewArray(elems), nil
}

func normalizeRange(pos, length int) int {
	if pos < 0 {
		pos += length
	}
	if pos < 0 {
		pos = 0
	}
	if pos > length {
		pos = length
	}
	return pos
}

func builtinSlice(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgRange("slice", args, 2, 3); err != nil {
		return nil, err
	}
	a, err := asArray("slice", args[0])
	if err != nil {
		return nil, err
	}
	start, err := asInt("slice", args[1])
	if err != nil {
		return nil, err
	}
	end := int64(a.Len())
	if len(args) == 3 {
		end, err = asInt("slice", args[2])
		if err != nil {
			return nil, err
		}
	}

	length := a.Len()
	from := normalizeRange(int(start), length)
	to := normalizeRange(int(end), length)
	if to < from {
		to = from
	}
	return object.NewArray(append([]object.Value(nil), a.Elems()[from:to]...)), nil
}

func builtinConcat(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("concat", args, 2); err != nil {
		return nil, err
	}
	a, err := asArray("concat", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asArray("concat", args[1])
	if err != nil {
		return nil, err
	}
	combined := make([]object.Value, 0, a.Len()+b.Len())
	combined = append(combined, a.Elems()...)
	combined = append(combined, b.Elems()...)
	return object.NewArray(combined), nil
}

func builtinReverse(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("reverse", args, 1); err != nil {
		return nil, err
	}
	a, err := asArray("reverse", args[0])
	if err != nil {
		return nil, err
	}
	elems := a.Elems()
	reversed := make([]object.Value, len(elems))
	for i, v := range elems {
		reversed[len(elems)-1-i] = v
	}
	return object.NewArray(reversed), nil
}

func builtinJoin(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgRange("join", args, 1, 2); err != nil {
		return nil, err
	}
	a, err := asArray("join", args[0])
	if err != nil {
		return nil, err
	}
	sep := ","
	if len(args) == 2 {
		sep, err = asString("join", args[1])
		if err != nil {
			return nil, err
		}
	}
	parts := make([]string, a.Len())
	for i, v := range a.Elems() {
		parts[i] = inspect(v)
	}
	return object.String(strings.Join(parts, sep)), nil
}
