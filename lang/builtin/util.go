package builtin

import "github.com/mna/lumen/lang/object"

func init() {
	register("range", builtinRange)
	register("keys", builtinKeys)
	register("values", builtinValues)
}

func builtinRange(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgRange("range", args, 1, 3); err != nil {
		return nil, err
	}

	var start, end, step int64 = 0, 0, 1
	switch len(args) {
	case 1:
		e, err := asInt("range", args[0])
		if err != nil {
			return nil, err
		}
		end = e
	case 2:
		s, err := asInt("range", args[0])
		if err != nil {
			return nil, err
		}
		e, err := asInt("range", args[1])
		if err != nil {
			return nil, err
		}
		start, end = s, e
	case 3:
		s, err := asInt("range", args[0])
		if err != nil {
			return nil, err
		}
		e, err := asInt("range", args[1])
		if err != nil {
			return nil, err
		}
		st, err := asInt("range", args[2])
		if err != nil {
			return nil, err
		}
		start, end, step = s, e, st
	}

	if step == 0 {
		return nil, argErrorf("range: step must not be 0")
	}

	var elems []object.Value
	if step > 0 {
		for i := start; i < end; i += step {
			elems = append(elems, object.Integer(i))
		}
	} else {
		for i := start; i > end; i += step {
			elems = append(elems, object.Integer(i))
		}
	}
	return object.NewArray(elems), nil
}

func builtinKeys(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("keys", args, 1); err != nil {
		return nil, err
	}
	h, err := asHash("keys", args[0])
	if err != nil {
		return nil, err
	}
	return object.NewArray(h.Keys()), nil
}

func builtinValues(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("values", args, 1); err != nil {
		return nil, err
	}
	h, err := asHash("values", args[0])
	if err != nil {
		return nil, err
	}
	keys := h.Keys()
	vals := make([]object.Value, len(keys))
	for i, k := range keys {
		v, _, _ := h.Get(k)
		vals[i] = v
	}
	return object.NewArray(vals), nil
}
