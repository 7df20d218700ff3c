package builtin

import "github.com/mna/lumen/lang/object"

// Higher-order array/hash built-ins. They are registered as ordinary global
// built-ins and called like any other (map(arr, fn)); arrays and hashes have
// no methods of these names. A lumen-defined callback is called back through
// the Invoker interface, so package builtin does not import package eval.

func init() {
	register("forEach", builtinForEach)
	register("map", builtinMap)
	register("filter", builtinFilter)
	register("reduce", builtinReduce)
}

func builtinForEach(inv object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("forEach", args, 2); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *object.Array:
		for i, e := range v.Elems() {
			if _, err := inv.Invoke(args[1], []object.Value{e, object.Integer(i)}); err != nil {
				return nil, err
			}
		}
	case *object.Hash:
		for _, k := range v.Keys() {
			val, _, _ := v.Get(k)
			if _, err := inv.Invoke(args[1], []object.Value{k, val}); err != nil {
				return nil, err
			}
		}
	default:
		return nil, typeErrorf("forEach: unsupported type %s", v.Type())
	}
	return object.NullValue, nil
}

func builtinMap(inv object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("map", args, 2); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *object.Array:
		out := make([]object.Value, v.Len())
		for i, e := range v.Elems() {
			r, err := inv.Invoke(args[1], []object.Value{e})
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return object.NewArray(out), nil
	case *object.Hash:
		out := object.NewHash(v.Len())
		for _, k := range v.Keys() {
			val, _, _ := v.Get(k)
			r, err := inv.Invoke(args[1], []object.Value{k, val})
			if err != nil {
				return nil, err
			}
			if err := out.Set(k, r); err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return nil, typeErrorf("map: unsupported type %s", v.Type())
	}
}

func builtinFilter(inv object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("filter", args, 2); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *object.Array:
		var out []object.Value
		for _, e := range v.Elems() {
			keep, err := inv.Invoke(args[1], []object.Value{e})
			if err != nil {
				return nil, err
			}
			if keep.Truth() {
				out = append(out, e)
			}
		}
		return object.NewArray(out), nil
	case *object.Hash:
		out := object.NewHash(v.Len())
		for _, k := range v.Keys() {
			val, _, _ := v.Get(k)
			keep, err := inv.Invoke(args[1], []object.Value{k, val})
			if err != nil {
				return nil, err
			}
			if keep.Truth() {
				if err := out.Set(k, val); err != nil {
					return nil, err
				}
			}
		}
		return out, nil
	default:
		return nil, typeErrorf("filter: unsupported type %s", v.Type())
	}
}

func builtinReduce(inv object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgRange("reduce", args, 2, 3); err != nil {
		return nil, err
	}
	a, err := asArray("reduce", args[0])
	if err != nil {
		return nil, err
	}
	elems := a.Elems()

	var acc object.Value
	start := 0
	if len(args) == 3 {
		acc = args[2]
	} else {
		if len(elems) == 0 {
			return nil, argErrorf("reduce: empty array requires an initial value")
		}
		acc = elems[0]
		start = 1
	}

	for i := start; i < len(elems); i++ {
		r, err := inv.Invoke(args[1], []object.Value{acc, elems[i]})
		if err != nil {
			return nil, err
		}
		acc = r
	}
	return acc, nil
}
