package builtin

import (
	"strings"

	"github.com/mna/lumen/lang/object"
	"github.com/mna/lumen/lang/token"
)

func init() {
	register("split", builtinSplit)
	register("replace", builtinReplace)
	register("trim", builtinTrim)
	register("upper", builtinUpper)
	register("lower", builtinLower)
	register("substr", builtinSubstr)
	register("indexOf", builtinIndexOf)
	register("contains", builtinContains)
	register("charAt", builtinCharAt)
}

func builtinSplit(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("split", args, 2); err != nil {
		return nil, err
	}
	s, err := asString("split", args[0])
	if err != nil {
		return nil, err
	}
	delim, err := asString("split", args[1])
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, delim)
	elems := make([]object.Value, len(parts))
	for i, p := range parts {
		elems[i] = object.String(p)
	}
	return object.NewArray(elems), nil
}

func builtinReplace(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("replace", args, 3); err != nil {
		return nil, err
	}
	s, err := asString("replace", args[0])
	if err != nil {
		return nil, err
	}
	old, err := asString("replace", args[1])
	if err != nil {
		return nil, err
	}
	new, err := asString("replace", args[2])
	if err != nil {
		return nil, err
	}
	return object.String(strings.ReplaceAll(s, old, new)), nil
}

func builtinTrim(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("trim", args, 1); err != nil {
		return nil, err
	}
	s, err := asString("trim", args[0])
	if err != nil {
		return nil, err
	}
	return object.String(strings.TrimSpace(s)), nil
}

func builtinUpper(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("upper", args, 1); err != nil {
		return nil, err
	}
	s, err := asString("upper", args[0])
	if err != nil {
		return nil, err
	}
	return object.String(strings.ToUpper(s)), nil
}

func builtinLower(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("lower", args, 1); err != nil {
		return nil, err
	}
	s, err := asString("lower", args[0])
	if err != nil {
		return nil, err
	}
	return object.String(strings.ToLower(s)), nil
}

func builtinSubstr(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgRange("substr", args, 2, 3); err != nil {
		return nil, err
	}
	s, err := asString("substr", args[0])
	if err != nil {
		return nil, err
	}
	start, err := asInt("substr", args[1])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	from := normalizeRange(int(start), len(runes))
	to := len(runes)
	if len(args) == 3 {
		length, err := asInt("substr", args[2])
		if err != nil {
			return nil, err
		}
		to = from + int(length)
	}
	to = normalizeRange(to, len(runes))
	if to < from {
		to = from
	}
	return object.String(string(runes[from:to])), nil
}

func builtinIndexOf(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("indexOf", args, 2); err != nil {
		return nil, err
	}
	s, err := asString("indexOf", args[0])
	if err != nil {
		return nil, err
	}
	sub, err := asString("indexOf", args[1])
	if err != nil {
		return nil, err
	}
	byteIdx := strings.Index(s, sub)
	if byteIdx < 0 {
		return object.Integer(-1), nil
	}
	return object.Integer(len([]rune(s[:byteIdx]))), nil
}

func builtinContains(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("contains", args, 2); err != nil {
		return nil, err
	}
	s, err := asString("contains", args[0])
	if err != nil {
		return nil, err
	}
	sub, err := asString("contains", args[1])
	if err != nil {
		return nil, err
	}
	return object.Boolean(strings.Contains(s, sub)), nil
}

func builtinCharAt(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("charAt", args, 2); err != nil {
		return nil, err
	}
	s, err := asString("charAt", args[0])
	if err != nil {
		return nil, err
	}
	i, err := asInt("charAt", args[1])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	pos := i
	if pos < 0 {
		pos += int64(len(runes))
	}
	if pos < 0 || pos >= int64(len(runes)) {
		return nil, object.NewError(object.KindIndex, token.NoPos, "charAt: index out of range: %d", i)
	}
	return object.String(runes[pos]), nil
}
