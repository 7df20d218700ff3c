package eval

import (
	"fmt"

	"github.com/mna/lumen/lang/environment"
	"github.com/mna/lumen/lang/object"
	"github.com/mna/lumen/lang/token"
)

// call dispatches a call expression's already-evaluated callee and
// arguments to the right concrete Callable implementation.
func (e *Evaluator) call(callee object.Value, args []object.Value, pos token.Pos) (object.Value, error) {
	if _, ok := callee.(object.Callable); !ok {
		return nil, e.errorf(pos, object.KindType, "%s is not callable", callee.Type())
	}

	e.callDepth++
	defer func() { e.callDepth-- }()
	if e.callDepth > maxCallDepth {
		return nil, e.errorf(pos, object.KindRuntime, "call stack too deep (max %d)", maxCallDepth)
	}

	switch fn := callee.(type) {
	case *object.BuiltinFunction:
		v, err := fn.Fn(e, args)
		if err != nil {
			if oerr, ok := err.(*object.Error); ok {
				return nil, oerr
			}
			return nil, e.errorf(pos, object.KindRuntime, "%s: %v", fn.Name, err)
		}
		return v, nil

	case *object.Function:
		return e.callFunction(fn, args, pos, "")

	case *object.BoundMethod:
		return e.callBoundMethod(fn, args, pos)

	case *object.Class:
		return e.instantiate(fn, args, pos)

	default:
		return nil, e.errorf(pos, object.KindType, "%s is not callable", callee.Type())
	}
}

func (e *Evaluator) callFunction(fn *object.Function, args []object.Value, pos token.Pos, name string) (object.Value, error) {
	if len(args) != len(fn.Params) {
		label := name
		if label == "" {
			label = fn.Name
		}
		return nil, e.errorf(pos, object.KindArgument,
			"%s expects %d argument(s), got %d", callLabel(label), len(fn.Params), len(args))
	}

	callEnv := newChildOf(fn.Env)
	for i, p := range fn.Params {
		if err := callEnv.Define(p.Lit, args[i], false); err != nil {
			return nil, err
		}
	}

	frameName := fn.Name
	if frameName == "" {
		frameName = "<anonymous>"
	}
	e.callStack = append(e.callStack, object.Frame{FnName: frameName, Pos: pos})
	defer func() { e.callStack = e.callStack[:len(e.callStack)-1] }()

	result, err := e.evalBlock(fn.Body, callEnv)
	if err != nil {
		if sig, ok := err.(*signal); ok {
			if sig.kind == signalReturn {
				return sig.value, nil
			}
			return nil, e.errorf(pos, object.KindRuntime, "%s outside of a loop", signalName(sig.kind))
		}
		return nil, err
	}
	return result, nil
}

func callLabel(name string) string {
	if name == "" {
		return "function"
	}
	return fmt.Sprintf("function %q", name)
}

func (e *Evaluator) callBoundMethod(bm *object.BoundMethod, args []object.Value, pos token.Pos) (object.Value, error) {
	callEnv := newChildOf(bm.Method.Env)
	callEnv.Define("this", bm.Receiver, true)
	if bm.Owner != nil {
		callEnv.Define("__class__", bm.Owner, true)
	}
	fn := &object.Function{Name: bm.Method.Name, Params: bm.Method.Params, Body: bm.Method.Body, Env: callEnv}
	return e.callFunction(fn, args, pos, bm.Method.Name)
}

// instantiate constructs a new Instance of cls, running its constructor (or
// its nearest ancestor's, if cls doesn't define one) with "this" bound to
// the new instance.
func (e *Evaluator) instantiate(cls *object.Class, args []object.Value, pos token.Pos) (object.Value, error) {
	inst := object.NewInstance(cls)

	ctor, ctorClass := lookupConstructor(cls)
	if ctor == nil {
		if len(args) != 0 {
			return nil, e.errorf(pos, object.KindInstantiation,
				"class %s has no constructor, expects 0 arguments, got %d", cls.Name, len(args))
		}
		return inst, nil
	}

	callEnv := newChildOf(ctor.Env)
	callEnv.Define("this", inst, true)
	callEnv.Define("__class__", ctorClass, true)
	fn := &object.Function{Name: "constructor", Params: ctor.Params, Body: ctor.Body, Env: callEnv}
	if _, err := e.callFunction(fn, args, pos, cls.Name+".constructor"); err != nil {
		return nil, err
	}
	return inst, nil
}

func lookupConstructor(cls *object.Class) (*object.Function, *object.Class) {
	for c := cls; c != nil; c = c.Parent {
		if c.Constructor != nil {
			return c.Constructor, c
		}
	}
	return nil, nil
}

// newChildOf opens a new scope nested in env. Every object.Env in this
// evaluator is backed by *environment.Environment, so the type assertion
// always succeeds.
func newChildOf(env object.Env) *environment.Environment {
	return env.Child().(*environment.Environment)
}
