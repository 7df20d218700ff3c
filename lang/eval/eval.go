// Package eval implements the tree-walking evaluator that executes a parsed
// lumen program directly against its AST, using a lexically scoped
// environment chain for variable bindings.
package eval

import (
	"fmt"

	"github.com/mna/lumen/lang/ast"
	"github.com/mna/lumen/lang/environment"
	"github.com/mna/lumen/lang/object"
	"github.com/mna/lumen/lang/token"
)

// maxCallDepth bounds recursive user-code calls so a runaway recursive
// function fails with a lumen-level error instead of exhausting the Go
// stack.
const maxCallDepth = 1000

// signalKind distinguishes the three non-local control-flow signals a
// statement can raise: return, break, and continue. They are propagated as
// Go errors so the same evalStatement/evalBlock call chain that returns
// ordinary errors also unwinds control flow, without a second return
// channel threaded through every call.
type signalKind int

const (
	signalReturn signalKind = iota
	signalBreak
	signalContinue
)

type signal struct {
	kind  signalKind
	value object.Value // set only for signalReturn
}

func (s *signal) Error() string { return "unhandled control-flow signal" }

// Evaluator executes a parsed program. It implements object.Invoker so
// builtins can call back into user-defined callbacks.
type Evaluator struct {
	file      *token.File
	global    *environment.Environment
	callDepth int
	callStack []object.Frame
}

// New returns an Evaluator that runs programs against global. It does not
// register any builtins; callers do that first with builtin.Register.
func New(file *token.File, global *environment.Environment) *Evaluator {
	return &Evaluator{file: file, global: global}
}

// Global returns the evaluator's top-level environment, so callers (the CLI
// driver, the REPL) can pre-populate builtins or inspect bindings after a
// run.
func (e *Evaluator) Global() *environment.Environment { return e.global }

// Run evaluates every top-level statement of prog in the global
// environment, returning the value of the last statement (null when that
// statement produces no value, e.g. let, const or class, or when prog is
// empty), and stopping at the first error.
func (e *Evaluator) Run(prog *ast.Program) (object.Value, error) {
	var result object.Value = object.NullValue
	for _, stmt := range prog.Stmts {
		v, err := e.evalStatement(stmt, e.global)
		if err != nil {
			if sig, ok := err.(*signal); ok {
				return nil, e.wrapError(object.NewError(object.KindRuntime, 0,
					"%s outside of its enclosing construct", signalName(sig.kind)))
			}
			return nil, err
		}
		result = v
	}
	return result, nil
}

func signalName(k signalKind) string {
	switch k {
	case signalReturn:
		return "return"
	case signalBreak:
		return "break"
	case signalContinue:
		return "continue"
	default:
		return "signal"
	}
}

// Invoke implements object.Invoker, letting builtins call a lumen value as a
// function with the given arguments.
func (e *Evaluator) Invoke(fn object.Value, args []object.Value) (object.Value, error) {
	return e.call(fn, args, token.NoPos)
}

// wrapError turns a plain error into an *object.Error (if it isn't one
// already) carrying the current call stack as its traceback.
func (e *Evaluator) wrapError(err error) *object.Error {
	if oerr, ok := err.(*object.Error); ok {
		return oerr
	}
	return &object.Error{Kind: object.KindRuntime, Message: err.Error(),
		Frames: append([]object.Frame(nil), e.callStack...)}
}

func (e *Evaluator) errorf(pos token.Pos, kind object.Kind, format string, args ...interface{}) *object.Error {
	err := object.NewError(kind, pos, format, args...)
	err.Frames = append([]object.Frame(nil), e.callStack...)
	return err
}

// positioned attaches pos and the active call stack to err, which may
// already be an *object.Error (e.g. one raised by package environment) or a
// plain Go error, in which case it is wrapped as a generic RuntimeError.
func (e *Evaluator) positioned(pos token.Pos, err error) *object.Error {
	if oerr, ok := err.(*object.Error); ok {
		oerr.Pos = pos
		oerr.Frames = append([]object.Frame(nil), e.callStack...)
		return oerr
	}
	return e.errorf(pos, object.KindRuntime, "%v", err)
}

var _ object.Invoker = (*Evaluator)(nil)

// truthy reports v's boolean interpretation, used by if/while/for
// conditions and the "!" operator fallback for values without a custom
// Unary implementation.
func truthy(v object.Value) bool { return v.Truth() }

// Stringify returns v's display representation, invoking a class's __str__
// dunder method when the class defines one instead of the default
// "<Class instance>" text.
func (e *Evaluator) Stringify(v object.Value) (string, error) {
	inst, ok := v.(*object.Instance)
	if !ok {
		return v.String(), nil
	}
	method, ok := inst.Class.LookupMethod(dunderStr)
	if !ok {
		return v.String(), nil
	}
	result, err := e.call(&object.BoundMethod{Receiver: inst, Method: method}, nil, token.NoPos)
	if err != nil {
		return "", err
	}
	s, ok := result.(object.String)
	if !ok {
		return "", fmt.Errorf("__str__ must return a string, got %s", result.Type())
	}
	return string(s), nil
}
