package object

import (
	"fmt"

	"github.com/mna/lumen/lang/ast"
)

// Function is a user-defined function or method, closing over the
// environment in which it was declared.
type Function struct {
	Name   string // empty for an anonymous function literal
	Params []*ast.Identifier
	Body   *ast.BlockStatement
	Env    Env
}

func (f *Function) String() string {
	if f.Name != "" {
		return fmt.Sprintf("<fn %s>", f.Name)
	}
	return "<fn>"
}
func (f *Function) Type() string  { return "function" }
func (f *Function) Truth() bool   { return true }
func (*Function) callable()       {}

var _ Callable = (*Function)(nil)

// BuiltinFn is the signature of a built-in function's implementation. inv
// lets a higher-order builtin (e.g. array.map) call back into a
// user-defined callback argument.
type BuiltinFn func(inv Invoker, args []Value) (Value, error)

// BuiltinFunction wraps a Go function so it can be called like any other
// lumen value.
type BuiltinFunction struct {
	Name string
	Fn   BuiltinFn
}

func (b *BuiltinFunction) String() string { return fmt.Sprintf("<builtin %s>", b.Name) }
func (b *BuiltinFunction) Type() string   { return "builtin" }
func (b *BuiltinFunction) Truth() bool    { return true }
func (*BuiltinFunction) callable()        {}

var _ Callable = (*BuiltinFunction)(nil)

// BoundMethod is a Function bound to a receiving Instance, produced when a
// method is read off an instance via a property expression (obj.method).
// Owner records which class in the instance's ancestry defines Method, so
// that a "super" expression evaluated inside it resumes lookup one level
// further up, rather than restarting from the instance's own class.
type BoundMethod struct {
	Receiver *Instance
	Method   *Function
	Owner    *Class
}

func (b *BoundMethod) String() string {
	return fmt.Sprintf("<bound method %s of %s>", b.Method.Name, b.Receiver.Class.Name)
}
func (b *BoundMethod) Type() string { return "bound method" }
func (b *BoundMethod) Truth() bool  { return true }
func (*BoundMethod) callable()      {}

var _ Callable = (*BoundMethod)(nil)
