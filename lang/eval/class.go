package eval

import (
	"github.com/mna/lumen/lang/ast"
	"github.com/mna/lumen/lang/environment"
	"github.com/mna/lumen/lang/object"
)

// evalClassStatement builds an object.Class from a class declaration and
// binds it to its name in env. Methods close over env (the scope the class
// is declared in), the same way a FunctionLiteral closes over its defining
// scope, so a method can see names defined alongside the class.
func (e *Evaluator) evalClassStatement(s *ast.ClassStatement, env *environment.Environment) (object.Value, error) {
	var parent *object.Class
	if s.Parent != nil {
		parentVal, ok := env.Get(s.Parent.Lit)
		if !ok {
			return nil, e.errorf(s.Parent.Start, object.KindName, "undefined class: %s", s.Parent.Lit)
		}
		parent, ok = parentVal.(*object.Class)
		if !ok {
			return nil, e.errorf(s.Parent.Start, object.KindType, "%s is not a class", parentVal.Type())
		}
	}

	class := &object.Class{Name: s.Name.Lit, Parent: parent, Methods: make(map[string]*object.Function, len(s.Methods))}

	if s.Constructor != nil {
		class.Constructor = &object.Function{
			Name: "constructor", Params: s.Constructor.Params, Body: s.Constructor.Body, Env: env,
		}
	}
	for _, m := range s.Methods {
		class.Methods[m.Name.Lit] = &object.Function{
			Name: m.Name.Lit, Params: m.Fn.Params, Body: m.Fn.Body, Env: env,
		}
	}

	if err := env.Define(s.Name.Lit, class, false); err != nil {
		return nil, e.errorf(s.Start, object.KindName, "%v", err)
	}
	return object.NullValue, nil
}
