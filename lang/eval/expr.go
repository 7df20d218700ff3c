package eval

import (
	"github.com/mna/lumen/lang/ast"
	"github.com/mna/lumen/lang/environment"
	"github.com/mna/lumen/lang/object"
	"github.com/mna/lumen/lang/token"
)

func (e *Evaluator) evalExpr(expr ast.Expr, env *environment.Environment) (object.Value, error) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return object.Integer(n.Value), nil
	case *ast.FloatLiteral:
		return object.Float(n.Value), nil
	case *ast.StringLiteral:
		return object.String(n.Value), nil
	case *ast.BooleanLiteral:
		return object.Boolean(n.Value), nil
	case *ast.NullLiteral:
		return object.NullValue, nil
	case *ast.Identifier:
		return e.evalIdentifier(n, env)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, env)
	case *ast.HashLiteral:
		return e.evalHashLiteral(n, env)
	case *ast.FunctionLiteral:
		return &object.Function{Name: n.Name, Params: n.Params, Body: n.Body, Env: env}, nil
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(n, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(n, env)
	case *ast.IfExpression:
		return e.evalIfExpression(n, env)
	case *ast.CallExpression:
		return e.evalCallExpression(n, env)
	case *ast.IndexExpression:
		return e.evalIndexExpression(n, env)
	case *ast.PropertyExpression:
		return e.evalPropertyExpression(n, env)
	case *ast.AssignmentExpression:
		return e.evalAssignmentExpression(n, env)
	case *ast.NewExpression:
		return e.evalNewExpression(n, env)
	case *ast.ThisExpression:
		return e.evalThisExpression(n, env)
	case *ast.SuperExpression:
		return e.evalSuperExpression(n, env)
	default:
		start, _ := expr.Span()
		return nil, e.errorf(start, object.KindRuntime, "unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalIdentifier(n *ast.Identifier, env *environment.Environment) (object.Value, error) {
	if v, ok := env.Get(n.Lit); ok {
		return v, nil
	}
	return nil, e.errorf(n.Start, object.KindName, "undefined name: %s", n.Lit)
}

func (e *Evaluator) evalArrayLiteral(n *ast.ArrayLiteral, env *environment.Environment) (object.Value, error) {
	elems := make([]object.Value, len(n.Elems))
	for i, el := range n.Elems {
		v, err := e.evalExpr(el, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return object.NewArray(elems), nil
}

func (e *Evaluator) evalHashLiteral(n *ast.HashLiteral, env *environment.Environment) (object.Value, error) {
	h := object.NewHash(len(n.Pairs))
	for _, pair := range n.Pairs {
		key, err := e.evalExpr(pair.Key, env)
		if err != nil {
			return nil, err
		}
		// non-string keys (integer literals) are canonicalized to their string
		// form, since Hash is string-keyed; this mirrors how property names and
		// array indices are both just "a name for a slot".
		if iv, ok := key.(object.Integer); ok {
			key = object.String(iv.String())
		}
		val, err := e.evalExpr(pair.Value, env)
		if err != nil {
			return nil, err
		}
		if err := h.Set(key, val); err != nil {
			start, _ := pair.Key.Span()
			return nil, e.errorf(start, object.KindType, "%v", err)
		}
	}
	return h, nil
}

func (e *Evaluator) evalIfExpression(n *ast.IfExpression, env *environment.Environment) (object.Value, error) {
	for _, clause := range n.Clauses {
		cond, err := e.evalExpr(clause.Cond, env)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return e.evalBlock(clause.Then, env.NewChild())
		}
	}
	if n.Else != nil {
		return e.evalBlock(n.Else, env.NewChild())
	}
	return object.NullValue, nil
}

func (e *Evaluator) evalCallExpression(n *ast.CallExpression, env *environment.Environment) (object.Value, error) {
	fn, err := e.evalExpr(n.Fn, env)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return e.call(fn, args, n.RParen)
}

func (e *Evaluator) evalIndexExpression(n *ast.IndexExpression, env *environment.Environment) (object.Value, error) {
	obj, err := e.evalExpr(n.Object, env)
	if err != nil {
		return nil, err
	}
	idx, err := e.evalExpr(n.Index, env)
	if err != nil {
		return nil, err
	}

	if inst, ok := obj.(*object.Instance); ok {
		if method, ok := inst.Class.LookupMethod(dunderIndex); ok {
			return e.call(&object.BoundMethod{Receiver: inst, Method: method}, []object.Value{idx}, n.RBrack)
		}
		return nil, e.errorf(n.RBrack, object.KindType, "%s does not support indexing", obj.Type())
	}

	indexable, ok := obj.(object.Indexable)
	if !ok {
		return nil, e.errorf(n.RBrack, object.KindType, "%s does not support indexing", obj.Type())
	}
	v, err := indexable.Index(idx)
	if err != nil {
		return nil, e.classifyIndexError(n.RBrack, err)
	}
	return v, nil
}

func (e *Evaluator) classifyIndexError(pos token.Pos, err error) *object.Error {
	if oerr, ok := err.(*object.Error); ok {
		return oerr
	}
	return e.errorf(pos, object.KindIndex, "%v", err)
}

func (e *Evaluator) evalPropertyExpression(n *ast.PropertyExpression, env *environment.Environment) (object.Value, error) {
	obj, err := e.evalExpr(n.Object, env)
	if err != nil {
		return nil, err
	}
	attrs, ok := obj.(object.HasAttrs)
	if !ok {
		return nil, e.errorf(n.Property.Start, object.KindAttribute, "%s has no attribute %q", obj.Type(), n.Property.Lit)
	}
	v, ok := attrs.Attr(n.Property.Lit)
	if !ok {
		return nil, e.errorf(n.Property.Start, object.KindAttribute, "%s has no attribute %q", obj.Type(), n.Property.Lit)
	}
	return v, nil
}

func (e *Evaluator) evalAssignmentExpression(n *ast.AssignmentExpression, env *environment.Environment) (object.Value, error) {
	val, err := e.evalExpr(n.Value, env)
	if err != nil {
		return nil, err
	}

	switch target := n.Target.(type) {
	case *ast.Identifier:
		if err := env.Assign(target.Lit, val); err != nil {
			return nil, e.positioned(target.Start, err)
		}
		return val, nil

	case *ast.PropertyExpression:
		obj, err := e.evalExpr(target.Object, env)
		if err != nil {
			return nil, err
		}
		setter, ok := obj.(object.HasSetField)
		if !ok {
			return nil, e.errorf(target.Property.Start, object.KindAttribute, "%s does not support field assignment", obj.Type())
		}
		if err := setter.SetField(target.Property.Lit, val); err != nil {
			return nil, e.errorf(target.Property.Start, object.KindAttribute, "%v", err)
		}
		return val, nil

	case *ast.IndexExpression:
		obj, err := e.evalExpr(target.Object, env)
		if err != nil {
			return nil, err
		}
		idx, err := e.evalExpr(target.Index, env)
		if err != nil {
			return nil, err
		}
		if inst, ok := obj.(*object.Instance); ok {
			if method, ok := inst.Class.LookupMethod(dunderSetIdx); ok {
				_, err := e.call(&object.BoundMethod{Receiver: inst, Method: method}, []object.Value{idx, val}, target.RBrack)
				return val, err
			}
			return nil, e.errorf(target.RBrack, object.KindType, "%s does not support index assignment", obj.Type())
		}
		setter, ok := obj.(object.HasSetIndex)
		if !ok {
			return nil, e.errorf(target.RBrack, object.KindType, "%s does not support index assignment", obj.Type())
		}
		if err := setter.SetIndex(idx, val); err != nil {
			return nil, e.classifyIndexError(target.RBrack, err)
		}
		return val, nil

	default:
		start, _ := n.Target.Span()
		return nil, e.errorf(start, object.KindType, "invalid assignment target")
	}
}

func (e *Evaluator) evalNewExpression(n *ast.NewExpression, env *environment.Environment) (object.Value, error) {
	classVal, ok := env.Get(n.ClassName.Lit)
	if !ok {
		return nil, e.errorf(n.ClassName.Start, object.KindName, "undefined class: %s", n.ClassName.Lit)
	}
	class, ok := classVal.(*object.Class)
	if !ok {
		return nil, e.errorf(n.ClassName.Start, object.KindInstantiation, "%s is not a class", classVal.Type())
	}
	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return e.instantiate(class, args, n.RParen)
}

func (e *Evaluator) evalThisExpression(n *ast.ThisExpression, env *environment.Environment) (object.Value, error) {
	v, ok := env.Get("this")
	if !ok {
		return nil, e.errorf(n.Start, object.KindName, "this used outside of a method")
	}
	return v, nil
}

// evalSuperExpression resolves "super" (the bare form, used as super(args))
// or "super.method" to a BoundMethod looked up starting from the class one
// level above the method currently executing (tracked via the "__class__"
// binding instantiate/callBoundMethod place in scope).
func (e *Evaluator) evalSuperExpression(n *ast.SuperExpression, env *environment.Environment) (object.Value, error) {
	thisVal, ok := env.Get("this")
	if !ok {
		return nil, e.errorf(n.Start, object.KindName, "super used outside of a method")
	}
	inst, ok := thisVal.(*object.Instance)
	if !ok {
		return nil, e.errorf(n.Start, object.KindType, "super used outside of an instance method")
	}

	curClass := inst.Class
	if cv, ok := env.Get("__class__"); ok {
		if c, ok := cv.(*object.Class); ok {
			curClass = c
		}
	}
	if curClass.Parent == nil {
		return nil, e.errorf(n.Start, object.KindClass, "class %s has no parent class", curClass.Name)
	}

	methodName := "constructor"
	if n.Method != nil {
		methodName = n.Method.Lit
	}
	method, owner, ok := curClass.Parent.LookupMethodOwner(methodName)
	if !ok && methodName == "constructor" {
		method, owner = lookupConstructor(curClass.Parent)
		ok = method != nil
	}
	if !ok {
		return nil, e.errorf(n.Start, object.KindAttribute, "%s has no method %q", curClass.Parent.Name, methodName)
	}
	return &object.BoundMethod{Receiver: inst, Method: method, Owner: owner}, nil
}
