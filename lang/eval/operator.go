package eval

import (
	"github.com/mna/lumen/lang/ast"
	"github.com/mna/lumen/lang/environment"
	"github.com/mna/lumen/lang/object"
	"github.com/mna/lumen/lang/token"
)

// Dunder method names an Instance may define to overload an operator.
// Binary operator dunders follow Python's naming convention.
const (
	dunderAdd    = "__add__"
	dunderSub    = "__sub__"
	dunderMul    = "__mul__"
	dunderDiv    = "__div__"
	dunderFloor  = "__floordiv__"
	dunderMod    = "__mod__"
	dunderEq     = "__eq__"
	dunderNe     = "__ne__"
	dunderLt     = "__lt__"
	dunderLe     = "__le__"
	dunderGt     = "__gt__"
	dunderGe     = "__ge__"
	dunderAnd    = "__and__"
	dunderOr     = "__or__"
	dunderNeg    = "__neg__"
	dunderNot    = "__not__"
	dunderStr    = "__str__"
	dunderIndex  = "__index__"
	dunderSetIdx = "__setindex__"
)

// dunderForBinary maps a binary operator token to the dunder method name an
// Instance may define to overload it.
func dunderForBinary(op token.Token) (string, bool) {
	switch op {
	case token.PLUS:
		return dunderAdd, true
	case token.MINUS:
		return dunderSub, true
	case token.STAR:
		return dunderMul, true
	case token.SLASH:
		return dunderDiv, true
	case token.SLASHSLASH:
		return dunderFloor, true
	case token.PERCENT:
		return dunderMod, true
	case token.EQ:
		return dunderEq, true
	case token.NOT_EQ:
		return dunderNe, true
	case token.LT:
		return dunderLt, true
	case token.LE:
		return dunderLe, true
	case token.GT:
		return dunderGt, true
	case token.GE:
		return dunderGe, true
	case token.AND:
		return dunderAnd, true
	case token.OR:
		return dunderOr, true
	default:
		return "", false
	}
}

func (e *Evaluator) evalInfixExpression(n *ast.InfixExpression, env *environment.Environment) (object.Value, error) {
	left, err := e.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}

	// && and || short-circuit: the right operand is only evaluated when the
	// left doesn't already decide the result, and the result is the raw
	// operand value (JavaScript-style), not a coerced Boolean. An Instance
	// that defines __and__/__or__ overrides this: both operands are
	// evaluated and handed to the dunder method, the same as any other
	// overloaded binary operator.
	switch n.Op {
	case token.AND:
		if inst, ok := left.(*object.Instance); ok {
			if method, owner, ok := inst.Class.LookupMethodOwner(dunderAnd); ok {
				right, err := e.evalExpr(n.Right, env)
				if err != nil {
					return nil, err
				}
				return e.call(&object.BoundMethod{Receiver: inst, Method: method, Owner: owner}, []object.Value{right}, n.OpPos)
			}
		}
		if !truthy(left) {
			return left, nil
		}
		return e.evalExpr(n.Right, env)
	case token.OR:
		if inst, ok := left.(*object.Instance); ok {
			if method, owner, ok := inst.Class.LookupMethodOwner(dunderOr); ok {
				right, err := e.evalExpr(n.Right, env)
				if err != nil {
					return nil, err
				}
				return e.call(&object.BoundMethod{Receiver: inst, Method: method, Owner: owner}, []object.Value{right}, n.OpPos)
			}
		}
		if truthy(left) {
			return left, nil
		}
		return e.evalExpr(n.Right, env)
	}

	right, err := e.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	if v, err := e.dispatchBinary(n.OpPos, n.Op, left, right); v != nil || err != nil {
		return v, err
	}

	return nil, e.errorf(n.OpPos, object.KindType,
		"unsupported operand types for %s: %s and %s", n.Op.GoString(), left.Type(), right.Type())
}

// dispatchBinary is the single dispatch surface for binary operators: it
// tries the primitive fast path first (HasBinary, implemented by the
// built-in numeric/string/array types), then falls back to a dunder method
// lookup on either operand if it is a class Instance. Returns (nil, nil)
// when neither path handles the operator, letting the caller report a
// TypeError with both operand types.
func (e *Evaluator) dispatchBinary(pos token.Pos, op token.Token, left, right object.Value) (object.Value, error) {
	if lhs, ok := left.(object.HasBinary); ok {
		if v, handled, err := lhs.Binary(op, right, object.Left); handled {
			return wrapBinaryResult(v, err, e, pos)
		}
	}
	if rhs, ok := right.(object.HasBinary); ok {
		if v, handled, err := rhs.Binary(op, left, object.Right); handled {
			return wrapBinaryResult(v, err, e, pos)
		}
	}

	if name, ok := dunderForBinary(op); ok {
		if v, handled, err := e.dispatchInstanceBinary(pos, name, left, right, object.Left); handled {
			return v, err
		}
		if name, ok := dunderForBinary(reflectOp(op)); ok {
			if v, handled, err := e.dispatchInstanceBinary(pos, name, right, left, object.Right); handled {
				return v, err
			}
		}
	}

	// An Instance with no __eq__/__ne__ of its own still supports == and !=:
	// equality falls back to identity (same allocation), matching every other
	// value kind's default comparison.
	if op == token.EQ || op == token.NOT_EQ {
		li, lok := left.(*object.Instance)
		ri, rok := right.(*object.Instance)
		if lok || rok {
			equal := lok && rok && li == ri
			if op == token.NOT_EQ {
				equal = !equal
			}
			return object.Boolean(equal), nil
		}
	}
	return nil, nil
}

func wrapBinaryResult(v object.Value, err error, e *Evaluator, pos token.Pos) (object.Value, error) {
	if err != nil {
		return nil, e.errorf(pos, object.KindZeroDivision, "%v", err)
	}
	return v, nil
}

// reflectOp returns the mirror operator used when trying the dunder lookup
// on the right operand (e.g. 5 < x falls back to x.__gt__(5)).
func reflectOp(op token.Token) token.Token {
	switch op {
	case token.LT:
		return token.GT
	case token.GT:
		return token.LT
	case token.LE:
		return token.GE
	case token.GE:
		return token.LE
	default:
		return op
	}
}

func (e *Evaluator) dispatchInstanceBinary(pos token.Pos, dunder string, receiver, other object.Value, side object.Side) (object.Value, bool, error) {
	inst, ok := receiver.(*object.Instance)
	if !ok {
		return nil, false, nil
	}
	method, owner, ok := inst.Class.LookupMethodOwner(dunder)
	if !ok {
		return nil, false, nil
	}
	v, err := e.call(&object.BoundMethod{Receiver: inst, Method: method, Owner: owner}, []object.Value{other}, pos)
	return v, true, err
}

func (e *Evaluator) evalPrefixExpression(n *ast.PrefixExpression, env *environment.Environment) (object.Value, error) {
	right, err := e.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	if hu, ok := right.(object.HasUnary); ok {
		if v, handled, err := hu.Unary(n.Op); handled {
			if err != nil {
				return nil, e.errorf(n.Start, object.KindType, "%v", err)
			}
			return v, nil
		}
	}

	if inst, ok := right.(*object.Instance); ok {
		dunder := dunderNeg
		if n.Op == token.BANG {
			dunder = dunderNot
		}
		if method, owner, ok := inst.Class.LookupMethodOwner(dunder); ok {
			return e.call(&object.BoundMethod{Receiver: inst, Method: method, Owner: owner}, nil, n.Start)
		}
	}

	if n.Op == token.BANG {
		return object.Boolean(!truthy(right)), nil
	}

	return nil, e.errorf(n.Start, object.KindType, "unsupported operand type for %s: %s", n.Op.GoString(), right.Type())
}
