package eval

import (
	"github.com/mna/lumen/lang/ast"
	"github.com/mna/lumen/lang/environment"
	"github.com/mna/lumen/lang/object"
)

// evalStatement evaluates a single statement in env, returning the value of
// an expression statement (used as the program/REPL's "last value") or
// object.NullValue for statements with no value. A non-nil *signal error
// unwinds a return/break/continue up to the frame that handles it.
func (e *Evaluator) evalStatement(stmt ast.Stmt, env *environment.Environment) (object.Value, error) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return e.evalLetStatement(s, env)
	case *ast.ConstStatement:
		return e.evalConstStatement(s, env)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(s, env)
	case *ast.BreakStatement:
		return nil, &signal{kind: signalBreak}
	case *ast.ContinueStatement:
		return nil, &signal{kind: signalContinue}
	case *ast.BlockStatement:
		return e.evalBlock(s, env.NewChild())
	case *ast.WhileStatement:
		return e.evalWhileStatement(s, env)
	case *ast.ForStatement:
		return e.evalForStatement(s, env)
	case *ast.ClassStatement:
		return e.evalClassStatement(s, env)
	case *ast.ExpressionStatement:
		return e.evalExpr(s.Expr, env)
	default:
		return nil, e.errorf(0, object.KindRuntime, "unhandled statement type %T", stmt)
	}
}

// evalBlock runs each statement of block in its own scope, stopping at the
// first error (including an unwound signal, which the caller interprets).
func (e *Evaluator) evalBlock(block *ast.BlockStatement, env *environment.Environment) (object.Value, error) {
	var result object.Value = object.NullValue
	for _, stmt := range block.Stmts {
		v, err := e.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) evalLetStatement(s *ast.LetStatement, env *environment.Environment) (object.Value, error) {
	v, err := e.evalExpr(s.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Define(s.Name.Lit, v, false); err != nil {
		return nil, err
	}
	return object.NullValue, nil
}

func (e *Evaluator) evalConstStatement(s *ast.ConstStatement, env *environment.Environment) (object.Value, error) {
	v, err := e.evalExpr(s.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Define(s.Name.Lit, v, true); err != nil {
		return nil, err
	}
	return object.NullValue, nil
}

func (e *Evaluator) evalReturnStatement(s *ast.ReturnStatement, env *environment.Environment) (object.Value, error) {
	var v object.Value = object.NullValue
	if s.Value != nil {
		var err error
		v, err = e.evalExpr(s.Value, env)
		if err != nil {
			return nil, err
		}
	}
	return nil, &signal{kind: signalReturn, value: v}
}

func (e *Evaluator) evalWhileStatement(s *ast.WhileStatement, env *environment.Environment) (object.Value, error) {
	for {
		cond, err := e.evalExpr(s.Cond, env)
		if err != nil {
			return nil, err
		}
		if !truthy(cond) {
			return object.NullValue, nil
		}

		if _, err := e.evalBlock(s.Body, env.NewChild()); err != nil {
			if done, loopErr := absorbLoopSignal(err); done {
				return object.NullValue, loopErr
			}
		}
	}
}

func (e *Evaluator) evalForStatement(s *ast.ForStatement, env *environment.Environment) (object.Value, error) {
	loopEnv := env.NewChild()
	if _, err := e.evalLetStatement(s.Init, loopEnv); err != nil {
		return nil, err
	}

	for {
		if s.Cond != nil {
			cond, err := e.evalExpr(s.Cond, loopEnv)
			if err != nil {
				return nil, err
			}
			if !truthy(cond) {
				return object.NullValue, nil
			}
		}

		if _, err := e.evalBlock(s.Body, loopEnv.NewChild()); err != nil {
			if done, loopErr := absorbLoopSignal(err); done {
				return object.NullValue, loopErr
			}
		}

		if s.Update != nil {
			if _, err := e.evalExpr(s.Update, loopEnv); err != nil {
				return nil, err
			}
		}
	}
}

// absorbLoopSignal interprets an error from a loop body. A break signal ends
// the loop cleanly (done=true, err=nil). A continue signal moves to the
// next iteration (done=false). Anything else — a return signal or a real
// error — ends the loop and propagates (done=true, err set).
func absorbLoopSignal(err error) (done bool, propagated error) {
	sig, ok := err.(*signal)
	if !ok {
		return true, err
	}
	switch sig.kind {
	case signalBreak:
		return true, nil
	case signalContinue:
		return false, nil
	default: // signalReturn
		return true, err
	}
}
