package ast

import (
	"fmt"

	"github.com/mna/lumen/lang/token"
)

type (
	// LetStatement represents "let name = expr;".
	LetStatement struct {
		Start token.Pos
		Name  *Identifier
		Value Expr
		End   token.Pos
	}

	// ConstStatement represents "const name = expr;".
	ConstStatement struct {
		Start token.Pos
		Name  *Identifier
		Value Expr
		End   token.Pos
	}

	// ReturnStatement represents "return expr?;".
	ReturnStatement struct {
		Start token.Pos
		Value Expr // may be nil
		End   token.Pos
	}

	// BreakStatement represents "break;".
	BreakStatement struct {
		Start token.Pos
		End   token.Pos
	}

	// ContinueStatement represents "continue;".
	ContinueStatement struct {
		Start token.Pos
		End   token.Pos
	}

	// BlockStatement represents a brace-delimited sequence of statements.
	BlockStatement struct {
		Start token.Pos
		Stmts []Stmt
		End   token.Pos
	}

	// WhileStatement represents "while (cond) body".
	WhileStatement struct {
		Start token.Pos
		Cond  Expr
		Body  *BlockStatement
	}

	// ForStatement represents "for (init; cond; update) body". Init is always
	// a *LetStatement; a bare "for (;;)" with no declaring clause is not part
	// of the grammar.
	ForStatement struct {
		Start  token.Pos
		Init   *LetStatement
		Cond   Expr
		Update Expr
		Body   *BlockStatement
	}

	// ExpressionStatement represents an expression used as a statement.
	ExpressionStatement struct {
		Expr Expr
	}

	// MethodDef is a single method definition inside a class body, including
	// the constructor (Name.Lit == "constructor").
	MethodDef struct {
		Name *Identifier
		Fn   *FunctionLiteral
	}

	// ClassStatement represents a class declaration.
	ClassStatement struct {
		Start       token.Pos
		Name        *Identifier
		Parent      *Identifier // nil if no "extends"
		Constructor *FunctionLiteral // nil if none declared
		Methods     []*MethodDef
		End         token.Pos
	}
)

func (n *LetStatement) Format(f fmt.State, verb rune) { format(f, verb, n, "let "+n.Name.Lit, nil) }
func (n *LetStatement) Span() (start, end token.Pos)  { return n.Start, n.End }
func (n *LetStatement) Walk(v Visitor) {
	Walk(v, n.Name)
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *LetStatement) BlockEnding() bool { return false }

func (n *ConstStatement) Format(f fmt.State, verb rune) {
	format(f, verb, n, "const "+n.Name.Lit, nil)
}
func (n *ConstStatement) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *ConstStatement) Walk(v Visitor) {
	Walk(v, n.Name)
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *ConstStatement) BlockEnding() bool { return false }

func (n *ReturnStatement) Format(f fmt.State, verb rune) {
	exprCount := 0
	if n.Value != nil {
		exprCount = 1
	}
	format(f, verb, n, "return", map[string]int{"expr": exprCount})
}
func (n *ReturnStatement) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *ReturnStatement) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *ReturnStatement) BlockEnding() bool { return true }

func (n *BreakStatement) Format(f fmt.State, verb rune) { format(f, verb, n, "break", nil) }
func (n *BreakStatement) Span() (start, end token.Pos)  { return n.Start, n.End }
func (n *BreakStatement) Walk(v Visitor)                {}
func (n *BreakStatement) BlockEnding() bool             { return true }

func (n *ContinueStatement) Format(f fmt.State, verb rune) { format(f, verb, n, "continue", nil) }
func (n *ContinueStatement) Span() (start, end token.Pos)  { return n.Start, n.End }
func (n *ContinueStatement) Walk(v Visitor)                {}
func (n *ContinueStatement) BlockEnding() bool             { return true }

func (n *BlockStatement) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"stmts": len(n.Stmts)})
}
func (n *BlockStatement) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *BlockStatement) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *BlockStatement) BlockEnding() bool { return false }

func (n *WhileStatement) Format(f fmt.State, verb rune) { format(f, verb, n, "while", nil) }
func (n *WhileStatement) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	return n.Start, end
}
func (n *WhileStatement) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *WhileStatement) BlockEnding() bool { return false }

func (n *ForStatement) Format(f fmt.State, verb rune) { format(f, verb, n, "for", nil) }
func (n *ForStatement) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	return n.Start, end
}
func (n *ForStatement) Walk(v Visitor) {
	if n.Init != nil {
		Walk(v, n.Init)
	}
	if n.Cond != nil {
		Walk(v, n.Cond)
	}
	if n.Update != nil {
		Walk(v, n.Update)
	}
	Walk(v, n.Body)
}
func (n *ForStatement) BlockEnding() bool { return false }

func (n *ExpressionStatement) Format(f fmt.State, verb rune) { format(f, verb, n, "expr stmt", nil) }
func (n *ExpressionStatement) Span() (start, end token.Pos)  { return n.Expr.Span() }
func (n *ExpressionStatement) Walk(v Visitor)                { Walk(v, n.Expr) }
func (n *ExpressionStatement) BlockEnding() bool             { return false }

func (n *ClassStatement) Format(f fmt.State, verb rune) {
	format(f, verb, n, "class "+n.Name.Lit, map[string]int{"methods": len(n.Methods)})
}
func (n *ClassStatement) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *ClassStatement) Walk(v Visitor) {
	Walk(v, n.Name)
	if n.Parent != nil {
		Walk(v, n.Parent)
	}
	if n.Constructor != nil {
		Walk(v, n.Constructor)
	}
	for _, m := range n.Methods {
		Walk(v, m.Fn)
	}
}
func (n *ClassStatement) BlockEnding() bool { return false }
