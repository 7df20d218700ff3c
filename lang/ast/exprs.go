package ast

import (
	"fmt"

	"github.com/mna/lumen/lang/token"
)

// IsAssignable reports whether e is syntactically valid as an assignment
// target: an Identifier, PropertyExpression, or IndexExpression.
func IsAssignable(e Expr) bool {
	switch e.(type) {
	case *Identifier, *PropertyExpression, *IndexExpression:
		return true
	default:
		return false
	}
}

type (
	// IntegerLiteral represents an integer literal.
	IntegerLiteral struct {
		Start token.Pos
		Raw   string
		Value int64
	}

	// FloatLiteral represents a floating-point literal.
	FloatLiteral struct {
		Start token.Pos
		Raw   string
		Value float64
	}

	// StringLiteral represents a string literal, Value already unescaped.
	StringLiteral struct {
		Start token.Pos
		Raw   string
		Value string
	}

	// BooleanLiteral represents "true" or "false".
	BooleanLiteral struct {
		Start token.Pos
		Value bool
	}

	// NullLiteral represents "null".
	NullLiteral struct {
		Start token.Pos
	}

	// Identifier represents a bare name reference.
	Identifier struct {
		Start token.Pos
		Lit   string
	}

	// ArrayLiteral represents "[e, ...]".
	ArrayLiteral struct {
		Start token.Pos
		Elems []Expr
		End   token.Pos
	}

	// HashPair is a single key/value pair of a HashLiteral. Key is restricted
	// by the parser to a *StringLiteral or *IntegerLiteral.
	HashPair struct {
		Key   Expr
		Value Expr
	}

	// HashLiteral represents "{k: v, ...}".
	HashLiteral struct {
		Start token.Pos
		Pairs []*HashPair
		End   token.Pos
	}

	// FunctionLiteral represents "fn (params) { body }".
	FunctionLiteral struct {
		Start  token.Pos
		Name   string // optional, for named function expressions used as methods
		Params []*Identifier
		Body   *BlockStatement
	}

	// PrefixExpression represents a unary "-x" or "!x".
	PrefixExpression struct {
		Op    token.Token
		Start token.Pos
		Right Expr
	}

	// InfixExpression represents a binary "left op right".
	InfixExpression struct {
		Left  Expr
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// IfClause is one "if"/"elif" condition/block pair.
	IfClause struct {
		Cond Expr
		Then *BlockStatement
	}

	// IfExpression represents "if (c) {...} elif (c) {...} else {...}", usable
	// both as an expression and (wrapped in an ExpressionStatement) as a
	// statement.
	IfExpression struct {
		Start   token.Pos
		Clauses []*IfClause // at least one
		Else    *BlockStatement
		End     token.Pos
	}

	// CallExpression represents "fn(args)".
	CallExpression struct {
		Fn     Expr
		Args   []Expr
		RParen token.Pos
	}

	// IndexExpression represents "object[index]".
	IndexExpression struct {
		Object Expr
		Index  Expr
		RBrack token.Pos
	}

	// PropertyExpression represents "object.property".
	PropertyExpression struct {
		Object   Expr
		Property *Identifier
	}

	// AssignmentExpression represents "target = value".
	AssignmentExpression struct {
		Target Expr // Identifier, PropertyExpression, or IndexExpression
		Value  Expr
	}

	// NewExpression represents "new ClassName(args)".
	NewExpression struct {
		Start     token.Pos
		ClassName *Identifier
		Args      []Expr
		RParen    token.Pos
	}

	// ThisExpression represents "this".
	ThisExpression struct {
		Start token.Pos
	}

	// SuperExpression represents "super" (bare, for "super(args)") or
	// "super.method" (for "super.method(args)"); Method is nil for the bare
	// form.
	SuperExpression struct {
		Start  token.Pos
		Method *Identifier // nil for bare super(...)
	}
)

func (n *IntegerLiteral) Format(f fmt.State, verb rune) { format(f, verb, n, "int "+n.Raw, nil) }
func (n *IntegerLiteral) Span() (start, end token.Pos) {
	return n.Start, n.Start + token.Pos(len(n.Raw))
}
func (n *IntegerLiteral) Walk(v Visitor) {}
func (n *IntegerLiteral) expr()          {}

func (n *FloatLiteral) Format(f fmt.State, verb rune) { format(f, verb, n, "float "+n.Raw, nil) }
func (n *FloatLiteral) Span() (start, end token.Pos) {
	return n.Start, n.Start + token.Pos(len(n.Raw))
}
func (n *FloatLiteral) Walk(v Visitor) {}
func (n *FloatLiteral) expr()          {}

func (n *StringLiteral) Format(f fmt.State, verb rune) { format(f, verb, n, "string "+n.Raw, nil) }
func (n *StringLiteral) Span() (start, end token.Pos) {
	return n.Start, n.Start + token.Pos(len(n.Raw))
}
func (n *StringLiteral) Walk(v Visitor) {}
func (n *StringLiteral) expr()          {}

func (n *BooleanLiteral) Format(f fmt.State, verb rune) {
	lbl := "false"
	if n.Value {
		lbl = "true"
	}
	format(f, verb, n, lbl, nil)
}
func (n *BooleanLiteral) Span() (start, end token.Pos) {
	l := 4
	if !n.Value {
		l = 5
	}
	return n.Start, n.Start + token.Pos(l)
}
func (n *BooleanLiteral) Walk(v Visitor) {}
func (n *BooleanLiteral) expr()          {}

func (n *NullLiteral) Format(f fmt.State, verb rune)   { format(f, verb, n, "null", nil) }
func (n *NullLiteral) Span() (start, end token.Pos)    { return n.Start, n.Start + 4 }
func (n *NullLiteral) Walk(v Visitor)                  {}
func (n *NullLiteral) expr()                           {}

func (n *Identifier) Format(f fmt.State, verb rune) { format(f, verb, n, n.Lit, nil) }
func (n *Identifier) Span() (start, end token.Pos) {
	return n.Start, n.Start + token.Pos(len(n.Lit))
}
func (n *Identifier) Walk(v Visitor) {}
func (n *Identifier) expr()          {}

func (n *ArrayLiteral) Format(f fmt.State, verb rune) {
	format(f, verb, n, "array", map[string]int{"elems": len(n.Elems)})
}
func (n *ArrayLiteral) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *ArrayLiteral) Walk(v Visitor) {
	for _, e := range n.Elems {
		Walk(v, e)
	}
}
func (n *ArrayLiteral) expr() {}

func (n *HashLiteral) Format(f fmt.State, verb rune) {
	format(f, verb, n, "hash", map[string]int{"pairs": len(n.Pairs)})
}
func (n *HashLiteral) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *HashLiteral) Walk(v Visitor) {
	for _, p := range n.Pairs {
		Walk(v, p.Key)
		Walk(v, p.Value)
	}
}
func (n *HashLiteral) expr() {}

func (n *FunctionLiteral) Format(f fmt.State, verb rune) {
	lbl := "fn"
	if n.Name != "" {
		lbl += " " + n.Name
	}
	format(f, verb, n, lbl, map[string]int{"params": len(n.Params)})
}
func (n *FunctionLiteral) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	return n.Start, end
}
func (n *FunctionLiteral) Walk(v Visitor) {
	for _, p := range n.Params {
		Walk(v, p)
	}
	Walk(v, n.Body)
}
func (n *FunctionLiteral) expr() {}

func (n *PrefixExpression) Format(f fmt.State, verb rune) {
	format(f, verb, n, "prefix "+n.Op.GoString(), nil)
}
func (n *PrefixExpression) Span() (start, end token.Pos) {
	_, end = n.Right.Span()
	return n.Start, end
}
func (n *PrefixExpression) Walk(v Visitor) { Walk(v, n.Right) }
func (n *PrefixExpression) expr()          {}

func (n *InfixExpression) Format(f fmt.State, verb rune) {
	format(f, verb, n, "infix "+n.Op.GoString(), nil)
}
func (n *InfixExpression) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *InfixExpression) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *InfixExpression) expr() {}

func (n *IfExpression) Format(f fmt.State, verb rune) {
	format(f, verb, n, "if", map[string]int{"clauses": len(n.Clauses)})
}
func (n *IfExpression) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *IfExpression) Walk(v Visitor) {
	for _, c := range n.Clauses {
		Walk(v, c.Cond)
		Walk(v, c.Then)
	}
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *IfExpression) expr() {}

func (n *CallExpression) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *CallExpression) Span() (start, end token.Pos) {
	start, _ = n.Fn.Span()
	return start, n.RParen + 1
}
func (n *CallExpression) Walk(v Visitor) {
	Walk(v, n.Fn)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *CallExpression) expr() {}

func (n *IndexExpression) Format(f fmt.State, verb rune) { format(f, verb, n, "index", nil) }
func (n *IndexExpression) Span() (start, end token.Pos) {
	start, _ = n.Object.Span()
	return start, n.RBrack + 1
}
func (n *IndexExpression) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Index)
}
func (n *IndexExpression) expr() {}

func (n *PropertyExpression) Format(f fmt.State, verb rune) {
	format(f, verb, n, "expr."+n.Property.Lit, nil)
}
func (n *PropertyExpression) Span() (start, end token.Pos) {
	start, _ = n.Object.Span()
	_, end = n.Property.Span()
	return start, end
}
func (n *PropertyExpression) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Property)
}
func (n *PropertyExpression) expr() {}

func (n *AssignmentExpression) Format(f fmt.State, verb rune) { format(f, verb, n, "assign", nil) }
func (n *AssignmentExpression) Span() (start, end token.Pos) {
	start, _ = n.Target.Span()
	_, end = n.Value.Span()
	return start, end
}
func (n *AssignmentExpression) Walk(v Visitor) {
	Walk(v, n.Target)
	Walk(v, n.Value)
}
func (n *AssignmentExpression) expr() {}

func (n *NewExpression) Format(f fmt.State, verb rune) {
	format(f, verb, n, "new "+n.ClassName.Lit, map[string]int{"args": len(n.Args)})
}
func (n *NewExpression) Span() (start, end token.Pos) { return n.Start, n.RParen + 1 }
func (n *NewExpression) Walk(v Visitor) {
	Walk(v, n.ClassName)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *NewExpression) expr() {}

func (n *ThisExpression) Format(f fmt.State, verb rune) { format(f, verb, n, "this", nil) }
func (n *ThisExpression) Span() (start, end token.Pos)  { return n.Start, n.Start + 4 }
func (n *ThisExpression) Walk(v Visitor)                {}
func (n *ThisExpression) expr()                         {}

func (n *SuperExpression) Format(f fmt.State, verb rune) {
	lbl := "super"
	if n.Method != nil {
		lbl += "." + n.Method.Lit
	}
	format(f, verb, n, lbl, nil)
}
func (n *SuperExpression) Span() (start, end token.Pos) {
	end = n.Start + 5
	if n.Method != nil {
		_, end = n.Method.Span()
	}
	return n.Start, end
}
func (n *SuperExpression) Walk(v Visitor) {
	if n.Method != nil {
		Walk(v, n.Method)
	}
}
func (n *SuperExpression) expr() {}
