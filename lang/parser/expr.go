package parser

import (
	"github.com/mna/lumen/lang/ast"
	"github.com/mna/lumen/lang/token"
)

// Operator precedence levels, lowest to highest binding power.
const (
	LOWEST int = iota
	ASSIGN
	LOGICAL_OR
	LOGICAL_AND
	EQUALS
	COMPARE
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[token.Token]int{
	token.ASSIGN:         ASSIGN,
	token.PLUS_ASSIGN:    ASSIGN,
	token.MINUS_ASSIGN:   ASSIGN,
	token.STAR_ASSIGN:    ASSIGN,
	token.SLASH_ASSIGN:   ASSIGN,
	token.PERCENT_ASSIGN: ASSIGN,
	token.OR:             LOGICAL_OR,
	token.AND:            LOGICAL_AND,
	token.EQ:             EQUALS,
	token.NOT_EQ:         EQUALS,
	token.LT:             COMPARE,
	token.GT:             COMPARE,
	token.LE:             COMPARE,
	token.GE:             COMPARE,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.STAR:           PRODUCT,
	token.SLASH:          PRODUCT,
	token.SLASHSLASH:     PRODUCT,
	token.PERCENT:        PRODUCT,
	token.LPAREN:         CALL,
	token.LBRACK:         CALL,
	token.DOT:            CALL,
}

func (p *parser) peekPrecedence() int {
	if pr, ok := precedences[p.tok]; ok {
		return pr
	}
	return LOWEST
}

// parseExpr parses an expression whose operators bind more tightly than
// precedence, using precedence climbing (Pratt parsing): a prefix parser
// establishes the left operand, then infix parsers consume operators whose
// precedence is strictly greater than precedence.
func (p *parser) parseExpr(precedence int) ast.Expr {
	left := p.parsePrefix()

	for p.tok != token.SEMICOLON && precedence < p.peekPrecedence() {
		left = p.parseInfix(left)
	}
	return left
}

func (p *parser) parsePrefix() ast.Expr {
	switch p.tok {
	case token.IDENT:
		return p.parseIdentifier()
	case token.INT:
		return p.parseIntegerLiteral()
	case token.FLOAT:
		return p.parseFloatLiteral()
	case token.STRING:
		return p.parseStringLiteral()
	case token.TRUE, token.FALSE:
		return p.parseBooleanLiteral()
	case token.NULL:
		return p.parseNullLiteral()
	case token.THIS:
		return p.parseThisExpression()
	case token.SUPER:
		return p.parseSuperExpression()
	case token.NEW:
		return p.parseNewExpression()
	case token.BANG, token.MINUS:
		return p.parsePrefixExpression()
	case token.LPAREN:
		return p.parseGroupedExpression()
	case token.LBRACK:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseHashLiteral()
	case token.FN:
		return p.parseFunctionLiteral()
	case token.IF:
		return p.parseIfExpression()
	default:
		pos := p.val.Pos
		p.error(pos, "expected expression, found "+p.tok.GoString())
		panic(errPanicMode)
	}
}

func (p *parser) parseInfix(left ast.Expr) ast.Expr {
	switch p.tok {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN,
		token.STAR_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN:
		return p.parseAssignmentExpression(left)
	case token.LPAREN:
		return p.parseCallExpression(left)
	case token.LBRACK:
		return p.parseIndexExpression(left)
	case token.DOT:
		return p.parsePropertyExpression(left)
	default:
		return p.parseInfixExpression(left)
	}
}

func (p *parser) parseIntegerLiteral() *ast.IntegerLiteral {
	n := &ast.IntegerLiteral{Start: p.val.Pos, Raw: p.val.Raw, Value: p.val.Int}
	p.advance()
	return n
}

func (p *parser) parseFloatLiteral() *ast.FloatLiteral {
	n := &ast.FloatLiteral{Start: p.val.Pos, Raw: p.val.Raw, Value: p.val.Float}
	p.advance()
	return n
}

func (p *parser) parseStringLiteral() *ast.StringLiteral {
	n := &ast.StringLiteral{Start: p.val.Pos, Raw: p.val.Raw, Value: p.val.String}
	p.advance()
	return n
}

func (p *parser) parseBooleanLiteral() *ast.BooleanLiteral {
	n := &ast.BooleanLiteral{Start: p.val.Pos, Value: p.tok == token.TRUE}
	p.advance()
	return n
}

func (p *parser) parseNullLiteral() *ast.NullLiteral {
	n := &ast.NullLiteral{Start: p.val.Pos}
	p.advance()
	return n
}

func (p *parser) parseThisExpression() *ast.ThisExpression {
	n := &ast.ThisExpression{Start: p.val.Pos}
	p.advance()
	return n
}

func (p *parser) parseSuperExpression() *ast.SuperExpression {
	n := &ast.SuperExpression{Start: p.val.Pos}
	p.advance()
	if p.tok == token.DOT {
		p.advance()
		n.Method = p.parseIdentifier()
	}
	return n
}

func (p *parser) parseNewExpression() *ast.NewExpression {
	var n ast.NewExpression
	n.Start = p.expect(token.NEW)
	n.ClassName = p.parseIdentifier()
	p.expect(token.LPAREN)
	if p.tok != token.RPAREN {
		n.Args = append(n.Args, p.parseExpr(LOWEST))
		for p.tok == token.COMMA {
			p.advance()
			n.Args = append(n.Args, p.parseExpr(LOWEST))
		}
	}
	n.RParen = p.expect(token.RPAREN)
	return &n
}

func (p *parser) parsePrefixExpression() *ast.PrefixExpression {
	var n ast.PrefixExpression
	n.Op = p.tok
	n.Start = p.val.Pos
	p.advance()
	n.Right = p.parseExpr(PREFIX)
	return &n
}

func (p *parser) parseGroupedExpression() ast.Expr {
	p.expect(token.LPAREN)
	expr := p.parseExpr(LOWEST)
	p.expect(token.RPAREN)
	return expr
}

func (p *parser) parseArrayLiteral() *ast.ArrayLiteral {
	var n ast.ArrayLiteral
	n.Start = p.expect(token.LBRACK)
	if p.tok != token.RBRACK {
		n.Elems = append(n.Elems, p.parseExpr(LOWEST))
		for p.tok == token.COMMA {
			p.advance()
			if p.tok == token.RBRACK {
				break // trailing comma
			}
			n.Elems = append(n.Elems, p.parseExpr(LOWEST))
		}
	}
	n.End = p.expect(token.RBRACK)
	return &n
}

// parseHashLiteral parses "{k: v, ...}"; each key must be a string or
// integer literal.
func (p *parser) parseHashLiteral() *ast.HashLiteral {
	var n ast.HashLiteral
	n.Start = p.expect(token.LBRACE)
	for p.tok != token.RBRACE && p.tok != token.EOF {
		key := p.parseHashKey()
		p.expect(token.COLON)
		value := p.parseExpr(LOWEST)
		n.Pairs = append(n.Pairs, &ast.HashPair{Key: key, Value: value})
		if p.tok == token.COMMA {
			p.advance()
		} else {
			break
		}
	}
	n.End = p.expect(token.RBRACE)
	return &n
}

func (p *parser) parseHashKey() ast.Expr {
	switch p.tok {
	case token.STRING:
		return p.parseStringLiteral()
	case token.INT:
		return p.parseIntegerLiteral()
	default:
		p.errorExpected(p.val.Pos, token.STRING, token.INT)
		panic(errPanicMode)
	}
}

func (p *parser) parseFunctionLiteral() *ast.FunctionLiteral {
	var n ast.FunctionLiteral
	n.Start = p.expect(token.FN)
	n.Params = p.parseParamList()
	n.Body = p.parseBlockStatement()
	return &n
}

// parseIfExpression parses "if (cond) { ... } (elif (cond) { ... })* (else
// { ... })?", valid both as an expression and, wrapped in an
// ExpressionStatement, as a statement.
func (p *parser) parseIfExpression() *ast.IfExpression {
	var n ast.IfExpression
	n.Start = p.val.Pos

	clause := p.parseIfClause(token.IF)
	n.Clauses = append(n.Clauses, clause)
	_, n.End = clause.Then.Span()

	for p.tok == token.ELIF {
		clause := p.parseIfClause(token.ELIF)
		n.Clauses = append(n.Clauses, clause)
		_, n.End = clause.Then.Span()
	}

	if p.tok == token.ELSE {
		p.advance()
		n.Else = p.parseBlockStatement()
		_, n.End = n.Else.Span()
	}
	return &n
}

func (p *parser) parseIfClause(keyword token.Token) *ast.IfClause {
	p.expect(keyword)
	p.expect(token.LPAREN)
	cond := p.parseExpr(LOWEST)
	p.expect(token.RPAREN)
	then := p.parseBlockStatement()
	return &ast.IfClause{Cond: cond, Then: then}
}

func (p *parser) parseCallExpression(fn ast.Expr) *ast.CallExpression {
	var n ast.CallExpression
	n.Fn = fn
	p.expect(token.LPAREN)
	if p.tok != token.RPAREN {
		n.Args = append(n.Args, p.parseExpr(LOWEST))
		for p.tok == token.COMMA {
			p.advance()
			n.Args = append(n.Args, p.parseExpr(LOWEST))
		}
	}
	n.RParen = p.expect(token.RPAREN)
	return &n
}

func (p *parser) parseIndexExpression(object ast.Expr) *ast.IndexExpression {
	var n ast.IndexExpression
	n.Object = object
	p.expect(token.LBRACK)
	n.Index = p.parseExpr(LOWEST)
	n.RBrack = p.expect(token.RBRACK)
	return &n
}

func (p *parser) parsePropertyExpression(object ast.Expr) *ast.PropertyExpression {
	var n ast.PropertyExpression
	n.Object = object
	p.expect(token.DOT)
	n.Property = p.parseIdentifier()
	return &n
}

// parseAssignmentExpression parses "target = value" and the compound forms
// "target += value" etc., desugaring the latter to "target = target op
// value" using token.AssignOp.
func (p *parser) parseAssignmentExpression(target ast.Expr) *ast.AssignmentExpression {
	if !ast.IsAssignable(target) {
		start, _ := target.Span()
		p.error(start, "invalid assignment target")
	}

	op := p.tok
	p.advance()
	value := p.parseExpr(ASSIGN - 1) // right-associative: same precedence, parse fresh

	if binOp, ok := op.AssignOp(); ok {
		value = &ast.InfixExpression{Left: target, Op: binOp, Right: value}
	}
	return &ast.AssignmentExpression{Target: target, Value: value}
}

func (p *parser) parseInfixExpression(left ast.Expr) *ast.InfixExpression {
	var n ast.InfixExpression
	n.Left = left
	n.Op = p.tok
	n.OpPos = p.val.Pos
	precedence := p.peekPrecedence()
	p.advance()
	n.Right = p.parseExpr(precedence)
	return &n
}
