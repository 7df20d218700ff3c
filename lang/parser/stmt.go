package parser

import (
	"github.com/mna/lumen/lang/ast"
	"github.com/mna/lumen/lang/token"
)

func (p *parser) parseStatement() ast.Stmt {
	switch p.tok {
	case token.LET:
		return p.parseLetStatement()
	case token.CONST:
		return p.parseConstStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.CLASS:
		return p.parseClassStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *parser) parseLetStatement() *ast.LetStatement {
	var stmt ast.LetStatement
	stmt.Start = p.expect(token.LET)
	stmt.Name = p.parseIdentifier()
	p.expect(token.ASSIGN)
	stmt.Value = p.parseExpr(LOWEST)
	stmt.End = p.expect(token.SEMICOLON)
	return &stmt
}

func (p *parser) parseConstStatement() *ast.ConstStatement {
	var stmt ast.ConstStatement
	stmt.Start = p.expect(token.CONST)
	stmt.Name = p.parseIdentifier()
	p.expect(token.ASSIGN)
	stmt.Value = p.parseExpr(LOWEST)
	stmt.End = p.expect(token.SEMICOLON)
	return &stmt
}

func (p *parser) parseReturnStatement() *ast.ReturnStatement {
	var stmt ast.ReturnStatement
	stmt.Start = p.expect(token.RETURN)
	if p.tok != token.SEMICOLON {
		stmt.Value = p.parseExpr(LOWEST)
	}
	stmt.End = p.expect(token.SEMICOLON)
	return &stmt
}

func (p *parser) parseBreakStatement() *ast.BreakStatement {
	var stmt ast.BreakStatement
	stmt.Start = p.expect(token.BREAK)
	if p.loopDepth == 0 {
		p.error(stmt.Start, "break outside of a loop")
	}
	stmt.End = p.expect(token.SEMICOLON)
	return &stmt
}

func (p *parser) parseContinueStatement() *ast.ContinueStatement {
	var stmt ast.ContinueStatement
	stmt.Start = p.expect(token.CONTINUE)
	if p.loopDepth == 0 {
		p.error(stmt.Start, "continue outside of a loop")
	}
	stmt.End = p.expect(token.SEMICOLON)
	return &stmt
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	var block ast.BlockStatement
	block.Start = p.expect(token.LBRACE)
	for p.tok != token.RBRACE && p.tok != token.EOF {
		if stmt := p.parseStatementSync(); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}
	block.End = p.expect(token.RBRACE)
	return &block
}

func (p *parser) parseWhileStatement() *ast.WhileStatement {
	var stmt ast.WhileStatement
	stmt.Start = p.expect(token.WHILE)
	p.expect(token.LPAREN)
	stmt.Cond = p.parseExpr(LOWEST)
	p.expect(token.RPAREN)

	p.loopDepth++
	stmt.Body = p.parseBlockStatement()
	p.loopDepth--
	return &stmt
}

func (p *parser) parseForStatement() *ast.ForStatement {
	var stmt ast.ForStatement
	stmt.Start = p.expect(token.FOR)
	p.expect(token.LPAREN)
	stmt.Init = p.parseLetStatement()
	if p.tok != token.SEMICOLON {
		stmt.Cond = p.parseExpr(LOWEST)
	}
	p.expect(token.SEMICOLON)
	if p.tok != token.RPAREN {
		stmt.Update = p.parseExpr(LOWEST)
	}
	p.expect(token.RPAREN)

	p.loopDepth++
	stmt.Body = p.parseBlockStatement()
	p.loopDepth--
	return &stmt
}

func (p *parser) parseExpressionStatement() *ast.ExpressionStatement {
	var stmt ast.ExpressionStatement
	stmt.Expr = p.parseExpr(LOWEST)
	// a block-like expression (if) used as a statement does not require a
	// trailing semicolon, matching how brace-bodied statements behave.
	if _, ok := stmt.Expr.(*ast.IfExpression); ok && p.tok == token.SEMICOLON {
		p.advance()
	} else if _, ok := stmt.Expr.(*ast.IfExpression); !ok {
		p.expect(token.SEMICOLON)
	}
	return &stmt
}

func (p *parser) parseIdentifier() *ast.Identifier {
	ident := &ast.Identifier{Start: p.val.Pos, Lit: p.val.Raw}
	p.expect(token.IDENT)
	return ident
}

// parseClassStatement parses "class Name (extends Parent)? { members }".
func (p *parser) parseClassStatement() *ast.ClassStatement {
	var stmt ast.ClassStatement
	stmt.Start = p.expect(token.CLASS)
	stmt.Name = p.parseIdentifier()
	if p.tok == token.EXTENDS {
		p.advance()
		stmt.Parent = p.parseIdentifier()
	}
	p.expect(token.LBRACE)

	seen := map[string]bool{}
	for p.tok != token.RBRACE && p.tok != token.EOF {
		method := p.parseMethodDef()
		name := method.Name.Lit
		if seen[name] {
			p.error(method.Name.Start, "duplicate method name: "+name)
		}
		seen[name] = true
		if name == "constructor" {
			stmt.Constructor = method.Fn
		} else {
			stmt.Methods = append(stmt.Methods, method)
		}
	}
	stmt.End = p.expect(token.RBRACE)
	return &stmt
}

func (p *parser) parseMethodDef() *ast.MethodDef {
	name := p.parseIdentifier()
	fn := &ast.FunctionLiteral{Start: name.Start, Name: name.Lit}
	fn.Params = p.parseParamList()
	fn.Body = p.parseBlockStatement()
	return &ast.MethodDef{Name: name, Fn: fn}
}

func (p *parser) parseParamList() []*ast.Identifier {
	p.expect(token.LPAREN)
	var params []*ast.Identifier
	if p.tok != token.RPAREN {
		params = append(params, p.parseIdentifier())
		for p.tok == token.COMMA {
			p.advance()
			params = append(params, p.parseIdentifier())
		}
	}
	p.expect(token.RPAREN)
	return params
}
