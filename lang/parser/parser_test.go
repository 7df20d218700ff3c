package parser_test

import (
	"testing"

	"github.com/mna/lumen/lang/ast"
	"github.com/mna/lumen/lang/parser"
	"github.com/mna/lumen/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	fset := token.NewFileSet()
	prog, err := parser.ParseSource(fset, "test.lum", []byte(src))
	require.NoError(t, err)
	return prog
}

func TestParseLetStatement(t *testing.T) {
	prog := parseProgram(t, `let x = 5;`)
	require.Len(t, prog.Stmts, 1)
	stmt, ok := prog.Stmts[0].(*ast.LetStatement)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Name.Lit)
	lit, ok := stmt.Value.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), lit.Value)
}

func TestParseConstStatement(t *testing.T) {
	prog := parseProgram(t, `const pi = 3.14;`)
	require.Len(t, prog.Stmts, 1)
	stmt, ok := prog.Stmts[0].(*ast.ConstStatement)
	require.True(t, ok)
	assert.Equal(t, "pi", stmt.Name.Lit)
}

func TestParseInfixPrecedence(t *testing.T) {
	prog := parseProgram(t, `let r = 1 + 2 * 3;`)
	stmt := prog.Stmts[0].(*ast.LetStatement)
	infix, ok := stmt.Value.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, infix.Op)

	right, ok := infix.Right.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, token.STAR, right.Op)
}

func TestParseFloorDivisionVersusComment(t *testing.T) {
	prog := parseProgram(t, `let r = 7 // 2;`)
	stmt := prog.Stmts[0].(*ast.LetStatement)
	infix, ok := stmt.Value.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, token.SLASHSLASH, infix.Op)
}

func TestParseLineCommentAfterOperand(t *testing.T) {
	prog := parseProgram(t, "let r = 5; // a trailing comment\nlet s = 6;")
	require.Len(t, prog.Stmts, 2)
}

func TestParseCompoundAssignDesugars(t *testing.T) {
	prog := parseProgram(t, `x += 1;`)
	stmt := prog.Stmts[0].(*ast.ExpressionStatement)
	assign, ok := stmt.Expr.(*ast.AssignmentExpression)
	require.True(t, ok)
	infix, ok := assign.Value.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, infix.Op)
}

func TestParseIfElifElseExpression(t *testing.T) {
	prog := parseProgram(t, `
		if (x) { 1; } elif (y) { 2; } else { 3; }
	`)
	stmt := prog.Stmts[0].(*ast.ExpressionStatement)
	ifExpr, ok := stmt.Expr.(*ast.IfExpression)
	require.True(t, ok)
	assert.Len(t, ifExpr.Clauses, 2)
	assert.NotNil(t, ifExpr.Else)
}

func TestParseFunctionLiteralAndCall(t *testing.T) {
	prog := parseProgram(t, `let f = fn (a, b) { return a + b; }; f(1, 2);`)
	require.Len(t, prog.Stmts, 2)

	let := prog.Stmts[0].(*ast.LetStatement)
	fn, ok := let.Value.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lit)

	exprStmt := prog.Stmts[1].(*ast.ExpressionStatement)
	call, ok := exprStmt.Expr.(*ast.CallExpression)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParseClassWithConstructorAndMethods(t *testing.T) {
	prog := parseProgram(t, `
		class Animal {
			constructor(name) { this.name = name; }
			speak() { return this.name; }
		}
	`)
	require.Len(t, prog.Stmts, 1)
	class, ok := prog.Stmts[0].(*ast.ClassStatement)
	require.True(t, ok)
	assert.Equal(t, "Animal", class.Name.Lit)
	require.NotNil(t, class.Constructor)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "speak", class.Methods[0].Name.Lit)
}

func TestParseClassWithInheritance(t *testing.T) {
	prog := parseProgram(t, `
		class Dog extends Animal {
			speak() { return super.speak(); }
		}
	`)
	class := prog.Stmts[0].(*ast.ClassStatement)
	require.NotNil(t, class.Parent)
	assert.Equal(t, "Animal", class.Parent.Lit)
}

func TestParseDuplicateMethodNameIsError(t *testing.T) {
	fset := token.NewFileSet()
	_, err := parser.ParseSource(fset, "test.lum", []byte(`
		class Foo {
			bar() { return 1; }
			bar() { return 2; }
		}
	`))
	assert.Error(t, err)
}

func TestParseBreakOutsideLoopIsError(t *testing.T) {
	fset := token.NewFileSet()
	_, err := parser.ParseSource(fset, "test.lum", []byte(`break;`))
	assert.Error(t, err)
}

func TestParseWhileAndForLoops(t *testing.T) {
	prog := parseProgram(t, `
		while (x < 10) { x += 1; }
		for (let i = 0; i < 10; i += 1) { print(i); }
	`)
	require.Len(t, prog.Stmts, 2)
	_, ok := prog.Stmts[0].(*ast.WhileStatement)
	assert.True(t, ok)
	_, ok = prog.Stmts[1].(*ast.ForStatement)
	assert.True(t, ok)
}

func TestParseArrayAndHashLiterals(t *testing.T) {
	prog := parseProgram(t, `let a = [1, 2, 3]; let h = {"k": 1, "j": 2};`)
	let1 := prog.Stmts[0].(*ast.LetStatement)
	arr, ok := let1.Value.(*ast.ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, arr.Elems, 3)

	let2 := prog.Stmts[1].(*ast.LetStatement)
	hash, ok := let2.Value.(*ast.HashLiteral)
	require.True(t, ok)
	assert.Len(t, hash.Pairs, 2)
}

func TestParseNewExpression(t *testing.T) {
	prog := parseProgram(t, `new Dog("Rex");`)
	stmt := prog.Stmts[0].(*ast.ExpressionStatement)
	n, ok := stmt.Expr.(*ast.NewExpression)
	require.True(t, ok)
	assert.Equal(t, "Dog", n.ClassName.Lit)
	require.Len(t, n.Args, 1)
}

func TestParseErrorRecoveryContinuesAfterBadStatement(t *testing.T) {
	fset := token.NewFileSet()
	prog, err := parser.ParseSource(fset, "test.lum", []byte(`
		let x = ;
		let y = 2;
	`))
	assert.Error(t, err)
	require.NotNil(t, prog)

	var sawY bool
	for _, s := range prog.Stmts {
		if let, ok := s.(*ast.LetStatement); ok && let.Name.Lit == "y" {
			sawY = true
		}
	}
	assert.True(t, sawY, "parser should recover and continue parsing after a bad statement")
}
