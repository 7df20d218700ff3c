// Package parser implements the parser that transforms lumen source code
// into an abstract syntax tree (AST).
package parser

import (
	"errors"
	"os"
	"strings"

	"github.com/mna/lumen/lang/ast"
	"github.com/mna/lumen/lang/scanner"
	"github.com/mna/lumen/lang/token"
)

// ParseFile is a helper that reads and parses a single source file, adding it
// to a fresh FileSet. The error, if non-nil, is the error from reading the
// file or one that ParseSource returns.
func ParseFile(filename string) (*token.FileSet, *ast.Program, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}
	fset := token.NewFileSet()
	prog, err := ParseSource(fset, filename, b)
	return fset, prog, err
}

// ParseSource parses a single chunk of source, adding it to fset under the
// given filename for position reporting. The error, if non-nil, is a
// *scanner.Error when there is exactly one error and a scanner.ErrorList
// when there are several.
func ParseSource(fset *token.FileSet, filename string, src []byte) (*ast.Program, error) {
	var p parser
	p.init(fset, filename, src)
	prog := p.parseProgram()
	prog.Name = filename
	p.errors.Sort()
	return prog, p.errors.Err()
}

// parser parses a token stream produced by the scanner into an AST,
// recovering from malformed statements by skipping to the next statement
// boundary instead of aborting the whole parse.
type parser struct {
	scanner scanner.Scanner
	errors  scanner.ErrorList
	file    *token.File

	tok token.Token
	val token.Value

	// loopDepth tracks nested while/for loops so break/continue can be
	// rejected outside of a loop body.
	loopDepth int
}

func (p *parser) init(fset *token.FileSet, filename string, src []byte) {
	p.file = fset.AddFile(filename, -1, len(src))
	p.scanner.Init(p.file, src, p.errors.Add)
	p.advance()
}

func (p *parser) advance() {
	p.tok = p.scanner.Scan(&p.val)
}

// errPanicMode is recovered at the statement level to resynchronize after a
// malformed statement.
var errPanicMode = errors.New("panic mode")

func (p *parser) parseProgram() *ast.Program {
	var prog ast.Program
	for p.tok != token.EOF {
		if stmt := p.parseStatementSync(); stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		}
	}
	prog.EOF = p.val.Pos
	return &prog
}

// parseStatementSync parses a single statement, recovering from panic mode
// by skipping tokens until a semicolon or a statement-starting keyword is
// reached.
func (p *parser) parseStatementSync() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()
	return p.parseStatement()
}

func (p *parser) synchronize() {
	for p.tok != token.EOF {
		if p.tok == token.SEMICOLON {
			p.advance()
			return
		}
		switch p.tok {
		case token.LET, token.CONST, token.FN, token.IF, token.WHILE,
			token.FOR, token.RETURN, token.BREAK, token.CONTINUE, token.CLASS,
			token.RBRACE:
			return
		}
		p.advance()
	}
}

// expect consumes the current token if it is one of toks and returns its
// position, otherwise it records an error and panics with errPanicMode.
func (p *parser) expect(toks ...token.Token) token.Pos {
	pos := p.val.Pos
	for _, tok := range toks {
		if p.tok == tok {
			p.advance()
			return pos
		}
	}
	p.errorExpected(pos, toks...)
	panic(errPanicMode)
}

func (p *parser) at(tok token.Token) bool { return p.tok == tok }

func (p *parser) error(pos token.Pos, msg string) {
	p.errors.Add(p.file.Position(pos), msg)
}

func (p *parser) errorExpected(pos token.Pos, want ...token.Token) {
	var buf strings.Builder
	for i, tok := range want {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(tok.GoString())
	}
	msg := "expected " + buf.String()
	if len(want) > 1 {
		msg = "expected one of " + buf.String()
	}
	if pos == p.val.Pos {
		msg += ", found " + p.tok.GoString()
	}
	p.error(pos, msg)
}
