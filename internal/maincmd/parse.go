package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/mna/lumen/lang/ast"
	"github.com/mna/lumen/lang/parser"
	"github.com/mna/lumen/lang/scanner"
	"github.com/mna/lumen/lang/token"
)

// Parse implements the "parse" subcommand: parse each file and print its
// AST. The parser does not track comments, so there is no "--with-comments"
// flag to thread through.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	printer := ast.Printer{Output: stdio.Stdout, Pos: token.PosLong}

	var failed bool
	for _, name := range args {
		fset, prog, err := parser.ParseFile(name)
		if prog != nil {
			file := fset.File(prog.EOF)
			if perr := printer.Print(prog, file); perr != nil {
				fmt.Fprintln(stdio.Stderr, perr)
				return errParse
			}
		}
		if err != nil {
			scanner.PrintError(stdio.Stderr, err)
			failed = true
		}
	}
	if failed {
		return errParse
	}
	return nil
}
