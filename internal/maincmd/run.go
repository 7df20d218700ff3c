package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/mna/lumen/lang/builtin"
	"github.com/mna/lumen/lang/environment"
	"github.com/mna/lumen/lang/eval"
	"github.com/mna/lumen/lang/parser"
	"github.com/mna/lumen/lang/scanner"
)

// Run implements the "run" subcommand: parse and evaluate a single file,
// printing its result to stdout or its error to stderr.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(stdio.Stderr, "run: exactly one source file is required")
		return errParse
	}

	fset, prog, err := parser.ParseFile(args[0])
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return errParse
	}

	global := environment.New()
	if err := builtin.Register(global); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	builtin.Stdout = stdio.Stdout

	e := eval.New(fset.File(prog.EOF), global)
	result, err := e.Run(prog)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	fmt.Fprintln(stdio.Stdout, result.String())
	return nil
}
