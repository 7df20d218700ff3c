package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/mna/lumen/lang/builtin"
	"github.com/mna/lumen/lang/environment"
	"github.com/mna/lumen/lang/eval"
	"github.com/mna/lumen/lang/parser"
	"github.com/mna/lumen/lang/token"
)

const replPrompt = ">> "

// Repl implements the "repl" subcommand: a line-oriented read-eval-print
// loop. Each line is parsed and evaluated as its own chunk against a global
// environment that persists across lines, so "let"/"const" bindings and
// class declarations from one line are visible on the next.
func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, args []string) error {
	global := environment.New()
	if err := builtin.Register(global); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	builtin.Stdout = stdio.Stdout

	scan := bufio.NewScanner(stdio.Stdin)
	fmt.Fprint(stdio.Stdout, replPrompt)
	for scan.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line := scan.Text()
		if line == "" {
			fmt.Fprint(stdio.Stdout, replPrompt)
			continue
		}

		fset := token.NewFileSet()
		prog, err := parser.ParseSource(fset, "<repl>", []byte(line))
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			fmt.Fprint(stdio.Stdout, replPrompt)
			continue
		}

		e := eval.New(fset.File(prog.EOF), global)
		result, err := e.Run(prog)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
		} else {
			fmt.Fprintln(stdio.Stdout, result.String())
		}
		fmt.Fprint(stdio.Stdout, replPrompt)
	}
	fmt.Fprintln(stdio.Stdout)
	return scan.Err()
}
