package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lumen/lang/scanner"
	"github.com/mna/lumen/lang/token"
)

// Tokenize implements the "tokenize" subcommand: scan each file and print
// its token stream, one token per line.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	for _, name := range args {
		if err := tokenizeFile(stdio, name); err != nil {
			return err
		}
	}
	return nil
}

func tokenizeFile(stdio mainer.Stdio, filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return errParse
	}

	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(src))

	var errs scanner.ErrorList
	var sc scanner.Scanner
	sc.Init(file, src, errs.Add)

	for {
		var val token.Value
		tok := sc.Scan(&val)
		fmt.Fprintf(stdio.Stdout, "%s: %s", token.FormatPos(token.PosLong, file, val.Pos, true), tok.GoString())
		if lit := val.Raw; lit != "" {
			fmt.Fprintf(stdio.Stdout, " %s", lit)
		}
		fmt.Fprintln(stdio.Stdout)
		if tok == token.EOF {
			break
		}
	}

	if len(errs) > 0 {
		scanner.PrintError(stdio.Stderr, errs.Err())
		return errParse
	}
	return nil
}
