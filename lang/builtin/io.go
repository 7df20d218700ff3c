package builtin

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mna/lumen/lang/object"
)

func init() {
	register("print", builtinPrint)
	register("println", builtinPrintln)
}

// Stdout is where print/println write. It defaults to os.Stdout but the CLI
// driver points it at its own Stdio.Stdout so output can be captured or
// redirected the same way mainer's subcommands are.
var Stdout io.Writer = os.Stdout

func builtinPrint(_ object.Invoker, args []object.Value) (object.Value, error) {
	fmt.Fprint(Stdout, joinInspect(args))
	return object.NullValue, nil
}

func builtinPrintln(_ object.Invoker, args []object.Value) (object.Value, error) {
	fmt.Fprintln(Stdout, joinInspect(args))
	return object.NullValue, nil
}

func joinInspect(args []object.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = inspect(a)
	}
	return strings.Join(parts, " ")
}
