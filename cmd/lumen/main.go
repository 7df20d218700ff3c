// Command lumen is the lumen language's interpreter and tooling CLI:
// tokenize, parse, run and repl subcommands over a single dispatcher.
package main

import (
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lumen/internal/maincmd"
)

var (
	// placeholder values, replaced on build
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
