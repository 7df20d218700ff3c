// Package maincmd implements the lumen CLI's commands and its
// reflection-based subcommand dispatch over mainer.Stdio.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"

	"github.com/mna/lumen/lang/builtin"
)

const binName = "lumen"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<path>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<path>...] [-- <arg>...]
       %[1]s -h|--help
       %[1]s -v|--version

Interpreter and tooling for the lumen programming language.

The <command> can be one of:
       tokenize <path>           Scan a source file and print its token
                                 stream.
       parse <path>              Parse a source file and print the
                                 resulting abstract syntax tree.
       run <path>                Parse and evaluate a source file, printing
                                 its result (or error) to stdout/stderr.
       repl                      Start an interactive read-eval-print loop;
                                 bindings persist across lines.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --seed <n>                Seed the "random" built-in for
                                 reproducible runs (env: LUMEN_SEED).
`, binName)
)

// Cmd implements mainer.Main: flag and subcommand dispatch for the lumen
// CLI, using a reflection-based "one method per command" pattern.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool  `flag:"h,help"`
	Version bool  `flag:"v,version"`
	Seed    int64 `flag:"seed"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) { c.flags = flags }

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	if (cmdName == "tokenize" || cmdName == "parse" || cmdName == "run") && len(c.args[1:]) == 0 {
		return fmt.Errorf("%s: a source file must be provided", cmdName)
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   true,
		EnvPrefix: strings.ToUpper(binName) + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	if c.Seed != 0 {
		builtin.SetSeed(uint64(c.Seed))
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		if errors.Is(err, errParse) {
			return mainer.ExitCode(1)
		}
		return mainer.ExitCode(2)
	}
	return mainer.Success
}

// errParse marks an error as having come from the parse phase, so Main can
// tell a parse failure (exit 1) apart from a runtime evaluation failure
// (exit 2), per the exit-code contract.
var errParse = errors.New("parse error")

// valid commands are those that take a mainer.Stdio and a slice of strings
// as input, and return an error as output — adding a Cmd method with this
// shape is enough to register a new subcommand.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
