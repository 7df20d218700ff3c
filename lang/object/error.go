package object

import (
	"fmt"
	"strings"

	"github.com/mna/lumen/lang/token"
)

// Kind classifies a runtime Error, mirroring the error taxonomy of the
// language: which stage and which invariant was violated.
type Kind string

// The first group holds the seven kinds of the language's error taxonomy
// plus KindName for an unresolved name;
// KindZeroDivision, KindIndex, KindKey, KindAssertion and KindArgument
// refine its catch-all RuntimeError into the more specific situations the
// evaluator can already tell apart, without losing any of the named kinds
// a program or test can match on.
const (
	KindSyntax        Kind = "ParserError"
	KindName          Kind = "NameError"
	KindType          Kind = "TypeMismatch"
	KindAssignment    Kind = "AssignmentError"
	KindAttribute     Kind = "PropertyError"
	KindClass         Kind = "ClassError"
	KindInstantiation Kind = "InstantiationError"
	KindRuntime       Kind = "RuntimeError"

	KindZeroDivision Kind = "ZeroDivisionError"
	KindIndex        Kind = "IndexError"
	KindKey          Kind = "KeyError"
	KindAssertion    Kind = "AssertionError"
	KindArgument     Kind = "ArgumentError"
)

// Frame records one level of the call stack active when an Error was
// raised, used to print a traceback similar to other scripting languages.
type Frame struct {
	FnName string
	Pos    token.Pos
}

// Error is the error type produced by every failure the evaluator can
// raise: a bad operation, an unbound name, a failed assertion, and so on.
// It implements the standard error interface so it can be propagated with
// ordinary Go error returns through the evaluator's call stack.
type Error struct {
	Kind    Kind
	Message string
	Pos     token.Pos
	Frames  []Frame
}

// NewError returns an *Error of the given kind with a formatted message.
func NewError(kind Kind, pos token.Pos, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// String, Type and Truth make *Error a regular object.Value, so the
// "error"/"assert" built-ins can hand one back to a lumen program as an
// ordinary value rather than only ever surfacing through a Go error return.
func (e *Error) String() string { return e.Error() }
func (e *Error) Type() string   { return "error" }
func (e *Error) Truth() bool    { return false }

var _ Value = (*Error)(nil)

// Traceback renders the error and its call stack, most recent call last,
// formatting positions using file.
func (e *Error) Traceback(file *token.File) string {
	var b strings.Builder
	b.WriteString("Traceback (most recent call last):\n")
	for _, f := range e.Frames {
		pos := "?"
		if file != nil && f.Pos.IsValid() {
			pos = file.Position(f.Pos).String()
		}
		fmt.Fprintf(&b, "  in %s at %s\n", f.FnName, pos)
	}
	b.WriteString(e.Error())
	return b.String()
}

// WithFrame returns a copy of e with frame prepended to the call stack,
// used as the evaluator unwinds a failing call chain.
func (e *Error) WithFrame(frame Frame) *Error {
	frames := make([]Frame, 0, len(e.Frames)+1)
	frames = append(frames, frame)
	frames = append(frames, e.Frames...)
	return &Error{Kind: e.Kind, Message: e.Message, Pos: e.Pos, Frames: frames}
}
