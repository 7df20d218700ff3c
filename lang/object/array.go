package object

import (
	"fmt"
	"strings"

	"github.com/mna/lumen/lang/token"
)

// Array is a mutable, ordered, heterogeneous list of values. A frozen array
// (used e.g. for the arguments tuple of a variadic-like call in the future)
// rejects further mutation; lumen programs cannot currently freeze an array
// themselves, but the internal guard is kept so a future builtin can expose
// one without touching this type.
type Array struct {
	elems  []Value
	frozen bool
}

// NewArray returns an Array wrapping elems directly (no copy).
func NewArray(elems []Value) *Array { return &Array{elems: elems} }

func (a *Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range a.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		if s, ok := e.(String); ok {
			fmt.Fprintf(&b, "%q", string(s))
		} else {
			b.WriteString(e.String())
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (a *Array) Type() string { return "array" }
func (a *Array) Truth() bool  { return len(a.elems) > 0 }

// Freeze marks the array immutable; further SetIndex/Append/Pop calls fail.
func (a *Array) Freeze()      { a.frozen = true }
func (a *Array) Frozen() bool { return a.frozen }

func (a *Array) Len() int       { return len(a.elems) }
func (a *Array) Elems() []Value { return a.elems }
func (a *Array) checkMutable() error {
	if a.frozen {
		return fmt.Errorf("cannot mutate a frozen array")
	}
	return nil
}

// resolveIndex validates a direct-index operand. Unlike slice/substr, which
// clamp a negative or out-of-range bound into the valid range, direct
// indexing rejects a negative or out-of-range integer outright.
func (a *Array) resolveIndex(i Value) (int, error) {
	idx, ok := i.(Integer)
	if !ok {
		return 0, fmt.Errorf("array index must be an int, got %s", i.Type())
	}
	n := int64(len(a.elems))
	pos := int64(idx)
	if pos < 0 || pos >= n {
		return 0, fmt.Errorf("array index out of range: %d", idx)
	}
	return int(pos), nil
}

func (a *Array) Index(i Value) (Value, error) {
	pos, err := a.resolveIndex(i)
	if err != nil {
		return nil, err
	}
	return a.elems[pos], nil
}

func (a *Array) SetIndex(i, v Value) error {
	if err := a.checkMutable(); err != nil {
		return err
	}
	pos, err := a.resolveIndex(i)
	if err != nil {
		return err
	}
	a.elems[pos] = v
	return nil
}

func (a *Array) Append(v Value) error {
	if err := a.checkMutable(); err != nil {
		return err
	}
	a.elems = append(a.elems, v)
	return nil
}

func (a *Array) Pop() (Value, error) {
	if err := a.checkMutable(); err != nil {
		return nil, err
	}
	if len(a.elems) == 0 {
		return nil, fmt.Errorf("pop from an empty array")
	}
	last := a.elems[len(a.elems)-1]
	a.elems = a.elems[:len(a.elems)-1]
	return last, nil
}

func (a *Array) Iterate() Iterator {
	return &sliceIterator{values: append([]Value(nil), a.elems...)}
}

func (a *Array) Binary(op token.Token, other Value, side Side) (Value, bool, error) {
	y, ok := other.(*Array)
	if !ok {
		return nil, false, nil
	}
	l, r := a, y
	if side == Right {
		l, r = y, a
	}
	switch op {
	case token.PLUS:
		combined := make([]Value, 0, len(l.elems)+len(r.elems))
		combined = append(combined, l.elems...)
		combined = append(combined, r.elems...)
		return NewArray(combined), true, nil
	}
	return nil, false, nil
}

var (
	_ Value       = (*Array)(nil)
	_ Indexable   = (*Array)(nil)
	_ HasSetIndex = (*Array)(nil)
	_ Iterable    = (*Array)(nil)
	_ HasBinary   = (*Array)(nil)
	_ Freezable   = (*Array)(nil)
)
