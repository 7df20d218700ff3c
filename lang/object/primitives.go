package object

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mna/lumen/lang/token"
)

// Null is the type of the singleton null value.
type Null struct{}

// NullValue is the single instance of Null, returned wherever the language
// needs a "no value" result (e.g. a bare "return;", an empty function body,
// or a let/const statement).
var NullValue = Null{}

func (Null) String() string { return "null" }
func (Null) Type() string   { return "null" }
func (Null) Truth() bool    { return false }

// Boolean is the type of true/false values.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Boolean) Type() string { return "bool" }
func (b Boolean) Truth() bool  { return bool(b) }

func (b Boolean) Binary(op token.Token, other Value, side Side) (Value, bool, error) {
	y, ok := other.(Boolean)
	if !ok {
		return nil, false, nil
	}
	switch op {
	case token.EQ:
		return Boolean(b == y), true, nil
	case token.NOT_EQ:
		return Boolean(b != y), true, nil
	}
	return nil, false, nil
}

func (b Boolean) Unary(op token.Token) (Value, bool, error) {
	if op == token.BANG {
		return Boolean(!b), true, nil
	}
	return nil, false, nil
}

var (
	_ Value     = Boolean(false)
	_ HasBinary = Boolean(false)
	_ HasUnary  = Boolean(false)
)

// Integer is the type of integer values, backed by a 64-bit signed int.
type Integer int64

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Integer) Type() string   { return "int" }
func (i Integer) Truth() bool    { return i != 0 }

func (i Integer) Unary(op token.Token) (Value, bool, error) {
	switch op {
	case token.MINUS:
		return -i, true, nil
	case token.BANG:
		return Boolean(!i.Truth()), true, nil
	}
	return nil, false, nil
}

func (i Integer) Binary(op token.Token, other Value, side Side) (Value, bool, error) {
	switch y := other.(type) {
	case Integer:
		return i.binaryInt(op, y, side)
	case Float:
		return Float(i).binaryFloat(op, y, side)
	}
	return nil, false, nil
}

func (i Integer) binaryInt(op token.Token, y Integer, side Side) (Value, bool, error) {
	l, r := i, y
	if side == Right {
		l, r = y, i
	}
	switch op {
	case token.PLUS:
		return l + r, true, nil
	case token.MINUS:
		return l - r, true, nil
	case token.STAR:
		return l * r, true, nil
	case token.SLASH:
		if r == 0 {
			return nil, true, fmt.Errorf("division by zero")
		}
		return l / r, true, nil // Go's int64 "/" already truncates toward zero
	case token.SLASHSLASH:
		if r == 0 {
			return nil, true, fmt.Errorf("division by zero")
		}
		return floorDivInt(l, r), true, nil
	case token.PERCENT:
		if r == 0 {
			return nil, true, fmt.Errorf("division by zero")
		}
		return floorModInt(l, r), true, nil
	case token.LT:
		return Boolean(l < r), true, nil
	case token.LE:
		return Boolean(l <= r), true, nil
	case token.GT:
		return Boolean(l > r), true, nil
	case token.GE:
		return Boolean(l >= r), true, nil
	case token.EQ:
		return Boolean(l == r), true, nil
	case token.NOT_EQ:
		return Boolean(l != r), true, nil
	}
	return nil, false, nil
}

// floorDivInt implements floor (rather than Go's truncating) integer
// division, matching the language's "// always rounds toward negative
// infinity" rule.
func floorDivInt(l, r Integer) Integer {
	q := l / r
	if (l%r != 0) && ((l < 0) != (r < 0)) {
		q--
	}
	return q
}

func floorModInt(l, r Integer) Integer {
	m := l % r
	if m != 0 && ((l < 0) != (r < 0)) {
		m += r
	}
	return m
}

var (
	_ Value     = Integer(0)
	_ HasBinary = Integer(0)
	_ HasUnary  = Integer(0)
)

// Float is the type of floating-point values.
type Float float64

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (f Float) Type() string   { return "float" }
func (f Float) Truth() bool    { return f != 0 }

func (f Float) Unary(op token.Token) (Value, bool, error) {
	switch op {
	case token.MINUS:
		return -f, true, nil
	case token.BANG:
		return Boolean(!f.Truth()), true, nil
	}
	return nil, false, nil
}

func (f Float) Binary(op token.Token, other Value, side Side) (Value, bool, error) {
	switch y := other.(type) {
	case Float:
		return f.binaryFloat(op, y, side)
	case Integer:
		return f.binaryFloat(op, Float(y), side)
	}
	return nil, false, nil
}

func (f Float) binaryFloat(op token.Token, y Float, side Side) (Value, bool, error) {
	l, r := f, y
	if side == Right {
		l, r = y, f
	}
	switch op {
	case token.PLUS:
		return l + r, true, nil
	case token.MINUS:
		return l - r, true, nil
	case token.STAR:
		return l * r, true, nil
	case token.SLASH:
		return l / r, true, nil
	case token.SLASHSLASH:
		return Float(math.Floor(float64(l / r))), true, nil
	case token.PERCENT:
		return Float(math.Mod(math.Mod(float64(l), float64(r))+float64(r), float64(r))), true, nil
	case token.LT:
		return Boolean(l < r), true, nil
	case token.LE:
		return Boolean(l <= r), true, nil
	case token.GT:
		return Boolean(l > r), true, nil
	case token.GE:
		return Boolean(l >= r), true, nil
	case token.EQ:
		return Boolean(l == r), true, nil
	case token.NOT_EQ:
		return Boolean(l != r), true, nil
	}
	return nil, false, nil
}

var (
	_ Value     = Float(0)
	_ HasBinary = Float(0)
	_ HasUnary  = Float(0)
)

// String is the type of string values, always UTF-8 and immutable.
type String string

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }
func (s String) Truth() bool    { return len(s) > 0 }

func (s String) Binary(op token.Token, other Value, side Side) (Value, bool, error) {
	if op == token.STAR {
		if n, ok := other.(Integer); ok {
			return s.repeat(n)
		}
	}

	y, ok := other.(String)
	if !ok {
		return nil, false, nil
	}
	l, r := s, y
	if side == Right {
		l, r = y, s
	}
	switch op {
	case token.PLUS:
		return l + r, true, nil
	case token.EQ:
		return Boolean(l == r), true, nil
	case token.NOT_EQ:
		return Boolean(l != r), true, nil
	case token.LT:
		return Boolean(l < r), true, nil
	case token.LE:
		return Boolean(l <= r), true, nil
	case token.GT:
		return Boolean(l > r), true, nil
	case token.GE:
		return Boolean(l >= r), true, nil
	}
	return nil, false, nil
}

// repeat implements "ab" * 3 == "ababab"; a negative count is an error since
// a string cannot have negative length.
func (s String) repeat(n Integer) (Value, bool, error) {
	if n < 0 {
		return nil, true, fmt.Errorf("string repetition count must not be negative, got %d", n)
	}
	return String(strings.Repeat(string(s), int(n))), true, nil
}

// Index validates a direct-index operand. Unlike substr, which clamps a
// negative or out-of-range bound into the valid range, direct indexing
// rejects a negative or out-of-range integer outright.
func (s String) Index(i Value) (Value, error) {
	idx, ok := i.(Integer)
	if !ok {
		return nil, fmt.Errorf("string index must be an int, got %s", i.Type())
	}
	runes := []rune(s)
	n := int64(len(runes))
	pos := int64(idx)
	if pos < 0 || pos >= n {
		return nil, fmt.Errorf("string index out of range: %d", idx)
	}
	return String(runes[pos]), nil
}

func (s String) Iterate() Iterator {
	runes := []rune(s)
	return &sliceIterator{values: runesToValues(runes)}
}

func runesToValues(runes []rune) []Value {
	vals := make([]Value, len(runes))
	for i, r := range runes {
		vals[i] = String(r)
	}
	return vals
}

var (
	_ Value     = String("")
	_ HasBinary = String("")
	_ Indexable = String("")
	_ Iterable  = String("")
)

// sliceIterator is the shared Iterator implementation for String and Array.
type sliceIterator struct {
	values []Value
	pos    int
}

func (it *sliceIterator) Next(p *Value) bool {
	if it.pos >= len(it.values) {
		return false
	}
	*p = it.values[it.pos]
	it.pos++
	return true
}
