package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lumen/lang/builtin"
	"github.com/mna/lumen/lang/environment"
	"github.com/mna/lumen/lang/eval"
	"github.com/mna/lumen/lang/object"
	"github.com/mna/lumen/lang/parser"
	"github.com/mna/lumen/lang/token"
)

func run(t *testing.T, src string) object.Value {
	t.Helper()
	fset := token.NewFileSet()
	prog, err := parser.ParseSource(fset, "test.lumen", []byte(src))
	require.NoError(t, err)

	global := environment.New()
	require.NoError(t, builtin.Register(global))

	e := eval.New(fset.File(prog.EOF), global)
	v, err := e.Run(prog)
	require.NoError(t, err)
	return v
}

func TestArrayBuiltins(t *testing.T) {
	assert.Equal(t, object.Integer(3), run(t, `len([1,2,3]);`))
	assert.Equal(t, object.Integer(1), run(t, `first([1,2,3]);`))
	assert.Equal(t, object.Integer(3), run(t, `last([1,2,3]);`))
	assert.Equal(t, object.NewArray([]object.Value{object.Integer(2), object.Integer(3)}), run(t, `rest([1,2,3]);`))
	assert.Equal(t, object.String("1,2,3"), run(t, `join([1,2,3]);`))
	assert.Equal(t, object.String("1-2-3"), run(t, `join([1,2,3], "-");`))
	assert.Equal(t, object.NewArray([]object.Value{object.Integer(3), object.Integer(2), object.Integer(1)}), run(t, `reverse([1,2,3]);`))
}

func TestSliceNormalizesAndClamps(t *testing.T) {
	assert.Equal(t, object.NewArray([]object.Value{object.Integer(3), object.Integer(4)}), run(t, `slice([1,2,3,4], -2);`))
	assert.Equal(t, object.NewArray([]object.Value{object.Integer(1), object.Integer(2)}), run(t, `slice([1,2,3,4], 0, 2);`))
}

func TestStringBuiltins(t *testing.T) {
	assert.Equal(t, object.String("HELLO"), run(t, `upper("hello");`))
	assert.Equal(t, object.String("hello"), run(t, `lower("HELLO");`))
	assert.Equal(t, object.String("hi"), run(t, `trim("  hi  ");`))
	assert.Equal(t, object.Boolean(true), run(t, `contains("hello world", "wor");`))
	assert.Equal(t, object.Integer(6), run(t, `indexOf("hello world", "world");`))
	assert.Equal(t, object.String("e"), run(t, `charAt("hello", 1);`))
	assert.Equal(t, object.String("hell4"), run(t, `replace("hello", "o", "4");`))
}

func TestMathBuiltins(t *testing.T) {
	assert.Equal(t, object.Integer(5), run(t, `abs(-5);`))
	assert.Equal(t, object.Integer(5), run(t, `max(1, 5, 3);`))
	assert.Equal(t, object.Integer(1), run(t, `min(1, 5, 3);`))
	assert.Equal(t, object.Integer(4), run(t, `ceil(3.2);`))
	assert.Equal(t, object.Integer(3), run(t, `floor(3.8);`))
	assert.Equal(t, object.Integer(8), run(t, `pow(2, 3);`))
	assert.Equal(t, object.Float(3), run(t, `sqrt(9);`))
}

func TestRangeBuiltin(t *testing.T) {
	assert.Equal(t, object.NewArray([]object.Value{object.Integer(0), object.Integer(1), object.Integer(2)}), run(t, `range(3);`))
	assert.Equal(t, object.NewArray([]object.Value{object.Integer(2), object.Integer(4)}), run(t, `range(2, 6, 2);`))
}

func TestHashHelpers(t *testing.T) {
	assert.Equal(t, object.Integer(2), run(t, `len(keys({"a": 1, "b": 2}));`))
}

func TestErrorAndAssertBuiltins(t *testing.T) {
	assert.Equal(t, object.String("error"), run(t, `type(error("boom"));`))
	assert.Equal(t, object.NullValue, run(t, `assert(true);`))
	assert.Equal(t, object.String("error"), run(t, `type(assert(false, "nope"));`))
}

func TestHigherOrderArrayBuiltins(t *testing.T) {
	assert.Equal(t, object.NewArray([]object.Value{object.Integer(2), object.Integer(4), object.Integer(6)}),
		run(t, `map([1,2,3], fn(x) { return x * 2; });`))
	assert.Equal(t, object.NewArray([]object.Value{object.Integer(2)}),
		run(t, `filter([1,2,3], fn(x) { return x % 2 == 0; });`))
	assert.Equal(t, object.Integer(6), run(t, `reduce([1,2,3], fn(acc, x) { return acc + x; }, 0);`))
}
