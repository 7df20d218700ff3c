package eval_test

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

// run parses and evaluates src in a fresh global environment with every
// built-in registered, returning the value of the last statement.
func run(t *testing.T, src string) (object.Value, error) {
	t.Helper()
	fset := token.NewFileSet()
	prog, err := parser.ParseSource(fset, "test.lumen", []byte(src))
	require.NoError(t, err)

	global := environment.New()
	require.NoError(t, builtin.Register(global))

	e := eval.New(fset.File(prog.EOF), global)
	return e.Run(prog)
}

func mustRun(t *testing.T, src string) object.Value {
	t.Helper()
	v, err := run(t, src)
	require.NoError(t, err)
	return v
}

func TestRecursiveFibonacci(t *testing.T) {
	v := mustRun(t, `let fib = fn(n) { if (n <= 1) { return n; } return fib(n-1) + fib(n-2); }; fib(10);`)
	assert.Equal(t, object.Integer(55), v)
}

func TestClosureCapturesSharedMutableBinding(t *testing.T) {
	v := mustRun(t, `let c = fn() { let n = 0; fn() { n = n + 1; n; }; }; let k = c(); k(); k(); k();`)
	assert.Equal(t, object.Integer(3), v)
}

func TestInheritanceAndSuperCall(t *testing.T) {
	src := `
class A {
	constructor(x) { this.x = x; }
	get() { return this.x; }
}
class B extends A {
	constructor(x, y) { super(x); this.y = y; }
	get() { return super.get() + this.y; }
}
let b = new B(10, 5);
b.get();
`
	v := mustRun(t, src)
	assert.Equal(t, object.Integer(15), v)
}

func TestArrayIndexAssignment(t *testing.T) {
	v := mustRun(t, `let a = [1,2,3]; a[1] = 20; a[0] + a[1] + a[2];`)
	assert.Equal(t, object.Integer(24), v)
}

func TestHashIndexAssignment(t *testing.T) {
	v := mustRun(t, `let h = {"name": "Alice", "age": 30}; h["age"] = h["age"] + 1; h["age"];`)
	assert.Equal(t, object.Integer(31), v)
}

func TestForLoopContinue(t *testing.T) {
	v := mustRun(t, `let sum = 0; for (let i = 1; i <= 5; i = i + 1) { if (i == 3) { continue; } sum = sum + i; } sum;`)
	assert.Equal(t, object.Integer(12), v)
}

func TestConstReassignmentIsAssignmentError(t *testing.T) {
	_, err := run(t, `const PI = 3; PI = 4;`)
	require.Error(t, err)
	oerr, ok := err.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.KindAssignment, oerr.Kind)
}

func TestStringPlusIntIsTypeMismatch(t *testing.T) {
	_, err := run(t, `"hello" + 5;`)
	require.Error(t, err)
	oerr, ok := err.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.KindType, oerr.Kind)
}

func TestBlockScopeDoesNotLeak(t *testing.T) {
	_, err := run(t, `{ let x = 1; } x;`)
	require.Error(t, err)
	oerr, ok := err.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.KindName, oerr.Kind)
}

func TestBreakContinueRejectedOutsideLoop(t *testing.T) {
	fset := token.NewFileSet()
	_, err := parser.ParseSource(fset, "test.lumen", []byte(`break;`))
	require.Error(t, err)
}

func TestMethodResolutionWalksAncestorChain(t *testing.T) {
	src := `
class A { greet() { return "A"; } }
class B extends A {}
class C extends B {}
new C().greet();
`
	v := mustRun(t, src)
	assert.Equal(t, object.String("A"), v)
}

func TestInstanceEqualityIsIdentityByDefault(t *testing.T) {
	src := `
class Point { constructor(x) { this.x = x; } }
let a = new Point(1);
let b = new Point(1);
a == a;
`
	v := mustRun(t, src)
	assert.Equal(t, object.Boolean(true), v)
}

func TestInstanceEqualityIsFalseForDistinctAllocations(t *testing.T) {
	src := `
class Point { constructor(x) { this.x = x; } }
let a = new Point(1);
let b = new Point(1);
a == b;
`
	v := mustRun(t, src)
	assert.Equal(t, object.Boolean(false), v)
}

func TestEqDunderOverridesInstanceEquality(t *testing.T) {
	src := `
class Point {
	constructor(x) { this.x = x; }
	__eq__(other) { return this.x == other.x; }
}
let a = new Point(1);
let b = new Point(1);
a == b;
`
	v := mustRun(t, src)
	assert.Equal(t, object.Boolean(true), v)
}

func TestPushLenFirstConcatInvariants(t *testing.T) {
	v := mustRun(t, `len(push([1,2], 3));`)
	assert.Equal(t, object.Integer(3), v)

	v = mustRun(t, `first(push([], 9));`)
	assert.Equal(t, object.Integer(9), v)

	v = mustRun(t, `len(concat([1,2], [3,4,5]));`)
	assert.Equal(t, object.Integer(5), v)
}

func TestIntegerDivisionTruncatesTowardZero(t *testing.T) {
	v := mustRun(t, `7 / 2;`)
	assert.Equal(t, object.Integer(3), v)

	v = mustRun(t, `-7 / 2;`)
	assert.Equal(t, object.Integer(-3), v)
}

func TestFloorDivisionRoundsTowardNegativeInfinity(t *testing.T) {
	v := mustRun(t, `-7 // 2;`)
	assert.Equal(t, object.Integer(-4), v)
}

func TestFloatPromotion(t *testing.T) {
	v := mustRun(t, `1 + 2.5;`)
	assert.Equal(t, object.Float(3.5), v)
}

func TestStringConcatenationAndRepetition(t *testing.T) {
	v := mustRun(t, `"a" + "b";`)
	assert.Equal(t, object.String("ab"), v)

	v = mustRun(t, `"ab" * 3;`)
	assert.Equal(t, object.String("ababab"), v)
}

func TestNegativeStringRepetitionIsError(t *testing.T) {
	_, err := run(t, `"ab" * -1;`)
	require.Error(t, err)
}

func TestShortCircuitAndDoesNotEvaluateRight(t *testing.T) {
	src := `
let calls = [];
let sideEffect = fn() { calls = push(calls, 1); return true; };
false && sideEffect();
len(calls);
`
	v := mustRun(t, src)
	assert.Equal(t, object.Integer(0), v)
}

func TestShortCircuitOrDoesNotEvaluateRight(t *testing.T) {
	src := `
let calls = [];
let sideEffect = fn() { calls = push(calls, 1); return true; };
true || sideEffect();
len(calls);
`
	v := mustRun(t, src)
	assert.Equal(t, object.Integer(0), v)
}

func TestDivisionByZeroIsError(t *testing.T) {
	_, err := run(t, `1 / 0;`)
	require.Error(t, err)
	oerr, ok := err.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.KindZeroDivision, oerr.Kind)
}

func TestAssertReturnsErrorValueWithoutAbortingProgram(t *testing.T) {
	v := mustRun(t, `let r = assert(1 == 2, "nope"); type(r);`)
	assert.Equal(t, object.String("error"), v)
}
