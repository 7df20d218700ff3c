package builtin

import (
	"math"
	"math/rand/v2"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/mna/lumen/lang/object"
)

func init() {
	register("abs", builtinAbs)
	register("max", builtinMax)
	register("min", builtinMin)
	register("round", builtinRound)
	register("floor", builtinFloor)
	register("ceil", builtinCeil)
	register("pow", builtinPow)
	register("sqrt", builtinSqrt)
	register("random", builtinRandom)
}

// rng is the source "random" draws from. It defaults to a process-seeded
// generator and can be replaced wholesale by SetSeed, letting the CLI's
// --seed flag (or LUMEN_SEED env var) make a run reproducible. rngMu guards
// it: SetSeed and every random() draw hold the lock.
var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
)

// SetSeed reseeds the generator random() draws from, used by the CLI driver
// to honor an explicit --seed flag.
func SetSeed(seed uint64) {
	rngMu.Lock()
	defer rngMu.Unlock()
	rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func builtinAbs(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("abs", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case object.Integer:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	case object.Float:
		return object.Float(math.Abs(float64(v))), nil
	default:
		return nil, typeErrorf("abs: unsupported type %s", v.Type())
	}
}

// maxOrdered returns the largest element of vals by ordinary ordering,
// generic over any int/float/string kind.
func maxOrdered[T constraints.Ordered](vals []T) T {
	best := vals[0]
	for _, v := range vals[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// minOrdered is maxOrdered's mirror.
func minOrdered[T constraints.Ordered](vals []T) T {
	best := vals[0]
	for _, v := range vals[1:] {
		if v < best {
			best = v
		}
	}
	return best
}

func builtinMax(_ object.Invoker, args []object.Value) (object.Value, error) {
	return minMax("max", args, maxOrdered[float64])
}

func builtinMin(_ object.Invoker, args []object.Value) (object.Value, error) {
	return minMax("min", args, minOrdered[float64])
}

func minMax(name string, args []object.Value, pick func([]float64) float64) (object.Value, error) {
	if len(args) < 1 {
		return nil, argErrorf("%s expects at least 1 argument, got 0", name)
	}
	allInt := true
	floats := make([]float64, len(args))
	for i, a := range args {
		f, err := asFloat(name, a)
		if err != nil {
			return nil, err
		}
		floats[i] = f
		if _, ok := a.(object.Integer); !ok {
			allInt = false
		}
	}
	result := pick(floats)
	if allInt {
		return object.Integer(int64(result)), nil
	}
	return object.Float(result), nil
}

func builtinRound(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("round", args, 1); err != nil {
		return nil, err
	}
	f, err := asFloat("round", args[0])
	if err != nil {
		return nil, err
	}
	return object.Integer(int64(math.Round(f))), nil
}

func builtinFloor(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("floor", args, 1); err != nil {
		return nil, err
	}
	f, err := asFloat("floor", args[0])
	if err != nil {
		return nil, err
	}
	return object.Integer(int64(math.Floor(f))), nil
}

func builtinCeil(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("ceil", args, 1); err != nil {
		return nil, err
	}
	f, err := asFloat("ceil", args[0])
	if err != nil {
		return nil, err
	}
	return object.Integer(int64(math.Ceil(f))), nil
}

func builtinPow(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("pow", args, 2); err != nil {
		return nil, err
	}
	base, err := asFloat("pow", args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asInt("pow", args[1])
	if err != nil {
		return nil, err
	}
	if exp < 0 {
		return nil, argErrorf("pow: exponent must be non-negative, got %d", exp)
	}
	result := math.Pow(base, float64(exp))
	if _, ok := args[0].(object.Integer); ok {
		return object.Integer(int64(result)), nil
	}
	return object.Float(result), nil
}

func builtinSqrt(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgs("sqrt", args, 1); err != nil {
		return nil, err
	}
	f, err := asFloat("sqrt", args[0])
	if err != nil {
		return nil, err
	}
	if f < 0 {
		return nil, argErrorf("sqrt: argument must be non-negative, got %v", f)
	}
	return object.Float(math.Sqrt(f)), nil
}

func builtinRandom(_ object.Invoker, args []object.Value) (object.Value, error) {
	if err := wantArgRange("random", args, 0, 1); err != nil {
		return nil, err
	}
	rngMu.Lock()
	defer rngMu.Unlock()
	if len(args) == 0 {
		return object.Integer(rng.Int64N(2)), nil
	}
	max, err := asInt("random", args[0])
	if err != nil {
		return nil, err
	}
	if max <= 0 {
		return nil, argErrorf("random: max must be positive, got %d", max)
	}
	return object.Integer(rng.Int64N(max)), nil
}
