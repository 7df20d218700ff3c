package object

import (
	"fmt"
	"strings"

	"github.com/dolthub/swiss"
)

// Hash is an insertion-ordered string-keyed mapping, lumen's only built-in
// associative collection. Lookups are served by a swiss-table hash map;
// since swiss.Map does not preserve insertion order, a parallel slice of
// keys tracks it for iteration and String().
type Hash struct {
	m      *swiss.Map[string, Value]
	order  []string
	frozen bool
}

// NewHash returns an empty Hash with initial capacity for at least size
// entries.
func NewHash(size int) *Hash {
	if size < 1 {
		size = 1
	}
	return &Hash{m: swiss.NewMap[string, Value](uint32(size))}
}

func (h *Hash) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range h.order {
		if i > 0 {
			b.WriteString(", ")
		}
		v, _ := h.m.Get(k)
		fmt.Fprintf(&b, "%q: %s", k, v.String())
	}
	b.WriteByte('}')
	return b.String()
}

func (h *Hash) Type() string { return "hash" }
func (h *Hash) Truth() bool  { return h.Len() > 0 }

func (h *Hash) Freeze()      { h.frozen = true }
func (h *Hash) Frozen() bool { return h.frozen }

func (h *Hash) Len() int { return len(h.order) }

func (h *Hash) Keys() []Value {
	keys := make([]Value, len(h.order))
	for i, k := range h.order {
		keys[i] = String(k)
	}
	return keys
}

func hashKey(v Value) (string, error) {
	s, ok := v.(String)
	if !ok {
		return "", fmt.Errorf("hash key must be a string, got %s", v.Type())
	}
	return string(s), nil
}

func (h *Hash) Get(key Value) (Value, bool, error) {
	k, err := hashKey(key)
	if err != nil {
		return nil, false, err
	}
	v, ok := h.m.Get(k)
	return v, ok, nil
}

func (h *Hash) Set(key, v Value) error {
	if h.frozen {
		return fmt.Errorf("cannot mutate a frozen hash")
	}
	k, err := hashKey(key)
	if err != nil {
		return err
	}
	if _, exists := h.m.Get(k); !exists {
		h.order = append(h.order, k)
	}
	h.m.Put(k, v)
	return nil
}

func (h *Hash) Delete(key Value) (Value, bool, error) {
	if h.frozen {
		return nil, false, fmt.Errorf("cannot mutate a frozen hash")
	}
	k, err := hashKey(key)
	if err != nil {
		return nil, false, err
	}
	v, ok := h.m.Get(k)
	if !ok {
		return nil, false, nil
	}
	h.m.Delete(k)
	for i, existing := range h.order {
		if existing == k {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	return v, true, nil
}

func (h *Hash) Index(i Value) (Value, error) {
	v, ok, err := h.Get(i)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("key not found: %s", i.String())
	}
	return v, nil
}

func (h *Hash) SetIndex(i, v Value) error { return h.Set(i, v) }

func (h *Hash) Iterate() Iterator {
	pairs := make([]Value, len(h.order))
	for i, k := range h.order {
		v, _ := h.m.Get(k)
		pairs[i] = NewArray([]Value{String(k), v})
	}
	return &sliceIterator{values: pairs}
}

var (
	_ Value       = (*Hash)(nil)
	_ Mapping     = (*Hash)(nil)
	_ Indexable   = (*Hash)(nil)
	_ HasSetIndex = (*Hash)(nil)
	_ Iterable    = (*Hash)(nil)
	_ Freezable   = (*Hash)(nil)
)
