package doc

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arloliu/bindoc/errs"
	"github.com/arloliu/bindoc/format"
	"github.com/arloliu/bindoc/oid"
)

// Array is an ordered sequence of values, indexed by position only.
// Duplicates and heterogeneous element types are permitted. An Array is a
// plain owned value with no internal locking.
type Array struct {
	vals []Value
}

// NewArray creates an empty Array.
func NewArray() *Array {
	return &Array{}
}

// NewArrayWithCapacity creates an empty Array pre-sized for n elements. The
// hint is a pure allocation optimization with no semantic effect.
func NewArrayWithCapacity(n int) *Array {
	return &Array{vals: make([]Value, 0, n)}
}

// Type returns the element type tag of an array.
func (a *Array) Type() format.ElementType {
	return format.TypeArray
}

// Push appends value at the end. A nil value, including a typed-nil *Map or
// *Array, is stored as Null.
func (a *Array) Push(value Value) {
	a.vals = append(a.vals, normalizeValue(value))
}

// Get returns the value at index i.
func (a *Array) Get(i int) (Value, bool) {
	if i < 0 || i >= len(a.vals) {
		return nil, false
	}

	return a.vals[i], true
}

// Set replaces the value at index i, reporting whether i was in range. A
// nil value, including a typed-nil *Map or *Array, is stored as Null.
func (a *Array) Set(i int, value Value) bool {
	if i < 0 || i >= len(a.vals) {
		return false
	}
	a.vals[i] = normalizeValue(value)

	return true
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.vals)
}

// IsEmpty reports whether the array has no elements.
func (a *Array) IsEmpty() bool {
	return len(a.vals) == 0
}

// Values returns the elements in positional order.
func (a *Array) Values() []Value {
	out := make([]Value, len(a.vals))
	copy(out, a.vals)

	return out
}

// All returns an iterator over index/value pairs in positional order.
func (a *Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range a.vals {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether two arrays hold equal values in the same order.
func (a *Array) Equal(o *Array) bool {
	if a == nil || o == nil {
		return a == o
	}
	if len(a.vals) != len(o.vals) {
		return false
	}
	for i, v := range a.vals {
		if !Equal(v, o.vals[i]) {
			return false
		}
	}

	return true
}

// String renders the array for debugging.
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString("Array[")
	for i, v := range a.vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("]")

	return sb.String()
}

// value looks up index i, failing with errs.ErrNotFound when out of range.
func (a *Array) value(i int) (Value, error) {
	v, ok := a.Get(i)
	if !ok {
		return nil, fmt.Errorf("%w: index %d of %d", errs.ErrNotFound, i, len(a.vals))
	}

	return v, nil
}

func indexMismatch(i int, want format.ElementType, got Value) error {
	return fmt.Errorf("%w: index %d holds %s, want %s", errs.ErrTypeMismatch, i, got.Type(), want)
}

// Typed getters, mirroring Map's: view the element at index i as the
// requested variant or fail with errs.ErrNotFound / errs.ErrTypeMismatch.

func (a *Array) GetBool(i int) (bool, error) {
	v, err := a.value(i)
	if err != nil {
		return false, err
	}
	b, ok := v.(Bool)
	if !ok {
		return false, indexMismatch(i, format.TypeBool, v)
	}

	return bool(b), nil
}

func (a *Array) GetI8(i int) (int8, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	n, ok := v.(I8)
	if !ok {
		return 0, indexMismatch(i, format.TypeI8, v)
	}

	return int8(n), nil
}

func (a *Array) GetU8(i int) (uint8, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	n, ok := v.(U8)
	if !ok {
		return 0, indexMismatch(i, format.TypeU8, v)
	}

	return uint8(n), nil
}

func (a *Array) GetI16(i int) (int16, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	n, ok := v.(I16)
	if !ok {
		return 0, indexMismatch(i, format.TypeI16, v)
	}

	return int16(n), nil
}

func (a *Array) GetU16(i int) (uint16, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	n, ok := v.(U16)
	if !ok {
		return 0, indexMismatch(i, format.TypeU16, v)
	}

	return uint16(n), nil
}

func (a *Array) GetI32(i int) (int32, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	n, ok := v.(I32)
	if !ok {
		return 0, indexMismatch(i, format.TypeI32, v)
	}

	return int32(n), nil
}

func (a *Array) GetU32(i int) (uint32, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	n, ok := v.(U32)
	if !ok {
		return 0, indexMismatch(i, format.TypeU32, v)
	}

	return uint32(n), nil
}

func (a *Array) GetI64(i int) (int64, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	n, ok := v.(I64)
	if !ok {
		return 0, indexMismatch(i, format.TypeI64, v)
	}

	return int64(n), nil
}

func (a *Array) GetU64(i int) (uint64, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	n, ok := v.(U64)
	if !ok {
		return 0, indexMismatch(i, format.TypeU64, v)
	}

	return uint64(n), nil
}

func (a *Array) GetF32(i int) (float32, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	f, ok := v.(F32)
	if !ok {
		return 0, indexMismatch(i, format.TypeF32, v)
	}

	return float32(f), nil
}

func (a *Array) GetF64(i int) (float64, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	f, ok := v.(F64)
	if !ok {
		return 0, indexMismatch(i, format.TypeF64, v)
	}

	return float64(f), nil
}

func (a *Array) GetString(i int) (string, error) {
	v, err := a.value(i)
	if err != nil {
		return "", err
	}
	s, ok := v.(String)
	if !ok {
		return "", indexMismatch(i, format.TypeString, v)
	}

	return string(s), nil
}

func (a *Array) GetBinary(i int) ([]byte, error) {
	v, err := a.value(i)
	if err != nil {
		return nil, err
	}
	b, ok := v.(Binary)
	if !ok {
		return nil, indexMismatch(i, format.TypeBinary, v)
	}

	return []byte(b), nil
}

func (a *Array) GetTimeStamp(i int) (TimeStamp, error) {
	v, err := a.value(i)
	if err != nil {
		return 0, err
	}
	ts, ok := v.(TimeStamp)
	if !ok {
		return 0, indexMismatch(i, format.TypeTimeStamp, v)
	}

	return ts, nil
}

func (a *Array) GetID(i int) (oid.ID, error) {
	v, err := a.value(i)
	if err != nil {
		return oid.NilID, err
	}
	id, ok := v.(oid.ID)
	if !ok {
		return oid.NilID, indexMismatch(i, format.TypeID, v)
	}

	return id, nil
}

func (a *Array) GetMap(i int) (*Map, error) {
	v, err := a.value(i)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*Map)
	if !ok {
		return nil, indexMismatch(i, format.TypeMap, v)
	}

	return m, nil
}

func (a *Array) GetArray(i int) (*Array, error) {
	v, err := a.value(i)
	if err != nil {
		return nil, err
	}
	nested, ok := v.(*Array)
	if !ok {
		return nil, indexMismatch(i, format.TypeArray, v)
	}

	return nested, nil
}
