package doc

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arloliu/bindoc/errs"
	"github.com/arloliu/bindoc/format"
	"github.com/arloliu/bindoc/oid"
)

// Map is an ordered mapping from UTF-8 string keys to values.
//
// Iteration order is insertion order and is part of a document's identity:
// it survives encoding and is required for equality. Setting an existing key
// overwrites the value in place without moving it; setting a new key appends
// it at the end. A Map is a plain owned value with no internal locking.
type Map struct {
	keys []string
	vals []Value
	idx  map[string]int
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{idx: make(map[string]int)}
}

// NewMapWithCapacity creates an empty Map pre-sized for n entries. The hint
// is a pure allocation optimization with no semantic effect.
func NewMapWithCapacity(n int) *Map {
	return &Map{
		keys: make([]string, 0, n),
		vals: make([]Value, 0, n),
		idx:  make(map[string]int, n),
	}
}

// Type returns the element type tag of a map.
func (m *Map) Type() format.ElementType {
	return format.TypeMap
}

// Set stores value under key. An existing key keeps its position and gets
// the new value; a new key is appended at the end. A nil value, including a
// typed-nil *Map or *Array, is stored as Null.
func (m *Map) Set(key string, value Value) {
	value = normalizeValue(value)

	if i, ok := m.idx[key]; ok {
		m.vals[i] = value
		return
	}

	m.idx[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	i, ok := m.idx[key]
	if !ok {
		return nil, false
	}

	return m.vals[i], true
}

// Contains reports whether key is present.
func (m *Map) Contains(key string) bool {
	_, ok := m.idx[key]
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// IsEmpty reports whether the map has no entries.
func (m *Map) IsEmpty() bool {
	return len(m.keys) == 0
}

// Delete removes key and returns its value. The relative order of the
// remaining entries is preserved.
func (m *Map) Delete(key string) (Value, bool) {
	i, ok := m.idx[key]
	if !ok {
		return nil, false
	}

	v := m.vals[i]
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	delete(m.idx, key)
	for j := i; j < len(m.keys); j++ {
		m.idx[m.keys[j]] = j
	}

	return v, true
}

// Clear removes all entries, retaining allocated capacity.
func (m *Map) Clear() {
	m.keys = m.keys[:0]
	m.vals = m.vals[:0]
	clear(m.idx)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Values returns the values in insertion order.
func (m *Map) Values() []Value {
	out := make([]Value, len(m.vals))
	copy(out, m.vals)

	return out
}

// All returns an iterator over key/value pairs in insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, key := range m.keys {
			if !yield(key, m.vals[i]) {
				return
			}
		}
	}
}

// Equal reports whether two maps hold equal values under equal keys in the
// same iteration order.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i, key := range m.keys {
		if key != o.keys[i] || !Equal(m.vals[i], o.vals[i]) {
			return false
		}
	}

	return true
}

// String renders the map for debugging.
func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteString("Map{")
	for i, key := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", key, m.vals[i])
	}
	sb.WriteString("}")

	return sb.String()
}

// value looks up key, failing with errs.ErrNotFound when absent.
func (m *Map) value(key string) (Value, error) {
	v, ok := m.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrNotFound, key)
	}

	return v, nil
}

func mismatch(key string, want format.ElementType, got Value) error {
	return fmt.Errorf("%w: key %q holds %s, want %s", errs.ErrTypeMismatch, key, got.Type(), want)
}

// Typed getters. Each looks up the key and views the stored value as the
// requested variant, failing with errs.ErrNotFound when the key is absent
// and errs.ErrTypeMismatch when the stored variant differs. No widening,
// narrowing, or default substitution is performed.

func (m *Map) GetBool(key string) (bool, error) {
	v, err := m.value(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(Bool)
	if !ok {
		return false, mismatch(key, format.TypeBool, v)
	}

	return bool(b), nil
}

func (m *Map) GetI8(key string) (int8, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(I8)
	if !ok {
		return 0, mismatch(key, format.TypeI8, v)
	}

	return int8(n), nil
}

func (m *Map) GetU8(key string) (uint8, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(U8)
	if !ok {
		return 0, mismatch(key, format.TypeU8, v)
	}

	return uint8(n), nil
}

func (m *Map) GetI16(key string) (int16, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(I16)
	if !ok {
		return 0, mismatch(key, format.TypeI16, v)
	}

	return int16(n), nil
}

func (m *Map) GetU16(key string) (uint16, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(U16)
	if !ok {
		return 0, mismatch(key, format.TypeU16, v)
	}

	return uint16(n), nil
}

func (m *Map) GetI32(key string) (int32, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(I32)
	if !ok {
		return 0, mismatch(key, format.TypeI32, v)
	}

	return int32(n), nil
}

func (m *Map) GetU32(key string) (uint32, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(U32)
	if !ok {
		return 0, mismatch(key, format.TypeU32, v)
	}

	return uint32(n), nil
}

func (m *Map) GetI64(key string) (int64, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(I64)
	if !ok {
		return 0, mismatch(key, format.TypeI64, v)
	}

	return int64(n), nil
}

func (m *Map) GetU64(key string) (uint64, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(U64)
	if !ok {
		return 0, mismatch(key, format.TypeU64, v)
	}

	return uint64(n), nil
}

func (m *Map) GetF32(key string) (float32, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	f, ok := v.(F32)
	if !ok {
		return 0, mismatch(key, format.TypeF32, v)
	}

	return float32(f), nil
}

func (m *Map) GetF64(key string) (float64, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	f, ok := v.(F64)
	if !ok {
		return 0, mismatch(key, format.TypeF64, v)
	}

	return float64(f), nil
}

func (m *Map) GetString(key string) (string, error) {
	v, err := m.value(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(String)
	if !ok {
		return "", mismatch(key, format.TypeString, v)
	}

	return string(s), nil
}

func (m *Map) GetBinary(key string) ([]byte, error) {
	v, err := m.value(key)
	if err != nil {
		return nil, err
	}
	b, ok := v.(Binary)
	if !ok {
		return nil, mismatch(key, format.TypeBinary, v)
	}

	return []byte(b), nil
}

func (m *Map) GetTimeStamp(key string) (TimeStamp, error) {
	v, err := m.value(key)
	if err != nil {
		return 0, err
	}
	ts, ok := v.(TimeStamp)
	if !ok {
		return 0, mismatch(key, format.TypeTimeStamp, v)
	}

	return ts, nil
}

func (m *Map) GetID(key string) (oid.ID, error) {
	v, err := m.value(key)
	if err != nil {
		return oid.NilID, err
	}
	id, ok := v.(oid.ID)
	if !ok {
		return oid.NilID, mismatch(key, format.TypeID, v)
	}

	return id, nil
}

func (m *Map) GetMap(key string) (*Map, error) {
	v, err := m.value(key)
	if err != nil {
		return nil, err
	}
	nested, ok := v.(*Map)
	if !ok {
		return nil, mismatch(key, format.TypeMap, v)
	}

	return nested, nil
}

func (m *Map) GetArray(key string) (*Array, error) {
	v, err := m.value(key)
	if err != nil {
		return nil, err
	}
	arr, ok := v.(*Array)
	if !ok {
		return nil, mismatch(key, format.TypeArray, v)
	}

	return arr, nil
}
