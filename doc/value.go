package doc

import (
	"bytes"
	"time"

	"github.com/arloliu/bindoc/format"
	"github.com/arloliu/bindoc/oid"
)

// Value is one element of a document: a scalar, a variable-length payload,
// an identifier, or a nested container. The set of implementations is
// closed; the codec rejects anything outside it.
type Value interface {
	// Type returns the one-byte element type tag used for framing.
	Type() format.ElementType
}

// ID is the 12-byte identifier element.
type ID = oid.ID

type (
	// Null is the payload-less null element.
	Null struct{}

	// Bool is the boolean element, encoded as a single 0x00/0x01 byte.
	Bool bool

	// I8 through U64 are the eight fixed-width integer elements. Signed
	// types are encoded in two's complement, multi-byte types little-endian.
	I8  int8
	U8  uint8
	I16 int16
	U16 uint16
	I32 int32
	U32 uint32
	I64 int64
	U64 uint64

	// F32 and F64 are IEEE-754 float elements, little-endian.
	F32 float32
	F64 float64

	// String is a length-prefixed UTF-8 string element.
	String string

	// Binary is a length-prefixed raw byte buffer element.
	Binary []byte

	// TimeStamp is a plain 64-bit magnitude with no calendar logic,
	// little-endian on the wire. By convention the unit is seconds since
	// the Unix epoch; deployments must not mix units within one system.
	TimeStamp uint64
)

func (Null) Type() format.ElementType      { return format.TypeNull }
func (Bool) Type() format.ElementType      { return format.TypeBool }
func (I8) Type() format.ElementType        { return format.TypeI8 }
func (U8) Type() format.ElementType        { return format.TypeU8 }
func (I16) Type() format.ElementType       { return format.TypeI16 }
func (U16) Type() format.ElementType       { return format.TypeU16 }
func (I32) Type() format.ElementType       { return format.TypeI32 }
func (U32) Type() format.ElementType       { return format.TypeU32 }
func (I64) Type() format.ElementType       { return format.TypeI64 }
func (U64) Type() format.ElementType       { return format.TypeU64 }
func (F32) Type() format.ElementType       { return format.TypeF32 }
func (F64) Type() format.ElementType       { return format.TypeF64 }
func (String) Type() format.ElementType    { return format.TypeString }
func (Binary) Type() format.ElementType    { return format.TypeBinary }
func (TimeStamp) Type() format.ElementType { return format.TypeTimeStamp }

// normalizeValue maps absent values to Null. A typed-nil *Map or *Array is
// a non-nil interface value, so the bare nil check alone would let it reach
// the encoder and nil-deref there.
func normalizeValue(v Value) Value {
	switch val := v.(type) {
	case nil:
		return Null{}
	case *Map:
		if val == nil {
			return Null{}
		}
	case *Array:
		if val == nil {
			return Null{}
		}
	}

	return v
}

// TimeStampOf converts a time.Time to a TimeStamp, truncating to seconds.
func TimeStampOf(t time.Time) TimeStamp {
	return TimeStamp(t.Unix())
}

// Time returns the TimeStamp as a UTC time.Time.
func (ts TimeStamp) Time() time.Time {
	return time.Unix(int64(ts), 0).UTC()
}

// Equal reports structural equality of two values: same variant and same
// payload. Map equality additionally requires identical iteration order,
// Array equality identical element order. There is no numeric coercion
// between variants.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case I8:
		bv, ok := b.(I8)
		return ok && av == bv
	case U8:
		bv, ok := b.(U8)
		return ok && av == bv
	case I16:
		bv, ok := b.(I16)
		return ok && av == bv
	case U16:
		bv, ok := b.(U16)
		return ok && av == bv
	case I32:
		bv, ok := b.(I32)
		return ok && av == bv
	case U32:
		bv, ok := b.(U32)
		return ok && av == bv
	case I64:
		bv, ok := b.(I64)
		return ok && av == bv
	case U64:
		bv, ok := b.(U64)
		return ok && av == bv
	case F32:
		bv, ok := b.(F32)
		return ok && av == bv
	case F64:
		bv, ok := b.(F64)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Binary:
		bv, ok := b.(Binary)
		return ok && bytes.Equal(av, bv)
	case TimeStamp:
		bv, ok := b.(TimeStamp)
		return ok && av == bv
	case oid.ID:
		bv, ok := b.(oid.ID)
		return ok && av == bv
	case *Array:
		bv, ok := b.(*Array)
		return ok && av.Equal(bv)
	case *Map:
		bv, ok := b.(*Map)
		return ok && av.Equal(bv)
	default:
		return false
	}
}
