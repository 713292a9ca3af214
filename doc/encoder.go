package doc

import (
	"fmt"
	"math"

	"github.com/arloliu/bindoc/encoding"
	"github.com/arloliu/bindoc/endian"
	"github.com/arloliu/bindoc/errs"
	"github.com/arloliu/bindoc/format"
	"github.com/arloliu/bindoc/internal/pool"
	"github.com/arloliu/bindoc/oid"
)

// ToBytes encodes the map as one self-contained document frame.
func (m *Map) ToBytes() ([]byte, error) {
	return encodeDocument(func(e *encoder, bb *pool.ByteBuffer) error {
		return e.encodeMap(bb, m)
	})
}

// ToBytes encodes the array as one self-contained document frame.
func (a *Array) ToBytes() ([]byte, error) {
	return encodeDocument(func(e *encoder, bb *pool.ByteBuffer) error {
		return e.encodeArray(bb, a)
	})
}

func encodeDocument(encode func(*encoder, *pool.ByteBuffer) error) ([]byte, error) {
	bb := pool.GetDocBuffer()
	defer pool.PutDocBuffer(bb)

	e := &encoder{engine: endian.GetLittleEndianEngine()}
	if err := encode(e, bb); err != nil {
		return nil, err
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

type encoder struct {
	engine endian.EndianEngine
}

// encodeMap writes a map frame: a reserved u32 length, then per entry a tag
// byte, the length-prefixed key, and the element payload, then the
// terminator. The length placeholder is backpatched with the total frame
// size counted from the length field through the terminator inclusive.
func (e *encoder) encodeMap(bb *pool.ByteBuffer, m *Map) error {
	start := bb.Extend(encoding.LenPrefixSize)

	for i, key := range m.keys {
		v := m.vals[i]
		bb.MustWriteByte(byte(v.Type()))

		var err error
		bb.B, err = encoding.AppendString(bb.B, key, e.engine)
		if err != nil {
			return fmt.Errorf("map key %q: %w", key, err)
		}

		if err := e.encodeValue(bb, v); err != nil {
			return fmt.Errorf("map key %q: %w", key, err)
		}
	}

	bb.MustWriteByte(format.Terminator)

	return e.patchFrameLen(bb, start)
}

// encodeArray writes an array frame: identical outer framing to a map, with
// no keys between tags and payloads.
func (e *encoder) encodeArray(bb *pool.ByteBuffer, a *Array) error {
	start := bb.Extend(encoding.LenPrefixSize)

	for i, v := range a.vals {
		bb.MustWriteByte(byte(v.Type()))

		if err := e.encodeValue(bb, v); err != nil {
			return fmt.Errorf("array index %d: %w", i, err)
		}
	}

	bb.MustWriteByte(format.Terminator)

	return e.patchFrameLen(bb, start)
}

func (e *encoder) patchFrameLen(bb *pool.ByteBuffer, start int) error {
	frameLen := bb.Len() - start
	if uint64(frameLen) > math.MaxUint32 {
		return fmt.Errorf("%w: frame length %d", errs.ErrEncodeOverflow, frameLen)
	}

	e.engine.PutUint32(bb.Slice(start, start+encoding.LenPrefixSize), uint32(frameLen))

	return nil
}

// encodeValue writes one element payload. The type tag has already been
// written by the containing frame.
func (e *encoder) encodeValue(bb *pool.ByteBuffer, v Value) error {
	var err error

	switch val := v.(type) {
	case Null:
		// no payload
	case Bool:
		bb.B = encoding.AppendBool(bb.B, bool(val))
	case I8:
		bb.B = encoding.AppendInt8(bb.B, int8(val))
	case U8:
		bb.B = encoding.AppendUint8(bb.B, uint8(val))
	case I16:
		bb.B = encoding.AppendInt16(bb.B, int16(val), e.engine)
	case U16:
		bb.B = encoding.AppendUint16(bb.B, uint16(val), e.engine)
	case I32:
		bb.B = encoding.AppendInt32(bb.B, int32(val), e.engine)
	case U32:
		bb.B = encoding.AppendUint32(bb.B, uint32(val), e.engine)
	case I64:
		bb.B = encoding.AppendInt64(bb.B, int64(val), e.engine)
	case U64:
		bb.B = encoding.AppendUint64(bb.B, uint64(val), e.engine)
	case F32:
		bb.B = encoding.AppendFloat32(bb.B, float32(val), e.engine)
	case F64:
		bb.B = encoding.AppendFloat64(bb.B, float64(val), e.engine)
	case String:
		bb.B, err = encoding.AppendString(bb.B, string(val), e.engine)
	case Binary:
		bb.B, err = encoding.AppendBytes(bb.B, []byte(val), e.engine)
	case TimeStamp:
		bb.B = encoding.AppendUint64(bb.B, uint64(val), e.engine)
	case oid.ID:
		bb.MustWrite(val[:])
	case *Array:
		err = e.encodeArray(bb, val)
	case *Map:
		err = e.encodeMap(bb, val)
	default:
		// The Value set is closed; a foreign implementation is a caller bug.
		err = fmt.Errorf("%w: unsupported value type %T", errs.ErrInvalidTag, v)
	}

	return err
}
