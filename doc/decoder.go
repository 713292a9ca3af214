package doc

import (
	"fmt"

	"github.com/arloliu/bindoc/encoding"
	"github.com/arloliu/bindoc/endian"
	"github.com/arloliu/bindoc/errs"
	"github.com/arloliu/bindoc/format"
	"github.com/arloliu/bindoc/internal/options"
	"github.com/arloliu/bindoc/oid"
)

// DefaultMaxDepth is the container nesting bound applied when no
// WithMaxDepth option is given. It guards against stack exhaustion from
// adversarial input; decode fails closed with errs.ErrDepthExceeded beyond
// the bound.
const DefaultMaxDepth = 128

// minFrameSize is the smallest legal container frame: the u32 length field
// plus the terminator byte.
const minFrameSize = encoding.LenPrefixSize + 1

type decodeConfig struct {
	maxDepth int
}

// DecodeOption represents a functional option for configuring a decode call.
type DecodeOption = options.Option[*decodeConfig]

// WithMaxDepth overrides the container nesting bound for one decode call.
func WithMaxDepth(n int) DecodeOption {
	return options.New(func(c *decodeConfig) error {
		if n <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", n)
		}
		c.maxDepth = n

		return nil
	})
}

// MapFromBytes decodes one map document from the front of data.
//
// Bytes beyond the document's declared frame are ignored, which supports
// embedding a document inside a larger stream. Decoding is all-or-nothing:
// on any error no partial map is returned.
func MapFromBytes(data []byte, opts ...DecodeOption) (*Map, error) {
	d, err := newDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return d.decodeMap(len(data), 0)
}

// ArrayFromBytes decodes one array document from the front of data, with
// the same framing rules as MapFromBytes.
func ArrayFromBytes(data []byte, opts ...DecodeOption) (*Array, error) {
	d, err := newDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return d.decodeArray(len(data), 0)
}

type decoder struct {
	data     []byte
	pos      int
	engine   endian.EndianEngine
	maxDepth int
}

func newDecoder(data []byte, opts ...DecodeOption) (*decoder, error) {
	cfg := &decodeConfig{maxDepth: DefaultMaxDepth}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &decoder{
		data:     data,
		engine:   endian.GetLittleEndianEngine(),
		maxDepth: cfg.maxDepth,
	}, nil
}

// openFrame reads and validates a container frame's u32 length field at the
// current position. limit bounds the readable region: the whole input for a
// top-level frame, the enclosing frame's end for a nested one. It returns
// the frame's end offset; the cursor is left after the length field.
func (d *decoder) openFrame(limit, depth int) (int, error) {
	if depth >= d.maxDepth {
		return 0, fmt.Errorf("%w: limit %d", errs.ErrDepthExceeded, d.maxDepth)
	}

	frameLen, err := encoding.ReadUint32(d.data[d.pos:limit], d.engine)
	if err != nil {
		return 0, err
	}
	if frameLen < minFrameSize {
		return 0, fmt.Errorf("%w: declared frame length %d below minimum %d",
			errs.ErrFraming, frameLen, minFrameSize)
	}
	// Unsigned comparison: int(frameLen) would wrap negative on 32-bit
	// targets for declared lengths at or above 2^31.
	if uint64(frameLen) > uint64(limit-d.pos) {
		return 0, fmt.Errorf("%w: declared frame length %d exceeds %d available bytes",
			errs.ErrTruncated, frameLen, limit-d.pos)
	}

	end := d.pos + int(frameLen)
	d.pos += encoding.LenPrefixSize

	return end, nil
}

// readTag reads one element tag byte, reporting whether it was the frame
// terminator. A terminator anywhere but the frame's last byte, or a frame
// end reached without one, is a framing error.
func (d *decoder) readTag(end int) (format.ElementType, bool, error) {
	if d.pos >= end {
		return 0, false, fmt.Errorf("%w: frame end reached without terminator", errs.ErrFraming)
	}

	b := d.data[d.pos]
	d.pos++

	if b == format.Terminator {
		if d.pos != end {
			return 0, false, fmt.Errorf("%w: terminator %d bytes before frame end",
				errs.ErrFraming, end-d.pos)
		}

		return 0, true, nil
	}

	tag, ok := format.ElementTypeFromByte(b)
	if !ok {
		return 0, false, fmt.Errorf("%w: 0x%02X", errs.ErrInvalidTag, b)
	}

	return tag, false, nil
}

func (d *decoder) decodeMap(limit, depth int) (*Map, error) {
	end, err := d.openFrame(limit, depth)
	if err != nil {
		return nil, err
	}

	m := NewMap()
	for {
		tag, done, err := d.readTag(end)
		if err != nil {
			return nil, err
		}
		if done {
			return m, nil
		}

		key, n, err := encoding.ReadString(d.data[d.pos:end], d.engine)
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		d.pos += n

		if m.Contains(key) {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
		}

		v, err := d.decodeValue(tag, end, depth)
		if err != nil {
			return nil, fmt.Errorf("map key %q: %w", key, err)
		}

		m.Set(key, v)
	}
}

func (d *decoder) decodeArray(limit, depth int) (*Array, error) {
	end, err := d.openFrame(limit, depth)
	if err != nil {
		return nil, err
	}

	a := NewArray()
	for {
		tag, done, err := d.readTag(end)
		if err != nil {
			return nil, err
		}
		if done {
			return a, nil
		}

		v, err := d.decodeValue(tag, end, depth)
		if err != nil {
			return nil, fmt.Errorf("array index %d: %w", a.Len(), err)
		}

		a.Push(v)
	}
}

// decodeValue dispatches on an already-read tag and decodes one element
// payload from within the enclosing frame. The dispatch is exhaustive over
// the closed element set; openFrame/readTag have already rejected unknown
// tags.
func (d *decoder) decodeValue(tag format.ElementType, end, depth int) (Value, error) {
	rest := d.data[d.pos:end]

	switch tag {
	case format.TypeNull:
		return Null{}, nil
	case format.TypeBool:
		v, err := encoding.ReadBool(rest)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeBool

		return Bool(v), nil
	case format.TypeI8:
		v, err := encoding.ReadInt8(rest)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeI8

		return I8(v), nil
	case format.TypeU8:
		v, err := encoding.ReadUint8(rest)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeU8

		return U8(v), nil
	case format.TypeI16:
		v, err := encoding.ReadInt16(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeI16

		return I16(v), nil
	case format.TypeU16:
		v, err := encoding.ReadUint16(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeU16

		return U16(v), nil
	case format.TypeI32:
		v, err := encoding.ReadInt32(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeI32

		return I32(v), nil
	case format.TypeU32:
		v, err := encoding.ReadUint32(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeU32

		return U32(v), nil
	case format.TypeI64:
		v, err := encoding.ReadInt64(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeI64

		return I64(v), nil
	case format.TypeU64:
		v, err := encoding.ReadUint64(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeU64

		return U64(v), nil
	case format.TypeF32:
		v, err := encoding.ReadFloat32(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeF32

		return F32(v), nil
	case format.TypeF64:
		v, err := encoding.ReadFloat64(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeF64

		return F64(v), nil
	case format.TypeString:
		s, n, err := encoding.ReadString(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += n

		return String(s), nil
	case format.TypeBinary:
		b, n, err := encoding.ReadBytes(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += n

		return Binary(b), nil
	case format.TypeTimeStamp:
		v, err := encoding.ReadUint64(rest, d.engine)
		if err != nil {
			return nil, err
		}
		d.pos += encoding.SizeU64

		return TimeStamp(v), nil
	case format.TypeID:
		if len(rest) < oid.IDSize {
			return nil, fmt.Errorf("%w: need %d bytes for ID, have %d",
				errs.ErrTruncated, oid.IDSize, len(rest))
		}
		id, err := oid.IDFromBytes(rest[:oid.IDSize])
		if err != nil {
			return nil, err
		}
		d.pos += oid.IDSize

		return id, nil
	case format.TypeArray:
		return d.decodeArray(end, depth+1)
	case format.TypeMap:
		return d.decodeMap(end, depth+1)
	default:
		return nil, fmt.Errorf("%w: 0x%02X", errs.ErrInvalidTag, byte(tag))
	}
}
