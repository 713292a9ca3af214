package doc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/bindoc/errs"
	"github.com/arloliu/bindoc/oid"
)

func TestEncode_EmptyContainers(t *testing.T) {
	m := NewMap()
	data, err := m.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 0x00}, data,
		"empty frame is the u32 length 5 plus the terminator")

	a := NewArray()
	data, err = a.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 0x00}, data)
}

func TestEncode_ConcreteScenario(t *testing.T) {
	m := NewMap()
	m.Set("temperature", I16(2350))
	m.Set("humidity", U8(65))

	data, err := m.ToBytes()
	require.NoError(t, err)

	// 4 (outer length)
	// + [1 tag + (4+11) key + 2 payload]
	// + [1 tag + (4+8) key + 1 payload]
	// + 1 (terminator)
	require.Equal(t, 37, len(data))

	want := []byte{
		0x25, 0x00, 0x00, 0x00, // frame length 37
		0x19,                   // I16 tag
		0x0B, 0x00, 0x00, 0x00, // key length 11
		't', 'e', 'm', 'p', 'e', 'r', 'a', 't', 'u', 'r', 'e',
		0x2E, 0x09, // 2350 little-endian
		0x18,                   // U8 tag
		0x08, 0x00, 0x00, 0x00, // key length 8
		'h', 'u', 'm', 'i', 'd', 'i', 't', 'y',
		0x41, // 65
		0x00, // terminator
	}
	assert.Equal(t, want, data)

	decoded, err := MapFromBytes(data)
	require.NoError(t, err)
	require.True(t, m.Equal(decoded))

	temp, err := decoded.GetI16("temperature")
	require.NoError(t, err)
	assert.Equal(t, int16(2350), temp)

	hum, err := decoded.GetU8("humidity")
	require.NoError(t, err)
	assert.Equal(t, uint8(65), hum)

	// The unsigned view of the stored I16 must not be coerced.
	_, err = decoded.GetU16("temperature")
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestMapRoundTrip_AllVariants(t *testing.T) {
	id, err := oid.IDFromHex("016f9dbd9df7f7dc9c86d573")
	require.NoError(t, err)

	nested := NewMap()
	nested.Set("inner", String("value"))

	arr := NewArray()
	arr.Push(U8(1))
	arr.Push(String("two"))
	arr.Push(Null{})

	m := NewMap()
	m.Set("null", Null{})
	m.Set("bool", Bool(true))
	m.Set("i8", I8(-128))
	m.Set("u8", U8(255))
	m.Set("i16", I16(-32768))
	m.Set("u16", U16(65535))
	m.Set("i32", I32(-2147483648))
	m.Set("u32", U32(4294967295))
	m.Set("i64", I64(math.MinInt64))
	m.Set("u64", U64(math.MaxUint64))
	m.Set("f32", F32(3.5))
	m.Set("f64", F64(-2.25))
	m.Set("str", String("héllo"))
	m.Set("bin", Binary{0x00, 0x01, 0xFF})
	m.Set("ts", TimeStamp(1700000000))
	m.Set("id", id)
	m.Set("map", nested)
	m.Set("arr", arr)

	data, err := m.ToBytes()
	require.NoError(t, err)

	decoded, err := MapFromBytes(data)
	require.NoError(t, err)

	require.True(t, m.Equal(decoded), "decode must be a total inverse of encode")
	assert.Equal(t, m.Keys(), decoded.Keys(), "iteration order survives the wire")
}

func TestArrayRoundTrip(t *testing.T) {
	a := NewArray()
	a.Push(U8(1))
	a.Push(U8(2))

	data, err := a.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x09, 0x00, 0x00, 0x00,
		0x18, 0x01,
		0x18, 0x02,
		0x00,
	}, data)

	decoded, err := ArrayFromBytes(data)
	require.NoError(t, err)
	assert.True(t, a.Equal(decoded))
}

func TestRoundTrip_IntegerBoundaries(t *testing.T) {
	cases := []Value{
		I8(math.MinInt8), I8(math.MaxInt8),
		U8(0), U8(math.MaxUint8),
		I16(math.MinInt16), I16(math.MaxInt16),
		U16(0), U16(math.MaxUint16),
		I32(math.MinInt32), I32(math.MaxInt32),
		U32(0), U32(math.MaxUint32),
		I64(math.MinInt64), I64(math.MaxInt64),
		U64(0), U64(math.MaxUint64),
	}

	a := NewArray()
	for _, v := range cases {
		a.Push(v)
	}

	data, err := a.ToBytes()
	require.NoError(t, err)

	decoded, err := ArrayFromBytes(data)
	require.NoError(t, err)
	require.True(t, a.Equal(decoded))

	// Spot-check the extremes through typed getters.
	u64, err := decoded.GetU64(15)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), u64)

	i8, err := decoded.GetI8(0)
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i8)
}

func TestNestedContainers_RoundTripAndIsolation(t *testing.T) {
	reading1 := NewMap()
	reading1.Set("temperature", I16(2350))
	reading1.Set("ok", Bool(true))

	reading2 := NewMap()
	reading2.Set("temperature", I16(-40))
	reading2.Set("ok", Bool(false))

	readings := NewArray()
	readings.Push(reading1)
	readings.Push(reading2)

	m := NewMap()
	m.Set("sensor", String("greenhouse"))
	m.Set("readings", readings)
	m.Set("after", U8(7)) // sibling following the nested frame

	data, err := m.ToBytes()
	require.NoError(t, err)

	decoded, err := MapFromBytes(data)
	require.NoError(t, err)
	require.True(t, m.Equal(decoded))

	gotReadings, err := decoded.GetArray("readings")
	require.NoError(t, err)
	require.Equal(t, 2, gotReadings.Len())

	first, err := gotReadings.GetMap(0)
	require.NoError(t, err)
	temp, err := first.GetI16("temperature")
	require.NoError(t, err)
	assert.Equal(t, int16(2350), temp)

	second, err := gotReadings.GetMap(1)
	require.NoError(t, err)
	temp, err = second.GetI16("temperature")
	require.NoError(t, err)
	assert.Equal(t, int16(-40), temp)

	// The element after the nested frame decodes from its own bytes, not
	// the nested frame's.
	after, err := decoded.GetU8("after")
	require.NoError(t, err)
	assert.Equal(t, uint8(7), after)
}

func TestDecode_TrailingBytesIgnored(t *testing.T) {
	m := NewMap()
	m.Set("a", U8(1))

	data, err := m.ToBytes()
	require.NoError(t, err)

	padded := append(data, 0xFF, 0xAB, 0x00, 0x21)
	decoded, err := MapFromBytes(padded)
	require.NoError(t, err, "bytes beyond the declared frame are not part of the document")
	assert.True(t, m.Equal(decoded))
}

func TestDecode_TruncationSweep(t *testing.T) {
	nested := NewMap()
	nested.Set("inner", String("abcdef"))

	m := NewMap()
	m.Set("temperature", I16(2350))
	m.Set("nested", nested)
	m.Set("bin", Binary{1, 2, 3, 4})

	data, err := m.ToBytes()
	require.NoError(t, err)

	for cut := 0; cut < len(data); cut++ {
		_, err := MapFromBytes(data[:cut])
		require.Error(t, err, "truncated to %d of %d bytes must fail", cut, len(data))
		require.True(t,
			errors.Is(err, errs.ErrTruncated) || errors.Is(err, errs.ErrFraming),
			"truncated to %d bytes: got %v", cut, err)
	}
}

func TestDecode_FramingErrors(t *testing.T) {
	t.Run("declared length below minimum", func(t *testing.T) {
		_, err := ArrayFromBytes([]byte{0x03, 0x00, 0x00, 0x00})
		require.ErrorIs(t, err, errs.ErrFraming)
	})

	t.Run("declared length exceeds buffer", func(t *testing.T) {
		_, err := ArrayFromBytes([]byte{0x0A, 0x00, 0x00, 0x00, 0x00})
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("missing terminator", func(t *testing.T) {
		// Length 5 frame whose last byte is a Null element, not 0x00.
		_, err := ArrayFromBytes([]byte{0x05, 0x00, 0x00, 0x00, 0x02})
		require.ErrorIs(t, err, errs.ErrFraming)
	})

	t.Run("terminator before frame end", func(t *testing.T) {
		_, err := ArrayFromBytes([]byte{0x06, 0x00, 0x00, 0x00, 0x00, 0x00})
		require.ErrorIs(t, err, errs.ErrFraming)
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, err := ArrayFromBytes([]byte{0x06, 0x00, 0x00, 0x00, 0xFF, 0x00})
		require.ErrorIs(t, err, errs.ErrInvalidTag)
	})

	// Declared lengths at or above 2^31 wrap negative through int on 32-bit
	// targets; both checks must stay in the unsigned domain.
	t.Run("huge declared frame length", func(t *testing.T) {
		_, err := ArrayFromBytes([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00})
		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("huge declared string length", func(t *testing.T) {
		// Length-10 array frame holding a String element that declares
		// 0xFFFFFFFF content bytes.
		_, err := ArrayFromBytes([]byte{
			0x0A, 0x00, 0x00, 0x00,
			0x21, 0xFF, 0xFF, 0xFF, 0xFF,
			0x00,
		})
		require.ErrorIs(t, err, errs.ErrTruncated)
	})
}

func TestEncode_InvalidUTF8Rejected(t *testing.T) {
	bad := String([]byte{0xFF, 0xFE})

	m := NewMap()
	m.Set("s", bad)
	_, err := m.ToBytes()
	require.ErrorIs(t, err, errs.ErrInvalidUTF8,
		"a document that encodes cleanly must decode cleanly")

	m = NewMap()
	m.Set(string([]byte{0xC0}), U8(1))
	_, err = m.ToBytes()
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)

	a := NewArray()
	a.Push(bad)
	_, err = a.ToBytes()
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestEncode_TypedNilContainersStoredAsNull(t *testing.T) {
	m := NewMap()
	m.Set("m", (*Map)(nil))
	m.Set("a", (*Array)(nil))

	v, ok := m.Get("m")
	require.True(t, ok)
	assert.Equal(t, Null{}, v)

	data, err := m.ToBytes()
	require.NoError(t, err)

	decoded, err := MapFromBytes(data)
	require.NoError(t, err)
	assert.True(t, m.Equal(decoded))
}

func TestDecode_DuplicateKey(t *testing.T) {
	// Map frame carrying the key "a" twice with U8 payloads.
	data := []byte{
		0x13, 0x00, 0x00, 0x00,
		0x18, 0x01, 0x00, 0x00, 0x00, 'a', 0x01,
		0x18, 0x01, 0x00, 0x00, 0x00, 'a', 0x02,
		0x00,
	}

	_, err := MapFromBytes(data)
	require.ErrorIs(t, err, errs.ErrDuplicateKey)
}

func TestDecode_InvalidUTF8String(t *testing.T) {
	// Array frame with a one-byte String payload 0xFF.
	data := []byte{
		0x0B, 0x00, 0x00, 0x00,
		0x21, 0x01, 0x00, 0x00, 0x00, 0xFF,
		0x00,
	}

	_, err := ArrayFromBytes(data)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestDecode_DepthBound(t *testing.T) {
	// Ten nested arrays.
	inner := NewArray()
	inner.Push(U8(1))
	for i := 0; i < 9; i++ {
		wrapper := NewArray()
		wrapper.Push(inner)
		inner = wrapper
	}

	data, err := inner.ToBytes()
	require.NoError(t, err)

	_, err = ArrayFromBytes(data, WithMaxDepth(5))
	require.ErrorIs(t, err, errs.ErrDepthExceeded)

	decoded, err := ArrayFromBytes(data, WithMaxDepth(10))
	require.NoError(t, err)
	assert.True(t, inner.Equal(decoded))

	decoded, err = ArrayFromBytes(data)
	require.NoError(t, err, "default bound admits realistic nesting")
	assert.True(t, inner.Equal(decoded))
}

func TestDecode_InvalidMaxDepthOption(t *testing.T) {
	_, err := MapFromBytes([]byte{0x05, 0x00, 0x00, 0x00, 0x00}, WithMaxDepth(0))
	require.Error(t, err)
}

func TestEncode_DeterministicForEqualDocuments(t *testing.T) {
	build := func() *Map {
		m := NewMap()
		m.Set("k1", I64(-5))
		m.Set("k2", String("x"))
		return m
	}

	d1, err := build().ToBytes()
	require.NoError(t, err)
	d2, err := build().ToBytes()
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}

func TestTimeStamp_TimeHelpers(t *testing.T) {
	ts := TimeStamp(1700000000)
	assert.Equal(t, int64(1700000000), ts.Time().Unix())
	assert.Equal(t, ts, TimeStampOf(ts.Time()))
}
