package encoding

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/bindoc/endian"
	"github.com/arloliu/bindoc/errs"
)

// LenPrefixSize is the width of the u32 length prefix carried by every
// variable-length field (String, Binary) and by container frames.
const LenPrefixSize = 4

// MaxVarLen is the largest content length representable by the u32 length
// prefix. Larger payloads are rejected before encoding.
const MaxVarLen = math.MaxUint32

// AppendString appends a length-prefixed UTF-8 string: a u32 content byte
// length followed by the raw bytes. No terminator, no escaping.
//
// Returns errs.ErrEncodeOverflow if the content exceeds MaxVarLen, and
// errs.ErrInvalidUTF8 if the content is not valid UTF-8. Go strings carry no
// encoding guarantee, so the check happens here rather than only on decode;
// a document that encodes cleanly always decodes cleanly.
func AppendString(buf []byte, s string, engine endian.EndianEngine) ([]byte, error) {
	if uint64(len(s)) > MaxVarLen {
		return buf, fmt.Errorf("%w: string length %d", errs.ErrEncodeOverflow, len(s))
	}
	if !utf8.ValidString(s) {
		return buf, fmt.Errorf("%w: string payload of %d bytes", errs.ErrInvalidUTF8, len(s))
	}

	buf = engine.AppendUint32(buf, uint32(len(s)))
	buf = append(buf, s...)

	return buf, nil
}

// AppendBytes appends a length-prefixed byte buffer: a u32 content byte
// length followed by the raw bytes.
//
// Returns errs.ErrEncodeOverflow if the content exceeds MaxVarLen.
func AppendBytes(buf []byte, p []byte, engine endian.EndianEngine) ([]byte, error) {
	if uint64(len(p)) > MaxVarLen {
		return buf, fmt.Errorf("%w: binary length %d", errs.ErrEncodeOverflow, len(p))
	}

	buf = engine.AppendUint32(buf, uint32(len(p)))
	buf = append(buf, p...)

	return buf, nil
}

// ReadString decodes a length-prefixed UTF-8 string from the front of data
// and returns the string together with the total number of bytes consumed
// (prefix plus content).
//
// Fails with errs.ErrTruncated when data is shorter than the declared
// length, and with errs.ErrInvalidUTF8 when the content is not valid UTF-8;
// lossy repair is never performed.
func ReadString(data []byte, engine endian.EndianEngine) (string, int, error) {
	content, consumed, err := readVarLen(data, engine, "string")
	if err != nil {
		return "", 0, err
	}

	if !utf8.Valid(content) {
		return "", 0, fmt.Errorf("%w: string payload of %d bytes", errs.ErrInvalidUTF8, len(content))
	}

	return string(content), consumed, nil
}

// ReadBytes decodes a length-prefixed byte buffer from the front of data and
// returns a copy of the content together with the total number of bytes
// consumed (prefix plus content).
func ReadBytes(data []byte, engine endian.EndianEngine) ([]byte, int, error) {
	content, consumed, err := readVarLen(data, engine, "binary")
	if err != nil {
		return nil, 0, err
	}

	out := make([]byte, len(content))
	copy(out, content)

	return out, consumed, nil
}

func readVarLen(data []byte, engine endian.EndianEngine, kind string) ([]byte, int, error) {
	if len(data) < LenPrefixSize {
		return nil, 0, fmt.Errorf("%w: need %d bytes for %s length prefix, have %d",
			errs.ErrTruncated, LenPrefixSize, kind, len(data))
	}

	// Compare in the unsigned 64-bit domain: a declared length at or above
	// 2^31 would wrap negative through int on 32-bit targets and slip past
	// the bound check.
	declared := engine.Uint32(data)
	if uint64(len(data)-LenPrefixSize) < uint64(declared) {
		return nil, 0, fmt.Errorf("%w: %s declares %d content bytes, have %d",
			errs.ErrTruncated, kind, declared, len(data)-LenPrefixSize)
	}

	length := int(declared)

	return data[LenPrefixSize : LenPrefixSize+length], LenPrefixSize + length, nil
}
