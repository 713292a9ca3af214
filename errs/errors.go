// Package errs defines the shared error vocabulary for the bindoc codec.
//
// All errors are sentinel values; call sites add context by wrapping them
// with fmt.Errorf("%w: ...") so callers can match with errors.Is.
package errs

import "errors"

// Decode errors.
var (
	// ErrTruncated indicates the buffer is shorter than a declared or
	// required length at some decode step.
	ErrTruncated = errors.New("buffer truncated")

	// ErrFraming indicates a container frame whose terminator is missing or
	// misplaced, or whose declared length disagrees with its content.
	ErrFraming = errors.New("invalid container frame")

	// ErrInvalidTag indicates a type-tag byte outside the known element set.
	ErrInvalidTag = errors.New("invalid element type tag")

	// ErrInvalidUTF8 indicates a string payload that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string payload")

	// ErrDuplicateKey indicates a map frame that repeats a key.
	ErrDuplicateKey = errors.New("duplicate map key")

	// ErrDepthExceeded indicates container nesting beyond the decoder's
	// configured safety bound.
	ErrDepthExceeded = errors.New("nesting depth exceeded")
)

// Encode errors.
var (
	// ErrEncodeOverflow indicates a payload or frame that exceeds the
	// 32-bit length field's representable range.
	ErrEncodeOverflow = errors.New("payload exceeds 32-bit length limit")
)

// Getter errors.
var (
	// ErrTypeMismatch indicates a typed getter invoked against an element
	// whose stored variant differs from the requested type.
	ErrTypeMismatch = errors.New("element type mismatch")

	// ErrNotFound indicates a getter invoked against an absent key or index.
	ErrNotFound = errors.New("key not found")
)

// Identifier errors.
var (
	// ErrIDExhausted indicates the per-tick ID counter wrapped before the
	// clock advanced to the next tick.
	ErrIDExhausted = errors.New("id counter exhausted within one tick")

	// ErrInvalidIDFormat indicates bytes or text that do not form a valid
	// 12-byte identifier.
	ErrInvalidIDFormat = errors.New("invalid id format")
)
