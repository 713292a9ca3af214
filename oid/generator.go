package oid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/arloliu/bindoc/errs"
	"github.com/arloliu/bindoc/internal/hash"
	"github.com/arloliu/bindoc/internal/options"
)

// Generator produces unique 12-byte identifiers.
//
// A Generator serializes its tick/counter state behind a mutex, so a single
// instance is safe for concurrent use and never repeats an identifier within
// a process under normal operation. Construct one per process (or use the
// package-level NewID, which maintains a lazily-initialized default) and
// inject it where identifiers are needed; tests can pin the clock and the
// identity via options.
type Generator struct {
	mu       sync.Mutex
	now      func() uint64 // milliseconds since the Unix epoch
	identity [4]byte
	lastTick uint64
	counter  uint32
}

// GeneratorOption represents a functional option for configuring a Generator.
type GeneratorOption = options.Option[*Generator]

// WithTimeFunc overrides the generator's clock. The function must return
// milliseconds since the Unix epoch.
func WithTimeFunc(now func() uint64) GeneratorOption {
	return options.New(func(g *Generator) error {
		if now == nil {
			return fmt.Errorf("time function must not be nil")
		}
		g.now = now

		return nil
	})
}

// WithIdentity fixes the generator's 4-byte random identity field.
func WithIdentity(identity [4]byte) GeneratorOption {
	return options.NoError(func(g *Generator) {
		g.identity = identity
	})
}

// NewGenerator creates a Generator whose identity field is derived from a
// random seed mixed with the host name and process ID.
func NewGenerator(opts ...GeneratorOption) (*Generator, error) {
	seed := make([]byte, 8)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("failed to seed id generator: %w", err)
	}

	hostname, _ := os.Hostname()

	g := &Generator{
		now:      func() uint64 { return uint64(time.Now().UnixMilli()) },
		identity: hash.IdentityBytes(hostname, os.Getpid(), seed),
	}

	if err := options.Apply(g, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// NewID produces the next identifier.
//
// The counter resets on every forward millisecond tick; a stalled or
// backwards-stepping clock keeps the generator on its last tick so the
// counter keeps advancing. If more than 65536 identifiers are requested
// within a single tick the generator fails with errs.ErrIDExhausted rather
// than repeating a value; callers may retry on the next tick.
func (g *Generator) NewID() (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tick := g.now()
	if tick > g.lastTick {
		g.lastTick = tick
		g.counter = 0
	} else {
		// Clock stall or regression: stay on the last tick so the counter
		// keeps advancing and a previously-issued value is never repeated.
		tick = g.lastTick
		if g.counter > math.MaxUint16 {
			return NilID, fmt.Errorf("%w: tick %d", errs.ErrIDExhausted, tick)
		}
	}

	count := uint16(g.counter)
	g.counter++

	var tickBytes [8]byte
	binary.BigEndian.PutUint64(tickBytes[:], tick)

	var id ID
	copy(id[:6], tickBytes[2:])
	copy(id[6:10], g.identity[:])
	binary.BigEndian.PutUint16(id[10:], count)

	return id, nil
}

var defaultGenerator = sync.OnceValues(func() (*Generator, error) {
	return NewGenerator()
})

// NewID produces an identifier from the process-wide default generator,
// initializing it on first use.
func NewID() (ID, error) {
	g, err := defaultGenerator()
	if err != nil {
		return NilID, err
	}

	return g.NewID()
}
