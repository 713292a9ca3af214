package hash

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Identity computes a 64-bit process identity hash from the host name,
// process ID, and a random seed gathered once at startup.
//
// The identifier generator folds this digest into the random field of every
// ID it produces, so two processes on the same host (or the same process
// restarted) diverge even when their clocks agree.
func Identity(hostname string, pid int, seed []byte) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(hostname)
	_, _ = d.WriteString(strconv.Itoa(pid))
	_, _ = d.Write(seed)

	return d.Sum64()
}

// IdentityBytes returns the low 4 bytes of the identity digest in big-endian
// order, the layout the ID type embeds.
func IdentityBytes(hostname string, pid int, seed []byte) [4]byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], Identity(hostname, pid, seed))

	var out [4]byte
	copy(out[:], buf[4:])

	return out
}
