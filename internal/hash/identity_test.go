package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_Deterministic(t *testing.T) {
	seed := []byte{1, 2, 3, 4}

	a := Identity("host-a", 1234, seed)
	b := Identity("host-a", 1234, seed)

	assert.Equal(t, a, b)
}

func TestIdentity_SensitiveToInputs(t *testing.T) {
	seed := []byte{1, 2, 3, 4}
	base := Identity("host-a", 1234, seed)

	assert.NotEqual(t, base, Identity("host-b", 1234, seed))
	assert.NotEqual(t, base, Identity("host-a", 1235, seed))
	assert.NotEqual(t, base, Identity("host-a", 1234, []byte{9, 9, 9, 9}))
}

func TestIdentityBytes_MatchesDigestLowBytes(t *testing.T) {
	seed := []byte{0xAB}
	digest := Identity("host", 42, seed)
	got := IdentityBytes("host", 42, seed)

	want := [4]byte{
		byte(digest >> 24),
		byte(digest >> 16),
		byte(digest >> 8),
		byte(digest),
	}
	assert.Equal(t, want, got)
}
