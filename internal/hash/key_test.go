package hash

import (
	"strconv"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestSum32Deterministic(t *testing.T) {
	require.Equal(t, Sum32("cache:item:42"), Sum32("cache:item:42"))
	require.NotEqual(t, Sum32("cache:item:42"), Sum32("cache:item:43"))
}

func TestSum32TruncatesXXHash(t *testing.T) {
	key := "some key"
	require.Equal(t, uint32(xxhash.Sum64String(key)), Sum32(key))
}

func TestFingerprintHashesHexText(t *testing.T) {
	h := Sum32("some key")
	hexText := strconv.FormatUint(uint64(h), 16)

	require.Equal(t, uint32(xxhash.Sum64String(hexText)), Fingerprint(h))
}

func TestFingerprintDecorrelated(t *testing.T) {
	// The fingerprint must not trivially track the placement hash;
	// otherwise colliding keys would always share fingerprints too.
	for _, key := range []string{"a", "b", "item:1", "item:2", "xyzzy"} {
		h := Sum32(key)
		require.NotEqual(t, h, Fingerprint(h), "key %q", key)
	}
}

func TestFingerprintSpread(t *testing.T) {
	// Distinct inputs should yield distinct fingerprints essentially
	// always; 10k inputs through a 32-bit hash may see a handful of
	// birthday collisions at most.
	seen := make(map[uint32]struct{}, 10000)
	collisions := 0
	for i := range 10000 {
		fp := Fingerprint(Sum32(strconv.Itoa(i)))
		if _, ok := seen[fp]; ok {
			collisions++
		}
		seen[fp] = struct{}{}
	}

	require.LessOrEqual(t, collisions, 3)
}
