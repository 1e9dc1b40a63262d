package hodges

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hodges/set"
)

func TestNewDefault(t *testing.T) {
	s, err := New()

	require.NoError(t, err)
	require.Equal(t, uint64(256), s.SlotCount())
	require.Equal(t, uint64(3), s.SlotWidth())
	require.Equal(t, 773, s.Size())
}

func TestNewWithOptions(t *testing.T) {
	s, err := New(set.WithSlotCount(1024), set.WithSlotWidth(4))

	require.NoError(t, err)
	require.Equal(t, uint64(1024), s.SlotCount())
	require.Equal(t, uint64(4), s.SlotWidth())
}

func TestDigestExchange(t *testing.T) {
	sender, err := New()
	require.NoError(t, err)
	sender.Add("item:1001").Add("item:1002")

	receiver, err := Decode(sender.Encode())
	require.NoError(t, err)

	require.True(t, receiver.Contains("item:1001"))
	require.True(t, receiver.Contains("item:1002"))
	require.False(t, receiver.Contains("item:1003"))
}

func TestCompactDigestExchange(t *testing.T) {
	sender, err := New()
	require.NoError(t, err)
	sender.Add("item:1001")

	d, err := sender.EncodeCompact(CompressionZstd)
	require.NoError(t, err)

	receiver, err := DecodeCompact(d)
	require.NoError(t, err)
	require.True(t, receiver.Contains("item:1001"))
}

func TestFromBytesValidatesRemoteBuffers(t *testing.T) {
	_, err := FromBytes([]byte{0x10})
	require.Error(t, err)

	s, err := New()
	require.NoError(t, err)

	restored, err := FromBytes(s.Bytes())
	require.NoError(t, err)
	require.NotNil(t, restored)
}

func TestKeyHash(t *testing.T) {
	require.Equal(t, KeyHash("a"), KeyHash("a"))
	require.NotEqual(t, KeyHash("a"), KeyHash("b"))
}

// TestErrorRates mirrors the structure's acceptance numbers: inserting 200
// distinct keys into the default 256x3 geometry must produce zero false
// positives over 20k disjoint lookups, and a false negative count on the
// inserted keys consistent with the expected eviction rate.
func TestErrorRates(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))

	unique := make(map[string]struct{}, 20200)
	ids := make([]string, 0, 20200)
	for len(ids) < 20200 {
		id := strconv.FormatUint(rng.Uint64N(12345678987654321), 10)
		if _, dup := unique[id]; dup {
			continue
		}
		unique[id] = struct{}{}
		ids = append(ids, id)
	}

	inserted, others := ids[:200], ids[200:]

	s, err := New()
	require.NoError(t, err)
	for _, id := range inserted {
		s.Add(id)
	}

	falsePositives := 0
	for _, id := range others {
		if s.Contains(id) {
			falsePositives++
		}
	}
	require.Equal(t, 0, falsePositives)

	falseNegatives := 0
	for _, id := range inserted[:100] {
		if !s.Contains(id) {
			falseNegatives++
		}
	}

	// 200 keys over 256 slots evict roughly a fifth to a quarter of a
	// sample; allow generous slack around that expectation.
	require.GreaterOrEqual(t, falseNegatives, 5)
	require.LessOrEqual(t, falseNegatives, 50)
}
