// internal/tai64/tai64_test.go
package tai64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Epoch(t *testing.T) {
	b := [Size]byte{0x40, 0, 0, 0, 0, 0, 0, 0x0a}
	assert.Equal(t, int64(0), Decode(b))
}

func TestEncode_KnownLabel(t *testing.T) {
	// 1700000000 = 0x6553F100
	want := [Size]byte{0x40, 0, 0, 0, 0x65, 0x53, 0xf1, 0x0a}
	assert.Equal(t, want, Encode(1700000000))
}

func TestRoundTrip(t *testing.T) {
	for _, sec := range []int64{0, 1, 59, 1700000000, 1<<32 + 7, 1<<61 - 1} {
		require.Equal(t, sec, Decode(Encode(sec)), "sec=%d", sec)
	}
}

func TestDecode_GarbageBelowBias(t *testing.T) {
	assert.Negative(t, Decode([Size]byte{}))
}
