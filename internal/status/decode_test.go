// internal/status/decode_test.go
package status

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// raw builds a record byte by byte, independent of Encode.
func raw(label [8]byte, pid [4]byte, paused, want, state byte) []byte {
	buf := make([]byte, 0, RecordSize)
	buf = append(buf, label[:]...)
	buf = append(buf, 0, 0, 0, 0)
	buf = append(buf, pid[:]...)
	return append(buf, paused, want, 0, state)
}

func TestDecode_HealthyScenario(t *testing.T) {
	// TAI64(1700000000), pid 1234 little-endian, want 'u', state up.
	buf := raw(
		[8]byte{0x40, 0, 0, 0, 0x65, 0x53, 0xf1, 0x0a},
		[4]byte{0xd2, 0x04, 0, 0},
		0, 'u', 1,
	)

	r, err := Decode(buf)
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000), r.Timestamp)
	assert.Equal(t, uint32(1234), r.PID)
	assert.False(t, r.Paused)
	assert.True(t, r.WantUp)
	assert.Equal(t, RawUp, r.State)
	assert.Equal(t, StateHealthy, Derive(r))
}

func TestDecode_WrongSize(t *testing.T) {
	for _, n := range []int{0, 1, 19, 21, 64} {
		_, err := Decode(make([]byte, n))
		require.Error(t, err, "len=%d", n)
		assert.True(t, errors.Is(err, ErrWrongSize), "len=%d err=%v", n, err)
	}
}

func TestDecode_UnknownState(t *testing.T) {
	for _, b := range []byte{3, 4, 0x7f, 0xff} {
		buf := Encode(Record{State: RawUp, WantUp: true, PID: 1})
		buf[OffsetRunState] = b

		_, err := Decode(buf)
		require.Error(t, err, "state=%d", b)
		assert.True(t, errors.Is(err, ErrUnknownState), "state=%d err=%v", b, err)
	}
}

func TestDecode_ReservedBytesIgnored(t *testing.T) {
	buf := Encode(Record{Timestamp: 42, PID: 7, WantUp: true, State: RawUp})
	for i := OffsetReservedStart; i <= OffsetReservedEnd; i++ {
		buf[i] = 0xaa
	}
	buf[OffsetTerm] = 0xbb

	r, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, Record{Timestamp: 42, PID: 7, WantUp: true, State: RawUp}, r)
}

func TestDecode_WantByteOtherThanUpMeansDown(t *testing.T) {
	buf := Encode(Record{State: RawDown})
	buf[OffsetWant] = 'x'

	r, err := Decode(buf)
	require.NoError(t, err)
	assert.False(t, r.WantUp)
}

func TestDecode_PausedAnyNonZero(t *testing.T) {
	buf := Encode(Record{State: RawUp, PID: 9, WantUp: true})
	buf[OffsetPaused] = 0x80

	r, err := Decode(buf)
	require.NoError(t, err)
	assert.True(t, r.Paused)
}

func TestDecode_DownDropsPID(t *testing.T) {
	buf := Encode(Record{State: RawDown, WantUp: true})
	buf[OffsetPID] = 0x10

	r, err := Decode(buf)
	require.NoError(t, err)
	assert.Zero(t, r.PID)
	assert.False(t, r.HasProcess())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in := Record{Timestamp: 1700000123, PID: 65536 + 3, Paused: true, WantUp: false, State: RawFinishing}
	out, err := Decode(Encode(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good")
	require.NoError(t, os.WriteFile(good, Encode(Record{Timestamp: 5, PID: 10, WantUp: true, State: RawUp}), 0o644))

	r, err := ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, uint32(10), r.PID)

	short := filepath.Join(dir, "short")
	require.NoError(t, os.WriteFile(short, make([]byte, 12), 0o644))
	_, err = ReadFile(short)
	assert.True(t, errors.Is(err, ErrWrongSize), "err=%v", err)

	long := filepath.Join(dir, "long")
	require.NoError(t, os.WriteFile(long, make([]byte, RecordSize+1), 0o644))
	_, err = ReadFile(long)
	assert.True(t, errors.Is(err, ErrWrongSize), "err=%v", err)

	_, err = ReadFile(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, ErrUnreadable), "err=%v", err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "cause lost: %v", err)
}
