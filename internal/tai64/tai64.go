// internal/tai64/tai64.go
package tai64

import "encoding/binary"

// Bias is the TAI64 label of the Unix epoch: 2^62 plus the 10 second
// TAI-UTC offset in effect at 1970-01-01.
const Bias uint64 = 1<<62 + 10

// Size is the width of a packed TAI64 label.
const Size = 8

// Decode converts a packed big-endian TAI64 label into Unix seconds.
// Every input is accepted; labels below Bias come out negative.
func Decode(b [Size]byte) int64 {
	return int64(binary.BigEndian.Uint64(b[:]) - Bias)
}

// Encode packs Unix seconds as a big-endian TAI64 label.
func Encode(unix int64) [Size]byte {
	var b [Size]byte
	binary.BigEndian.PutUint64(b[:], uint64(unix)+Bias)
	return b
}
