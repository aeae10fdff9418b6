// internal/status/encode.go
package status

import (
	"encoding/binary"

	"github.com/tamzrod/svs/internal/tai64"
)

// Encode converts a Record into the exact byte image a supervisor writes.
// Reserved bytes are left as zero.
// No IO. No side effects.
func Encode(r Record) []byte {
	buf := make([]byte, RecordSize)

	ts := tai64.Encode(r.Timestamp)
	copy(buf[OffsetTAI64:OffsetTAI64+tai64.Size], ts[:])

	binary.LittleEndian.PutUint32(buf[OffsetPID:OffsetPID+4], r.PID)

	if r.Paused {
		buf[OffsetPaused] = 1
	}
	if r.WantUp {
		buf[OffsetWant] = WantUp
	} else {
		buf[OffsetWant] = WantDown
	}
	buf[OffsetRunState] = byte(r.State)

	return buf
}
