// internal/status/decode.go
package status

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/tamzrod/svs/internal/tai64"
)

// Decode parses one status record.
// Reserved bytes are ignored. An unknown run state is an error, never a default.
func Decode(buf []byte) (Record, error) {
	if len(buf) != RecordSize {
		return Record{}, errors.Wrapf(ErrWrongSize, "got %d bytes, want %d", len(buf), RecordSize)
	}

	state := RawState(buf[OffsetRunState])
	if !state.Valid() {
		return Record{}, errors.Wrapf(ErrUnknownState, "run state byte %d", buf[OffsetRunState])
	}

	var label [tai64.Size]byte
	copy(label[:], buf[OffsetTAI64:OffsetTAI64+tai64.Size])

	r := Record{
		Timestamp: tai64.Decode(label),
		PID:       binary.LittleEndian.Uint32(buf[OffsetPID : OffsetPID+4]),
		Paused:    buf[OffsetPaused] != 0,
		WantUp:    buf[OffsetWant] == WantUp,
		State:     state,
	}

	// A pid left behind in a down record belongs to no process.
	if r.State == RawDown {
		r.PID = 0
	}

	return r, nil
}

// ReadFile reads and decodes the status record at path.
// Exactly one read is attempted. A full-size read is accepted as-is even if it
// raced a concurrent rewrite; the supervisor replaces the record in one write.
func ReadFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, errors.Mark(errors.Wrap(err, "status: open"), ErrUnreadable)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return Record{}, errors.Mark(errors.Wrap(err, "status: stat"), ErrUnreadable)
	}
	if fi.Size() != RecordSize {
		return Record{}, errors.Wrapf(ErrWrongSize, "%s is %d bytes, want %d", path, fi.Size(), RecordSize)
	}

	buf := make([]byte, RecordSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		return Record{}, errors.Mark(errors.Wrapf(err, "status: read %s", path), ErrUnreadable)
	}

	return Decode(buf)
}
