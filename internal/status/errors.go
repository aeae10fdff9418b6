// internal/status/errors.go
package status

import "github.com/cockroachdb/errors"

// Decode failures. Callers collapse all of them into StateErrored.
var (
	// ErrWrongSize means the record is not exactly RecordSize bytes.
	ErrWrongSize = errors.New("status: wrong record size")
	// ErrUnreadable means the file could not be opened or fully read.
	ErrUnreadable = errors.New("status: unreadable")
	// ErrUnknownState means the run state byte is not one a supervisor writes.
	ErrUnknownState = errors.New("status: unknown run state")
)
