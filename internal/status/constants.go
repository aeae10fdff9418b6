// internal/status/constants.go
package status

// supervise/status record layout.
// These values are fixed by the supervisor that writes the file and MUST NOT be configurable.

// ---- RECORD GEOMETRY ----

// RecordSize is the exact size of a status file.
const RecordSize = 20

// ---- BYTE OFFSETS ----

// OffsetTAI64 is the start of the big-endian TAI64 label of the last state change.
const OffsetTAI64 = 0

// Bytes 8–11 hold nanoseconds of the label. Not interpreted.
const OffsetReservedStart = 8
const OffsetReservedEnd = 11

// OffsetPID is the start of the little-endian uint32 process id.
const OffsetPID = 12

// OffsetPaused is non-zero while the process is paused.
const OffsetPaused = 16

// OffsetWant holds the target state, 'u' or 'd'.
const OffsetWant = 17

// Byte 18 is the term flag. Not interpreted.
const OffsetTerm = 18

// OffsetRunState holds the raw run state.
const OffsetRunState = 19

// ---- FLAG VALUES ----

// WantUp is the want byte for a service whose target is up.
const WantUp byte = 'u'

// WantDown is the want byte for a service whose target is down.
const WantDown byte = 'd'

// ---- SERVICE DIRECTORY ENTRIES ----

// StatusFile is the path of the status record relative to a service directory.
const StatusFile = "supervise/status"

// DownFile marks a service as normally down when present.
const DownFile = "down"

// LogDir is the optional log sub-service directory.
const LogDir = "log"
