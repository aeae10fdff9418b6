// internal/writer/layout.go
package writer

import "github.com/tamzrod/svs/internal/status"

// Service Status Block layout constants.
// These values define the export protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerService is the fixed number of registers per service.
const SlotsPerService = 20

// ---- SLOT INDICES ----

// SlotState holds the service display state code.
const SlotState = 0

// SlotLogState holds the log service display state code.
const SlotLogState = 1

// SlotFlags holds the Flag* bits.
const SlotFlags = 2

// SlotSecondsInState holds the time since the last state change, clamped.
const SlotSecondsInState = 3

// SlotPIDHigh and SlotPIDLow hold the process id, high word first.
const SlotPIDHigh = 4
const SlotPIDLow = 5

// LiveSlots is the number of leading slots rewritten on incremental updates.
const LiveSlots = 6

// ---- RESERVED RANGE ----

// Slots 6–10 are reserved for future use.
const SlotReservedStart = 6
const SlotReservedEnd = 10

// ---- SERVICE NAME ----

// SlotNameStart is the first slot used for the service name.
const SlotNameStart = 11

// SlotNameSlots is the number of slots reserved for the service name.
const SlotNameSlots = 8

// SlotNameEnd is the last slot used for the service name (inclusive).
const SlotNameEnd = SlotNameStart + SlotNameSlots - 1

// ---- LIMITS ----

// NameMaxChars is the maximum number of ASCII characters stored for the name.
const NameMaxChars = 16

// MaxSecondsInState is where SlotSecondsInState saturates.
const MaxSecondsInState = 65535

// ---- STATE CODES ----

const (
	CodeErrored      uint16 = 0
	CodeHealthy      uint16 = 1
	CodeDownWanted   uint16 = 2
	CodeDownExpected uint16 = 3
	CodePaused       uint16 = 4
	CodeStopping     uint16 = 5
	CodeFinishing    uint16 = 6

	// CodeAbsent marks a pinned service that is not in the listing, or a missing log service.
	CodeAbsent uint16 = 0xFFFF
)

// ---- FLAGS ----

const (
	FlagNormallyUp    uint16 = 1 << 0
	FlagHasLog        uint16 = 1 << 1
	FlagLogNormallyUp uint16 = 1 << 2
)

// StateCode maps a display state onto its register value.
func StateCode(s status.DisplayState) uint16 {
	switch s {
	case status.StateHealthy:
		return CodeHealthy
	case status.StateDownWanted:
		return CodeDownWanted
	case status.StateDownExpected:
		return CodeDownExpected
	case status.StatePaused:
		return CodePaused
	case status.StateStopping:
		return CodeStopping
	case status.StateFinishing:
		return CodeFinishing
	default:
		return CodeErrored
	}
}
