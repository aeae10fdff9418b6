// internal/status/record.go
package status

import (
	"math"
	"time"
)

// RawState is the supervisor's own record of the run state.
type RawState uint8

const (
	RawDown      RawState = 0
	RawUp        RawState = 1
	RawFinishing RawState = 2
)

func (s RawState) String() string {
	switch s {
	case RawDown:
		return "down"
	case RawUp:
		return "up"
	case RawFinishing:
		return "finish"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the states a supervisor writes.
func (s RawState) Valid() bool {
	return s <= RawFinishing
}

// Record is one decoded status file.
// It contains no logic and is never mutated after Decode.
type Record struct {
	// Timestamp is the last state change in Unix seconds.
	Timestamp int64
	// PID is zero unless State is RawUp or RawFinishing.
	PID    uint32
	Paused bool
	WantUp bool
	State  RawState
}

// HasProcess reports whether the record describes a live process.
func (r Record) HasProcess() bool {
	return r.PID != 0 && (r.State == RawUp || r.State == RawFinishing)
}

// maxAgeSeconds is the largest whole-second age a time.Duration can hold.
const maxAgeSeconds = math.MaxInt64 / int64(time.Second)

// Age returns the time spent in the current state as of now.
// Timestamps in the future yield zero; ages too large for a Duration saturate.
func (r Record) Age(now time.Time) time.Duration {
	nowSec := now.Unix()
	if r.Timestamp >= nowSec {
		return 0
	}
	if r.Timestamp < nowSec-maxAgeSeconds {
		return time.Duration(maxAgeSeconds) * time.Second
	}
	return time.Duration(nowSec-r.Timestamp) * time.Second
}
