// internal/status/state_test.go
package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive_Table(t *testing.T) {
	tests := []struct {
		name   string
		state  RawState
		paused bool
		wantUp bool
		want   DisplayState
	}{
		{"up", RawUp, false, true, StateHealthy},
		{"up paused", RawUp, true, true, StatePaused},
		{"up paused want down", RawUp, true, false, StatePaused},
		{"up want down", RawUp, false, false, StateStopping},
		{"finish", RawFinishing, false, true, StateFinishing},
		{"finish paused", RawFinishing, true, true, StatePaused},
		{"finish want down", RawFinishing, false, false, StateStopping},
		{"down want up", RawDown, false, true, StateDownWanted},
		{"down want down", RawDown, false, false, StateDownExpected},
		{"down paused want up", RawDown, true, true, StateDownWanted},
		{"invalid raw state", RawState(9), false, true, StateErrored},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Record{State: tc.state, Paused: tc.paused, WantUp: tc.wantUp, PID: 1}
			assert.Equal(t, tc.want, Derive(r))
		})
	}
}

func TestDerive_HealthyForAnyTimestampAndPID(t *testing.T) {
	for _, ts := range []int64{0, 1, 1700000000} {
		for _, pid := range []uint32{1, 1234, 1 << 31} {
			r := Record{Timestamp: ts, PID: pid, WantUp: true, State: RawUp}
			assert.Equal(t, StateHealthy, Derive(r))
		}
	}
}
