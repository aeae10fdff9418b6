// internal/status/state.go
package status

// DisplayState is the semantic state derived from a record.
type DisplayState int

const (
	// StateErrored means no usable record could be obtained.
	StateErrored DisplayState = iota
	// StateHealthy is up, not paused, wanted up.
	StateHealthy
	// StatePaused is a live process that has been paused.
	StatePaused
	// StateStopping is a live process whose target is down.
	StateStopping
	// StateFinishing is running the finish script while still wanted up.
	StateFinishing
	// StateDownWanted is down although the target is up.
	StateDownWanted
	// StateDownExpected is down with a target of down.
	StateDownExpected
)

func (s DisplayState) String() string {
	switch s {
	case StateHealthy:
		return "healthy"
	case StatePaused:
		return "paused"
	case StateStopping:
		return "stopping"
	case StateFinishing:
		return "finishing"
	case StateDownWanted:
		return "down-wanted"
	case StateDownExpected:
		return "down-expected"
	default:
		return "errored"
	}
}

// Derive maps a decoded record onto its DisplayState.
// Only run state, paused and want take part; the normally-up flag is carried
// next to the result by the caller, never folded into it.
func Derive(r Record) DisplayState {
	switch r.State {
	case RawUp, RawFinishing:
		if r.Paused {
			return StatePaused
		}
		if !r.WantUp {
			return StateStopping
		}
		if r.State == RawFinishing {
			return StateFinishing
		}
		return StateHealthy
	case RawDown:
		if r.WantUp {
			return StateDownWanted
		}
		return StateDownExpected
	default:
		return StateErrored
	}
}
