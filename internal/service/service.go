// internal/service/service.go
package service

import "github.com/tamzrod/svs/internal/status"

// ServiceStatus is the observed state of one service directory.
// Either Record or Err is set, never both.
type ServiceStatus struct {
	Name string

	Record *status.Record
	// NormallyUp is meaningful only when Record is set.
	NormallyUp bool
	Err        error

	// Log is the nested log service, nil when the service has none.
	// A log service never carries a Log of its own.
	Log *ServiceStatus
}

// State returns the derived display state.
func (s ServiceStatus) State() status.DisplayState {
	if s.Err != nil || s.Record == nil {
		return status.StateErrored
	}
	return status.Derive(*s.Record)
}

// Listing is one aggregation pass, ordered by name.
type Listing struct {
	Services []ServiceStatus

	// MaxNameLen is the byte length of the longest service name.
	MaxNameLen int
}
