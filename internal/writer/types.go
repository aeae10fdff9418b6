// internal/writer/types.go
package writer

import (
	"time"

	"github.com/tamzrod/svs/internal/service"
)

// Plan is the fully-built export plan.
type Plan struct {
	Transport string
	Endpoint  string
	UnitID    uint8
	BaseSlot  uint16
	Timeout   time.Duration

	// Services pins names to slots in order. Empty means listing order.
	Services []string
}

// StatusWriter delivers a listing into status memory.
type StatusWriter interface {
	WriteListing(l service.Listing, now time.Time) error
}
