// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/svs/internal/service"
)

// PollResult is the outcome of one scan.
type PollResult struct {
	Root string
	At   time.Time

	Listing service.Listing
	Err     error // non-nil means the service directory could not be listed
}
