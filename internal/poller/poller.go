// internal/poller/poller.go
package poller

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/tamzrod/svs/internal/service"
)

// Scanner abstracts the directory scan the poller drives.
type Scanner interface {
	Aggregate(root string) (service.Listing, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Root     string
	Interval time.Duration
}

// Poller is a dumb, clock-driven scanner.
// Every tick is a fresh pass; nothing is carried between scans.
type Poller struct {
	cfg     Config
	scanner Scanner
	now     func() time.Time
}

// New creates a poller with immutable config.
func New(cfg Config, scanner Scanner) (*Poller, error) {
	if cfg.Root == "" {
		return nil, errors.New("poller: root required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if scanner == nil {
		return nil, errors.New("poller: scanner required")
	}
	return &Poller{cfg: cfg, scanner: scanner, now: time.Now}, nil
}

// PollOnce performs exactly one scan. No retries.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		Root: p.cfg.Root,
		At:   p.now(),
	}

	l, err := p.scanner.Aggregate(p.cfg.Root)
	if err != nil {
		res.Err = err
		return res
	}

	res.Listing = l
	return res
}
