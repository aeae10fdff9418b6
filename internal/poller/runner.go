// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run emits one PollResult immediately and then one per tick.
// One goroutine per poller. No overlap. No retries.
// Run returns when ctx is done.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) {
	if !p.emit(ctx, out) {
		return
	}

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.emit(ctx, out) {
				return
			}
		}
	}
}

func (p *Poller) emit(ctx context.Context, out chan<- PollResult) bool {
	res := p.PollOnce()
	select {
	case <-ctx.Done():
		return false
	case out <- res:
		return true
	}
}
