// Package poll is the fixed-interval refresh loop behind the order
// and reservation views. It is a plain re-fetch loop, not a push
// subscription: each tick fires independently, and a slow fetch does
// not delay or cancel the next one.
package poll

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type Poller struct {
	interval time.Duration
	log      zerolog.Logger
}

func New(interval time.Duration, log zerolog.Logger) *Poller {
	return &Poller{interval: interval, log: log}
}

// Run fetches immediately, then once per interval until ctx is done.
// Fetch errors are logged and the loop keeps going; ticks are not
// coalesced, so overlapping fetches can be in flight at once.
func (p *Poller) Run(ctx context.Context, name string, fetch func(context.Context) error) {
	run := func() {
		if err := fetch(ctx); err != nil {
			p.log.Warn().Err(err).Str("poller", name).Msg("Refresh failed")
		}
	}

	go run()

	ticker := time.NewTicker(p.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				go run()
			}
		}
	}()
}
