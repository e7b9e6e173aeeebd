// Package poll runs a fixed-interval refetch with overlap protection: a
// tick that fires while the previous run is still in flight is skipped,
// so a slow response never stacks with the next one.
package poll

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

type Runner struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error

	busy    atomic.Bool
	skipped atomic.Int64
}

func NewRunner(name string, interval time.Duration, fn func(ctx context.Context) error) *Runner {
	return &Runner{
		name:     name,
		interval: interval,
		fn:       fn,
	}
}

// Start runs the loop until ctx is cancelled. The first run fires
// immediately, then once per interval.
func (r *Runner) Start(ctx context.Context) {
	go func() {
		r.tick(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.tick(ctx)
			}
		}
	}()
}

func (r *Runner) tick(ctx context.Context) {
	if !r.busy.CompareAndSwap(false, true) {
		r.skipped.Add(1)
		log.Warn().Str("poller", r.name).Msg("Previous poll still running, tick skipped")
		return
	}

	go func() {
		defer r.busy.Store(false)
		if err := r.fn(ctx); err != nil {
			log.Error().Err(err).Str("poller", r.name).Msg("Poll failed")
		}
	}()
}

// Skipped reports how many ticks were dropped by the overlap guard.
func (r *Runner) Skipped() int64 {
	return r.skipped.Load()
}
