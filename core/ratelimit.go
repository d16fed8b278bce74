package core

import (
	"context"
	"sync"
	"time"
)

// rateLimiter enforces a minimum spacing between request issuances across the
// whole transport. Waiters are delayed, never rejected: each caller reserves
// the next free slot under the lock and then sleeps until it arrives, so
// concurrent senders queue up fairly instead of racing.
type rateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// newRateLimiter creates a limiter allowing ratePerSecond issuances per
// second. A non-positive rate returns nil, meaning unlimited.
func newRateLimiter(ratePerSecond float64) *rateLimiter {
	if ratePerSecond <= 0 {
		return nil
	}
	return &rateLimiter{
		interval: time.Duration(float64(time.Second) / ratePerSecond),
	}
}

// wait blocks until the caller's reserved slot arrives or ctx is canceled.
// A nil limiter never blocks.
func (rl *rateLimiter) wait(ctx context.Context) error {
	if rl == nil {
		return nil
	}

	rl.mu.Lock()
	now := time.Now()
	if rl.next.Before(now) {
		rl.next = now
	}
	slot := rl.next
	rl.next = slot.Add(rl.interval)
	rl.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
