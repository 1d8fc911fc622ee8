package pacing

import (
	"context"
	"sync"
	"time"
)

// Limiter enforces a minimum interval between dependent API calls.
// Safe for concurrent use; callers queue behind one another.
type Limiter struct {
	mu          sync.Mutex
	minInterval time.Duration
	next        time.Time
}

func NewLimiter(minInterval time.Duration) *Limiter {
	return &Limiter{minInterval: minInterval}
}

// Wait blocks until the caller's turn arrives or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.minInterval <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	now := time.Now()
	wait := l.next.Sub(now)
	if wait < 0 {
		wait = 0
	}
	l.next = now.Add(wait + l.minInterval)
	l.mu.Unlock()

	if wait == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
