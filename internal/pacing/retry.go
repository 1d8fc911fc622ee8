package pacing

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Policy controls retry behaviour for transient provider failures.
type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    5,
		InitialBackoff: time.Second,
	}
}

// Retry runs fn, retrying with exponential backoff while the returned
// error classifies as transient. Permanent errors are returned
// immediately.
func Retry(ctx context.Context, policy Policy, fn func() error) error {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	if policy.InitialBackoff <= 0 {
		policy.InitialBackoff = time.Second
	}

	var lastErr error
	backoff := policy.InitialBackoff

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			return err
		}

		lastErr = err
		if attempt < policy.MaxAttempts {
			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			backoff *= 2
		}
	}

	return fmt.Errorf(
		"request failed after %d attempts: %w",
		policy.MaxAttempts,
		lastErr,
	)
}

// substrings provider SDKs surface for quota and availability failures
var transientMarkers = []string{
	"quota",
	"rate limit",
	"ratelimit",
	"429",
	"resource exhausted",
	"resource_exhausted",
	"overloaded",
	"unavailable",
	"503",
	"timeout",
	"deadline exceeded",
	"try again",
}

// IsTransient reports whether err looks like a temporary provider
// failure worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
