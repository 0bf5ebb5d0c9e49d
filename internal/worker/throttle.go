package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle bounds the rate at which a batch run consumes records. A nil
// Throttle is valid and never blocks, so callers can thread it through
// unconditionally.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a throttle allowing perSecond records with the
// given burst. Returns nil (unthrottled) when perSecond is zero or
// negative.
func NewThrottle(perSecond float64, burst int) *Throttle {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &Throttle{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Wait blocks until the next record may proceed
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.limiter == nil {
		return nil
	}
	return t.limiter.Wait(ctx)
}

// Allow reports whether a record may proceed without waiting
func (t *Throttle) Allow() bool {
	if t == nil || t.limiter == nil {
		return true
	}
	return t.limiter.Allow()
}
