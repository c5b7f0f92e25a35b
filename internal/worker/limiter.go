package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles how many transcripts per second a batch run consumes.
// Batch runs often sit next to live ingestion on the same storage; the
// limiter keeps a large backfill from starving it. A nil limiter means no
// throttling.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing filesPerSecond with the given burst.
// A non-positive rate disables throttling.
func NewLimiter(filesPerSecond float64, burst int) *Limiter {
	if filesPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(filesPerSecond), burst)}
}

// Wait blocks until the next transcript may be processed.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Allow reports whether a transcript may be processed right now.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.limiter.Allow()
}
