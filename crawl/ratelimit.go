package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/gridcrawl"
	"golang.org/x/time/rate"
)

// DefaultCrawlDelay is the politeness delay between successive fetches
// to the same domain.
const DefaultCrawlDelay = 500 * time.Millisecond

var _ gridcrawl.Limiter = (*DelayLimiter)(nil)

// DelayLimiter enforces a minimum spacing between requests per domain
// using token buckets. With a worker pool the bucket is shared, so the
// aggregate request rate toward a domain never exceeds one request per
// delay interval regardless of concurrency. The delay applies between
// fetch attempts unconditionally; it is not skipped when a previous
// fetch or extraction failed.
type DelayLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	delay    time.Duration
}

// NewDelayLimiter creates a DelayLimiter with the given inter-request
// delay. Each domain gets its own limiter with a burst of 1.
func NewDelayLimiter(delay time.Duration) *DelayLimiter {
	return &DelayLimiter{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// Wait blocks until the next request to the domain is allowed.
// Returns an error if the context is canceled before the wait completes.
func (d *DelayLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(d.delay), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
