package gridcrawl

import "context"

// Limiter provides per-domain rate limiting between fetches.
// The crawl delay is a politeness constraint toward the source server,
// not a performance knob; it is enforced regardless of whether the
// previous fetch or extraction succeeded.
type Limiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
