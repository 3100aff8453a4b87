package gridcrawl

import "context"

// Fetcher retrieves raw page markup from URLs.
// Implementations isolate all network-failure handling from parsing
// logic: callers treat any returned error as "page unavailable" and skip
// downstream processing for that URL.
type Fetcher interface {
	// Fetch retrieves the raw response body for the URL as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
