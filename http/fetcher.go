// Package http provides an HTTP-based implementation of gridcrawl.Fetcher
// for retrieving raw article markup from the source site.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/gridcrawl"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 12 * time.Second

// DefaultUserAgent identifies the crawler to the source server.
// Good-citizen crawling: a descriptive UA so operators can find us.
const DefaultUserAgent = "Mozilla/5.0 (compatible; gridcrawl/1.0; +https://github.com/fwojciec/gridcrawl)"

// Ensure Fetcher implements gridcrawl.Fetcher at compile time.
var _ gridcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw page markup from URLs over plain HTTP.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (12s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the client-identifying header sent on every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the response body for the URL as text. The declared
// response charset is honored when present, falling back to UTF-8;
// undecodable bytes become replacement runes rather than a failure, so
// decoding alone never loses a page.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", gridcrawl.Errorf(gridcrawl.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", gridcrawl.Errorf(gridcrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		// Unknown charset label: read the raw bytes as UTF-8.
		reader = resp.Body
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", gridcrawl.Errorf(gridcrawl.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
