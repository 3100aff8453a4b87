// Package crawl provides crawl orchestration. It coordinates link
// discovery, polite fetching, field extraction, and atomic persistence
// of the resulting record collection.
package crawl

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/gridcrawl"
	"github.com/fwojciec/gridcrawl/wikitext"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Crawler orchestrates a full crawl: collect candidate links once, fetch
// and extract each page, and persist the record collection as one unit.
type Crawler struct {
	Fetcher gridcrawl.Fetcher
	Links   gridcrawl.LinkCollector
	Store   gridcrawl.RecordStore
	Limiter gridcrawl.Limiter

	// Pages are the aggregator pages scanned for candidate links.
	// Defaults to gridcrawl.DefaultAggregatorPages when nil.
	Pages []string

	// Target caps the number of subject URLs crawled.
	Target int

	// Concurrency bounds the fetch worker pool. The default of 1 is the
	// canonical sequential crawl; higher values keep the aggregate
	// request spacing via the shared Limiter and output ordering stays
	// deterministic by discovery position either way.
	Concurrency int

	// RetryDelays configures fetch backoff. Defaults to
	// DefaultRetryDelays.
	RetryDelays []time.Duration

	// Now supplies the reference time for age computation. Defaults to
	// time.Now.
	Now func() time.Time
}

// Result holds the outcome of a crawl.
type Result struct {
	// RunID identifies this crawl invocation in logs.
	RunID string

	Collected int // candidate URLs discovered
	Saved     int // records persisted
	Failed    int // URLs that could not be fetched
	Skipped   int // malformed discoveries and duplicate-content pages

	Records []*gridcrawl.DriverRecord
}

// ProgressEvent reports per-item progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Subject   string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during a run.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	position int
	url      string
	record   *gridcrawl.DriverRecord
	hash     uint64
	skipped  bool
	err      error
}

// Run executes the crawl end to end. Cancellation before persistence
// discards all in-memory partial results and leaves the previously
// persisted artifact untouched. Nothing short of a store failure is
// fatal: the worst case is a valid empty artifact.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	pages := c.Pages
	if pages == nil {
		pages = gridcrawl.DefaultAggregatorPages()
	}

	res := &Result{RunID: uuid.NewString()}

	urls, err := c.Links.Collect(ctx, pages, c.Target)
	if err != nil {
		return nil, err
	}
	res.Collected = len(urls)
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	resultCh := make(chan crawlResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				resultCh <- c.processURL(gctx, i, u, now)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect into discovery-order positions regardless of completion
	// order.
	results := make([]crawlResult, total)
	completed := 0
	for result := range resultCh {
		completed++
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: completed,
			Total:     total,
			URL:       result.url,
			Subject:   subjectOf(result.url),
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Compact in discovery order. Pages that redirect to an already-kept
	// article would otherwise produce near-duplicate records under a
	// second source URL.
	seenContent := make(map[uint64]struct{}, total)
	records := make([]*gridcrawl.DriverRecord, 0, total)
	for _, result := range results {
		switch {
		case result.err != nil:
			res.Failed++
		case result.skipped || result.record == nil:
			res.Skipped++
		default:
			if _, dup := seenContent[result.hash]; dup {
				res.Skipped++
				continue
			}
			seenContent[result.hash] = struct{}{}
			records = append(records, result.record)
		}
	}

	if err := c.Store.WriteAll(ctx, records); err != nil {
		return nil, err
	}

	res.Saved = len(records)
	res.Records = records

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return res, nil
}

// processURL fetches and extracts a single subject page.
func (c *Crawler) processURL(ctx context.Context, position int, pageURL string, now func() time.Time) crawlResult {
	result := crawlResult{position: position, url: pageURL}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, domainOf(pageURL)); err != nil {
			result.err = err
			return result
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, pageURL, c.Fetcher.Fetch, delays)
	if err != nil {
		result.err = err
		return result
	}

	result.hash = xxhash.Sum64String(html)

	record := wikitext.Record(html, pageURL, now())
	if err := record.Validate(); err != nil {
		// Expected noise from link discovery, dropped silently.
		result.skipped = true
		return result
	}
	result.record = record
	return result
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}

// subjectOf derives a human-readable subject identifier from the URL for
// progress reporting.
func subjectOf(rawURL string) string {
	seg := rawURL
	if i := strings.LastIndex(seg, "/"); i != -1 {
		seg = seg[i+1:]
	}
	return strings.ReplaceAll(seg, "_", " ")
}
