package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/gridcrawl"
	"github.com/fwojciec/gridcrawl/bloom"
)

// Seen-URL tracker sizing for link discovery.
const (
	// seenExpectedURLs is the expected number of candidate URLs.
	seenExpectedURLs = 10000
	// seenFalsePositiveRate is the acceptable false positive rate for
	// deduplication.
	seenFalsePositiveRate = 0.01
)

// Ensure Collector implements gridcrawl.LinkCollector at compile time.
var _ gridcrawl.LinkCollector = (*Collector)(nil)

// Collector discovers subject URLs by scanning aggregator pages for
// human-name shaped internal links, filtering them through an exclusion
// vocabulary, and deduplicating with first-occurrence-wins ordering.
type Collector struct {
	Fetcher gridcrawl.Fetcher
	Links   gridcrawl.LinkExtractor

	// Exclude is the exclusion vocabulary applied to candidate paths,
	// matched case-insensitively. Defaults to
	// gridcrawl.DefaultExcludeWords when nil.
	Exclude []string
}

// Collect scans pages in order and returns up to target subject URLs in
// discovery order. An unavailable aggregator contributes zero links and
// collection proceeds with the remaining pages. No further aggregator is
// fetched once target links have been collected.
func (c *Collector) Collect(ctx context.Context, pages []string, target int) ([]string, error) {
	if target <= 0 {
		return nil, nil
	}

	exclude := c.Exclude
	if exclude == nil {
		exclude = gridcrawl.DefaultExcludeWords()
	}
	lowered := make([]string, len(exclude))
	for i, w := range exclude {
		lowered[i] = strings.ToLower(w)
	}

	seen := bloom.NewSeen(seenExpectedURLs, seenFalsePositiveRate)
	collected := make(map[string]struct{})
	var links []string

	for _, page := range pages {
		if len(links) >= target {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := c.Fetcher.Fetch(ctx, page)
		if err != nil {
			continue
		}

		candidates, err := c.Links.ExtractLinks(html, page)
		if err != nil {
			continue
		}

		for _, candidate := range candidates {
			if excludedPath(candidate, lowered) {
				continue
			}
			// A negative from the filter is definitive; a positive may be
			// a false one, so it is confirmed against the exact set before
			// a candidate is dropped.
			if seen.Observe(candidate) {
				if _, dup := collected[candidate]; dup {
					continue
				}
			}
			collected[candidate] = struct{}{}
			links = append(links, candidate)
			if len(links) >= target {
				break
			}
		}
	}

	return links, nil
}

// excludedPath reports whether the candidate URL's path contains a word
// from the exclusion vocabulary.
func excludedPath(candidate string, lowered []string) bool {
	p := candidate
	if u, err := url.Parse(candidate); err == nil {
		p = u.Path
	}
	p = strings.ToLower(p)
	for _, w := range lowered {
		if strings.Contains(p, w) {
			return true
		}
	}
	return false
}
