package mock

import (
	"context"

	"github.com/fwojciec/gridcrawl"
)

var _ gridcrawl.LinkCollector = (*LinkCollector)(nil)

// LinkCollector is a mock implementation of gridcrawl.LinkCollector.
type LinkCollector struct {
	CollectFn func(ctx context.Context, pages []string, target int) ([]string, error)
}

func (c *LinkCollector) Collect(ctx context.Context, pages []string, target int) ([]string, error) {
	return c.CollectFn(ctx, pages, target)
}

var _ gridcrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of gridcrawl.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
