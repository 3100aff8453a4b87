package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gridcrawl"
)

// Ensure LoggingCollector implements gridcrawl.LinkCollector.
var _ gridcrawl.LinkCollector = (*LoggingCollector)(nil)

// LoggingCollector wraps a LinkCollector with discovery logging.
type LoggingCollector struct {
	next   gridcrawl.LinkCollector
	logger *slog.Logger
}

// NewLoggingCollector creates a new LoggingCollector.
func NewLoggingCollector(next gridcrawl.LinkCollector, logger *slog.Logger) *LoggingCollector {
	return &LoggingCollector{next: next, logger: logger}
}

// Collect delegates to the wrapped collector and logs the operation.
func (c *LoggingCollector) Collect(ctx context.Context, pages []string, target int) (links []string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("link discovery",
			"pages", len(pages),
			"target", target,
			"found", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Collect(ctx, pages, target)
}
