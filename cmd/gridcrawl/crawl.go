package main

import (
	"fmt"

	"github.com/fwojciec/gridcrawl"
	"github.com/fwojciec/gridcrawl/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	res, err := deps.Crawler.Run(deps.Ctx, func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d candidate driver pages. Crawling...\n", e.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", e.Completed, e.Total, e.Subject)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s (failed: %s)\n", e.Completed, e.Total, e.Subject, gridcrawl.ErrorMessage(e.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gridcrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nSaved %d of %d drivers to %s", res.Saved, res.Collected, deps.OutPath)
	if res.Failed > 0 || res.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed, %d skipped)", res.Failed, res.Skipped)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}
