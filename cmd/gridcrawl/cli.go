package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/gridcrawl"
	"github.com/fwojciec/gridcrawl/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	OutPath string
	Records gridcrawl.RecordStore
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Out string `short:"o" help:"Path of the driver record artifact (default $GRIDCRAWL_OUT or data/drivers.json)"`

	Crawl CrawlCmd `cmd:"" help:"Crawl driver pages and write the record artifact"`
	List  ListCmd  `cmd:"" help:"List drivers from the record artifact"`
	Stats StatsCmd `cmd:"" help:"Show aggregate statistics for the record artifact"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Target      int           `short:"t" default:"150" help:"Maximum number of driver pages to crawl"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit"`
	Delay       time.Duration `default:"500ms" help:"Politeness delay between requests to the same domain"`
	Timeout     time.Duration `default:"12s" help:"Per-request fetch timeout"`
	Page        []string      `short:"p" help:"Aggregator page to scan for driver links (repeatable)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Nationality string `help:"Only show drivers with this nationality"`
	Team        string `help:"Only show drivers whose team contains this text"`
	Search      string `short:"s" help:"Only show drivers whose name contains this text"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}
