package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/gridcrawl"
	"github.com/fwojciec/gridcrawl/crawl"
	"github.com/fwojciec/gridcrawl/fs"
	"github.com/fwojciec/gridcrawl/goquery"
	gchttp "github.com/fwojciec/gridcrawl/http"
	gcslog "github.com/fwojciec/gridcrawl/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Artifact path. Set before calling Run().
	OutPath string

	// Record store used by all commands.
	RecordStore gridcrawl.RecordStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		OutPath: defaultOutPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gridcrawl"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gridcrawl --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parse result, not args[0]:
	// global flags may precede the subcommand.
	cmd := kongCtx.Command()

	if cli.Out != "" {
		m.OutPath = cli.Out
	}
	m.RecordStore = fs.NewStore(m.OutPath)
	deps.OutPath = m.OutPath
	deps.Records = m.RecordStore

	// Wire command-specific dependencies based on command
	if cmd == "crawl" {
		logger := slog.New(slog.NewTextHandler(stderr, nil))

		fetcher := gcslog.NewLoggingFetcher(
			gchttp.NewFetcher(gchttp.WithTimeout(cli.Crawl.Timeout)), logger)
		defer fetcher.Close()

		pages := cli.Crawl.Page
		if len(pages) == 0 {
			pages = gridcrawl.DefaultAggregatorPages()
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher: fetcher,
			Links: gcslog.NewLoggingCollector(&crawl.Collector{
				Fetcher: fetcher,
				Links:   goquery.NewLinkExtractor(),
			}, logger),
			Store:       m.RecordStore,
			Limiter:     crawl.NewDelayLimiter(cli.Crawl.Delay),
			Pages:       pages,
			Target:      cli.Crawl.Target,
			Concurrency: cli.Crawl.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

func defaultOutPath() string {
	if path := os.Getenv("GRIDCRAWL_OUT"); path != "" {
		return path
	}
	return filepath.Join("data", "drivers.json")
}
