// Command pricescrape extracts product prices from e-commerce pages:
// single-page heuristic extraction, structured catalog scraping with
// pagination and subcategory traversal, sitemap-based category
// discovery, and a small web form server.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/crawl"
	"github.com/roman28tc/pricing-scrapper/goquery"
	scraphttp "github.com/roman28tc/pricing-scrapper/http"
	"github.com/roman28tc/pricing-scrapper/rod"
	scrapslog "github.com/roman28tc/pricing-scrapper/slog"
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
	// Fetcher overrides the HTTP/browser fetcher. Set before calling
	// Run(). Used by end-to-end tests.
	Fetcher scrapper.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("pricescrape"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pricescrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the fetcher chain: transport, retries, then logging.
	fetcher := m.Fetcher
	if fetcher == nil {
		if cmd == "extract" && cli.Extract.Browser {
			browserFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
		} else {
			fetcher = scraphttp.NewFetcher()
		}
		fetcher = scraphttp.NewRetryFetcher(fetcher, nil)
	}
	if cli.Verbose {
		fetcher = scrapslog.NewFetcher(fetcher, deps.Logger)
	}
	defer fetcher.Close()

	deps.Fetcher = fetcher
	deps.Detector = scrapslog.NewDetector(goquery.NewDetector(), deps.Logger)
	deps.Scraper = &crawl.Scraper{Fetcher: fetcher}
	deps.Sitemaps = scraphttp.NewSitemapService(nil)

	return kongCtx.Run(deps)
}
