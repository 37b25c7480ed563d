// Package slog provides logging decorators for scrapper services
// using the standard library's structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

// Ensure Fetcher implements scrapper.Fetcher.
var _ scrapper.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a Fetcher with logging of every round-trip.
type Fetcher struct {
	next   scrapper.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a logging decorator around next.
func NewFetcher(next scrapper.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *Fetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
