package http

import (
	"context"
	"time"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

var _ scrapper.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher wraps a Fetcher with backoff retries. A request is
// attempted len(delays)+1 times; the delays are slept between
// attempts. The last error is returned when every attempt fails.
type RetryFetcher struct {
	next   scrapper.Fetcher
	delays []time.Duration
}

// NewRetryFetcher wraps next with retries. A nil delays slice uses
// DefaultRetryDelays; an empty non-nil slice disables retries.
func NewRetryFetcher(next scrapper.Fetcher, delays []time.Duration) *RetryFetcher {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return &RetryFetcher{next: next, delays: delays}
}

// Fetch delegates to the wrapped fetcher, retrying failed attempts.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
