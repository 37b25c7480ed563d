// Package mock provides mock implementations of scrapper services for
// testing.
package mock

import (
	"context"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

var _ scrapper.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of scrapper.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
