package scrapper

import "context"

// Fetcher retrieves page HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content, and may layer retries on top of a plain transport; the traversal
// code in crawl/ treats every Fetch call as a single opaque round-trip.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation. Network, timeout,
	// and HTTP-status failures are returned with code EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher (e.g. a browser).
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
