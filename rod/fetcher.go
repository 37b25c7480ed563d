// Package rod provides a browser-based implementation of
// scrapper.Fetcher for storefronts that render their catalog with
// JavaScript.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	scrapper "github.com/roman28tc/pricing-scrapper"
	scraphttp "github.com/roman28tc/pricing-scrapper/http"
)

// Ensure Fetcher implements scrapper.Fetcher at compile time.
var _ scrapper.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent overrides the browser's User-Agent header. Defaults to
// the same desktop Chrome agent the plain HTTP fetcher sends.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{userAgent: scraphttp.DefaultUserAgent}
	for _, opt := range opts {
		opt(f)
	}

	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
// Failures are returned with code EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", scrapper.Errorf(scrapper.EUNAVAILABLE, "creating page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		override := proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}
		if err := page.SetUserAgent(&override); err != nil {
			return "", scrapper.Errorf(scrapper.EUNAVAILABLE, "setting user agent: %v", err)
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", scrapper.Errorf(scrapper.EUNAVAILABLE, "navigate %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", scrapper.Errorf(scrapper.EUNAVAILABLE, "waiting for %s to load: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", scrapper.Errorf(scrapper.EUNAVAILABLE, "reading rendered HTML for %s: %v", url, err)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
