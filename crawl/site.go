package crawl

import (
	"context"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/price"
)

// Frontier sizing for a single site sweep. The page ceiling keeps
// sweeps small, so a tight filter is plenty.
const (
	frontierExpectedURLs = 10_000
	frontierFPRate       = 0.001
)

// Site sweeps a site breadth-first starting at startURL, following
// pagination-looking links on the same host, and returns the price
// results extracted across all pages, deduplicated by description and
// price, together with the number of pages scanned. A fetch failure
// aborts the whole sweep.
func (s *Scraper) Site(ctx context.Context, startURL string) ([]scrapper.PriceResult, int, error) {
	limit := s.maxPages()
	frontier := NewFrontier(frontierExpectedURLs, frontierFPRate)
	frontier.Push(normalizePageURL(startURL))

	var results []scrapper.PriceResult
	seen := make(map[[2]string]bool)
	pages := 0

	for pages < limit {
		current, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, pages, err
		}

		markup, err := s.fetch(ctx, current)
		if err != nil {
			return nil, pages, err
		}
		pages++

		for _, item := range price.Extract(markup) {
			key := [2]string{item.Description, item.Price}
			if seen[key] {
				continue
			}
			seen[key] = true
			results = append(results, item)
		}

		if pages >= limit {
			break
		}
		for _, candidate := range DiscoverPaginationURLs(markup, current) {
			if pages+frontier.Len() >= limit {
				break
			}
			frontier.Push(candidate)
		}
	}

	return results, pages, nil
}
