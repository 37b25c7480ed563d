// Package crawl orchestrates multi-page scraping: category pagination
// traversal, depth-first category hierarchy walks, and breadth-first
// whole-site price sweeps. It owns visited-set bookkeeping, page
// ceilings, per-host rate limiting, and content-cycle detection; the
// actual page parsing lives in packages catalog and price.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/catalog"
)

// DefaultMaxPages bounds every traversal that follows links: category
// pagination chains, hierarchy sub-walks, and site sweeps.
const DefaultMaxPages = 20

// placeholderNameRE matches auto-assigned names of untitled categories.
// Such categories are never merged across pages: two untitled sections
// on different pages are not the same section.
var placeholderNameRE = regexp.MustCompile(`^Category \d+$`)

// Scraper runs multi-page scrapes against a single Fetcher.
type Scraper struct {
	Fetcher  scrapper.Fetcher
	Limiter  *DomainLimiter // optional, applied per host before each fetch
	MaxPages int            // page ceiling per traversal, DefaultMaxPages when <= 0
}

func (s *Scraper) maxPages() int {
	if s.MaxPages > 0 {
		return s.MaxPages
	}
	return DefaultMaxPages
}

func (s *Scraper) fetch(ctx context.Context, rawURL string) (string, error) {
	if s.Limiter != nil {
		if parsed, err := url.Parse(rawURL); err == nil && parsed.Host != "" {
			if err := s.Limiter.Wait(ctx, parsed.Host); err != nil {
				return "", err
			}
		}
	}
	markup, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	return markup, nil
}

// Categories scrapes a catalog category page and every page reachable
// through its "next page" chain, merging same-named categories across
// pages. The traversal stops at the page ceiling, on a repeated URL,
// or when a page's content hash repeats (some storefronts serve the
// last page again for out-of-range page numbers).
func (s *Scraper) Categories(ctx context.Context, startURL string) ([]scrapper.Category, error) {
	return s.paginate(ctx, startURL, "", nil)
}

// paginate walks the next-page chain starting at startURL. When
// firstPage is non-empty it is used as the already-fetched markup of
// the first page. Fetched page URLs are recorded, normalized, into
// visited when it is non-nil.
func (s *Scraper) paginate(ctx context.Context, startURL, firstPage string, visited map[string]bool) ([]scrapper.Category, error) {
	agg := newAggregator()
	seen := make(map[string]bool)
	hashes := make(map[uint64]bool)

	pageURL := startURL
	markup := firstPage
	for pages := 0; pages < s.maxPages() && pageURL != "" && !seen[pageURL]; pages++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seen[pageURL] = true
		if visited != nil {
			if normalized, ok := catalog.NormalizeURL(pageURL, "", ""); ok {
				visited[normalized] = true
			}
		}

		if markup == "" {
			var err error
			markup, err = s.fetch(ctx, pageURL)
			if err != nil {
				return nil, err
			}
		}

		hash := xxhash.Sum64String(markup)
		if hashes[hash] {
			break
		}
		hashes[hash] = true

		for _, category := range catalog.Parse(markup) {
			agg.add(category)
		}

		next, ok := catalog.NextPageURL(markup, pageURL)
		markup = ""
		if !ok {
			break
		}
		pageURL = next
	}

	return agg.categories(), nil
}

// Hierarchy walks a category and its subcategories depth-first,
// returning one entry per visited category page with the full
// breadcrumb path as its name ("Parent / Child / Grandchild"). Each
// normalized URL is fetched at most once, including pagination pages
// shared between branches.
func (s *Scraper) Hierarchy(ctx context.Context, startURL string) ([]scrapper.Category, error) {
	visited := make(map[string]bool)
	var results []scrapper.Category

	var walk func(current string, path []string) error
	walk = func(current string, path []string) error {
		normalized, ok := catalog.NormalizeURL(current, "", "")
		if !ok || visited[normalized] {
			return nil
		}
		visited[normalized] = true

		markup, err := s.fetch(ctx, current)
		if err != nil {
			return err
		}

		categories, err := s.paginate(ctx, current, markup, visited)
		if err != nil {
			return err
		}
		for _, category := range categories {
			parts := slices.Clone(path)
			if len(parts) == 0 || parts[len(parts)-1] != category.Name {
				parts = append(parts, category.Name)
			}
			results = append(results, scrapper.Category{
				Name:     joinPath(parts),
				Products: category.Products,
			})
		}

		for _, link := range catalog.SubcategoryLinks(markup, current) {
			if err := walk(link.URL, append(slices.Clone(path), link.Name)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(startURL, nil); err != nil {
		return nil, err
	}
	return results, nil
}

func joinPath(parts []string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " / ")
}

// aggregator merges categories parsed from successive pages. Categories
// are keyed by name in first-seen order; untitled placeholder
// categories get unique keys so they accumulate rather than merge.
type aggregator struct {
	byKey        map[string]*scrapper.Category
	keys         []string
	placeholders int
}

func newAggregator() *aggregator {
	return &aggregator{byKey: make(map[string]*scrapper.Category)}
}

func (a *aggregator) add(category scrapper.Category) {
	key := category.Name
	if placeholderNameRE.MatchString(key) {
		key = fmt.Sprintf("__placeholder_%d", a.placeholders)
		a.placeholders++
	}
	if existing, ok := a.byKey[key]; ok {
		existing.Products = append(existing.Products, category.Products...)
		return
	}
	merged := scrapper.Category{Name: category.Name, Products: slices.Clone(category.Products)}
	a.byKey[key] = &merged
	a.keys = append(a.keys, key)
}

func (a *aggregator) categories() []scrapper.Category {
	var out []scrapper.Category
	for _, key := range a.keys {
		out = append(out, *a.byKey[key])
	}
	return out
}
