package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/crawl"
	"github.com/roman28tc/pricing-scrapper/price"
)

// pageReport is one URL's extraction outcome.
type pageReport struct {
	URL     string                 `json:"url"`
	Pages   int                    `json:"pages"`
	Results []scrapper.PriceResult `json:"results"`
}

// Run executes the extract command. URLs are fetched concurrently;
// output order follows the argument order.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	reports := make([]pageReport, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	for i, pageURL := range c.URLs {
		g.Go(func() error {
			if c.Sweep {
				scraper := &crawl.Scraper{Fetcher: deps.Fetcher, MaxPages: c.Pages}
				results, pages, err := scraper.Site(ctx, pageURL)
				if err != nil {
					return err
				}
				reports[i] = pageReport{URL: pageURL, Pages: pages, Results: results}
				return nil
			}

			markup, err := deps.Fetcher.Fetch(ctx, pageURL)
			if err != nil {
				return err
			}
			reports[i] = pageReport{URL: pageURL, Pages: 1, Results: price.Extract(markup)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapper.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, reports)
	}
	for _, report := range reports {
		if len(c.URLs) > 1 {
			fmt.Fprintf(deps.Stdout, "# %s\n", report.URL)
		}
		printPriceResults(deps.Stdout, report.Results)
	}
	return nil
}
