package main

import (
	"fmt"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/crawl"
	"github.com/roman28tc/pricing-scrapper/price"
)

// Run executes the catalog command. The start page is probed first:
// recognized storefront platforms go through the structured catalog
// parser with pagination; anything else falls back to the generic
// price extractor on the single page.
func (c *CatalogCmd) Run(deps *Dependencies) error {
	markup, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapper.ErrorMessage(err))
		return err
	}

	if deps.Detector.Detect(markup) != scrapper.PlatformProm {
		fmt.Fprintln(deps.Stderr, "warning: page does not look like a Prom.ua storefront, using generic extraction")
		results := price.Extract(markup)
		if c.JSON {
			return printJSON(deps.Stdout, results)
		}
		printPriceResults(deps.Stdout, results)
		return nil
	}

	scraper := &crawl.Scraper{Fetcher: deps.Fetcher, MaxPages: c.Pages}
	categories, err := scraper.Categories(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapper.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, categories)
	}
	printCategories(deps.Stdout, categories)
	return nil
}
