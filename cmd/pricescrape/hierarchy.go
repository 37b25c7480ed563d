package main

import (
	"fmt"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/crawl"
)

// Run executes the hierarchy command.
func (c *HierarchyCmd) Run(deps *Dependencies) error {
	scraper := &crawl.Scraper{
		Fetcher:  deps.Fetcher,
		Limiter:  crawl.NewDomainLimiter(c.RPS),
		MaxPages: c.Pages,
	}

	categories, err := scraper.Hierarchy(deps.Ctx, c.URL)
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
