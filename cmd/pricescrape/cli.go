package main

import (
	"context"
	"io"
	"log/slog"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/crawl"
	scraphttp "github.com/roman28tc/pricing-scrapper/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Fetcher  scrapper.Fetcher
	Detector scrapper.PlatformDetector
	Scraper  *crawl.Scraper
	Sitemaps *scraphttp.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every fetch to stderr"`

	Extract   ExtractCmd   `cmd:"" help:"Extract prices from product pages"`
	Catalog   CatalogCmd   `cmd:"" help:"Scrape a catalog category page, following pagination"`
	Hierarchy HierarchyCmd `cmd:"" help:"Scrape a category and all its subcategories"`
	Sitemap   SitemapCmd   `cmd:"" help:"List category URLs discovered from a site's sitemap"`
	Serve     ServeCmd     `cmd:"" help:"Run the web form server"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs    []string `arg:"" help:"Page URLs to extract prices from"`
	Browser bool     `short:"b" help:"Render pages in a headless browser"`
	Sweep   bool     `short:"s" help:"Follow pagination links across the site"`
	Pages   int      `default:"20" help:"Page ceiling for --sweep"`
	JSON    bool     `help:"Emit JSON instead of text"`
}

// CatalogCmd is the "catalog" subcommand.
type CatalogCmd struct {
	URL   string `arg:"" help:"Category page URL"`
	Pages int    `default:"20" help:"Pagination page ceiling"`
	JSON  bool   `help:"Emit JSON instead of text"`
}

// HierarchyCmd is the "hierarchy" subcommand.
type HierarchyCmd struct {
	URL   string  `arg:"" help:"Root category page URL"`
	RPS   float64 `default:"1" help:"Max requests per second per host"`
	Pages int     `default:"20" help:"Pagination page ceiling per category"`
	JSON  bool    `help:"Emit JSON instead of text"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	URL string `arg:"" help:"Site URL"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host string  `default:"127.0.0.1" help:"Bind address"`
	Port int     `default:"8000" help:"Listen port"`
	RPS  float64 `default:"2" help:"Max requests per second per host"`
}
