package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roman28tc/pricing-scrapper/chi"
	"github.com/roman28tc/pricing-scrapper/crawl"
)

// Run executes the serve command. Blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	scraper := &crawl.Scraper{
		Fetcher: deps.Fetcher,
		Limiter: crawl.NewDomainLimiter(c.RPS),
	}

	srv := chi.NewServer(fmt.Sprintf("%s:%d", c.Host, c.Port), scraper, deps.Logger)
	if err := srv.Open(); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Serving on %s\n", srv.URL())

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return srv.Close()
}
