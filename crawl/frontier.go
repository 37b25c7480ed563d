package crawl

import (
	"strings"

	"github.com/roman28tc/pricing-scrapper/bloom"
)

// Frontier is an in-memory FIFO URL queue with Bloom filter
// deduplication, used by whole-site sweeps where the visited set can
// grow well past what a traversal ever drains. It is not safe for
// concurrent use; sweeps are single-threaded.
type Frontier struct {
	seen  *bloom.Filter
	queue []string
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, fpRate)}
}

// Push enqueues a URL. Returns false if the URL has already been
// queued or popped. Fragments are stripped before deduplication, so
// URLs differing only by fragment are considered duplicates.
func (f *Frontier) Push(rawURL string) bool {
	u := stripFragment(rawURL)
	if f.seen.Test(u) {
		return false
	}
	f.seen.Add(u)
	f.queue = append(f.queue, u)
	return true
}

// Pop returns the next URL in arrival order.
// The bool result is false if the queue is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	u := f.queue[0]
	f.queue = f.queue[1:]
	return u, true
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// Seen reports whether the URL has been queued or popped.
// Fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(rawURL string) string {
	if idx := strings.Index(rawURL, "#"); idx != -1 {
		return rawURL[:idx]
	}
	return rawURL
}
