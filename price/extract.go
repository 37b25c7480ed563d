package price

import (
	"html"
	"strings"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

// DefaultWindow is the number of visible context characters collected
// on each side of a price match for the fallback description.
const DefaultWindow = 60

const maxDescriptionLen = 160

// Option configures Extract.
type Option func(*config)

type config struct {
	window int
}

// WithWindow sets the visible-text context window size.
// Defaults to DefaultWindow if not specified.
func WithWindow(n int) Option {
	return func(c *config) {
		c.window = n
	}
}

// Extract returns the probable prices in markup together with their
// descriptions and availability, in document order. Results are
// deduplicated by (description, price) within the page. Extract never
// fails: arbitrary input degrades to an empty result.
func Extract(markup string, opts ...Option) []scrapper.PriceResult {
	cfg := config{window: DefaultWindow}
	for _, opt := range opts {
		opt(&cfg)
	}

	stripped := stripScriptStyle(markup)
	searchText := html.UnescapeString(stripped)
	nodes := collectTextNodes(stripped)
	consumed := make([]int, len(nodes))
	cursor := 0

	var results []scrapper.PriceResult
	seen := make(map[[2]string]bool)

	for _, loc := range priceRE.FindAllStringIndex(searchText, -1) {
		if insideTag(searchText, loc[0]) {
			continue
		}
		snippet := cleanSnippet(visibleWindow(searchText, loc[0], loc[1], cfg.window))
		matched := strings.TrimSpace(searchText[loc[0]:loc[1]])

		var description string
		nodeIndex := locateNodeForPrice(nodes, matched, consumed, cursor)
		if nodeIndex != -1 {
			cursor = nodeIndex
			description = selectBestNeighborDescription(nodes, nodeIndex, matched)
		}
		if description == "" {
			description = refineSnippet(snippet, matched)
		}
		if description == "" {
			description = matched
		}
		description = truncate(description, maxDescriptionLen)

		availability := detectAvailability(nodes, nodeIndex, description, snippet)

		key := [2]string{description, matched}
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, scrapper.PriceResult{
			Description:  description,
			Price:        matched,
			Availability: availability,
		})
	}

	return results
}

// truncate shortens text to limit runes, replacing the tail with a
// three-character ellipsis.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
