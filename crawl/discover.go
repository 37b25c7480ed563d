package crawl

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Generic pagination discovery for arbitrary sites, unlike package
// catalog's single next-link scan: any same-host anchor whose text,
// attributes, or URL shape suggests pagination is a candidate, which
// makes numbered page lists traversable breadth-first.

var paginationTextHints = map[string]bool{
	"next":               true,
	"next page":          true,
	"следующая":          true,
	"следующая страница": true,
	"след.":              true,
	"weiter":             true,
	"suivant":            true,
	"далі":               true,
}

var paginationArrowTexts = map[string]bool{
	">": true,
	"»": true,
	"›": true,
	"→": true,
}

var paginationHrefHints = []string{
	"page=",
	"paged=",
	"pagination",
	"per_page=",
	"p=",
	"offset=",
	"start=",
	"page/",
}

// pageAnchor is one <a href> collected from a document, with its
// direct and nested inner text joined.
type pageAnchor struct {
	href  string
	text  string
	attrs map[string]string
}

// anchorCollector gathers anchors as the tokenizer streams by. An <a>
// without href aborts any anchor being collected, matching how broken
// nested anchors render.
type anchorCollector struct {
	anchors []pageAnchor

	currentAttrs map[string]string
	buf          []string
	depth        int
}

func (c *anchorCollector) handleStart(tag string, attrs map[string]string) {
	if tag == "a" {
		if attrs["href"] == "" {
			c.currentAttrs = nil
			c.buf = nil
			c.depth = 0
			return
		}
		c.currentAttrs = attrs
		c.buf = nil
		c.depth = 0
		return
	}
	if c.currentAttrs != nil {
		c.depth++
	}
}

func (c *anchorCollector) handleEnd(tag string) {
	if c.currentAttrs == nil {
		return
	}
	if tag == "a" {
		if c.depth > 0 {
			c.depth--
			return
		}
		c.anchors = append(c.anchors, pageAnchor{
			href:  c.currentAttrs["href"],
			text:  strings.TrimSpace(strings.Join(c.buf, "")),
			attrs: c.currentAttrs,
		})
		c.currentAttrs = nil
		c.buf = nil
		return
	}
	if c.depth > 0 {
		c.depth--
	}
}

func (c *anchorCollector) handleData(data string) {
	if c.currentAttrs != nil && data != "" {
		c.buf = append(c.buf, data)
	}
}

func collectAnchors(markup string) []pageAnchor {
	c := &anchorCollector{}
	z := html.NewTokenizer(strings.NewReader(markup))
scan:
	for {
		switch z.Next() {
		case html.ErrorToken:
			break scan
		case html.StartTagToken:
			tag, attrs := tokenTagAttrs(z.Token())
			c.handleStart(tag, attrs)
		case html.SelfClosingTagToken:
			tag, attrs := tokenTagAttrs(z.Token())
			c.handleStart(tag, attrs)
			c.handleEnd(tag)
		case html.EndTagToken:
			name, _ := z.TagName()
			c.handleEnd(string(name))
		case html.TextToken:
			c.handleData(string(z.Text()))
		}
	}
	return c.anchors
}

func tokenTagAttrs(t html.Token) (string, map[string]string) {
	attrs := make(map[string]string, len(t.Attr))
	for _, a := range t.Attr {
		attrs[strings.ToLower(a.Key)] = a.Val
	}
	return t.Data, attrs
}

// normalizePageURL strips the fragment and normalizes an empty path to
// "/". Unlike catalog.NormalizeURL it keeps the query string, since
// pagination state usually lives there.
func normalizePageURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	parsed.Fragment = ""
	if parsed.Path == "" {
		parsed.Path = "/"
	}
	return parsed.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func hrefHasPaginationHint(hrefLower string) bool {
	for _, marker := range paginationHrefHints {
		if strings.Contains(hrefLower, marker) {
			return true
		}
	}
	return false
}

// looksLikePaginationLink decides whether an anchor is worth following
// during a site sweep: next-style text, an arrow glyph backed by
// pagination attributes, a pagination-shaped URL, or a bare page
// number pointing at a page-parameterized URL.
func looksLikePaginationLink(a pageAnchor, absoluteURL string) bool {
	textLower := strings.ToLower(strings.TrimSpace(a.text))
	attrsLower := strings.ToLower(strings.Join([]string{
		a.attrs["rel"], a.attrs["class"], a.attrs["aria-label"], a.attrs["title"],
	}, " "))

	if paginationTextHints[textLower] {
		return true
	}

	if paginationArrowTexts[textLower] &&
		(strings.Contains(attrsLower, "next") ||
			strings.Contains(attrsLower, "page") ||
			strings.Contains(attrsLower, "pagination")) {
		return true
	}

	hrefLower := strings.ToLower(a.href)
	if hrefHasPaginationHint(hrefLower) {
		return true
	}

	if strings.Contains(attrsLower, "next") {
		return true
	}

	if compact := strings.ReplaceAll(textLower, " ", ""); isDigits(compact) {
		if hrefHasPaginationHint(hrefLower) {
			return true
		}
		if strings.Contains(attrsLower, "page") || strings.Contains(attrsLower, "pagination") {
			return true
		}
		parsed, err := url.Parse(absoluteURL)
		if err != nil {
			return false
		}
		for _, segment := range strings.Split(parsed.Path, "/") {
			if segment != "" && strings.HasPrefix(strings.ToLower(segment), "page") {
				return true
			}
		}
		for _, values := range parsed.Query() {
			for _, value := range values {
				if isDigits(value) {
					return true
				}
			}
		}
	}

	return false
}

// DiscoverPaginationURLs returns same-host pagination candidates found
// in markup, resolved against pageURL, normalized and deduplicated, in
// document order. The page's own URL is excluded.
func DiscoverPaginationURLs(markup, pageURL string) []string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}
	baseHost := strings.ToLower(base.Host)
	baseNormalized := normalizePageURL(pageURL)

	var discovered []string
	seen := make(map[string]bool)

	for _, anchor := range collectAnchors(markup) {
		href := strings.TrimSpace(anchor.href)
		if href == "" || strings.HasPrefix(href, "#") {
			continue
		}
		hrefLower := strings.ToLower(href)
		if strings.HasPrefix(hrefLower, "javascript:") ||
			strings.HasPrefix(hrefLower, "mailto:") ||
			strings.HasPrefix(hrefLower, "tel:") {
			continue
		}

		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		absolute := base.ResolveReference(ref)
		if absolute.Scheme != "http" && absolute.Scheme != "https" {
			continue
		}
		if !strings.EqualFold(absolute.Host, baseHost) {
			continue
		}

		normalized := normalizePageURL(absolute.String())
		if normalized == baseNormalized || seen[normalized] {
			continue
		}
		if !looksLikePaginationLink(anchor, normalized) {
			continue
		}
		seen[normalized] = true
		discovered = append(discovered, normalized)
	}

	return discovered
}
