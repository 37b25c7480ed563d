package catalog

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

// linkParser collects anchors that qualify as category/subcategory
// links: the resolved URL must carry a category slug, some ancestor or
// the anchor itself must carry a category hint, and no ancestor may sit
// in an excluded region (breadcrumbs, pagination, header, footer,
// navigation).
type linkParser struct {
	base           *url.URL
	baseScheme     string
	baseHost       string
	baseNormalized string

	links []scrapper.CategoryLink

	stack        []*element
	currentHref  string
	currentAttrs map[string]string
	buf          []string
	depth        int
}

func newLinkParser(baseURL string) *linkParser {
	p := &linkParser{baseScheme: "https"}
	if base, err := url.Parse(baseURL); err == nil {
		p.base = base
		if base.Scheme != "" {
			p.baseScheme = base.Scheme
		}
		p.baseHost = base.Host
	}
	p.baseNormalized, _ = NormalizeURL(baseURL, p.baseScheme, p.baseHost)
	return p
}

func (p *linkParser) handleStart(e *element) {
	p.stack = append(p.stack, e)

	if e.tag != "a" {
		if p.currentHref != "" {
			p.depth++
		}
		return
	}

	candidate := extractHrefCandidate(e.attrs)
	if candidate == "" {
		return
	}

	absolute := candidate
	if p.base != nil {
		if ref, err := url.Parse(candidate); err == nil {
			absolute = p.base.ResolveReference(ref).String()
		}
	}
	normalized, ok := NormalizeURL(absolute, p.baseScheme, p.baseHost)
	if !ok || normalized == p.baseNormalized {
		return
	}

	parsed, err := url.Parse(normalized)
	if err != nil || !IsCategoryPath(parsed.Path) {
		return
	}

	if !p.anchorHasCategoryHint() {
		return
	}
	if p.anchorInExcludedRegion() {
		return
	}

	p.currentHref = normalized
	p.currentAttrs = e.attrs
	p.buf = nil
	p.depth = 0
}

func (p *linkParser) handleEnd(tag string) {
	if len(p.stack) == 0 {
		return
	}
	p.stack = p.stack[:len(p.stack)-1]

	if p.currentHref == "" {
		return
	}

	if tag != "a" {
		if p.depth > 0 {
			p.depth--
		}
		return
	}
	if p.depth > 0 {
		p.depth--
		return
	}

	name := normalizeText(strings.Join(p.buf, ""))
	if name == "" {
		for _, key := range []string{"title", "aria-label", "data-name"} {
			if value := p.currentAttrs[key]; value != "" {
				if candidate := normalizeText(value); candidate != "" {
					name = candidate
					break
				}
			}
		}
	}
	if name == "" {
		if parsed, err := url.Parse(p.currentHref); err == nil && parsed.Path != "" {
			name = parsed.Path
		} else {
			name = p.currentHref
		}
	}

	if name != "" {
		p.links = append(p.links, scrapper.CategoryLink{Name: name, URL: p.currentHref})
	}

	p.currentHref = ""
	p.currentAttrs = nil
	p.buf = nil
	p.depth = 0
}

func (p *linkParser) handleData(data string) {
	if p.currentHref != "" && data != "" {
		p.buf = append(p.buf, data)
	}
}

// anchorHasCategoryHint walks the open-element stack, innermost first.
func (p *linkParser) anchorHasCategoryHint() bool {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if hasCategoryLinkHint(p.stack[i]) {
			return true
		}
	}
	return false
}

func (p *linkParser) anchorInExcludedRegion() bool {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if inExcludedLinkRegion(p.stack[i]) {
			return true
		}
	}
	return false
}

// SubcategoryLinks returns the category links discovered in markup,
// resolved against baseURL, deduplicated by URL with the first
// occurrence kept, in document order.
func SubcategoryLinks(markup, baseURL string) []scrapper.CategoryLink {
	p := newLinkParser(baseURL)
	z := html.NewTokenizer(strings.NewReader(markup))
scan:
	for {
		switch z.Next() {
		case html.ErrorToken:
			break scan
		case html.StartTagToken:
			p.handleStart(elementFromToken(z.Token()))
		case html.SelfClosingTagToken:
			e := elementFromToken(z.Token())
			p.handleStart(e)
			p.handleEnd(e.tag)
		case html.EndTagToken:
			name, _ := z.TagName()
			p.handleEnd(string(name))
		case html.TextToken:
			p.handleData(string(z.Text()))
		}
	}

	seen := make(map[string]bool)
	var ordered []scrapper.CategoryLink
	for _, link := range p.links {
		if seen[link.URL] {
			continue
		}
		seen[link.URL] = true
		ordered = append(ordered, link)
	}
	return ordered
}
