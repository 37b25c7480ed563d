package catalog

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var nextTextSymbols = map[string]bool{
	">":  true,
	">>": true,
	"»":  true,
	"›":  true,
	"→":  true,
}

var nextTextKeywords = map[string]bool{
	"next":               true,
	"next page":          true,
	"следующая":          true,
	"следующая страница": true,
	"вперед":             true,
	"вперёд":             true,
	"далее":              true,
	"далі":               true,
}

var nextAttrKeywords = []string{
	"next",
	"pagination_next",
	"pager_next",
}

var nextClassHints = map[string]bool{
	"pagination__next": true,
	"pagination-next":  true,
	"pagination_next":  true,
	"pager__next":      true,
	"pager-next":       true,
	"page__next":       true,
	"page-next":        true,
	"nav__next":        true,
	"nav-next":         true,
	"arrow-next":       true,
	"btn-next":         true,
}

// dataLinkAttrCandidates are attributes consulted for a URL when href
// is absent or a placeholder.
var dataLinkAttrCandidates = []string{
	"data-url",
	"data-href",
	"data-link",
	"data-next-url",
	"data-next-href",
	"data-target-url",
	"data-page-url",
	"data-page-link",
}

var relSplitRE = regexp.MustCompile(`\s+`)

// textLooksLikeNext reports whether text reads as a "next page" control
// in English, Ukrainian, or Russian, or is a next glyph.
func textLooksLikeNext(text string) bool {
	normalized := strings.TrimSpace(text)
	if normalized == "" {
		return false
	}
	lowered := strings.ToLower(normalized)
	if nextTextKeywords[lowered] {
		return true
	}
	for _, stem := range []string{"наступ", "следующ", "дал", "далі", "вперёд", "вперед"} {
		if strings.HasPrefix(lowered, stem) {
			return true
		}
	}
	return nextTextSymbols[normalized]
}

func isPlaceholderHref(value string) bool {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return true
	}
	lowered := strings.ToLower(normalized)
	switch lowered {
	case "#", "void(0)", "void(0);":
		return true
	}
	return strings.HasPrefix(lowered, "javascript:")
}

// extractHrefCandidate returns a usable URL from href, falling back to
// the data-* URL-bearing attributes when href is missing or a
// placeholder.
func extractHrefCandidate(attrs map[string]string) string {
	if href := attrs["href"]; href != "" && !isPlaceholderHref(href) {
		return strings.TrimSpace(href)
	}
	for _, key := range dataLinkAttrCandidates {
		if candidate := attrs[key]; candidate != "" && !isPlaceholderHref(candidate) {
			if stripped := strings.TrimSpace(candidate); stripped != "" {
				return stripped
			}
		}
	}
	return ""
}

// linkAttrsNextHref returns the element's href if its attributes alone
// mark it as a next-page control.
func linkAttrsNextHref(attrs map[string]string) string {
	href := extractHrefCandidate(attrs)
	if href == "" {
		return ""
	}

	if rel := attrs["rel"]; rel != "" {
		for _, part := range relSplitRE.Split(rel, -1) {
			if strings.EqualFold(part, "next") {
				return href
			}
		}
	}

	for _, key := range []string{"data-qaid", "data-role", "data-action", "data-direction"} {
		value := strings.ToLower(attrs[key])
		if value == "" {
			continue
		}
		for _, keyword := range nextAttrKeywords {
			if strings.Contains(value, keyword) {
				return href
			}
		}
	}

	if aria := attrs["aria-label"]; aria != "" && textLooksLikeNext(aria) {
		return href
	}
	if title := attrs["title"]; title != "" && textLooksLikeNext(title) {
		return href
	}

	if classes := attrs["class"]; classes != "" {
		for _, cls := range relSplitRE.Split(classes, -1) {
			lowered := strings.ToLower(cls)
			if nextClassHints[lowered] {
				return href
			}
			if strings.Contains(lowered, "next") {
				for _, hint := range []string{"pag", "pager", "page", "nav", "arrow", "btn"} {
					if strings.Contains(lowered, hint) {
						return href
					}
				}
			}
		}
	}

	return ""
}

// paginationParser finds the first element that qualifies as a
// next-page link, either by its attributes at open time or by its inner
// text once it closes.
type paginationParser struct {
	nextHref     string
	candidateTag string
	candidateURL string
	depth        int
	buf          []string
}

func (p *paginationParser) handleStart(tag string, attrs map[string]string) {
	if p.nextHref != "" {
		return
	}

	switch tag {
	case "link", "a", "button":
		if href := linkAttrsNextHref(attrs); href != "" {
			p.nextHref = href
			p.reset()
			return
		}
	}

	switch tag {
	case "a", "button":
		if candidate := extractHrefCandidate(attrs); candidate != "" {
			p.candidateTag = tag
			p.candidateURL = candidate
			p.buf = nil
			p.depth = 0
		} else if p.candidateTag != "" {
			p.depth++
		}
		return
	}

	if p.candidateTag != "" {
		p.depth++
	}
}

func (p *paginationParser) handleEnd(tag string) {
	if p.candidateTag == "" {
		return
	}
	if tag != p.candidateTag {
		if p.depth > 0 {
			p.depth--
		}
		return
	}
	if p.depth > 0 {
		p.depth--
		return
	}

	if text := normalizeText(strings.Join(p.buf, "")); p.candidateURL != "" && textLooksLikeNext(text) {
		p.nextHref = p.candidateURL
	}
	p.reset()
}

func (p *paginationParser) handleData(data string) {
	if p.nextHref != "" {
		return
	}
	if p.candidateTag != "" {
		p.buf = append(p.buf, data)
	}
}

func (p *paginationParser) reset() {
	p.candidateTag = ""
	p.candidateURL = ""
	p.depth = 0
	p.buf = nil
}

// NextPageURL scans markup for a next-page link and resolves it against
// baseURL. The second result is false when no next-page link exists or
// the resolved URL is not http(s). Query strings are preserved on
// pagination targets; fragments are stripped.
func NextPageURL(markup, baseURL string) (string, bool) {
	p := &paginationParser{}
	z := html.NewTokenizer(strings.NewReader(markup))
scan:
	for {
		switch z.Next() {
		case html.ErrorToken:
			break scan
		case html.StartTagToken:
			e := elementFromToken(z.Token())
			p.handleStart(e.tag, e.attrs)
		case html.SelfClosingTagToken:
			e := elementFromToken(z.Token())
			p.handleStart(e.tag, e.attrs)
			p.handleEnd(e.tag)
		case html.EndTagToken:
			name, _ := z.TagName()
			p.handleEnd(string(name))
		case html.TextToken:
			p.handleData(string(z.Text()))
		}
	}

	if p.nextHref == "" {
		return "", false
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", false
	}
	ref, err := url.Parse(p.nextHref)
	if err != nil {
		return "", false
	}
	joined := base.ResolveReference(ref)
	joined.Fragment = ""
	if joined.Scheme != "" && joined.Scheme != "http" && joined.Scheme != "https" {
		return "", false
	}
	resolved := joined.String()
	if resolved == "" {
		return "", false
	}
	return resolved, true
}
