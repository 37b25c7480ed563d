package catalog

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// element is one open tag on the scanner stack.
type element struct {
	tag   string
	attrs map[string]string
}

func elementFromToken(t html.Token) *element {
	attrs := make(map[string]string, len(t.Attr))
	for _, a := range t.Attr {
		attrs[strings.ToLower(a.Key)] = a.Val
	}
	return &element{tag: t.Data, attrs: attrs}
}

func (e *element) attr(key string) string {
	return e.attrs[key]
}

var classSplitRE = regexp.MustCompile(`\s+`)

func (e *element) classes() []string {
	raw := e.attrs["class"]
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range classSplitRE.Split(raw, -1) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Keyword vocabularies observed on knbk.in.ua and sibling Prom.ua
// storefronts. Matching is case-insensitive substring over class tokens
// and data-qaid values.

var categoryContainerClassKeywords = []string{
	"products-group",
	"products_group",
	"subcategory",
	"catalog-section",
	"catalog_section",
	"category-section",
	"category_section",
}

var categoryContainerDataQAIDKeywords = []string{
	"group",
	"subcategory",
}

var categoryTitleClassKeywords = []string{
	"products-group__title",
	"group__title",
	"category__title",
	"subcategory__title",
	"section__title",
	"group-title",
	"category-title",
}

var categoryTitleDataQAIDKeywords = []string{
	"group_title",
	"subcategory_title",
}

var productContainerClassKeywords = []string{
	"product-card",
	"product_card",
	"product-item",
	"product_tile",
	"product-tile",
	"product-list__item",
	"product-gallery__item",
	"b-product-gallery__item",
}

var productContainerDataQAIDKeywords = []string{
	"product",
}

var productTitleClassKeywords = []string{
	"product-card__title",
	"product__title",
	"product-title",
	"product__name",
	"product-name",
	"b-product-gallery__title",
	"b-product-gallery__name",
	"title",
	"name",
}

var productPriceClassKeywords = []string{
	"price__value",
	"price-value",
	"price_current",
	"price__current",
	"product-price__value",
	"product-price",
	"b-goods-price__value",
	"goods-price__value",
	"price",
	"value",
}

// excludedPriceClassKeywords mark crossed-out original prices that must
// never win over the current price.
var excludedPriceClassKeywords = []string{
	"old",
	"was",
	"strike",
	"compare",
	"cross",
}

var categoryLinkClassKeywords = []string{
	"catalog",
	"categories",
	"category",
	"group",
	"section",
	"subcategory",
	"collection",
}

var categoryLinkDataQAIDKeywords = []string{
	"catalog",
	"categories",
	"category",
	"group",
	"section",
	"subcategory",
}

var categoryLinkExcludedKeywords = []string{
	"breadcrumb",
	"breadcrumbs",
	"pagination",
	"pager",
	"footer",
	"header",
}

func classMatches(e *element, keywords []string) bool {
	for _, cls := range e.classes() {
		lowered := strings.ToLower(cls)
		for _, keyword := range keywords {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}
	return false
}

func dataQAIDMatches(e *element, keywords []string) bool {
	value := e.attr("data-qaid")
	if value == "" {
		return false
	}
	lowered := strings.ToLower(value)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func isCategoryContainer(e *element) bool {
	switch e.tag {
	case "div", "section", "article":
	default:
		return false
	}
	if dataQAIDMatches(e, categoryContainerDataQAIDKeywords) {
		return true
	}
	// Compound block__element classes belong to inner parts of a group,
	// not the group container itself.
	for _, cls := range e.classes() {
		lowered := strings.ToLower(cls)
		if strings.Contains(lowered, "__") {
			continue
		}
		for _, keyword := range categoryContainerClassKeywords {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}
	return false
}

func isProductContainer(e *element) bool {
	switch e.tag {
	case "div", "li", "article", "section":
	default:
		return false
	}
	if classMatches(e, productContainerClassKeywords) {
		return true
	}
	return dataQAIDMatches(e, productContainerDataQAIDKeywords)
}

func isCategoryTitle(e *element) bool {
	if dataQAIDMatches(e, categoryTitleDataQAIDKeywords) {
		return true
	}
	switch e.tag {
	case "h1", "h2", "h3", "h4", "a":
		return classMatches(e, categoryTitleClassKeywords)
	}
	return false
}

func isProductTitle(e *element) bool {
	switch e.tag {
	case "a", "div", "span":
	default:
		return false
	}
	if e.attr("itemprop") == "name" {
		return true
	}
	return classMatches(e, productTitleClassKeywords)
}

func isProductPrice(e *element) bool {
	if e.attr("itemprop") == "price" {
		return true
	}
	if classMatches(e, productPriceClassKeywords) {
		return !classMatches(e, excludedPriceClassKeywords)
	}
	qaid := strings.ToLower(e.attr("data-qaid"))
	return strings.Contains(qaid, "price") && !strings.Contains(qaid, "old")
}

func hasCategoryLinkHint(e *element) bool {
	if classMatches(e, categoryLinkClassKeywords) {
		return true
	}
	if dataQAIDMatches(e, categoryLinkDataQAIDKeywords) {
		return true
	}
	switch strings.ToLower(e.attr("role")) {
	case "list", "group", "listbox", "menu":
		return true
	}
	if dataRole := strings.ToLower(e.attr("data-role")); dataRole != "" {
		for _, keyword := range categoryLinkDataQAIDKeywords {
			if strings.Contains(dataRole, keyword) {
				return true
			}
		}
	}
	return false
}

func inExcludedLinkRegion(e *element) bool {
	if classMatches(e, categoryLinkExcludedKeywords) {
		return true
	}
	if dataQAIDMatches(e, categoryLinkExcludedKeywords) {
		return true
	}
	switch strings.ToLower(e.attr("role")) {
	case "navigation", "contentinfo":
		return true
	}
	return false
}

var normalizeWhitespaceRE = regexp.MustCompile(`[\s\p{Zs}]+`)

// normalizeText entity-unescapes, collapses whitespace, and trims.
// Deliberately local to this package: the generic extractor's
// normalizer carries a noise vocabulary this one must not.
func normalizeText(value string) string {
	value = unescape(value)
	value = normalizeWhitespaceRE.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}
