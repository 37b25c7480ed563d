// Package goquery implements HTML inspection services using the
// goquery library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

// Ensure Detector implements the interface.
var _ scrapper.PlatformDetector = (*Detector)(nil)

// Detector identifies storefront platforms from HTML content. It
// checks for platform-specific CSS classes, data attributes, and meta
// tags that are unique to each storefront generator.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified platform.
// Returns PlatformUnknown if the platform cannot be determined.
func (d *Detector) Detect(html string) scrapper.Platform {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return scrapper.PlatformUnknown
	}

	// data-qaid attributes are the Prom.ua test-automation hooks and
	// survive on white-label storefronts like knbk.in.ua.
	if d.hasSelector(doc, "[data-qaid='product_block']") ||
		d.hasSelector(doc, "[data-qaid='product_gallery']") ||
		d.hasSelector(doc, "[data-qaid='page_container']") {
		return scrapper.PlatformProm
	}

	// b-product-gallery / b-products-group are the legacy Prom block
	// names still served by older storefront themes.
	if d.hasSelector(doc, ".b-product-gallery") ||
		d.hasSelector(doc, ".b-products-group") ||
		d.hasSelector(doc, "[class*='b-product-gallery__']") {
		return scrapper.PlatformProm
	}

	if d.hasMetaGenerator(doc, "prom") {
		return scrapper.PlatformProm
	}

	return scrapper.PlatformUnknown
}

func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

func (d *Detector) hasMetaGenerator(doc *goquery.Document, marker string) bool {
	found := false
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok {
			if strings.Contains(strings.ToLower(content), marker) {
				found = true
			}
		}
	})
	return found
}
