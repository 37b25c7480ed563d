// Package catalog extracts structured category and product data from
// Prom.ua-style catalog pages such as knbk.in.ua. A single-pass,
// stack-based tag scanner recognizes category containers, product
// containers, and title/price sub-elements via class and data-qaid
// heuristics, and assembles a strict Category -> Product tree. Separate
// scanners discover "next page" and subcategory links.
//
// The heuristics here overlap with package price's noise handling but
// are tuned independently for this page family; do not unify them.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

type captureRole int

const (
	captureCategoryName captureRole = iota
	captureProductName
	captureProductPrice
)

// textCapture accumulates character data for a title or price element
// until the element at its recorded depth closes.
type textCapture struct {
	role     captureRole
	depth    int
	buf      []string
	category *categoryContext
	product  *productContext
}

type productContext struct {
	element *element
	name    string
	price   string
	url     string
}

type categoryContext struct {
	element  *element
	name     string
	products []scrapper.Product
}

type parser struct {
	elements      []*element
	captures      []*textCapture
	categoryStack []*categoryContext
	productStack  []*productContext
	categories    []scrapper.Category
	placeholders  int
}

// Parse returns the categories with their products found in markup, in
// document order. Categories that bore no products are dropped;
// products without a resolvable title are silently excluded. Parse
// tolerates malformed markup and never fails.
func Parse(markup string) []scrapper.Category {
	p := &parser{}
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return p.categories
		case html.StartTagToken:
			p.handleStart(elementFromToken(z.Token()))
		case html.SelfClosingTagToken:
			p.handleStart(elementFromToken(z.Token()))
			p.handleEnd()
		case html.EndTagToken:
			p.handleEnd()
		case html.TextToken:
			p.handleData(string(z.Text()))
		}
	}
}

func (p *parser) handleStart(e *element) {
	p.elements = append(p.elements, e)
	depth := len(p.elements)

	if isCategoryContainer(e) {
		p.categoryStack = append(p.categoryStack, &categoryContext{element: e})
	}

	var category *categoryContext
	if len(p.categoryStack) > 0 {
		category = p.categoryStack[len(p.categoryStack)-1]
	}

	if category != nil && isProductContainer(e) {
		p.productStack = append(p.productStack, &productContext{element: e})
	}

	var product *productContext
	if len(p.productStack) > 0 {
		product = p.productStack[len(p.productStack)-1]
	}

	if category != nil && category.name == "" && isCategoryTitle(e) {
		p.captures = append(p.captures, &textCapture{
			role:     captureCategoryName,
			depth:    depth,
			category: category,
		})
	}

	if product != nil && product.name == "" && isProductTitle(e) {
		if href := strings.TrimSpace(e.attr("href")); href != "" && product.url == "" {
			product.url = href
		}
		p.captures = append(p.captures, &textCapture{
			role:    captureProductName,
			depth:   depth,
			product: product,
		})
	}

	if product != nil && product.price == "" && isProductPrice(e) {
		p.captures = append(p.captures, &textCapture{
			role:    captureProductPrice,
			depth:   depth,
			product: product,
		})
	}
}

func (p *parser) handleEnd() {
	if len(p.elements) == 0 {
		return
	}
	e := p.elements[len(p.elements)-1]
	p.elements = p.elements[:len(p.elements)-1]
	p.finalizeCaptures()
	p.finalizeProduct(e)
	p.finalizeCategory(e)
}

func (p *parser) handleData(data string) {
	if data == "" {
		return
	}
	for _, capture := range p.captures {
		capture.buf = append(capture.buf, data)
	}
}

// finalizeCaptures closes every capture whose element depth exceeds the
// now-current stack depth and writes its normalized text into the
// owning context's field, first qualifying element wins.
func (p *parser) finalizeCaptures() {
	currentDepth := len(p.elements)
	for len(p.captures) > 0 && p.captures[len(p.captures)-1].depth > currentDepth {
		capture := p.captures[len(p.captures)-1]
		p.captures = p.captures[:len(p.captures)-1]

		text := normalizeText(strings.Join(capture.buf, ""))
		if text == "" {
			continue
		}
		switch capture.role {
		case captureCategoryName:
			if capture.category.name == "" {
				capture.category.name = text
			}
		case captureProductName:
			if capture.product.name == "" {
				capture.product.name = text
			}
		case captureProductPrice:
			if capture.product.price == "" {
				capture.product.price = text
			}
		}
	}
}

func (p *parser) finalizeProduct(e *element) {
	if len(p.productStack) == 0 {
		return
	}
	current := p.productStack[len(p.productStack)-1]
	if current.element != e {
		return
	}
	p.productStack = p.productStack[:len(p.productStack)-1]
	if current.name == "" {
		return
	}
	product := scrapper.Product{Name: current.name, Price: current.price, URL: current.url}
	if len(p.categoryStack) > 0 {
		owner := p.categoryStack[len(p.categoryStack)-1]
		owner.products = append(owner.products, product)
	}
}

func (p *parser) finalizeCategory(e *element) {
	if len(p.categoryStack) == 0 {
		return
	}
	current := p.categoryStack[len(p.categoryStack)-1]
	if current.element != e {
		return
	}
	p.categoryStack = p.categoryStack[:len(p.categoryStack)-1]
	if len(current.products) == 0 {
		return
	}
	name := current.name
	if name == "" {
		p.placeholders++
		name = fmt.Sprintf("Category %d", p.placeholders)
	}
	p.categories = append(p.categories, scrapper.Category{Name: name, Products: current.products})
}
