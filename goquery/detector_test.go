package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/goquery"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want scrapper.Platform
	}{
		{
			name: "data-qaid product block",
			html: `<html><body><div data-qaid="product_block"><span>Турка 300 мл</span></div></body></html>`,
			want: scrapper.PlatformProm,
		},
		{
			name: "data-qaid product gallery",
			html: `<html><body><div data-qaid="product_gallery"></div></body></html>`,
			want: scrapper.PlatformProm,
		},
		{
			name: "data-qaid page container",
			html: `<html><body><div data-qaid="page_container"></div></body></html>`,
			want: scrapper.PlatformProm,
		},
		{
			name: "legacy gallery class",
			html: `<html><body><div class="b-product-gallery"></div></body></html>`,
			want: scrapper.PlatformProm,
		},
		{
			name: "legacy gallery element class",
			html: `<html><body><div class="b-product-gallery__item-inner"></div></body></html>`,
			want: scrapper.PlatformProm,
		},
		{
			name: "products group class",
			html: `<html><body><ul class="b-products-group"></ul></body></html>`,
			want: scrapper.PlatformProm,
		},
		{
			name: "meta generator",
			html: `<html><head><meta name="generator" content="Prom.ua"></head><body></body></html>`,
			want: scrapper.PlatformProm,
		},
		{
			name: "plain storefront",
			html: `<html><body><div class="product"><span class="price">$10</span></div></body></html>`,
			want: scrapper.PlatformUnknown,
		},
		{
			name: "unrelated generator",
			html: `<html><head><meta name="generator" content="WordPress 6.4"></head><body></body></html>`,
			want: scrapper.PlatformUnknown,
		},
		{
			name: "empty document",
			html: "",
			want: scrapper.PlatformUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			detector := goquery.NewDetector()
			assert.Equal(t, tt.want, detector.Detect(tt.html))
		})
	}
}
