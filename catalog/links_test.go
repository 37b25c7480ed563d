package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/catalog"
)

func TestSubcategoryLinks_collects_category_links(t *testing.T) {
	t.Parallel()

	markup := `
	<html>
	  <body>
	    <section class="b-category-sections" data-qaid="category_groups">
	      <div class="b-category-sections__item">
	        <h2 class="b-category-sections__title">
	          <a class="b-category-sections__link" data-qaid="category_link" href="/ua/g1-coffee">
	            Coffee makers
	          </a>
	        </h2>
	      </div>
	      <div class="b-category-sections__item">
	        <h2 class="b-category-sections__title">
	          <a class="b-category-sections__link" href="/ua/g2-kettles">
	            Kettles
	          </a>
	        </h2>
	      </div>
	    </section>
	    <nav class="breadcrumbs">
	      <a class="breadcrumbs__link" href="/ua/">Home</a>
	      <a class="breadcrumbs__link" href="/ua/groot">Current</a>
	    </nav>
	    <footer class="footer">
	      <a class="footer__link" href="/ua/g999-ignore">Ignore me</a>
	    </footer>
	  </body>
	</html>
	`

	links := catalog.SubcategoryLinks(markup, "https://example.com/ua/groot")

	assert.Equal(t, []scrapper.CategoryLink{
		{Name: "Coffee makers", URL: "https://example.com/ua/g1-coffee"},
		{Name: "Kettles", URL: "https://example.com/ua/g2-kettles"},
	}, links)
}

func TestSubcategoryLinks_requires_category_slug(t *testing.T) {
	t.Parallel()

	markup := `
	<div class="catalog-section">
	  <a class="catalog-section__title" href="/ua/c10-manual">Manual grinders</a>
	  <a class="catalog-section__title" href="/ua/p999">Not a category</a>
	</div>
	`

	links := catalog.SubcategoryLinks(markup, "https://example.com/ua/g1-coffee")

	require.Len(t, links, 1)
	assert.Equal(t, "Manual grinders", links[0].Name)
	assert.Equal(t, "https://example.com/ua/c10-manual", links[0].URL)
}

func TestSubcategoryLinks_requires_a_category_hint(t *testing.T) {
	t.Parallel()

	markup := `
	<div class="info-block">
	  <a class="info-block__link" href="/ua/g77-something">Plain link</a>
	</div>
	`

	assert.Empty(t, catalog.SubcategoryLinks(markup, "https://example.com/ua/groot"))
}

func TestSubcategoryLinks_excludes_the_page_itself(t *testing.T) {
	t.Parallel()

	markup := `
	<div class="catalog-section">
	  <a class="catalog-section__title" href="/ua/g1-coffee">Self</a>
	  <a class="catalog-section__title" href="/ua/g2-kettles">Kettles</a>
	</div>
	`

	links := catalog.SubcategoryLinks(markup, "https://example.com/ua/g1-coffee")

	require.Len(t, links, 1)
	assert.Equal(t, "Kettles", links[0].Name)
}

func TestSubcategoryLinks_deduplicates_by_URL(t *testing.T) {
	t.Parallel()

	markup := `
	<div class="catalog-section">
	  <a class="catalog-section__title" href="/ua/g2-kettles">Kettles</a>
	  <a class="catalog-section__title" href="/ua/g2-kettles/">Kettles again</a>
	</div>
	`

	links := catalog.SubcategoryLinks(markup, "https://example.com/ua/g1-coffee")

	require.Len(t, links, 1)
	assert.Equal(t, "Kettles", links[0].Name)
}

func TestSubcategoryLinks_skips_foreign_hosts(t *testing.T) {
	t.Parallel()

	markup := `
	<div class="catalog-section">
	  <a class="catalog-section__title" href="https://other.com/ua/g5-x">Elsewhere</a>
	</div>
	`

	assert.Empty(t, catalog.SubcategoryLinks(markup, "https://example.com/ua/g1-coffee"))
}

func TestSubcategoryLinks_falls_back_to_attributes_for_names(t *testing.T) {
	t.Parallel()

	markup := `
	<div class="catalog-section">
	  <a class="catalog-section__title" href="/ua/g9-icons" title="Значки"><img src="i.png"/></a>
	</div>
	`

	links := catalog.SubcategoryLinks(markup, "https://example.com/ua/g1-coffee")

	require.Len(t, links, 1)
	assert.Equal(t, "Значки", links[0].Name)
}
