package crawl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/crawl"
)

func TestScraper_Hierarchy_traverses_nested_categories(t *testing.T) {
	t.Parallel()

	rootPage := `<html><body>
	<section class="b-category-sections" data-qaid="category_groups">
	  <div class="b-category-sections__item">
	    <h2 class="b-category-sections__title">
	      <a class="b-category-sections__link" data-qaid="category_link" href="/ua/g1-coffee">Coffee makers</a>
	    </h2>
	  </div>
	  <div class="b-category-sections__item">
	    <h2 class="b-category-sections__title">
	      <a class="b-category-sections__link" href="/ua/g2-kettles">Kettles</a>
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
	</body></html>`

	coffeePage := `<html><body>
	<section class="catalog-section" data-qaid="category_groups">
	  <div class="catalog-section__item">
	    <a class="catalog-section__title" href="/ua/c10-manual">Manual grinders</a>
	  </div>
	  <div class="catalog-section__item">
	    <a class="catalog-section__title" data-qaid="category_link" href="/ua/c20-accessories">Accessories</a>
	  </div>
	</section>
	<div class="info-block">
	  <a class="info-block__link" href="/ua/p999">Not a category</a>
	</div>
	</body></html>`

	pages := map[string]string{
		"https://example.com/ua/groot":     rootPage,
		"https://example.com/ua/g1-coffee": coffeePage,
		"https://example.com/ua/c10-manual": categoryPage(
			"Manual grinders", "Hand Grinder A", "/p1", "100 ₴", ""),
		"https://example.com/ua/c20-accessories": categoryPage(
			"Accessories", "Cleaning Brush", "/p2", "50 ₴", ""),
		"https://example.com/ua/g2-kettles": categoryPage(
			"Electric kettles", "Kettle X", "/p3", "500 ₴",
			`<a class="pagination__next" href="?page=2">Next</a>`),
		"https://example.com/ua/g2-kettles?page=2": categoryPage(
			"Electric kettles", "Kettle Y", "/p4", "550 ₴", ""),
	}

	var visited []string
	s := &crawl.Scraper{Fetcher: pagesFetcher(pages, &visited)}

	categories, err := s.Hierarchy(context.Background(), "https://example.com/ua/groot")
	require.NoError(t, err)

	// Each URL is fetched exactly once, including pagination pages.
	assert.Equal(t, []string{
		"https://example.com/ua/groot",
		"https://example.com/ua/g1-coffee",
		"https://example.com/ua/c10-manual",
		"https://example.com/ua/c20-accessories",
		"https://example.com/ua/g2-kettles",
		"https://example.com/ua/g2-kettles?page=2",
	}, visited)

	assert.Equal(t, []scrapper.Category{
		{
			Name:     "Coffee makers / Manual grinders",
			Products: []scrapper.Product{{Name: "Hand Grinder A", Price: "100 ₴", URL: "/p1"}},
		},
		{
			Name:     "Coffee makers / Accessories",
			Products: []scrapper.Product{{Name: "Cleaning Brush", Price: "50 ₴", URL: "/p2"}},
		},
		{
			Name: "Kettles / Electric kettles",
			Products: []scrapper.Product{
				{Name: "Kettle X", Price: "500 ₴", URL: "/p3"},
				{Name: "Kettle Y", Price: "550 ₴", URL: "/p4"},
			},
		},
	}, categories)
}

func TestScraper_Hierarchy_visits_shared_subcategories_once(t *testing.T) {
	t.Parallel()

	rootPage := `<div class="catalog-section">
	  <a class="catalog-section__title" href="/ua/g1-left">Left</a>
	  <a class="catalog-section__title" href="/ua/g2-right">Right</a>
	</div>`

	sharedLink := `<div class="catalog-section">
	  <a class="catalog-section__title" href="/ua/g3-shared">Shared</a>
	</div>`

	pages := map[string]string{
		"https://example.com/ua/g0-root":  rootPage,
		"https://example.com/ua/g1-left":  sharedLink,
		"https://example.com/ua/g2-right": sharedLink,
		"https://example.com/ua/g3-shared": categoryPage(
			"Shared goods", "Товар", "/p1", "10 ₴", ""),
	}

	var visited []string
	s := &crawl.Scraper{Fetcher: pagesFetcher(pages, &visited)}

	categories, err := s.Hierarchy(context.Background(), "https://example.com/ua/g0-root")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://example.com/ua/g0-root",
		"https://example.com/ua/g1-left",
		"https://example.com/ua/g3-shared",
		"https://example.com/ua/g2-right",
	}, visited)

	require.Len(t, categories, 1)
	assert.Equal(t, "Left / Shared / Shared goods", categories[0].Name)
}

func TestScraper_Hierarchy_does_not_duplicate_repeated_path_tails(t *testing.T) {
	t.Parallel()

	rootPage := `<div class="catalog-section">
	  <a class="catalog-section__title" href="/ua/g5-turki">Турки</a>
	</div>`

	pages := map[string]string{
		"https://example.com/ua/g0-root": rootPage,
		"https://example.com/ua/g5-turki": categoryPage(
			"Турки", "Турка мідна", "/t1", "300 ₴", ""),
	}

	var visited []string
	s := &crawl.Scraper{Fetcher: pagesFetcher(pages, &visited)}

	categories, err := s.Hierarchy(context.Background(), "https://example.com/ua/g0-root")
	require.NoError(t, err)

	require.Len(t, categories, 1)
	assert.Equal(t, "Турки", categories[0].Name)
}
