package price_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman28tc/pricing-scrapper/price"
)

func TestExtract_returns_descriptions_for_prices(t *testing.T) {
	t.Parallel()

	page := `
	<html>
	    <body>
	        <div class="product">Widget A - $12.50 only today!</div>
	        <div class="product">Widget B - €9,99 only today!</div>
	        <div class="product">Widget C - 1&nbsp;200 ₴ only today!</div>
	        <div class="product">Widget D - 2&#160;500 USD only today!</div>
	    </body>
	</html>
	`

	results := price.Extract(page)
	require.Len(t, results, 4)

	var prices []string
	for _, r := range results {
		prices = append(prices, r.Price)
	}
	assert.Equal(t, []string{"$12.50", "€9,99", "1 200 ₴", "2 500 USD"}, prices)

	found := false
	for _, r := range results {
		if strings.Contains(r.Description, "Widget A") {
			found = true
		}
	}
	assert.True(t, found, "expected a description mentioning Widget A")
}

func TestExtract_ignores_script_and_style_content(t *testing.T) {
	t.Parallel()

	page := `
	<html>
	    <head>
	        <style>
	            .price::after { content: "$999.99"; }
	        </style>
	    </head>
	    <body>
	        <script>
	            const fallback = "Only €199,95!";
	        </script>
	        <div>Actual offer – $49.99 today only!</div>
	    </body>
	</html>
	`

	results := price.Extract(page)

	require.Len(t, results, 1)
	assert.Equal(t, "$49.99", results[0].Price)
	assert.True(t, strings.HasPrefix(results[0].Description, "Actual offer"),
		"got description %q", results[0].Description)
}

func TestExtract_prefers_structured_product_titles(t *testing.T) {
	t.Parallel()

	page := `
	<div class="product">
	    <a class="title" href="/p1">Кавомолка Hario Skerton Plus</a>
	    <div class="price"><span>1 675 ₴</span></div>
	</div>
	`

	results := price.Extract(page)

	require.Len(t, results, 1)
	assert.Equal(t, "1 675 ₴", results[0].Price)
	assert.Equal(t, "Кавомолка Hario Skerton Plus", results[0].Description)
}

func TestExtract_strips_noise_prefixes_from_descriptions(t *testing.T) {
	t.Parallel()

	page := `
	<div class="product">
	    <span>Купити: Турка мідна 300 мл</span>
	    <span>450 ₴</span>
	</div>
	`

	results := price.Extract(page)

	require.Len(t, results, 1)
	assert.Equal(t, "Турка мідна 300 мл", results[0].Description)
}

func TestExtract_deduplicates_identical_results(t *testing.T) {
	t.Parallel()

	page := `
	<div class="product">Mug - $5.00</div>
	<div class="product">Mug - $5.00</div>
	`

	results := price.Extract(page)

	require.Len(t, results, 1)
	assert.Equal(t, "$5.00", results[0].Price)
}

func TestExtract_truncates_very_long_descriptions(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("верблюд ", 40)
	page := "<div>" + long + " - 700 ₴</div>"

	results := price.Extract(page)

	require.Len(t, results, 1)
	assert.LessOrEqual(t, len([]rune(results[0].Description)), 160)
	assert.True(t, strings.HasSuffix(results[0].Description, "..."))
}

func TestExtract_detects_out_of_stock_label(t *testing.T) {
	t.Parallel()

	page := `
	<div class="product">
	    <span class="name">Кавомолка Hario</span>
	    <span class="price">1 675 ₴</span>
	    <span class="stock">Немає в наявності</span>
	</div>
	`

	results := price.Extract(page)

	require.Len(t, results, 1)
	assert.Equal(t, "Немає в наявності", results[0].Availability)
}

func TestExtract_detects_in_stock_label(t *testing.T) {
	t.Parallel()

	page := `
	<div class="product">
	    <span class="name">Чайник Hario Buono</span>
	    <span class="price">1 200 ₴</span>
	    <span class="stock">Є в наявності</span>
	</div>
	`

	results := price.Extract(page)

	require.Len(t, results, 1)
	assert.Equal(t, "В наявності", results[0].Availability)
}

func TestExtract_leaves_availability_empty_without_markers(t *testing.T) {
	t.Parallel()

	results := price.Extract(`<div>Widget - $10.00</div>`)

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Availability)
}

func TestExtract_returns_nothing_for_plain_text(t *testing.T) {
	t.Parallel()

	assert.Empty(t, price.Extract("no numbers here"))
	assert.Empty(t, price.Extract(""))
}

func TestExtract_custom_window_still_finds_prices(t *testing.T) {
	t.Parallel()

	page := `<div>Widget E - $20.00</div>`

	results := price.Extract(page, price.WithWindow(10))

	require.Len(t, results, 1)
	assert.Equal(t, "$20.00", results[0].Price)
}
