package scrapper

// Product is a single product listed under a category. Identity is
// positional within its owning Category; instances are immutable after
// the parse that created them.
type Product struct {
	// Name is the product title. Always non-empty: products whose title
	// cannot be resolved are discarded during parsing.
	Name string

	// Price is the raw, unnormalized price text, or "" if no price
	// element was found.
	Price string

	// URL is the product link href as it appeared in the markup,
	// or "" if the title element carried no link.
	URL string
}

// Category groups products that share a common heading on the page.
// A category only exists if it bore at least one product.
type Category struct {
	// Name is the captured title, or a positional placeholder of the
	// form "Category <n>" when the container had no title element.
	Name string

	// Products in document order.
	Products []Product
}
