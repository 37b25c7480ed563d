package scrapper

// PriceResult is one matched price occurrence on a page together with
// the description and availability text associated with it.
type PriceResult struct {
	// Description is the best nearby label for the price, at most 160
	// characters (ellipsized beyond that).
	Description string

	// Price is the verbatim matched price text, entity-unescaped but
	// otherwise untransformed.
	Price string

	// Availability is a normalized stock-status label such as
	// "В наявності" or "Немає в наявності", or "" when no stock marker
	// was found near the price.
	Availability string
}
