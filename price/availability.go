package price

import "strings"

// availabilityPhrase maps a stock-status phrase (lowercase) to its
// normalized label. An empty label means the raw matched phrase is
// reported as-is.
type availabilityPhrase struct {
	phrase string
	label  string
}

// outOfStockPhrases are tested before inStockPhrases so that
// e.g. "Немає в наявності" is never mistaken for its "в наявності"
// suffix. Order within each list is priority order.
var outOfStockPhrases = []availabilityPhrase{
	{phrase: "немає в наявності", label: "Немає в наявності"},
	{phrase: "нема в наявності", label: "Немає в наявності"},
	{phrase: "немає на складі", label: "Немає в наявності"},
	{phrase: "товар закінчився", label: "Немає в наявності"},
	{phrase: "нет в наличии", label: "Нет в наличии"},
	{phrase: "нет на складе", label: "Нет в наличии"},
	{phrase: "під замовлення", label: "Під замовлення"},
	{phrase: "под заказ", label: "Под заказ"},
	{phrase: "out of stock", label: "Out of stock"},
	{phrase: "sold out", label: "Sold out"},
	{phrase: "back-order", label: "Back-order"},
	{phrase: "backorder", label: "Back-order"},
	{phrase: "снят с продажи", label: ""},
	{phrase: "знято з продажу", label: ""},
}

var inStockPhrases = []availabilityPhrase{
	{phrase: "є в наявності", label: "В наявності"},
	{phrase: "в наявності", label: "В наявності"},
	{phrase: "в наличии", label: "В наличии"},
	{phrase: "готово до відправки", label: "В наявності"},
	{phrase: "in stock", label: "In stock"},
	{phrase: "ready to ship", label: "In stock"},
}

// matchPhrase reports the label for phrase if it occurs anywhere in
// text, case-insensitively. Unlabeled phrases report the matched
// segment of the original text.
func matchPhrase(text string, p availabilityPhrase) (string, bool) {
	lowered := strings.ToLower(text)
	idx := strings.Index(lowered, p.phrase)
	if idx == -1 {
		return "", false
	}
	if p.label != "" {
		return p.label, true
	}
	return text[idx : idx+len(p.phrase)], true
}

// matchAvailability returns the label of the first phrase, in priority
// order, that matches any of the pooled texts.
func matchAvailability(pool []string) string {
	for _, p := range outOfStockPhrases {
		for _, text := range pool {
			if label, ok := matchPhrase(text, p); ok {
				return label
			}
		}
	}
	for _, p := range inStockPhrases {
		for _, text := range pool {
			if label, ok := matchPhrase(text, p); ok {
				return label
			}
		}
	}
	return ""
}

// detectAvailability resolves a stock-status label for a matched price.
// The primary pool is the chosen description plus any text node within
// three positions of the price node whose path shares all but the last
// element of the price node's path; the fallback pool is the visible
// text window around the match. Absence of any marker yields "".
func detectAvailability(nodes []textNode, priceIndex int, description, window string) string {
	primary := []string{description}
	if priceIndex >= 0 && priceIndex < len(nodes) {
		pricePath := nodes[priceIndex].path
		required := len(pricePath) - 1
		lo := max(priceIndex-3, 0)
		hi := min(priceIndex+3, len(nodes)-1)
		for idx := lo; idx <= hi; idx++ {
			if idx == priceIndex {
				continue
			}
			if commonPrefixLen(nodes[idx].path, pricePath) >= required {
				primary = append(primary, nodes[idx].text)
			}
		}
	}
	if label := matchAvailability(primary); label != "" {
		return label
	}
	return matchAvailability([]string{window})
}
