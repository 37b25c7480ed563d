package main

import (
	"encoding/json"
	"fmt"
	"io"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func printPriceResults(w io.Writer, results []scrapper.PriceResult) {
	for _, r := range results {
		if r.Availability != "" {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Description, r.Price, r.Availability)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", r.Description, r.Price)
	}
}

func printCategories(w io.Writer, categories []scrapper.Category) {
	for _, category := range categories {
		fmt.Fprintf(w, "%s\n", category.Name)
		for _, product := range category.Products {
			if product.Price != "" {
				fmt.Fprintf(w, "  %s\t%s\n", product.Name, product.Price)
			} else {
				fmt.Fprintf(w, "  %s\n", product.Name)
			}
		}
	}
}
