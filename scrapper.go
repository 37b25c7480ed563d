// Package scrapper provides heuristic extraction of price and product
// data from e-commerce HTML. It combines a generic extractor that works
// on arbitrary, unknown page structure with a structured extractor tuned
// for Prom.ua-style catalog pages such as knbk.in.ua, plus traversal
// helpers that follow pagination and subcategory links.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or role
// (e.g., http/, rod/, crawl/, catalog/).
package scrapper
