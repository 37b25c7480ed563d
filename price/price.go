// Package price implements heuristic extraction of prices and their
// descriptions from arbitrary HTML. It locates currency-formatted
// substrings with a regular expression, rebuilds the document's visible
// text as a positional tree, and associates each price with the best
// nearby label using proximity scoring over structural paths.
//
// Parsing never fails: malformed markup degrades to fewer or empty
// results, and the absence of any detectable price is a normal empty
// result rather than an error.
package price
