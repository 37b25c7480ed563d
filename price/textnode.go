package price

import (
	stdhtml "html"
	"strings"

	"golang.org/x/net/html"
)

// pathStep is one (tag, sibling index) element of a text node's
// structural path. The index counts previously opened siblings of the
// same tag name under the same parent.
type pathStep struct {
	tag   string
	index int
}

// textNode is a visible text fragment stamped with the structural path
// of its enclosing element at the moment that element was opened.
// Paths are positional fingerprints recomputed on every parse: two
// nodes share a tree ancestor iff their paths share a non-empty prefix.
type textNode struct {
	text string
	path []pathStep
}

// stackFrame tracks one currently open element and, per child tag name,
// how many same-named children have opened under it so far. The keyed
// counter gives sibling-relative indexing; a global counter would break
// the prefix-comparability of paths.
type stackFrame struct {
	tag         string
	index       int
	childCounts map[string]int
}

// collectTextNodes walks the tag stream once and returns the document's
// visible text fragments in document order. Text inside script or style
// elements is discarded. Stray closers and unclosed elements are
// tolerated: a close with nothing open is a no-op, and frames still
// open at input end are abandoned.
func collectTextNodes(markup string) []textNode {
	z := html.NewTokenizer(strings.NewReader(markup))
	var stack []stackFrame
	rootCounts := make(map[string]int)
	var nodes []textNode

	open := func(tag string) {
		counts := rootCounts
		if len(stack) > 0 {
			counts = stack[len(stack)-1].childCounts
		}
		index := counts[tag]
		counts[tag]++
		stack = append(stack, stackFrame{tag: tag, index: index, childCounts: make(map[string]int)})
	}
	closeTop := func() {
		if len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			return nodes
		case html.StartTagToken:
			name, _ := z.TagName()
			open(string(name))
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			open(string(name))
			closeTop()
		case html.EndTagToken:
			closeTop()
		case html.TextToken:
			data := string(z.Text())
			if data == "" {
				continue
			}
			if stackHasRawText(stack) {
				continue
			}
			text := strings.TrimSpace(data)
			if text == "" {
				continue
			}
			text = stdhtml.UnescapeString(text)
			path := make([]pathStep, len(stack))
			for i, frame := range stack {
				path[i] = pathStep{tag: frame.tag, index: frame.index}
			}
			nodes = append(nodes, textNode{text: text, path: path})
		}
	}
}

// stackHasRawText reports whether a script or style element is open
// anywhere in the current ancestor chain.
func stackHasRawText(stack []stackFrame) bool {
	for _, frame := range stack {
		if frame.tag == "script" || frame.tag == "style" {
			return true
		}
	}
	return false
}

// commonPrefixLen returns the length of the shared leading path
// segment of a and b.
func commonPrefixLen(a, b []pathStep) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
