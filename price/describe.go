package price

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// textQuality scores how description-like a piece of text is:
// length + 2x letters + digits, +5 for containing a space, plus one per
// separator character.
func textQuality(text string) int {
	var length, letters, digits, extras int
	for _, r := range text {
		length++
		if unicode.IsLetter(r) {
			letters++
		}
		if unicode.IsDigit(r) {
			digits++
		}
		if strings.ContainsRune("-_/.", r) {
			extras++
		}
	}
	score := length + letters*2 + digits
	if strings.Contains(text, " ") {
		score += 5
	}
	return score + extras
}

// scoreCandidate adjusts the base text quality by structural proximity:
// no shared ancestor with the price node costs 25, each shared prefix
// element earns 40, and each step of linear distance costs 5.
// The magic constants are empirically tuned; keep them as they are.
func scoreCandidate(text string, candidatePath, pricePath []pathStep, distance int) int {
	if !isValidCandidate(text) {
		return 0
	}
	score := textQuality(text)
	if prefixLen := commonPrefixLen(candidatePath, pricePath); prefixLen == 0 {
		score -= 25
	} else {
		score += prefixLen * 40
	}
	return score - distance*5
}

// selectBestNeighborDescription picks the description for the price
// found in nodes[priceIndex]. When the price shares a text run with its
// label, the non-noise side of the split wins (before-text preferred).
// Otherwise neighbors are scored backward then forward with early
// stopping; ties keep the first candidate found. Returns "" when no
// valid candidate exists.
func selectBestNeighborDescription(nodes []textNode, priceIndex int, price string) string {
	if len(nodes) == 0 {
		return ""
	}

	priceNode := nodes[priceIndex]
	pricePath := priceNode.path

	if strings.Contains(priceNode.text, price) {
		before, after, _ := strings.Cut(priceNode.text, price)
		for _, side := range []string{before, after} {
			if candidate := prepareCandidate(side); isValidCandidate(candidate) {
				return candidate
			}
		}
	}

	var bestText string
	bestScore := 0

	distance := 0
	for idx := priceIndex - 1; idx >= 0; idx-- {
		distance++
		candidate := prepareCandidate(nodes[idx].text)
		if candidate == "" {
			continue
		}
		if score := scoreCandidate(candidate, nodes[idx].path, pricePath, distance); score > bestScore {
			bestScore = score
			bestText = candidate
		}
		if distance >= 8 && bestScore > 0 {
			break
		}
		if commonPrefixLen(nodes[idx].path, pricePath) == 0 && distance >= 4 && bestScore > 0 {
			break
		}
	}

	if bestText != "" {
		return bestText
	}

	distance = 0
	for idx := priceIndex + 1; idx < len(nodes); idx++ {
		distance++
		candidate := prepareCandidate(nodes[idx].text)
		if candidate == "" {
			continue
		}
		if score := scoreCandidate(candidate, nodes[idx].path, pricePath, distance+2); score > bestScore {
			bestScore = score
			bestText = candidate
		}
		if distance >= 6 && bestScore > 0 {
			break
		}
	}

	return bestText
}

// locateNodeForPrice finds the node whose text contains price at or
// after that node's consumed offset, searching from startIndex and
// wrapping to the start of the sequence. The consumed offsets prevent a
// repeated price string from reusing the same occurrence twice.
// Returns -1 when no node contains an unconsumed occurrence.
func locateNodeForPrice(nodes []textNode, price string, consumed []int, startIndex int) int {
	if len(nodes) == 0 {
		return -1
	}
	for idx := startIndex; idx < len(nodes); idx++ {
		if pos := indexFrom(nodes[idx].text, price, consumed[idx]); pos != -1 {
			consumed[idx] = pos + len(price)
			return idx
		}
	}
	for idx := 0; idx < len(nodes); idx++ {
		if pos := indexFrom(nodes[idx].text, price, consumed[idx]); pos != -1 {
			consumed[idx] = pos + len(price)
			return idx
		}
	}
	return -1
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	if i := strings.Index(s[from:], substr); i != -1 {
		return from + i
	}
	return -1
}

// gatherVisible collects up to limit visible runes from text, walking
// backward from its end or forward from its start and skipping runes
// inside tags. Whitespace nearest the walk origin is dropped.
func gatherVisible(text string, backward bool, limit int) string {
	var buf []rune
	inTag := false

	if backward {
		rest := text
		for len(rest) > 0 && len(buf) < limit {
			r, size := utf8.DecodeLastRuneInString(rest)
			rest = rest[:len(rest)-size]
			switch {
			case r == '<':
				inTag = false
			case r == '>':
				inTag = true
			case inTag:
			case len(buf) == 0 && unicode.IsSpace(r):
			default:
				buf = append(buf, r)
			}
		}
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
		return string(buf)
	}

	for _, r := range text {
		if len(buf) >= limit {
			break
		}
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case inTag:
		case len(buf) == 0 && unicode.IsSpace(r):
		default:
			buf = append(buf, r)
		}
	}
	return string(buf)
}

// visibleWindow returns the match text surrounded by up to limit
// visible characters on each side.
func visibleWindow(text string, start, end, limit int) string {
	left := gatherVisible(text[:start], true, limit)
	right := gatherVisible(text[end:], false, limit)
	return left + text[start:end] + right
}

// cleanSnippet strips tags from a window snippet and normalizes it.
func cleanSnippet(snippet string) string {
	return Normalize(tagRE.ReplaceAllString(snippet, " "))
}

// refineSnippet extracts a description from the visible-text window
// when no node-based description was found, preferring the text before
// the price over the text after it.
func refineSnippet(snippet, price string) string {
	if snippet == "" {
		return snippet
	}

	candidate := snippet
	if price != "" {
		if idx := strings.Index(snippet, price); idx != -1 {
			before := prepareCandidate(snippet[:idx])
			if isValidCandidate(before) {
				candidate = before
			} else if after := prepareCandidate(snippet[idx+len(price):]); isValidCandidate(after) {
				candidate = after
			}
		} else {
			candidate = prepareCandidate(snippet)
		}
	} else {
		candidate = prepareCandidate(snippet)
	}

	if candidate == "" {
		return strings.TrimSpace(snippet)
	}
	return candidate
}
