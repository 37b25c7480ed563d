package price

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// separatorCutset are the punctuation and separator runes trimmed from
// candidate descriptions between noise-stripping passes.
const separatorCutset = " \t\r\n-–—:;|•·,/"

// whitespaceRE collapses whitespace runs, including non-breaking and
// other Unicode space variants.
var whitespaceRE = regexp.MustCompile(`[\s\p{Zs}]+`)

var tagRE = regexp.MustCompile(`<[^>]+>`)

// noisePrefixes is UI chrome commonly rendered adjacent to prices on
// Ukrainian/Russian storefronts. Text starting with any of these words
// is a poor description candidate until the prefix is stripped.
var noisePrefixes = []string{
	"Галерея",
	"Список",
	"Роздріб",
	"Роздрiб",
	"Оптом",
	"Купити",
	"Купить",
	"Готово",
	"Артикул",
	"В наявності",
	"В наявност",
	"В наличии",
	"Наявність",
	"Наявні",
	"Наявн",
	"Наявн.",
	"Наличие",
	"Наличии",
	"Замовити",
	"Замовлення",
	"Заказать",
	"Заказ",
	"Кошик",
	"Корзина",
}

var noisePrefixRE = compileNoisePrefixRE()

// compileNoisePrefixRE builds a case-insensitive anchored alternation of
// the noise vocabulary, longest prefix first so that e.g. "В наявності"
// wins over "В наявност".
func compileNoisePrefixRE() *regexp.Regexp {
	seen := make(map[string]bool)
	var prefixes []string
	for _, p := range noisePrefixes {
		low := strings.ToLower(p)
		if !seen[low] {
			seen[low] = true
			prefixes = append(prefixes, low)
		}
	}
	sort.SliceStable(prefixes, func(i, j int) bool {
		return utf8.RuneCountInString(prefixes[i]) > utf8.RuneCountInString(prefixes[j])
	})
	quoted := make([]string, len(prefixes))
	for i, p := range prefixes {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)^(?:` + strings.Join(quoted, "|") + `)`)
}

// Normalize entity-unescapes raw, collapses all whitespace runs to a
// single space, and trims leading and trailing space.
func Normalize(raw string) string {
	text := html.UnescapeString(raw)
	text = whitespaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripNoisePrefix repeatedly removes a leading noise-vocabulary word
// and any leading separator punctuation until neither applies.
func StripNoisePrefix(text string) string {
	text = strings.TrimLeft(text, separatorCutset)
	for text != "" {
		m := noisePrefixRE.FindString(text)
		if m == "" {
			break
		}
		text = text[len(m):]
		text = strings.TrimLeft(text, separatorCutset)
	}
	return text
}

// prepareCandidate normalizes a description candidate: collapsed
// whitespace, trimmed separators, noise prefixes stripped.
func prepareCandidate(text string) string {
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = StripNoisePrefix(text)
	text = strings.Trim(text, separatorCutset)
	text = StripNoisePrefix(text)
	return text
}

func looksLikeNoise(text string) bool {
	if text == "" {
		return true
	}
	if noisePrefixRE.MatchString(text) {
		return true
	}
	switch strings.ToLower(text) {
	case "", "-", "—":
		return true
	}
	return false
}

// isValidCandidate reports whether text can serve as a description:
// non-empty after noise stripping, not a bare dash, and containing at
// least one letter.
func isValidCandidate(text string) bool {
	if text == "" || looksLikeNoise(text) {
		return false
	}
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
