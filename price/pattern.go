package price

import (
	"html"
	"iter"
	"regexp"
	"strings"
)

// amountPattern matches 1-3 leading digits, optional thousands groups
// separated by space/comma/dot (or another digit), and an optional
// two-digit decimal tail.
const amountPattern = `\d{1,3}(?:[\d.,\s\x{00a0}]\d{3})*(?:[\d.,]\d{2})?`

// priceRE recognizes "<currency> <amount>" and "<amount> <currency>"
// with the symbols $ € £ ₴ and the codes USD EUR GBP UAH,
// case-insensitively.
var priceRE = regexp.MustCompile(
	`(?i)(?:[$€£₴]|USD|EUR|GBP|UAH)[\s\x{00a0}]?` + amountPattern +
		`|` + amountPattern + `[\s\x{00a0}]?(?:USD|EUR|GBP|UAH|₴)`,
)

var (
	scriptRE = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleRE  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
)

// stripScriptStyle excises script and style element bodies so their
// contents can never produce price matches.
func stripScriptStyle(text string) string {
	text = scriptRE.ReplaceAllString(text, " ")
	return styleRE.ReplaceAllString(text, " ")
}

// insideTag reports whether index sits between an unmatched "<" and the
// next ">", i.e. inside an HTML tag. It scans backward for the nearest
// angle bracket before index.
func insideTag(text string, index int) bool {
	lt := strings.LastIndex(text[:index], "<")
	if lt == -1 {
		return false
	}
	gt := strings.LastIndex(text[:index], ">")
	return gt <= lt
}

// Iter yields the raw price strings found in markup, in document order.
// The sequence is finite and restartable: every range over it re-scans
// from the start. Matches inside tags or script/style bodies are
// skipped.
func Iter(markup string) iter.Seq[string] {
	return func(yield func(string) bool) {
		text := html.UnescapeString(stripScriptStyle(markup))
		for start := 0; start <= len(text); {
			loc := priceRE.FindStringIndex(text[start:])
			if loc == nil {
				return
			}
			s, e := start+loc[0], start+loc[1]
			start = e
			if insideTag(text, s) {
				continue
			}
			if !yield(strings.TrimSpace(text[s:e])) {
				return
			}
		}
	}
}
