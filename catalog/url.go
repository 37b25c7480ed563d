package catalog

import (
	"html"
	"net/url"
	"strings"
	"unicode"
)

func unescape(s string) string {
	return html.UnescapeString(s)
}

// IsCategoryPath reports whether the last path segment looks like a
// catalog category slug: "g" or "c" followed by at least one digit
// before any non-digit, e.g. "/ua/g12345-nazva-rozdilu".
func IsCategoryPath(path string) bool {
	var last string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			last = segment
		}
	}
	if last == "" {
		return false
	}
	lowered := strings.ToLower(last)
	runes := []rune(lowered)
	if len(runes) < 2 {
		return false
	}
	if runes[0] != 'g' && runes[0] != 'c' {
		return false
	}
	digits := 0
	for _, r := range runes[1:] {
		if !unicode.IsDigit(r) {
			break
		}
		digits++
	}
	return digits > 0
}

// NormalizeURL normalizes a catalog URL for comparison and visited-set
// keying: fragment, query, and trailing slash stripped, scheme and host
// defaulted from the base. When baseHost is non-empty the URL must be
// on that host. The second result is false for unusable URLs
// (non-http(s) scheme, no host, foreign host).
func NormalizeURL(raw, baseScheme, baseHost string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", false
	}

	scheme := parsed.Scheme
	if scheme == "" {
		scheme = baseScheme
	}
	if scheme == "" {
		scheme = "https"
	}
	if scheme != "http" && scheme != "https" {
		return "", false
	}

	host := parsed.Host
	if host == "" {
		host = baseHost
	}
	if host == "" {
		return "", false
	}
	if baseHost != "" && !strings.EqualFold(host, baseHost) {
		return "", false
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if path != "/" {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}

	normalized := url.URL{Scheme: scheme, Host: host, Path: path}
	return normalized.String(), true
}
