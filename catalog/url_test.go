package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman28tc/pricing-scrapper/catalog"
)

func TestIsCategoryPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"/ua/g12345-nazva-rozdilu", true},
		{"/ua/c10-manual", true},
		{"/ua/G77-upper", true},
		{"/ua/g1-coffee/", true},
		{"/ua/p999", false},
		{"/ua/groot", false},
		{"/ua/", false},
		{"/", false},
		{"", false},
		{"/ua/g-nodigits", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.IsCategoryPath(tt.path), "path %q", tt.path)
	}
}

func TestNormalizeURL_defaults_scheme_and_host(t *testing.T) {
	t.Parallel()

	got, ok := catalog.NormalizeURL("/ua/g1-coffee", "https", "example.com")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/ua/g1-coffee", got)
}

func TestNormalizeURL_strips_query_fragment_and_trailing_slash(t *testing.T) {
	t.Parallel()

	got, ok := catalog.NormalizeURL("https://example.com/ua/g1-coffee/?page=2#list", "", "")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/ua/g1-coffee", got)
}

func TestNormalizeURL_rejects_foreign_hosts(t *testing.T) {
	t.Parallel()

	_, ok := catalog.NormalizeURL("https://other.com/ua/g1", "https", "example.com")
	assert.False(t, ok)
}

func TestNormalizeURL_rejects_non_http_schemes(t *testing.T) {
	t.Parallel()

	_, ok := catalog.NormalizeURL("mailto:shop@example.com", "https", "example.com")
	assert.False(t, ok)

	_, ok = catalog.NormalizeURL("ftp://example.com/file", "https", "example.com")
	assert.False(t, ok)
}

func TestNormalizeURL_requires_a_host(t *testing.T) {
	t.Parallel()

	_, ok := catalog.NormalizeURL("/ua/g1-coffee", "https", "")
	assert.False(t, ok)

	_, ok = catalog.NormalizeURL("   ", "https", "example.com")
	assert.False(t, ok)
}

func TestNormalizeURL_host_match_is_case_insensitive(t *testing.T) {
	t.Parallel()

	got, ok := catalog.NormalizeURL("https://EXAMPLE.com/ua/g1", "https", "example.com")
	require.True(t, ok)
	assert.Equal(t, "https://EXAMPLE.com/ua/g1", got)
}
