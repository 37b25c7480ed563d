package scrapper

// CategoryLink is a discovered link to a category or subcategory page.
// URLs are absolute, normalized, and stripped of query and fragment.
type CategoryLink struct {
	Name string
	URL  string
}

// Platform identifies the storefront platform a page was generated by.
type Platform string

// Supported storefront platforms.
const (
	PlatformUnknown Platform = ""
	PlatformProm    Platform = "prom"
)

// PlatformDetector identifies storefront platforms from HTML, letting
// callers route a page to the structured catalog parser or fall back to
// the generic price extractor.
type PlatformDetector interface {
	// Detect analyzes HTML and returns the identified platform.
	// Returns PlatformUnknown if the platform cannot be determined.
	Detect(html string) Platform
}
