package slog

import (
	"log/slog"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

// Ensure Detector implements scrapper.PlatformDetector.
var _ scrapper.PlatformDetector = (*Detector)(nil)

// Detector wraps a PlatformDetector with debug logging.
type Detector struct {
	next   scrapper.PlatformDetector
	logger *slog.Logger
}

// NewDetector creates a logging decorator around next.
func NewDetector(next scrapper.PlatformDetector, logger *slog.Logger) *Detector {
	return &Detector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the result.
func (d *Detector) Detect(html string) scrapper.Platform {
	platform := d.next.Detect(html)
	d.logger.Debug("platform detected",
		"platform", string(platform),
		"bytes", len(html),
	)
	return platform
}
