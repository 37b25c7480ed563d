package mock

import (
	scrapper "github.com/roman28tc/pricing-scrapper"
)

var _ scrapper.PlatformDetector = (*Detector)(nil)

// Detector is a mock implementation of scrapper.PlatformDetector.
type Detector struct {
	DetectFn func(html string) scrapper.Platform
}

func (d *Detector) Detect(html string) scrapper.Platform {
	return d.DetectFn(html)
}
