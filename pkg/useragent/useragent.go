// Package useragent classifies raw User-Agent strings into the coarse
// device/OS/browser buckets used by click analytics.
package useragent

import (
	"strings"

	ua "github.com/mileusna/useragent"
)

// Unknown is used for any axis that could not be classified.
const Unknown = "unknown"

// Device categories.
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
	DeviceBot     = "bot"
)

// Classification holds the derived device category, operating system and browser.
type Classification struct {
	Device  string
	OS      string
	Browser string
}

// Classify parses raw and returns the classification, falling back to
// Unknown per axis when parsing yields nothing.
func Classify(raw string) Classification {
	c := Classification{
		Device:  Unknown,
		OS:      Unknown,
		Browser: Unknown,
	}

	if strings.TrimSpace(raw) == "" {
		return c
	}

	parsed := ua.Parse(raw)

	switch {
	case parsed.Bot:
		c.Device = DeviceBot
	case parsed.Mobile:
		c.Device = DeviceMobile
	case parsed.Tablet:
		c.Device = DeviceTablet
	case parsed.Desktop:
		c.Device = DeviceDesktop
	}

	if parsed.OS != "" {
		c.OS = parsed.OS
	}
	if parsed.Name != "" {
		c.Browser = parsed.Name
	}

	return c
}
