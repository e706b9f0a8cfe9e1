// Package device maps User-Agent strings to a coarse device category.
package device

import (
	"strings"
)

const (
	IOS     = "iOS"
	Android = "Android"
	Desktop = "Desktop"
	Unknown = "Unknown"
)

// Categories lists every value Classify can return, in reporting order.
var Categories = []string{IOS, Android, Desktop, Unknown}

// Classify detects the device category from a raw User-Agent string.
// This is an approximate substring check, not a full UA parser; Apple
// mobile indicators are checked before Android on purpose.
func Classify(userAgent string) string {
	if userAgent == "" {
		return Unknown
	}

	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") {
		return IOS
	}
	if strings.Contains(ua, "android") {
		return Android
	}

	return Desktop
}

// Known reports whether the stored device type is one of the fixed categories.
func Known(deviceType string) bool {
	switch deviceType {
	case IOS, Android, Desktop, Unknown:
		return true
	}
	return false
}
