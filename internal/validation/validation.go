package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// SlugPattern defines the valid slug format: alphanumeric, hyphens, underscores.
var SlugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateSlug checks if a slug matches the allowed pattern.
func ValidateSlug(slug string) bool {
	if slug == "" || len(slug) > 64 {
		return false
	}
	return SlugPattern.MatchString(slug)
}

// NormalizeSlug lowercases a slug so lookups are case-insensitive.
func NormalizeSlug(slug string) string {
	return strings.ToLower(slug)
}

// ValidateDestination checks if a destination URL uses an allowed scheme
// (http, https or mailto). This rejects javascript:, data:, vbscript:, and
// other dangerous URL schemes before anything is stored.
func ValidateDestination(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "Destination URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return false, "URL must have a valid host"
		}
	case "mailto":
		if u.Opaque == "" && u.Query().Get("to") == "" {
			return false, "mailto URL must have a recipient"
		}
	default:
		return false, "URL must use http://, https:// or mailto: scheme"
	}

	return true, ""
}
