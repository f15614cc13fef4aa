package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make creates a URL-friendly slug from the given name.
//
// Examples:
//   - "Home & Kitchen" → "home-kitchen"
//   - "Beauty & Personal Care" → "beauty-personal-care"
//   - "Premium   Headphones!" → "premium-headphones"
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// IsValid reports whether s is a well-formed slug: non-empty, lowercase
// alphanumerics separated by single hyphens.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	return s == Make(s)
}
