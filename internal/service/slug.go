package service

import (
	"regexp"
	"strings"
)

const readTimeWordsPerMinute = 100

var (
	slugStripPattern  = regexp.MustCompile(`[^\w\s-]`)
	slugSpacesPattern = regexp.MustCompile(`\s+`)
	slugDashesPattern = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug from a title: lower-case, strip
// everything outside word characters, whitespace and hyphens, collapse
// whitespace runs and repeated hyphens to single hyphens, trim hyphens
// at both ends. Applying it to its own output is a no-op.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = slugSpacesPattern.ReplaceAllString(slug, "-")
	slug = slugDashesPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CalculateReadTime estimates reading minutes as ceil(words / 100),
// never below 1
func CalculateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + readTimeWordsPerMinute - 1) / readTimeWordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
