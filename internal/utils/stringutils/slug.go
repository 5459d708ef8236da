package stringutils

import (
	"regexp"
	"strings"
)

var (
	nonWordPattern      = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	separatorRunPattern = regexp.MustCompile(`[\s_-]+`)
	unsafeFilePattern   = regexp.MustCompile(`[^a-z0-9_\-]+`)
	dashRunPattern      = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases text, drops punctuation (unicode letters and digits are kept)
// and joins the remaining words with single hyphens. Returns fallback when nothing is left.
func Slugify(text, fallback string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = nonWordPattern.ReplaceAllString(slug, "")
	slug = separatorRunPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return fallback
	}
	return slug
}

// SanitizeFilename reduces text to an ASCII path component: anything outside
// [a-z0-9_-] becomes a hyphen, hyphen runs collapse, and leading/trailing
// hyphens and underscores are removed.
func SanitizeFilename(text string) string {
	name := strings.ToLower(strings.TrimSpace(text))
	name = unsafeFilePattern.ReplaceAllString(name, "-")
	name = dashRunPattern.ReplaceAllString(name, "-")
	return strings.Trim(name, "-_")
}
