package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex   = regexp.MustCompile(`\s+`)
	titlePunctRegex   = regexp.MustCompile(`[^\w\s\-]`)
	cleanPunctRegex   = regexp.MustCompile(`[^\w\s\-.]`)
	alphanumericRegex = regexp.MustCompile(`[^a-z0-9]`)
)

// CleanText trims, collapses whitespace runs and strips everything
// outside word characters, whitespace, hyphens and periods.
func CleanText(text string) string {
	text = cleanPunctRegex.ReplaceAllString(text, "")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// NormalizeTitle produces the matching key used throughout scoring
// and allow-listing: lowercased, punctuation turned into spaces,
// whitespace collapsed.
func NormalizeTitle(title string) string {
	title = strings.ToLower(title)
	title = titlePunctRegex.ReplaceAllString(title, " ")
	title = whitespaceRegex.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}

// MatchKey reduces a name to bare lowercase alphanumerics. Two names
// that differ only in punctuation, casing or spacing collide on
// purpose, that is what makes allow-list title matching forgiving.
func MatchKey(name string) string {
	return alphanumericRegex.ReplaceAllString(strings.ToLower(name), "")
}
