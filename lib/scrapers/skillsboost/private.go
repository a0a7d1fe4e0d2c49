package skillsboost

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// phrases the platform renders on inaccessible profiles, matched
// case-insensitively against the whole body text
var privatePhrases = []string{
	"this profile is private",
	"profile is not public",
	"profile not available",
	"this user has made their profile private",
	"private profile",
	"sorry, access denied to this resource",
	"access denied",
	"please sign in to access this content",
}

var privateSelectors = []string{
	".private-profile",
	".profile-private",
	`[data-private="true"]`,
	".privacy-message",
}

// isPrivate is a union of weakly-correlated signals, any single hit
// is enough. A "name present but zero badge markup" heuristic was
// considered and rejected: it false-positives on brand-new profiles
// that legitimately have no badges yet.
func isPrivate(doc *goquery.Document) bool {
	bodyText := strings.ToLower(doc.Find("body").Text())
	for _, phrase := range privatePhrases {
		if strings.Contains(bodyText, phrase) {
			return true
		}
	}

	for _, selector := range privateSelectors {
		if doc.Find(selector).Length() > 0 {
			return true
		}
	}

	pageTitle := strings.ToLower(doc.Find("title").Text())
	if strings.Contains(pageTitle, "error") ||
		strings.Contains(pageTitle, "not found") ||
		strings.Contains(pageTitle, "private") {
		return true
	}

	return false
}
