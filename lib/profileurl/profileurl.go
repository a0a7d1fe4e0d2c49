package profileurl

import (
	"fmt"
	"regexp"
)

const (
	Host        = "www.cloudskillsboost.google"
	Origin      = "https://" + Host
	ProfilePath = "/public_profiles/"
)

// matches full urls, bare domains and anything in between,
// the profile id is the only part we actually care about
var profileUrlRegex = regexp.MustCompile(
	`(?i)(?:https?://)?(?:www\.)?cloudskillsboost\.google/public_profiles/([a-zA-Z0-9\-_]+)`,
)

// ExtractID pulls the opaque profile id out of a Skills Boost
// public profile url. ok is false when the url doesn't look like
// a public profile at all.
func ExtractID(profileUrl string) (id string, ok bool) {
	groups := profileUrlRegex.FindStringSubmatch(profileUrl)
	if len(groups) < 2 {
		return "", false
	}
	return groups[1], true
}

// Normalize rewrites any accepted spelling of a profile url into
// the canonical https://www.cloudskillsboost.google/public_profiles/<id>
// form. Normalize is idempotent.
func Normalize(profileUrl string) (string, bool) {
	id, ok := ExtractID(profileUrl)
	if !ok {
		return "", false
	}
	return FromID(id), true
}

// FromID builds the canonical profile url for a known profile id.
func FromID(id string) string {
	return fmt.Sprintf("%s%s%s", Origin, ProfilePath, id)
}
