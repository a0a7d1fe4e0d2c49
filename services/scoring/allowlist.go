package scoring

import (
	"strings"

	"skillscore-backend/lib/textutil"
)

// AllowedItem is one entry of the program's item catalogue. The
// alternate names absorb the platform renaming items under us.
type AllowedItem struct {
	Name           string   `json:"name"`
	AlternateNames []string `json:"alternate_names"`
	// optional platform identifiers, matched against item urls
	TemplateID string `json:"template_id"`
	GameID     string `json:"game_id"`
}

type AllowListMetadata struct {
	TotalCount int `json:"total_count"`
	BadgeCount int `json:"badge_count"`
	GameCount  int `json:"game_count"`
}

// AllowList defines which completed items count toward scoring.
// An empty list allows everything: items not yet catalogued should
// not penalize participants.
type AllowList struct {
	Items    []AllowedItem     `json:"allowed_items"`
	Metadata AllowListMetadata `json:"metadata"`
}

func (a AllowList) Enabled() bool {
	return len(a.Items) > 0
}

// Allows reports whether the item counts toward scoring. Matching
// is forgiving: titles are compared on their alphanumeric match key
// against the canonical name and every alternate name, and the item
// url is checked for the entry's platform identifier.
func (a AllowList) Allows(item NormalizedItem) bool {
	if !a.Enabled() {
		return true
	}

	itemKey := textutil.MatchKey(item.NormalizedTitle)
	if itemKey == "" {
		itemKey = textutil.MatchKey(item.OriginalTitle)
	}

	for _, allowed := range a.Items {
		if textutil.MatchKey(allowed.Name) == itemKey {
			return true
		}
		for _, alt := range allowed.AlternateNames {
			if textutil.MatchKey(alt) == itemKey {
				return true
			}
		}
		if allowed.TemplateID != "" &&
			strings.Contains(item.ItemURL, "course_templates/"+allowed.TemplateID) {
			return true
		}
		if allowed.GameID != "" &&
			strings.Contains(item.ItemURL, "games/"+allowed.GameID) {
			return true
		}
	}
	return false
}
