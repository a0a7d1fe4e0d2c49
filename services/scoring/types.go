package scoring

import (
	"time"

	"skillscore-backend/lib/scrapers/skillsboost"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// CategoryGeneral is the fallback when no keyword pattern matches.
const CategoryGeneral = "general"

// NormalizedItem is a completion item after text cleanup and
// heuristic classification. NormalizedTitle is a pure function of
// OriginalTitle; Category and Difficulty are keyword guesses and may
// be wrong for novel titles, which is accepted.
type NormalizedItem struct {
	Kind            skillsboost.ItemKind
	OriginalTitle   string
	NormalizedTitle string
	Description     string
	Category        string
	Difficulty      string
	IsCompleted     bool
	// nil when the earned text had no parseable date
	CompletionDate *time.Time
	ImageURL       string
	ItemURL        string
	Tags           []string
}

type NormalizedProfile struct {
	ProfileURL string
	UserInfo   skillsboost.UserInfo
	Badges     []NormalizedItem
	Games      []NormalizedItem
	Stats      skillsboost.Stats
}
