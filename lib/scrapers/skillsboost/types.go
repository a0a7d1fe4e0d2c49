package skillsboost

import "time"

type ItemKind string

const (
	KindBadge ItemKind = "badge"
	KindGame  ItemKind = "game"
)

// RawItem is one completion card exactly as it appears in the page
// markup, before any normalization. Missing fields stay as empty
// strings, the page is third-party and fields disappear without
// notice.
type RawItem struct {
	Kind        ItemKind
	Title       string
	Description string
	// the raw "Earned Aug 12, 2025" style text, date parsing is
	// deferred to the normalizer
	EarnedText  string
	IsCompleted bool
	ImageURL    string
	ItemURL     string
}

type UserInfo struct {
	Name     string
	Location string
	JoinDate string
}

// Stats are derived counts over the extracted card lists, they are
// not fetched independently.
type Stats struct {
	TotalBadges     int
	TotalGames      int
	CompletedBadges int
	CompletedGames  int
}

type RawProfile struct {
	ProfileURL string
	UserInfo   UserInfo
	Badges     []RawItem
	Games      []RawItem
	Stats      Stats
	FetchedAt  time.Time
}
