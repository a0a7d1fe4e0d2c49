package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"skillscore-backend/lib/scrapers/skillsboost"
)

func TestNormalizeDropsUntitledAndSorts(t *testing.T) {
	raw := skillsboost.RawProfile{
		ProfileURL: "https://www.cloudskillsboost.google/public_profiles/abc",
		UserInfo:   skillsboost.UserInfo{Name: "  Jane   Doe  "},
		Badges: []skillsboost.RawItem{
			{Kind: skillsboost.KindBadge, Title: "Zeta Basics", IsCompleted: false},
			{Kind: skillsboost.KindBadge, Title: ""},
			{Kind: skillsboost.KindBadge, Title: "Beta Skills", IsCompleted: true},
			{Kind: skillsboost.KindBadge, Title: "Alpha Skills", IsCompleted: true},
		},
	}

	profile := Normalize(raw)

	require.Equal(t, "Jane Doe", profile.UserInfo.Name)
	require.Len(t, profile.Badges, 3)
	// completed first, then alphabetical by normalized title
	require.Equal(t, "alpha skills", profile.Badges[0].NormalizedTitle)
	require.Equal(t, "beta skills", profile.Badges[1].NormalizedTitle)
	require.Equal(t, "zeta basics", profile.Badges[2].NormalizedTitle)
	require.True(t, profile.Badges[0].IsCompleted)
	require.False(t, profile.Badges[2].IsCompleted)
}

func TestNormalizeTitleCaseAndWhitespaceInsensitive(t *testing.T) {
	a := Normalize(skillsboost.RawProfile{Badges: []skillsboost.RawItem{
		{Kind: skillsboost.KindBadge, Title: "  Google   Kubernetes ENGINE  "},
	}})
	b := Normalize(skillsboost.RawProfile{Badges: []skillsboost.RawItem{
		{Kind: skillsboost.KindBadge, Title: "google kubernetes engine"},
	}})

	require.Equal(t, a.Badges[0].NormalizedTitle, b.Badges[0].NormalizedTitle)
	require.Equal(t, a.Badges[0].Category, b.Badges[0].Category)
}

func TestNormalizeCategorizesAndAssessesDifficulty(t *testing.T) {
	for _, tt := range []struct {
		title      string
		kind       skillsboost.ItemKind
		category   string
		difficulty string
	}{
		{"Google Kubernetes Engine: Qwik Start", skillsboost.KindBadge, "kubernetes", DifficultyIntermediate},
		{"Advanced BigQuery Analytics", skillsboost.KindBadge, "big-data", DifficultyAdvanced},
		{"Getting Started with Cloud Storage", skillsboost.KindBadge, "cloud-storage", DifficultyBeginner},
		{"Network Performance Tuning", skillsboost.KindBadge, "networking", DifficultyIntermediate},
		{"Something Entirely Else", skillsboost.KindBadge, CategoryGeneral, DifficultyIntermediate},
		{"Cloud Hero Challenge", skillsboost.KindGame, "challenge", DifficultyIntermediate},
		{"The Arcade: Level 1", skillsboost.KindGame, "arcade-game", DifficultyIntermediate},
	} {
		t.Run(tt.title, func(t *testing.T) {
			profile := Normalize(skillsboost.RawProfile{Badges: []skillsboost.RawItem{
				{Kind: tt.kind, Title: tt.title},
			}})
			require.Equal(t, tt.category, profile.Badges[0].Category)
			require.Equal(t, tt.difficulty, profile.Badges[0].Difficulty)
		})
	}
}

func TestCategorizeGameFallsBackToGeneral(t *testing.T) {
	require.Equal(t, CategoryGeneral, categorizeGame("totally unrelated title"))
}

func TestParseCompletionDate(t *testing.T) {
	for _, tt := range []struct {
		text string
		want *time.Time
	}{
		{"Earned Aug 12, 2025 EDT", datePtr(2025, time.August, 12)},
		{"Completed January 3, 2024", datePtr(2024, time.January, 3)},
		{"2024-06-01", datePtr(2024, time.June, 1)},
		{"Earned recently", nil},
		{"", nil},
	} {
		t.Run(tt.text, func(t *testing.T) {
			got := parseCompletionDate(tt.text)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.True(t, got.Equal(*tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestExtractTagsWholeWordsOnly(t *testing.T) {
	// "google" must not produce a "go" tag and "html" must not
	// produce "ml"
	tags := extractTags("Google Cloud HTML Basics", "")
	require.NotContains(t, tags, "go")
	require.NotContains(t, tags, "ml")

	tags = extractTags("Intro to Go and ML on GCP", "uses Kubernetes and Docker")
	require.Contains(t, tags, "go")
	require.Contains(t, tags, "ml")
	require.Contains(t, tags, "gcp")
	require.Contains(t, tags, "kubernetes")
	require.Contains(t, tags, "docker")
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
