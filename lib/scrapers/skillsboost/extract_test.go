package skillsboost

import (
	"context"
	"testing"

	"skillscore-backend/lib/telemetry"

	_ "embed"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/profile.html
var profileFixture []byte

//go:embed testdata/private.html
var privateFixture []byte

func TestExtract(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/skillsboost")
	defer cleanup()

	profile, err := Extract(context.Background(), profileFixture)
	require.NoError(t, err)

	require.Equal(t, UserInfo{
		Name:     "Jane Doe",
		Location: "Jakarta, Indonesia",
		JoinDate: "Member since 2023",
	}, profile.UserInfo)

	// the fixture has 4 cards: 2 titled badges, 1 game (identified
	// only through its dialog link) and 1 untitled card that must be
	// dropped silently
	require.Len(t, profile.Badges, 2)
	require.Len(t, profile.Games, 1)

	diff := cmp.Diff(RawItem{
		Kind:        KindBadge,
		Title:       "Kubernetes Engine: Qwik Start",
		EarnedText:  "Earned Aug 12, 2025 EDT",
		IsCompleted: true,
		ImageURL:    "https://cdn.qwiklabs.com/badges/gke.png",
		ItemURL:     "https://www.cloudskillsboost.google/course_templates/1234",
	}, profile.Badges[0])
	require.Empty(t, diff)

	storage := profile.Badges[1]
	require.False(t, storage.IsCompleted)

	game := profile.Games[0]
	require.Equal(t, KindGame, game.Kind)
	require.Equal(t, "Cloud Hero Challenge", game.Title)
	require.True(t, game.IsCompleted)
	require.Equal(t, "https://www.cloudskillsboost.google/games/cloud-hero", game.ItemURL)
	require.Equal(t, "Race through cloud challenges to earn points.", game.Description)

	require.Equal(t, Stats{
		TotalBadges:     2,
		TotalGames:      1,
		CompletedBadges: 1,
		CompletedGames:  1,
	}, profile.Stats)
}

func TestExtractPrivateProfile(t *testing.T) {
	_, err := Extract(context.Background(), privateFixture)
	require.ErrorIs(t, err, ErrPrivateProfile)
}

func TestExtractPrivatePhraseInBody(t *testing.T) {
	markup := []byte(`<html><head><title>Profile</title></head>
		<body><p>Sorry, Access Denied to this resource.</p></body></html>`)
	_, err := Extract(context.Background(), markup)
	require.ErrorIs(t, err, ErrPrivateProfile)
}

func TestExtractPrivateTitle(t *testing.T) {
	markup := []byte(`<html><head><title>404 Not Found</title></head><body></body></html>`)
	_, err := Extract(context.Background(), markup)
	require.ErrorIs(t, err, ErrPrivateProfile)
}

func TestExtractEmptyButPublicProfile(t *testing.T) {
	// a brand-new profile with a name and zero badges is NOT private
	markup := []byte(`<html><head><title>New User</title></head>
		<body><h1 class="profile-name">New User</h1></body></html>`)
	profile, err := Extract(context.Background(), markup)
	require.NoError(t, err)
	require.Equal(t, "New User", profile.UserInfo.Name)
	require.Empty(t, profile.Badges)
	require.Empty(t, profile.Games)
}

func TestExtractDegradesOnMissingFields(t *testing.T) {
	markup := []byte(`<html><body>
		<div class="profile-badge">
			<span class="ql-title-medium">Lonely Badge</span>
		</div>
	</body></html>`)
	profile, err := Extract(context.Background(), markup)
	require.NoError(t, err)
	require.Len(t, profile.Badges, 1)

	badge := profile.Badges[0]
	require.Equal(t, "Lonely Badge", badge.Title)
	require.False(t, badge.IsCompleted)
	require.Empty(t, badge.ItemURL)
	require.Empty(t, badge.ImageURL)
}
