package calculator

import (
	"context"
	_ "embed"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"skillscore-backend/lib/scrapers/skillsboost"
	"skillscore-backend/lib/telemetry"
	"skillscore-backend/services/roster"
	"skillscore-backend/services/scoring"
)

//go:embed testdata/profile.html
var profileFixture []byte

// the fixture's completion dates are in august 2025, keep "now" close
// so the recent-completion bonus is exercised
var testNow = time.Date(2025, time.August, 25, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, allow scoring.AllowList) *Service {
	t.Helper()
	t.Cleanup(telemetry.SetupForTesting(t, "calculator"))

	mux := http.NewServeMux()
	mux.HandleFunc("/public_profiles/jane-123", func(w http.ResponseWriter, r *http.Request) {
		w.Write(profileFixture)
	})
	mux.HandleFunc("/public_profiles/hidden-1", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})
	// publicly readable but not on the roster
	mux.HandleFunc("/public_profiles/open-7", func(w http.ResponseWriter, r *http.Request) {
		w.Write(profileFixture)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>homepage</body></html>"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := skillsboost.NewClient(skillsboost.ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	store := roster.NewStore([]roster.Participant{
		{Name: "Jane Doe", Email: "jane@example.com", ProfileID: "jane-123", Batch: "2025-spring"},
		{Name: "Hidden User", ProfileID: "hidden-1"},
	})

	return NewService(ServiceOptions{
		Client: client,
		Roster: store,
		Config: scoring.DefaultConfig(),
		Allow:  allow,
		Now:    func() time.Time { return testNow },
	})
}

func TestCalculatePoints(t *testing.T) {
	service := newTestService(t, scoring.AllowList{})

	result, err := service.CalculatePoints(context.Background(),
		"https://www.cloudskillsboost.google/public_profiles/jane-123")
	require.NoError(t, err)

	require.Equal(t, "Jane Doe", result.Participant.Name)
	require.Equal(t, "Jane Doe", result.Profile.UserInfo.Name)

	// kubernetes badge: 150 * 1.2 * intermediate 1.2 = 216
	require.Equal(t, 216, result.Breakdown.Badges.Points)
	require.Equal(t, 1, result.Breakdown.Badges.Count)
	// Cloud Hero Challenge specific override: 100 * 1.5 = 150
	require.Equal(t, 150, result.Breakdown.Games.Points)
	// category bonus 1 * 200 * 0.1 + time bonus 2 recent * 25
	require.Equal(t, 70, result.Breakdown.Bonuses.Points)
	require.Equal(t, 436, result.TotalPoints)

	require.Equal(t, testNow, result.CalculatedAt)
}

func TestCalculatePointsWithAllowList(t *testing.T) {
	allow := scoring.AllowList{
		Items: []scoring.AllowedItem{
			{Name: "Kubernetes Engine Qwik Start"},
		},
		Metadata: scoring.AllowListMetadata{TotalCount: 2, BadgeCount: 1, GameCount: 1},
	}
	service := newTestService(t, allow)

	result, err := service.CalculatePoints(context.Background(),
		"https://www.cloudskillsboost.google/public_profiles/jane-123")
	require.NoError(t, err)

	require.Equal(t, 1, result.Breakdown.Badges.Count)
	require.Zero(t, result.Breakdown.Games.Count)
	require.Len(t, result.FilteredOut, 1)
	require.Equal(t, "Cloud Hero Challenge", result.FilteredOut[0].Title)
	require.Equal(t, 100, result.Progress.Badges.Percentage)
	require.Equal(t, 50, result.Progress.Overall.Percentage)
}

func TestCalculatePointsNotEnrolled(t *testing.T) {
	service := newTestService(t, scoring.AllowList{})

	_, err := service.CalculatePoints(context.Background(),
		"https://www.cloudskillsboost.google/public_profiles/stranger-9")
	require.ErrorIs(t, err, ErrNotEnrolled)
}

func TestCalculatePointsInvalidURL(t *testing.T) {
	service := newTestService(t, scoring.AllowList{})

	_, err := service.CalculatePoints(context.Background(), "https://example.com/not-a-profile")
	require.ErrorIs(t, err, skillsboost.ErrInvalidURL)
}

func TestCalculatePointsPrivateProfile(t *testing.T) {
	service := newTestService(t, scoring.AllowList{})

	_, err := service.CalculatePoints(context.Background(),
		"https://www.cloudskillsboost.google/public_profiles/hidden-1")
	require.ErrorIs(t, err, skillsboost.ErrPrivateProfile)
}

func TestCheckProfile(t *testing.T) {
	service := newTestService(t, scoring.AllowList{})

	accessible, err := service.CheckProfile(context.Background(),
		"https://www.cloudskillsboost.google/public_profiles/jane-123")
	require.NoError(t, err)
	require.Equal(t, StatusAccessible, accessible.Status)

	private, err := service.CheckProfile(context.Background(),
		"https://www.cloudskillsboost.google/public_profiles/hidden-1")
	require.NoError(t, err)
	require.Equal(t, StatusPrivate, private.Status)
	require.NotEmpty(t, private.Detail)

	// the probe has no enrollment gate
	unenrolled, err := service.CheckProfile(context.Background(),
		"https://www.cloudskillsboost.google/public_profiles/open-7")
	require.NoError(t, err)
	require.Equal(t, StatusAccessible, unenrolled.Status)

	_, err = service.CheckProfile(context.Background(), "not a profile url")
	require.ErrorIs(t, err, skillsboost.ErrInvalidURL)
}
