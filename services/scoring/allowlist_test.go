package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"skillscore-backend/lib/scrapers/skillsboost"
)

func allowItem(title, url string) NormalizedItem {
	return NormalizedItem{
		Kind:            skillsboost.KindBadge,
		OriginalTitle:   title,
		NormalizedTitle: title,
		ItemURL:         url,
	}
}

func TestAllowListEmptyAllowsEverything(t *testing.T) {
	allow := AllowList{}
	require.False(t, allow.Enabled())
	require.True(t, allow.Allows(allowItem("anything at all", "")))
}

func TestAllowListMatchKeyIgnoresPunctuationAndCase(t *testing.T) {
	allow := AllowList{Items: []AllowedItem{
		{Name: "Google Kubernetes Engine: Qwik Start"},
	}}

	require.True(t, allow.Allows(allowItem("google kubernetes engine qwik start", "")))
	require.True(t, allow.Allows(allowItem("Google-Kubernetes-Engine Qwik Start!", "")))
	require.False(t, allow.Allows(allowItem("google kubernetes engine", "")))
}

func TestAllowListAlternateNames(t *testing.T) {
	allow := AllowList{Items: []AllowedItem{
		{Name: "Google Kubernetes Engine", AlternateNames: []string{"GKE", "K8s Fundamentals"}},
	}}

	require.True(t, allow.Allows(allowItem("gke", "")))
	require.True(t, allow.Allows(allowItem("k8s fundamentals", "")))
	require.False(t, allow.Allows(allowItem("kubernetes", "")))
}

func TestAllowListPlatformIdentifiers(t *testing.T) {
	allow := AllowList{Items: []AllowedItem{
		{Name: "Renamed Since Launch", TemplateID: "987"},
		{Name: "The Game", GameID: "cloud-hero"},
	}}

	require.True(t, allow.Allows(allowItem(
		"whatever it is called now",
		"https://www.cloudskillsboost.google/course_templates/987")))
	require.True(t, allow.Allows(allowItem(
		"also renamed",
		"https://www.cloudskillsboost.google/games/cloud-hero")))
	require.False(t, allow.Allows(allowItem(
		"no identifiers",
		"https://www.cloudskillsboost.google/course_templates/111")))
}
