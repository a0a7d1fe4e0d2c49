package profileurl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractID(t *testing.T) {
	testCases := []struct {
		input string
		id    string
		ok    bool
	}{
		{
			input: "https://www.cloudskillsboost.google/public_profiles/abc123-def_456",
			id:    "abc123-def_456",
			ok:    true,
		},
		{
			input: "http://cloudskillsboost.google/public_profiles/xyz",
			id:    "xyz",
			ok:    true,
		},
		{
			input: "cloudskillsboost.google/public_profiles/xyz",
			id:    "xyz",
			ok:    true,
		},
		{
			input: "HTTPS://WWW.CLOUDSKILLSBOOST.GOOGLE/PUBLIC_PROFILES/AbC",
			id:    "AbC",
			ok:    true,
		},
		{
			input: "https://www.cloudskillsboost.google/games/123",
			ok:    false,
		},
		{
			input: "https://example.com/public_profiles/abc",
			ok:    false,
		},
		{
			input: "",
			ok:    false,
		},
	}

	for _, test := range testCases {
		id, ok := ExtractID(test.input)
		require.Equal(t, test.ok, ok, "input: %q", test.input)
		require.Equal(t, test.id, id, "input: %q", test.input)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"cloudskillsboost.google/public_profiles/abc-123",
		"http://www.cloudskillsboost.google/public_profiles/Zz_9",
		"https://www.cloudskillsboost.google/public_profiles/abc-123?tab=badges",
	}
	for _, input := range inputs {
		once, ok := Normalize(input)
		require.True(t, ok)

		twice, ok := Normalize(once)
		require.True(t, ok)
		require.Equal(t, once, twice)
	}
}

func TestFromID(t *testing.T) {
	require.Equal(
		t,
		"https://www.cloudskillsboost.google/public_profiles/abc",
		FromID("abc"),
	)
}
