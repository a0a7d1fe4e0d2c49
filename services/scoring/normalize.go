package scoring

import (
	"slices"
	"strings"
	"time"

	"skillscore-backend/lib/scrapers/skillsboost"
	"skillscore-backend/lib/textutil"
)

// Normalize turns a raw scrape into the shape the scoring engine
// consumes. It is a pure function: no I/O, and malformed individual
// items are dropped rather than surfaced as errors.
func Normalize(raw skillsboost.RawProfile) NormalizedProfile {
	out := NormalizedProfile{
		ProfileURL: raw.ProfileURL,
		UserInfo: skillsboost.UserInfo{
			Name:     textutil.CleanText(raw.UserInfo.Name),
			Location: textutil.CleanText(raw.UserInfo.Location),
			JoinDate: textutil.CleanText(raw.UserInfo.JoinDate),
		},
		Badges: normalizeItems(raw.Badges),
		Games:  normalizeItems(raw.Games),
		Stats:  raw.Stats,
	}
	return out
}

func normalizeItems(items []skillsboost.RawItem) []NormalizedItem {
	var out []NormalizedItem
	for _, item := range items {
		normalized, ok := normalizeItem(item)
		if !ok {
			continue
		}
		out = append(out, normalized)
	}

	// completed items first, then normalized title ascending. the
	// ordering is part of the output contract, downstream consumers
	// diff results between runs.
	slices.SortStableFunc(out, func(a, b NormalizedItem) int {
		if a.IsCompleted != b.IsCompleted {
			if a.IsCompleted {
				return -1
			}
			return 1
		}
		return strings.Compare(a.NormalizedTitle, b.NormalizedTitle)
	})
	return out
}

func normalizeItem(item skillsboost.RawItem) (NormalizedItem, bool) {
	if item.Title == "" {
		return NormalizedItem{}, false
	}

	normalizedTitle := textutil.NormalizeTitle(item.Title)

	category := categorizeBadge(normalizedTitle)
	if item.Kind == skillsboost.KindGame {
		category = categorizeGame(normalizedTitle)
	}

	return NormalizedItem{
		Kind:            item.Kind,
		OriginalTitle:   item.Title,
		NormalizedTitle: normalizedTitle,
		Description:     textutil.CleanText(item.Description),
		Category:        category,
		Difficulty:      assessDifficulty(item.Title, item.Description),
		IsCompleted:     item.IsCompleted,
		CompletionDate:  parseCompletionDate(item.EarnedText),
		ImageURL:        item.ImageURL,
		ItemURL:         item.ItemURL,
		Tags:            extractTags(item.Title, item.Description),
	}, true
}

// completion text looks like "Earned Aug 12, 2025 EDT", with the
// verb and timezone suffix varying. layouts are tried on a few
// cleaned-up variants; anything unparseable becomes nil, never an
// error.
var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2006-01-02",
	time.RFC3339,
}

var datePrefixes = []string{"earned", "completed"}

func parseCompletionDate(earnedText string) *time.Time {
	text := strings.TrimSpace(earnedText)
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	for _, prefix := range datePrefixes {
		if strings.HasPrefix(lower, prefix) {
			text = strings.TrimSpace(text[len(prefix):])
			break
		}
	}

	candidates := []string{text}
	// drop a trailing timezone word like EDT or PST
	if idx := strings.LastIndexByte(text, ' '); idx > 0 {
		last := text[idx+1:]
		if len(last) <= 4 && strings.ToUpper(last) == last {
			candidates = append(candidates, strings.TrimSpace(text[:idx]))
		}
	}

	for _, candidate := range candidates {
		for _, layout := range dateLayouts {
			parsed, err := time.Parse(layout, candidate)
			if err == nil {
				return &parsed
			}
		}
	}
	return nil
}
