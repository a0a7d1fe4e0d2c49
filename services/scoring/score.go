package scoring

import (
	"math"
	"time"

	"skillscore-backend/lib/scrapers/skillsboost"
)

type ItemScore struct {
	Title           string  `json:"title"`
	NormalizedTitle string  `json:"normalizedTitle"`
	Category        string  `json:"category"`
	Difficulty      string  `json:"difficulty"`
	Points          int     `json:"points"`
	BasePoints      int     `json:"basePoints"`
	Multiplier      float64 `json:"multiplier"`
}

type KindBreakdown struct {
	Points int         `json:"points"`
	Count  int         `json:"count"`
	Items  []ItemScore `json:"items"`
}

type BonusItem struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

type BonusBreakdown struct {
	Points int         `json:"points"`
	Items  []BonusItem `json:"items"`
}

type Breakdown struct {
	Badges  KindBreakdown  `json:"badges"`
	Games   KindBreakdown  `json:"games"`
	Bonuses BonusBreakdown `json:"bonuses"`
}

type FilteredItem struct {
	Title  string               `json:"title"`
	Kind   skillsboost.ItemKind `json:"kind"`
	Reason string               `json:"reason"`
}

type ProgressCounts struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type Progress struct {
	Badges  ProgressCounts `json:"badges"`
	Games   ProgressCounts `json:"games"`
	Overall ProgressCounts `json:"overall"`
}

// DetailedItem is retained for downstream date-range filtering by
// external consumers.
type DetailedItem struct {
	OriginalTitle   string     `json:"originalTitle"`
	NormalizedTitle string     `json:"normalizedTitle"`
	IsCompleted     bool       `json:"isCompleted"`
	CompletionDate  *time.Time `json:"completionDate"`
	ItemURL         string     `json:"itemUrl"`
}

type Result struct {
	TotalPoints     int              `json:"totalPoints"`
	Breakdown       Breakdown        `json:"breakdown"`
	CompletedBadges []NormalizedItem `json:"completedBadges"`
	CompletedGames  []NormalizedItem `json:"completedGames"`
	Progress        Progress         `json:"progress"`
	FilteredOut     []FilteredItem   `json:"filteredOut"`
	DetailedBadges  []DetailedItem   `json:"detailedBadges"`
	DetailedGames   []DetailedItem   `json:"detailedGames"`
	CalculatedAt    time.Time        `json:"calculatedAt"`
}

const filteredOutReason = "not in allowed item list"

// Score applies the rubric to a normalized profile. It is pure and
// deterministic given identical inputs; `now` is the evaluation time
// for the recent-completion bonus.
func Score(profile NormalizedProfile, cfg Config, allow AllowList, now time.Time) Result {
	result := Result{
		CalculatedAt:   now,
		DetailedBadges: detailItems(profile.Badges),
		DetailedGames:  detailItems(profile.Games),
	}

	scoreKind(&result.Breakdown.Badges, &result.CompletedBadges, &result.FilteredOut,
		profile.Badges, cfg, allow)
	scoreKind(&result.Breakdown.Games, &result.CompletedGames, &result.FilteredOut,
		profile.Games, cfg, allow)

	result.Breakdown.Bonuses = scoreBonuses(profile, cfg, result.Breakdown, now)
	result.Progress = progressFor(result.Breakdown, allow.Metadata)

	result.TotalPoints = result.Breakdown.Badges.Points +
		result.Breakdown.Games.Points +
		result.Breakdown.Bonuses.Points
	return result
}

func scoreKind(
	breakdown *KindBreakdown,
	completed *[]NormalizedItem,
	filteredOut *[]FilteredItem,
	items []NormalizedItem,
	cfg Config,
	allow AllowList,
) {
	for _, item := range items {
		if !item.IsCompleted {
			continue
		}
		if !allow.Allows(item) {
			*filteredOut = append(*filteredOut, FilteredItem{
				Title:  item.OriginalTitle,
				Kind:   item.Kind,
				Reason: filteredOutReason,
			})
			continue
		}

		points := itemPoints(item, cfg)
		breakdown.Items = append(breakdown.Items, ItemScore{
			Title:           item.OriginalTitle,
			NormalizedTitle: item.NormalizedTitle,
			Category:        item.Category,
			Difficulty:      item.Difficulty,
			Points:          points,
			BasePoints:      baseRule(item, cfg).Points,
			Multiplier:      baseRule(item, cfg).Multiplier * difficultyMultiplier(item, cfg),
		})
		breakdown.Points += points
		breakdown.Count++
		*completed = append(*completed, item)
	}
}

// itemPoints resolves points in priority order: a specific-item
// override wins outright, otherwise base points are scaled by the
// category and difficulty multipliers. The result is clamped to the
// per-kind cap.
func itemPoints(item NormalizedItem, cfg Config) int {
	maxPoints := cfg.Limits.MaxBadgePoints
	if item.Kind == skillsboost.KindGame {
		maxPoints = cfg.Limits.MaxGamePoints
	}

	if rule, ok := specificRule(item, cfg); ok {
		return clamp(round(float64(rule.Points)*orOne(rule.Multiplier)), maxPoints)
	}

	rule := baseRule(item, cfg)
	points := round(float64(rule.Points) * orOne(rule.Multiplier) * difficultyMultiplier(item, cfg))
	return clamp(points, maxPoints)
}

func specificRule(item NormalizedItem, cfg Config) (ItemRule, bool) {
	table := cfg.SpecificItems.Badges
	if item.Kind == skillsboost.KindGame {
		table = cfg.SpecificItems.Games
	}
	if rule, ok := table[item.OriginalTitle]; ok {
		return rule, true
	}
	if rule, ok := table[item.NormalizedTitle]; ok {
		return rule, true
	}
	return ItemRule{}, false
}

func baseRule(item NormalizedItem, cfg Config) ItemRule {
	table := cfg.Badges
	if item.Kind == skillsboost.KindGame {
		table = cfg.Games
	}
	if rule, ok := table[item.Category]; ok {
		return rule
	}
	return table[CategoryGeneral]
}

func difficultyMultiplier(item NormalizedItem, cfg Config) float64 {
	if m, ok := cfg.Difficulty[item.Difficulty]; ok {
		return m
	}
	return 1.0
}

func scoreBonuses(profile NormalizedProfile, cfg Config, breakdown Breakdown, now time.Time) BonusBreakdown {
	out := BonusBreakdown{}
	total := 0

	if streak := streakBonus(breakdown, cfg.Bonuses.CompletionStreak); streak > 0 {
		out.Items = append(out.Items, BonusItem{
			Type:        "completion_streak",
			Description: "Completion streak bonus",
			Points:      streak,
		})
		total += streak
	}

	if category := categoryBonus(profile, cfg.Bonuses.CategoryCompletion); category > 0 {
		out.Items = append(out.Items, BonusItem{
			Type:        "category_completion",
			Description: "Category completion bonus",
			Points:      category,
		})
		total += category
	}

	if recent := timeBonus(profile, cfg.Bonuses.TimeBonus, now); recent > 0 {
		out.Items = append(out.Items, BonusItem{
			Type:        "time_bonus",
			Description: "Recent completion bonus",
			Points:      recent,
		})
		total += recent
	}

	out.Points = clamp(total, cfg.Limits.MaxBonusPoints)
	return out
}

// tiers are mutually exclusive, only the highest qualifying one pays
func streakBonus(breakdown Breakdown, cfg StreakConfig) int {
	totalCompletions := breakdown.Badges.Count + breakdown.Games.Count
	switch {
	case totalCompletions >= 20:
		return cfg.Tier20
	case totalCompletions >= 10:
		return cfg.Tier10
	case totalCompletions >= 5:
		return cfg.Tier5
	}
	return 0
}

// categoryBonus pays 10% of the configured bonus per distinct
// completed badge category. Despite the config key's name this is
// partial credit per category touched, not a reward for finishing
// every item in a category; the behavior is kept as the rubric
// authors shipped it.
func categoryBonus(profile NormalizedProfile, cfg CategoryBonusConfig) int {
	categories := map[string]bool{}
	for _, badge := range profile.Badges {
		if badge.IsCompleted {
			categories[badge.Category] = true
		}
	}
	return round(float64(len(categories)) * float64(cfg.CategoryBonus) * 0.1)
}

func timeBonus(profile NormalizedProfile, cfg TimeBonusConfig, now time.Time) int {
	if cfg.RecentCompletion == 0 {
		return 0
	}
	cutoff := now.AddDate(0, 0, -30)

	recent := 0
	for _, items := range [][]NormalizedItem{profile.Badges, profile.Games} {
		for _, item := range items {
			if item.IsCompleted && item.CompletionDate != nil &&
				!item.CompletionDate.Before(cutoff) {
				recent++
			}
		}
	}
	return recent * cfg.RecentCompletion
}

// progress totals come from allow-list metadata, not the raw platform
// counts: progress reflects only program-relevant items.
func progressFor(breakdown Breakdown, meta AllowListMetadata) Progress {
	return Progress{
		Badges:  progressCounts(breakdown.Badges.Count, meta.BadgeCount),
		Games:   progressCounts(breakdown.Games.Count, meta.GameCount),
		Overall: progressCounts(breakdown.Badges.Count+breakdown.Games.Count, meta.BadgeCount+meta.GameCount),
	}
}

func progressCounts(completed, total int) ProgressCounts {
	out := ProgressCounts{Completed: completed, Total: total}
	if total > 0 {
		out.Percentage = round(float64(completed) / float64(total) * 100)
	}
	return out
}

func detailItems(items []NormalizedItem) []DetailedItem {
	out := make([]DetailedItem, len(items))
	for i, item := range items {
		out[i] = DetailedItem{
			OriginalTitle:   item.OriginalTitle,
			NormalizedTitle: item.NormalizedTitle,
			IsCompleted:     item.IsCompleted,
			CompletionDate:  item.CompletionDate,
			ItemURL:         item.ItemURL,
		}
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}

func orOne(multiplier float64) float64 {
	if multiplier == 0 {
		return 1.0
	}
	return multiplier
}
