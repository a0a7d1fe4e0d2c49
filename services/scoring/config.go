package scoring

import (
	"skillscore-backend/lib/configutil"
)

// ItemRule is the per-category base points and multiplier.
type ItemRule struct {
	Points     int     `json:"points"`
	Multiplier float64 `json:"multiplier"`
}

type StreakConfig struct {
	Tier5  int `json:"tier_5"`
	Tier10 int `json:"tier_10"`
	Tier20 int `json:"tier_20"`
}

type CategoryBonusConfig struct {
	CategoryBonus int `json:"category_bonus"`
}

type TimeBonusConfig struct {
	// points per completion within the last 30 days
	RecentCompletion int `json:"recent_completion"`
}

type BonusConfig struct {
	CompletionStreak   StreakConfig        `json:"completion_streak"`
	CategoryCompletion CategoryBonusConfig `json:"category_completion"`
	TimeBonus          TimeBonusConfig     `json:"time_bonus"`
}

type SpecificItemConfig struct {
	Badges map[string]ItemRule `json:"badges"`
	Games  map[string]ItemRule `json:"games"`
}

type Limits struct {
	MaxBadgePoints int `json:"max_badge_points"`
	MaxGamePoints  int `json:"max_game_points"`
	MaxBonusPoints int `json:"max_bonus_points"`
}

// Config is the scoring rubric. It is loaded once per scoring run
// and treated as immutable input, the engine never mutates it.
type Config struct {
	Badges        map[string]ItemRule `json:"badges"`
	Games         map[string]ItemRule `json:"games"`
	Difficulty    map[string]float64  `json:"difficulty"`
	Bonuses       BonusConfig         `json:"bonuses"`
	SpecificItems SpecificItemConfig  `json:"specific_items"`
	Limits        Limits              `json:"limits"`
}

// DefaultConfig is the rubric used when no scoring config file is
// present.
func DefaultConfig() Config {
	return Config{
		Badges: map[string]ItemRule{
			"cloud-storage":    {Points: 100, Multiplier: 1.0},
			"compute-engine":   {Points: 120, Multiplier: 1.0},
			"kubernetes":       {Points: 150, Multiplier: 1.2},
			"big-data":         {Points: 140, Multiplier: 1.1},
			"machine-learning": {Points: 160, Multiplier: 1.3},
			"security":         {Points: 130, Multiplier: 1.1},
			"networking":       {Points: 110, Multiplier: 1.0},
			"data":             {Points: 125, Multiplier: 1.0},
			"application":      {Points: 115, Multiplier: 1.0},
			"development":      {Points: 105, Multiplier: 1.0},
			"general":          {Points: 100, Multiplier: 1.0},
		},
		Games: map[string]ItemRule{
			"cloud-quest": {Points: 50, Multiplier: 1.0},
			"arcade-game": {Points: 30, Multiplier: 0.8},
			"challenge":   {Points: 80, Multiplier: 1.2},
			"general":     {Points: 40, Multiplier: 1.0},
		},
		Difficulty: map[string]float64{
			DifficultyBeginner:     1.0,
			DifficultyIntermediate: 1.2,
			DifficultyAdvanced:     1.5,
		},
		Bonuses: BonusConfig{
			CompletionStreak: StreakConfig{
				Tier5:  50,
				Tier10: 150,
				Tier20: 400,
			},
			CategoryCompletion: CategoryBonusConfig{
				CategoryBonus: 200,
			},
			TimeBonus: TimeBonusConfig{
				RecentCompletion: 25,
			},
		},
		SpecificItems: SpecificItemConfig{
			Badges: map[string]ItemRule{
				"Google Cloud Digital Leader":  {Points: 200, Multiplier: 1.5},
				"Google Cloud Architect":       {Points: 300, Multiplier: 2.0},
				"Professional Cloud Developer": {Points: 250, Multiplier: 1.8},
			},
			Games: map[string]ItemRule{
				"Cloud Hero Challenge": {Points: 100, Multiplier: 1.5},
			},
		},
		Limits: Limits{
			MaxBadgePoints: 500,
			MaxGamePoints:  200,
			MaxBonusPoints: 1000,
		},
	}
}

// LoadConfig reads the rubric from a json5 file, falling back to
// DefaultConfig when the file does not exist.
func LoadConfig(path string) (Config, error) {
	return configutil.ReadConfigDefault(path, DefaultConfig())
}

// LoadAllowList reads the allow-list from a json5 file. A missing
// file yields an empty allow-list, which allows everything.
func LoadAllowList(path string) (AllowList, error) {
	return configutil.ReadConfigDefault(path, AllowList{})
}
