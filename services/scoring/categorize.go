package scoring

import "strings"

// categories are matched in declaration order against the normalized
// title, first hit wins. synonym phrases are substrings on purpose:
// "google kubernetes engine qwik start" should land in kubernetes
// without an exact-match table per badge.
type categoryPatterns struct {
	category string
	patterns []string
}

var badgePatterns = []categoryPatterns{
	{"cloud-storage", []string{"cloud storage", "google cloud storage", "gcs", "storage"}},
	{"compute-engine", []string{"compute engine", "google compute engine", "gce", "virtual machines"}},
	{"kubernetes", []string{"kubernetes engine", "google kubernetes engine", "gke", "k8s", "kubernetes"}},
	{"big-data", []string{"bigquery", "big query", "dataflow", "data flow", "big data"}},
	{"machine-learning", []string{"machine learning", "ml", "ai platform", "vertex ai", "tensorflow"}},
}

var gamePatterns = []categoryPatterns{
	{"cloud-quest", []string{"cloud quest", "quest", "google cloud quest"}},
	{"arcade-game", []string{"arcade", "cloud arcade", "skill arcade"}},
	{"challenge", []string{"challenge", "coding challenge", "cloud challenge"}},
}

// secondary keyword fallback when no synonym table matches, checked
// in this order
var badgeFallbacks = []struct {
	keyword  string
	category string
}{
	{"security", "security"},
	{"network", "networking"},
	{"data", "data"},
	{"app", "application"},
	{"dev", "development"},
}

func categorizeBadge(normalizedTitle string) string {
	for _, entry := range badgePatterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(normalizedTitle, pattern) {
				return entry.category
			}
		}
	}
	for _, fallback := range badgeFallbacks {
		if strings.Contains(normalizedTitle, fallback.keyword) {
			return fallback.category
		}
	}
	return CategoryGeneral
}

func categorizeGame(normalizedTitle string) string {
	for _, entry := range gamePatterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(normalizedTitle, pattern) {
				return entry.category
			}
		}
	}
	return CategoryGeneral
}

func assessDifficulty(title, description string) string {
	text := strings.ToLower(title + " " + description)

	switch {
	case strings.Contains(text, "advanced") || strings.Contains(text, "expert"):
		return DifficultyAdvanced
	case strings.Contains(text, "intermediate") || strings.Contains(text, "professional"):
		return DifficultyIntermediate
	case strings.Contains(text, "beginner") ||
		strings.Contains(text, "introduction") ||
		strings.Contains(text, "getting started"):
		return DifficultyBeginner
	}
	return DifficultyIntermediate
}

var techTags = []string{
	"gcp", "aws", "azure", "kubernetes", "docker",
	"terraform", "python", "java", "go", "nodejs",
}

var serviceTags = []string{
	"compute", "storage", "database", "networking",
	"security", "ml", "ai", "bigdata",
}

// extractTags scans title+description for whole-word technology and
// service keywords.
func extractTags(title, description string) []string {
	text := strings.ToLower(title + " " + description)
	words := map[string]bool{}
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		words[w] = true
	}

	var tags []string
	for _, tag := range techTags {
		if words[tag] {
			tags = append(tags, tag)
		}
	}
	for _, tag := range serviceTags {
		if words[tag] {
			tags = append(tags, tag)
		}
	}
	return tags
}
