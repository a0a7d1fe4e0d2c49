package roster

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// similarity below which two names are not considered the same person
const matchThreshold = 0.92

// Match is a fuzzy-name reconciliation hit.
type Match struct {
	Participant Participant
	Similarity  float64
}

// ReconcileName finds the roster participant whose name best matches
// the scraped profile name. Roster imports and platform profiles are
// maintained by different people, so names drift: initials, swapped
// word order, typos. Jaro-Winkler tolerates all three while still
// rejecting genuinely different names.
func ReconcileName(store Store, profileName string) (Match, bool) {
	target := normalizeName(profileName)
	if target == "" {
		return Match{}, false
	}

	best := Match{}
	for _, p := range store.List() {
		similarity := matchr.JaroWinkler(target, normalizeName(p.Name), true)
		if similarity > best.Similarity {
			best = Match{Participant: p, Similarity: similarity}
		}
	}

	if best.Similarity < matchThreshold {
		return Match{}, false
	}
	return best, true
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
