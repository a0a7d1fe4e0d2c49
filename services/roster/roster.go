package roster

import (
	"fmt"

	"skillscore-backend/lib/configutil"
	"skillscore-backend/lib/profileurl"
)

// Participant is one enrolled learner. ProfileID is the canonical
// enrollment key; everything else is display metadata.
type Participant struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfileID      string `json:"profile_id"`
	ProfileURL     string `json:"profile_url"`
	EnrollmentDate string `json:"enrollment_date"`
	Batch          string `json:"batch"`
	Status         string `json:"status"`
}

// Store is the read surface the calculator needs. Enrollment is
// checked per request against whatever backs the store.
type Store interface {
	GetByProfileID(profileID string) (Participant, bool)
	List() []Participant
	IsEnrolled(profileURL string) bool
}

type fileStore struct {
	participants []Participant
	byProfileID  map[string]Participant
}

// entries are decoded loosely because older roster files list bare
// profile-url strings instead of participant objects.
type rosterFile struct {
	Participants []any `json:"participants"`
}

// Load reads the roster from a json5 file. A missing file yields an
// empty store: with no roster everyone is turned away, which is the
// safe default for a scoring program.
func Load(path string) (Store, error) {
	file, err := configutil.ReadConfigDefault(path, rosterFile{})
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return NewStore(decodeEntries(file.Participants)), nil
}

// NewStore builds an in-memory store. Entries without a resolvable
// profile id are skipped, a canonical ProfileURL is filled in when
// missing, and Status defaults to "active".
func NewStore(participants []Participant) Store {
	store := &fileStore{byProfileID: map[string]Participant{}}
	for _, p := range participants {
		if p.ProfileID == "" && p.ProfileURL != "" {
			id, ok := profileurl.ExtractID(p.ProfileURL)
			if !ok {
				continue
			}
			p.ProfileID = id
		}
		if p.ProfileID == "" {
			continue
		}
		if p.ProfileURL == "" {
			p.ProfileURL = profileurl.FromID(p.ProfileID)
		}
		if p.Status == "" {
			p.Status = "active"
		}

		store.participants = append(store.participants, p)
		store.byProfileID[p.ProfileID] = p
	}
	return store
}

func decodeEntries(entries []any) []Participant {
	var out []Participant
	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			out = append(out, Participant{ProfileURL: v})
		case map[string]any:
			out = append(out, Participant{
				Name:           stringField(v, "name"),
				Email:          stringField(v, "email"),
				ProfileID:      stringField(v, "profile_id"),
				ProfileURL:     stringField(v, "profile_url"),
				EnrollmentDate: stringField(v, "enrollment_date"),
				Batch:          stringField(v, "batch"),
				Status:         stringField(v, "status"),
			})
		}
	}
	return out
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func (s *fileStore) GetByProfileID(profileID string) (Participant, bool) {
	p, ok := s.byProfileID[profileID]
	return p, ok
}

func (s *fileStore) List() []Participant {
	out := make([]Participant, len(s.participants))
	copy(out, s.participants)
	return out
}

func (s *fileStore) IsEnrolled(profileURL string) bool {
	id, ok := profileurl.ExtractID(profileURL)
	if !ok {
		return false
	}
	_, ok = s.byProfileID[id]
	return ok
}
