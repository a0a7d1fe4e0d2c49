package roster

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"skillscore-backend/lib/profileurl"
)

// ParseCSV reads participants from a spreadsheet export. The first
// row is a header; column order is whatever the spreadsheet owner
// chose, so columns are resolved by name. Rows without a usable
// profile url are returned separately instead of failing the import,
// partial rosters are normal during enrollment.
func ParseCSV(r io.Reader) (participants []Participant, skipped []string, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := map[string]int{}
	for i, name := range header {
		columns[normalizeHeader(name)] = i
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row: %w", err)
		}

		p := Participant{
			Name:           field(record, columns, "name"),
			Email:          field(record, columns, "email"),
			ProfileURL:     field(record, columns, "profile_url", "profile", "url"),
			EnrollmentDate: field(record, columns, "enrollment_date", "enrolled"),
			Batch:          field(record, columns, "batch", "cohort"),
		}

		id, ok := profileurl.ExtractID(p.ProfileURL)
		if !ok {
			skipped = append(skipped, p.Name)
			continue
		}
		p.ProfileID = id
		p.ProfileURL = profileurl.FromID(id)
		p.Status = "active"
		participants = append(participants, p)
	}

	return participants, skipped, nil
}

// Save writes the roster file. The output is plain json, which every
// json5 parser also accepts.
func Save(path string, participants []Participant) error {
	out, err := json.MarshalIndent(rosterOutput{Participants: participants}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(out, '\n'), 0644)
}

type rosterOutput struct {
	Participants []Participant `json:"participants"`
}

func normalizeHeader(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(name)), " ", "_")
}

func field(record []string, columns map[string]int, names ...string) string {
	for _, name := range names {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			continue
		}
		if v := strings.TrimSpace(record[idx]); v != "" {
			return v
		}
	}
	return ""
}
