package service

import (
	"strings"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/model"
)

// FilterSubmissions applies the admin table filters to a snapshot.
//
//   - text: case-insensitive substring of "last first middle" or of the section
//   - section: "All" or exact match on "Course - Section"
//
// Both must match. Input order is kept.
func FilterSubmissions(subs []model.Submission, f *dto.SubmissionFilter) []model.Submission {
	query := ""
	if f != nil {
		query = strings.ToLower(f.Query)
	}
	section := f.SectionOrAll()

	out := make([]model.Submission, 0, len(subs))
	for i := range subs {
		s := &subs[i]
		fullName := strings.ToLower(s.LastName + " " + s.FirstName + " " + s.MiddleName)
		textMatch := strings.Contains(fullName, query) ||
			strings.Contains(strings.ToLower(s.Section), query)
		sectionMatch := section == dto.FilterAllSections || s.Label() == section

		if textMatch && sectionMatch {
			out = append(out, *s)
		}
	}
	return out
}
