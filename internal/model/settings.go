package model

// DefaultAmount payment amount used until settings are saved
const DefaultAmount = 10

var defaultSections = []string{
	"BSIT - 11A", "BSIT - 21B", "BSIT - 12A", "BSIT - 22B",
	"BSIT - 31A", "BSIT - 41A",
	"BSCS - 11A", "BSCS - 21A", "BSCS - 31A", "BSCS - 41A",
}

// Settings singleton configuration, stored under the cso_settings key
type Settings struct {
	Sections []string `json:"sections"` // display order
	Amount   float64  `json:"amount"`
}

// DefaultSettings built-in configuration; returns a fresh copy on each call
func DefaultSettings() *Settings {
	sections := make([]string, len(defaultSections))
	copy(sections, defaultSections)
	return &Settings{Sections: sections, Amount: DefaultAmount}
}

// HasSection exact, case-sensitive membership test
func (s *Settings) HasSection(label string) bool {
	for _, sec := range s.Sections {
		if sec == label {
			return true
		}
	}
	return false
}
