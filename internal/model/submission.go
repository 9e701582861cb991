package model

import "strings"

// SectionSeparator separates the course and section parts of a label
const SectionSeparator = " - "

// UnknownPart placeholder for a missing course or section
const UnknownPart = "Unknown"

// Submission one recorded student payment, stored under the cso_payments key
type Submission struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MiddleName string  `json:"middleName"`
	Course     string  `json:"course"`
	Section    string  `json:"section"`
	Amount     float64 `json:"amount"`
	Timestamp  string  `json:"timestamp"` // ISO-8601, set at creation
}

// Label the combined "Course - Section" label
func (s *Submission) Label() string {
	return SectionLabel(s.Course, s.Section)
}

// SectionLabel joins course and section into a label
func SectionLabel(course, section string) string {
	return course + SectionSeparator + section
}

// SplitSectionLabel splits a label on the first separator. Everything after it
// is the section, so "A - B - C" gives ("A", "B - C"). An empty part becomes
// UnknownPart; a label without separator gives UnknownPart for both.
func SplitSectionLabel(label string) (course, section string) {
	course, section, ok := strings.Cut(label, SectionSeparator)
	if !ok {
		return UnknownPart, UnknownPart
	}
	if course == "" {
		course = UnknownPart
	}
	if section == "" {
		section = UnknownPart
	}
	return course, section
}
