package model

import "testing"

func TestSplitSectionLabel(t *testing.T) {
	cases := []struct {
		label   string
		course  string
		section string
	}{
		{"BSIT - 1A", "BSIT", "1A"},
		{"BSCS - 21A", "BSCS", "21A"},
		{"BSIT-1A", UnknownPart, UnknownPart},
		{"", UnknownPart, UnknownPart},
		{"ABM - STEM - 2", "ABM", "STEM - 2"},
		{" - 1A", UnknownPart, "1A"},
		{"BSIT - ", "BSIT", UnknownPart},
	}

	for _, tc := range cases {
		course, section := SplitSectionLabel(tc.label)
		if course != tc.course || section != tc.section {
			t.Errorf("SplitSectionLabel(%q) = (%q, %q), want (%q, %q)",
				tc.label, course, section, tc.course, tc.section)
		}
	}
}

func TestSubmission_Label(t *testing.T) {
	s := Submission{Course: "BSIT", Section: "1A"}
	if got := s.Label(); got != "BSIT - 1A" {
		t.Errorf("expected BSIT - 1A, got %s", got)
	}

	course, section := SplitSectionLabel(s.Label())
	if course != s.Course || section != s.Section {
		t.Errorf("label did not split back into its parts: %s / %s", course, section)
	}
}

func TestDefaultSettings_IsFreshCopy(t *testing.T) {
	a := DefaultSettings()
	a.Sections[0] = "changed"
	a.Amount = 99

	b := DefaultSettings()
	if b.Sections[0] != "BSIT - 11A" {
		t.Errorf("default sections were mutated: %v", b.Sections)
	}
	if b.Amount != DefaultAmount {
		t.Errorf("expected default amount %d, got %v", DefaultAmount, b.Amount)
	}
	if len(b.Sections) != 10 {
		t.Errorf("expected 10 default sections, got %d", len(b.Sections))
	}
}

func TestSettings_HasSection_CaseSensitive(t *testing.T) {
	s := &Settings{Sections: []string{"BSIT - 1A"}}
	if !s.HasSection("BSIT - 1A") {
		t.Error("expected exact label to be present")
	}
	if s.HasSection("bsit - 1a") {
		t.Error("membership must be case-sensitive")
	}
}
