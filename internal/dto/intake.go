package dto

// ── intake DTOs ──

// IntakeSectionRequest step one of the student form
type IntakeSectionRequest struct {
	SectionLabel string `form:"sectionLabel"`
}

// IntakeDetailsRequest step two of the student form
type IntakeDetailsRequest struct {
	FirstName  string `form:"firstName"`
	LastName   string `form:"lastName"`
	MiddleName string `form:"middleName"`
}

// IntakeView render state of the student form
type IntakeView struct {
	Step         string   `json:"step"` // "select-section" | "input-details"
	SectionLabel string   `json:"sectionLabel"`
	Sections     []string `json:"sections"`
	Amount       float64  `json:"amount"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	MiddleName   string   `json:"middleName"`
	Error        string   `json:"error,omitempty"`
	Notice       string   `json:"notice,omitempty"`
	SettingsErr  bool     `json:"settingsError,omitempty"`
}
