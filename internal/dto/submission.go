package dto

// ── submission DTOs ──

// FilterAllSections section filter value matching every submission
const FilterAllSections = "All"

// CreateSubmissionRequest record a payment
type CreateSubmissionRequest struct {
	SectionLabel string `json:"sectionLabel" form:"sectionLabel" binding:"required"`
	FirstName    string `json:"firstName"    form:"firstName"    binding:"required"`
	LastName     string `json:"lastName"     form:"lastName"     binding:"required"`
	MiddleName   string `json:"middleName"   form:"middleName"`
}

// UpdateSubmissionRequest admin edit; nil fields are left unchanged
type UpdateSubmissionRequest struct {
	FirstName    *string  `json:"firstName"    form:"firstName"`
	LastName     *string  `json:"lastName"     form:"lastName"`
	MiddleName   *string  `json:"middleName"   form:"middleName"`
	SectionLabel *string  `json:"sectionLabel" form:"sectionLabel"`
	Amount       *float64 `json:"amount"       form:"amount"`
	Timestamp    *string  `json:"timestamp"    form:"timestamp"`
}

// SubmissionFilter list/export filter
type SubmissionFilter struct {
	Query   string `form:"q"`
	Section string `form:"section"` // "All" or an exact "Course - Section" label
}

// SectionOrAll section filter with the default applied
func (f *SubmissionFilter) SectionOrAll() string {
	if f == nil || f.Section == "" {
		return FilterAllSections
	}
	return f.Section
}

// SubmissionResponse one submission
type SubmissionResponse struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MiddleName string  `json:"middleName"`
	Course     string  `json:"course"`
	Section    string  `json:"section"`
	Amount     float64 `json:"amount"`
	Timestamp  string  `json:"timestamp"`
	Label      string  `json:"label"`
}
