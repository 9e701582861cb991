package dto

// ── settings DTOs ──

// SaveSettingsRequest full replacement of the settings document
type SaveSettingsRequest struct {
	Sections []string `json:"sections" binding:"required"`
	Amount   *float64 `json:"amount"   binding:"required"`
}

// UpdateAmountRequest new default payment amount
type UpdateAmountRequest struct {
	Amount *float64 `json:"amount" form:"amount" binding:"required"`
}

// SectionRequest a single section label
type SectionRequest struct {
	Label string `json:"label" form:"label"`
}

// SettingsResponse current settings
type SettingsResponse struct {
	Sections  []string `json:"sections"`
	Amount    float64  `json:"amount"`
	Persisted bool     `json:"persisted"` // false while the built-in defaults are in use
}
