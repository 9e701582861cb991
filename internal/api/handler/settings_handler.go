package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/service"
	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/response"
)

// SettingsHandler settings HTTP handler
type SettingsHandler struct {
	settingsSvc service.SettingsService
}

// NewSettingsHandler creates a SettingsHandler
func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// GetSettings current settings, or the defaults when never saved
// GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	cfg, err := h.settingsSvc.LoadOrDefault(c.Request.Context())
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}

	response.OK(c, cfg)
}

// SaveSettings replace the whole settings document
// PUT /api/v1/settings
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var req dto.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request")
		return
	}

	cfg, err := h.settingsSvc.Save(c.Request.Context(), &req)
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}

	response.OK(c, cfg)
}

// UpdateAmount change the default payment amount
// PUT /api/v1/settings/amount
func (h *SettingsHandler) UpdateAmount(c *gin.Context) {
	var req dto.UpdateAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request")
		return
	}

	cfg, err := h.settingsSvc.UpdateAmount(c.Request.Context(), *req.Amount)
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}

	response.OK(c, cfg)
}

// AddSection append a section label
// POST /api/v1/settings/sections
func (h *SettingsHandler) AddSection(c *gin.Context) {
	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request")
		return
	}

	cfg, err := h.settingsSvc.AddSection(c.Request.Context(), req.Label)
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}

	response.Created(c, cfg)
}

// RemoveSection remove a section label
// DELETE /api/v1/settings/sections?label=
func (h *SettingsHandler) RemoveSection(c *gin.Context) {
	label := c.Query("label")
	if label == "" {
		response.BadRequest(c, 10001, "label is required")
		return
	}

	cfg, err := h.settingsSvc.RemoveSection(c.Request.Context(), label)
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}

	response.OK(c, cfg)
}

func (h *SettingsHandler) handleSettingsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSectionLabelBlank):
		response.BadRequest(c, 17001, "section label is blank")
	case errors.Is(err, service.ErrSectionExists):
		response.Conflict(c, 17002, "section label already exists")
	case errors.Is(err, service.ErrSectionNotFound):
		response.NotFound(c, 17003, "section label not found")
	default:
		response.InternalError(c)
	}
}
