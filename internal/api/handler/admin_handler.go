package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/service"
)

// Flash messages of the dashboard, selected by the flash query parameter
const (
	FlashAmountUpdated = "amount"

	MsgAmountUpdated = "Amount updated successfully!"
)

var flashMessages = map[string]string{
	FlashAmountUpdated: MsgAmountUpdated,
}

// AdminHandler admin dashboard pages
type AdminHandler struct {
	settingsSvc   service.SettingsService
	submissionSvc service.SubmissionService
	exportSvc     service.ExportService
	logger        *zap.Logger
}

// NewAdminHandler creates an AdminHandler
func NewAdminHandler(
	settingsSvc service.SettingsService,
	submissionSvc service.SubmissionService,
	exportSvc service.ExportService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		settingsSvc:   settingsSvc,
		submissionSvc: submissionSvc,
		exportSvc:     exportSvc,
		logger:        logger,
	}
}

// ────────────────────── Dashboard ──────────────────────

// Dashboard filtered table plus the optional settings panel
// GET /admin?q=&section=&settings=1
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var filter dto.SubmissionFilter
	_ = c.ShouldBindQuery(&filter)

	cfg, err := h.settingsSvc.LoadOrDefault(ctx)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Application settings not loaded.")
		return
	}
	subs, err := h.submissionSvc.List(ctx, &filter)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Could not load payments.")
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Title":        "Admin Dashboard",
		"Query":        filter.Query,
		"Section":      filter.SectionOrAll(),
		"Settings":     cfg,
		"Submissions":  subs,
		"ShowSettings": c.Query("settings") == "1",
		"Flash":        flashMessages[c.Query("flash")],
	})
}

// Export downloads what the dashboard currently shows
// GET /admin/export?q=&section=
func (h *AdminHandler) Export(c *gin.Context) {
	var filter dto.SubmissionFilter
	_ = c.ShouldBindQuery(&filter)

	buf, filename, err := h.exportSvc.ExportSubmissions(c.Request.Context(), &filter)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Could not generate the export file.")
		return
	}

	writeXLSX(c, filename, buf.Bytes())
}

// ────────────────────── Edit ──────────────────────

// EditForm form with every field of one submission
// GET /admin/submissions/:id/edit
func (h *AdminHandler) EditForm(c *gin.Context) {
	sub, ok := h.lookup(c)
	if !ok {
		return
	}
	h.renderEdit(c, http.StatusOK, sub, "")
}

// Edit saves the form
// POST /admin/submissions/:id/edit
func (h *AdminHandler) Edit(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateSubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		sub, ok := h.lookup(c)
		if !ok {
			return
		}
		h.renderEdit(c, http.StatusBadRequest, sub, "Amount must be a number.")
		return
	}

	if _, err := h.submissionSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handleAdminError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) renderEdit(c *gin.Context, status int, sub *dto.SubmissionResponse, errMsg string) {
	cfg, err := h.settingsSvc.LoadOrDefault(c.Request.Context())
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Application settings not loaded.")
		return
	}

	// a label removed from settings stays selectable for the records using it
	sections := cfg.Sections
	if !containsLabel(sections, sub.Label) {
		sections = append([]string{sub.Label}, sections...)
	}

	c.HTML(status, "edit.html", gin.H{
		"Title":      "Edit Submission",
		"Submission": sub,
		"Sections":   sections,
		"Error":      errMsg,
	})
}

// ────────────────────── Delete ──────────────────────

// ConfirmDelete asks before removing a submission
// GET /admin/submissions/:id/delete
func (h *AdminHandler) ConfirmDelete(c *gin.Context) {
	sub, ok := h.lookup(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "confirm.html", gin.H{
		"Title":   "Delete Submission",
		"Message": fmt.Sprintf("Are you sure you want to delete the payment of %s, %s (%s)?", sub.LastName, sub.FirstName, sub.Label),
		"Action":  "/admin/submissions/" + url.PathEscape(sub.ID) + "/delete",
		"Cancel":  "/admin",
	})
}

// Delete removes the submission
// POST /admin/submissions/:id/delete
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.submissionSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleAdminError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// ────────────────────── Settings ──────────────────────

// UpdateAmount saves the default amount
// POST /admin/settings/amount
func (h *AdminHandler) UpdateAmount(c *gin.Context) {
	var req dto.UpdateAmountRequest
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, http.StatusBadRequest, "Amount must be a number.")
		return
	}

	if _, err := h.settingsSvc.UpdateAmount(c.Request.Context(), *req.Amount); err != nil {
		h.handleAdminError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin?settings=1&flash="+FlashAmountUpdated)
}

// AddSection appends a section label; blank and duplicate labels are ignored
// POST /admin/settings/sections
func (h *AdminHandler) AddSection(c *gin.Context) {
	var req dto.SectionRequest
	_ = c.ShouldBind(&req)

	_, err := h.settingsSvc.AddSection(c.Request.Context(), req.Label)
	if err != nil && !errors.Is(err, service.ErrSectionLabelBlank) && !errors.Is(err, service.ErrSectionExists) {
		h.handleAdminError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin?settings=1")
}

// ConfirmRemoveSection asks before removing a section label
// GET /admin/settings/sections/delete?label=
func (h *AdminHandler) ConfirmRemoveSection(c *gin.Context) {
	label := c.Query("label")
	if label == "" {
		c.Redirect(http.StatusSeeOther, "/admin?settings=1")
		return
	}

	c.HTML(http.StatusOK, "confirm.html", gin.H{
		"Title":   "Remove Section",
		"Message": fmt.Sprintf("Remove section %q? Existing payments keep their course and section.", label),
		"Action":  "/admin/settings/sections/delete",
		"Cancel":  "/admin?settings=1",
		"Fields":  map[string]string{"label": label},
	})
}

// RemoveSection removes a section label; an unknown label is ignored
// POST /admin/settings/sections/delete
func (h *AdminHandler) RemoveSection(c *gin.Context) {
	var req dto.SectionRequest
	_ = c.ShouldBind(&req)

	_, err := h.settingsSvc.RemoveSection(c.Request.Context(), req.Label)
	if err != nil && !errors.Is(err, service.ErrSectionNotFound) {
		h.handleAdminError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin?settings=1")
}

// ── helpers ──

// lookup loads the :id submission or renders the error page
func (h *AdminHandler) lookup(c *gin.Context) (*dto.SubmissionResponse, bool) {
	sub, err := h.submissionSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleAdminError(c, err)
		return nil, false
	}
	return sub, true
}

func (h *AdminHandler) handleAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubmissionNotFound):
		renderError(c, http.StatusNotFound, "Payment record not found.")
	default:
		h.logger.Error("admin action failed", zap.String("path", c.FullPath()), zap.Error(err))
		renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
