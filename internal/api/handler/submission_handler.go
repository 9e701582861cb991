package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/service"
	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/response"
)

// SubmissionHandler submission HTTP handler
type SubmissionHandler struct {
	submissionSvc service.SubmissionService
}

// NewSubmissionHandler creates a SubmissionHandler
func NewSubmissionHandler(submissionSvc service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc}
}

// ListSubmissions filtered submissions in storage order
// GET /api/v1/submissions?q=&section=
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	var filter dto.SubmissionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, 10001, "invalid request")
		return
	}

	list, err := h.submissionSvc.List(c.Request.Context(), &filter)
	if err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.OKList(c, list, len(list))
}

// GetSubmission one submission
// GET /api/v1/submissions/:id
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	sub, err := h.submissionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.OK(c, sub)
}

// CreateSubmission record a payment with the current default amount
// POST /api/v1/submissions
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "sectionLabel, firstName and lastName are required")
		return
	}

	sub, err := h.submissionSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.Created(c, sub)
}

// UpdateSubmission edit a submission; omitted fields are unchanged
// PUT /api/v1/submissions/:id
func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	var req dto.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request")
		return
	}

	sub, err := h.submissionSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.OK(c, sub)
}

// DeleteSubmission remove a submission
// DELETE /api/v1/submissions/:id
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	if err := h.submissionSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *SubmissionHandler) handleSubmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubmissionNotFound):
		response.NotFound(c, 18001, "submission not found")
	case errors.Is(err, service.ErrSectionRequired):
		response.BadRequest(c, 18002, "section is required")
	case errors.Is(err, service.ErrNameRequired):
		response.BadRequest(c, 18003, "first name and last name are required")
	default:
		response.InternalError(c)
	}
}
