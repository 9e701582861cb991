package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/service"
	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/response"
)

// ExportHandler export HTTP handler
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSubmissions download the filtered submissions as xlsx
// GET /api/v1/export/submissions?q=&section=
func (h *ExportHandler) ExportSubmissions(c *gin.Context) {
	var filter dto.SubmissionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, 10001, "invalid request")
		return
	}

	buf, filename, err := h.exportSvc.ExportSubmissions(c.Request.Context(), &filter)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeXLSX(c, filename, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportGenerateFail):
		response.Error(c, http.StatusInternalServerError, 16101, "generate Excel file failed")
	default:
		response.InternalError(c)
	}
}
