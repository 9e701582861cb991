package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MustGetID reads the :id path parameter. On a blank id it writes a 400
// response and returns false; the caller should return.
func MustGetID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id is required")
		return "", false
	}
	return id, true
}

// writeXLSX sends an xlsx workbook as a download
func writeXLSX(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// renderError renders the HTML error page
func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Title":   "Error",
		"Message": message,
		"Back":    "/admin",
	})
}
