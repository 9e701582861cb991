package router

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/config"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/api/handler"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/api/middleware"
)

// Setup builds the Gin engine. limiter may be nil to disable rate limiting.
func Setup(cfg *config.Config, h *handler.Handler, tmpl *template.Template, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	limit := middleware.RateLimit(limiter, cfg.Intake.RateLimit, cfg.Intake.RateWindow, logger)

	// ── health ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── student form ──
	r.GET("/", h.Intake.Show)
	form := r.Group("/intake")
	{
		form.POST("/section", h.Intake.SelectSection)
		form.POST("/back", h.Intake.ChangeSection)
		form.POST("/submit", limit, h.Intake.Submit)
	}

	// ── admin dashboard ──
	admin := r.Group("/admin")
	{
		admin.GET("", h.Admin.Dashboard)
		admin.GET("/export", h.Admin.Export)
		admin.GET("/submissions/:id/edit", h.Admin.EditForm)
		admin.POST("/submissions/:id/edit", h.Admin.Edit)
		admin.GET("/submissions/:id/delete", h.Admin.ConfirmDelete)
		admin.POST("/submissions/:id/delete", h.Admin.Delete)
		admin.POST("/settings/amount", h.Admin.UpdateAmount)
		admin.POST("/settings/sections", h.Admin.AddSection)
		admin.GET("/settings/sections/delete", h.Admin.ConfirmRemoveSection)
		admin.POST("/settings/sections/delete", h.Admin.RemoveSection)
	}

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		settings := v1.Group("/settings")
		{
			settings.GET("", h.Settings.GetSettings)
			settings.PUT("", h.Settings.SaveSettings)
			settings.PUT("/amount", h.Settings.UpdateAmount)
			settings.POST("/sections", h.Settings.AddSection)
			settings.DELETE("/sections", h.Settings.RemoveSection)
		}

		submissions := v1.Group("/submissions")
		{
			submissions.GET("", h.Submission.ListSubmissions)
			submissions.POST("", limit, h.Submission.CreateSubmission)
			submissions.GET("/:id", h.Submission.GetSubmission)
			submissions.PUT("/:id", h.Submission.UpdateSubmission)
			submissions.DELETE("/:id", h.Submission.DeleteSubmission)
		}

		export := v1.Group("/export")
		{
			export.GET("/submissions", h.Export.ExportSubmissions)
		}
	}

	return r
}
