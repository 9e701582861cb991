package handler

import (
	"time"

	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/intake"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/service"
)

// Handler aggregate of all handlers
type Handler struct {
	Settings   *SettingsHandler
	Submission *SubmissionHandler
	Export     *ExportHandler
	Intake     *IntakeHandler
	Admin      *AdminHandler
}

// Options HTML-side settings of the handlers
type Options struct {
	SessionTTL time.Duration
	NoticeTTL  time.Duration
}

// NewHandler creates the Handler aggregate
func NewHandler(svc *service.Service, sessions *intake.Sessions, opts Options, logger *zap.Logger) *Handler {
	return &Handler{
		Settings:   NewSettingsHandler(svc.Settings),
		Submission: NewSubmissionHandler(svc.Submission),
		Export:     NewExportHandler(svc.Export),
		Intake:     NewIntakeHandler(sessions, opts, logger),
		Admin:      NewAdminHandler(svc.Settings, svc.Submission, svc.Export, logger),
	}
}
