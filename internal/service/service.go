package service

import (
	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/repository"
)

// Service aggregate of all services
type Service struct {
	Settings   SettingsService
	Submission SubmissionService
	Export     ExportService
}

// NewService creates the Service aggregate
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	settings := NewSettingsService(repo, logger)
	return &Service{
		Settings:   settings,
		Submission: NewSubmissionService(repo, settings, logger),
		Export:     NewExportService(repo, logger),
	}
}
