package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/model"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/repository"
)

// TimestampLayout ISO-8601 in UTC with milliseconds, e.g. 2025-01-15T08:30:00.000Z
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ── submission errors ──

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrSectionRequired    = errors.New("section is required")
	ErrNameRequired       = errors.New("first name and last name are required")
)

// SubmissionService submission business interface
type SubmissionService interface {
	Create(ctx context.Context, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error)
	List(ctx context.Context, filter *dto.SubmissionFilter) ([]dto.SubmissionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SubmissionResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSubmissionRequest) (*dto.SubmissionResponse, error)
	Delete(ctx context.Context, id string) error
}

type submissionService struct {
	repo     *repository.Repository
	settings SettingsService
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

// NewSubmissionService creates a SubmissionService
func NewSubmissionService(repo *repository.Repository, settings SettingsService, logger *zap.Logger) SubmissionService {
	return &submissionService{
		repo:     repo,
		settings: settings,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// ────────────────────── Create ──────────────────────

func (s *submissionService) Create(ctx context.Context, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error) {
	if strings.TrimSpace(req.SectionLabel) == "" {
		return nil, ErrSectionRequired
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, ErrNameRequired
	}

	cfg, err := s.settings.LoadOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	course, section := model.SplitSectionLabel(req.SectionLabel)
	sub := &model.Submission{
		ID:         s.newID(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Course:     course,
		Section:    section,
		Amount:     cfg.Amount,
		Timestamp:  s.now().UTC().Format(TimestampLayout),
	}

	if err := s.repo.Submission.Append(ctx, sub); err != nil {
		s.logger.Error("append submission failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.String("id", sub.ID),
		zap.String("label", sub.Label()),
		zap.Float64("amount", sub.Amount),
	)
	return toSubmissionResponse(sub), nil
}

// ────────────────────── List ──────────────────────

func (s *submissionService) List(ctx context.Context, filter *dto.SubmissionFilter) ([]dto.SubmissionResponse, error) {
	subs, err := s.repo.Submission.List(ctx)
	if err != nil {
		s.logger.Error("list submissions failed", zap.Error(err))
		return nil, err
	}

	filtered := FilterSubmissions(subs, filter)
	result := make([]dto.SubmissionResponse, 0, len(filtered))
	for i := range filtered {
		result = append(result, *toSubmissionResponse(&filtered[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *submissionService) GetByID(ctx context.Context, id string) (*dto.SubmissionResponse, error) {
	sub, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSubmissionResponse(sub), nil
}

// ────────────────────── Update ──────────────────────

func (s *submissionService) Update(ctx context.Context, id string, req *dto.UpdateSubmissionRequest) (*dto.SubmissionResponse, error) {
	sub, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		sub.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		sub.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		sub.MiddleName = *req.MiddleName
	}
	if req.SectionLabel != nil {
		sub.Course, sub.Section = model.SplitSectionLabel(*req.SectionLabel)
	}
	if req.Amount != nil {
		sub.Amount = *req.Amount
	}
	if req.Timestamp != nil {
		sub.Timestamp = *req.Timestamp
	}

	if err := s.repo.Submission.Update(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("update submission failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// re-read so the caller sees what the store holds
	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *submissionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Submission.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrSubmissionNotFound
		}
		s.logger.Error("delete submission failed", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("submission deleted", zap.String("id", id))
	return nil
}

// ── internal helpers ──

func (s *submissionService) find(ctx context.Context, id string) (*model.Submission, error) {
	subs, err := s.repo.Submission.List(ctx)
	if err != nil {
		s.logger.Error("list submissions failed", zap.Error(err))
		return nil, err
	}
	for i := range subs {
		if subs[i].ID == id {
			return &subs[i], nil
		}
	}
	return nil, ErrSubmissionNotFound
}

func toSubmissionResponse(sub *model.Submission) *dto.SubmissionResponse {
	return &dto.SubmissionResponse{
		ID:         sub.ID,
		FirstName:  sub.FirstName,
		LastName:   sub.LastName,
		MiddleName: sub.MiddleName,
		Course:     sub.Course,
		Section:    sub.Section,
		Amount:     sub.Amount,
		Timestamp:  sub.Timestamp,
		Label:      sub.Label(),
	}
}
