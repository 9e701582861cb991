package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/dto"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/model"
	"github.com/Masc20/CSO-Clearance-Payment-List/internal/repository"
)

// ── settings errors ──

var (
	ErrSectionLabelBlank = errors.New("section label is blank")
	ErrSectionExists     = errors.New("section label already exists")
	ErrSectionNotFound   = errors.New("section label not found")
)

// SettingsService settings business interface
type SettingsService interface {
	// LoadOrDefault returns the saved settings, or the built-in defaults
	// (Persisted=false) when nothing was saved. It never writes.
	LoadOrDefault(ctx context.Context) (*dto.SettingsResponse, error)
	Save(ctx context.Context, req *dto.SaveSettingsRequest) (*dto.SettingsResponse, error)
	AddSection(ctx context.Context, label string) (*dto.SettingsResponse, error)
	RemoveSection(ctx context.Context, label string) (*dto.SettingsResponse, error)
	UpdateAmount(ctx context.Context, amount float64) (*dto.SettingsResponse, error)
}

type settingsService struct {
	repo   *repository.Repository
	logger *zap.Logger
	mu     sync.Mutex
}

// NewSettingsService creates a SettingsService
func NewSettingsService(repo *repository.Repository, logger *zap.Logger) SettingsService {
	return &settingsService{repo: repo, logger: logger}
}

// ────────────────────── LoadOrDefault ──────────────────────

func (s *settingsService) LoadOrDefault(ctx context.Context) (*dto.SettingsResponse, error) {
	cfg, persisted, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(cfg, persisted), nil
}

// ────────────────────── Save ──────────────────────

func (s *settingsService) Save(ctx context.Context, req *dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
	cfg := &model.Settings{Sections: append([]string{}, req.Sections...)}
	if req.Amount != nil {
		cfg.Amount = *req.Amount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, cfg); err != nil {
		return nil, err
	}
	return toSettingsResponse(cfg, true), nil
}

// ────────────────────── AddSection ──────────────────────

func (s *settingsService) AddSection(ctx context.Context, label string) (*dto.SettingsResponse, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrSectionLabelBlank
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.HasSection(label) {
		return nil, ErrSectionExists
	}

	cfg.Sections = append(cfg.Sections, label)
	if err := s.save(ctx, cfg); err != nil {
		return nil, err
	}
	return toSettingsResponse(cfg, true), nil
}

// ────────────────────── RemoveSection ──────────────────────

func (s *settingsService) RemoveSection(ctx context.Context, label string) (*dto.SettingsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.HasSection(label) {
		return nil, ErrSectionNotFound
	}

	kept := make([]string, 0, len(cfg.Sections))
	for _, sec := range cfg.Sections {
		if sec != label {
			kept = append(kept, sec)
		}
	}
	cfg.Sections = kept

	if err := s.save(ctx, cfg); err != nil {
		return nil, err
	}
	return toSettingsResponse(cfg, true), nil
}

// ────────────────────── UpdateAmount ──────────────────────

func (s *settingsService) UpdateAmount(ctx context.Context, amount float64) (*dto.SettingsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Amount = amount

	if err := s.save(ctx, cfg); err != nil {
		return nil, err
	}
	return toSettingsResponse(cfg, true), nil
}

// ── internal helpers ──

func (s *settingsService) load(ctx context.Context) (*model.Settings, bool, error) {
	cfg, err := s.repo.Settings.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return model.DefaultSettings(), false, nil
		}
		s.logger.Error("load settings failed", zap.Error(err))
		return nil, false, err
	}
	return cfg, true, nil
}

func (s *settingsService) save(ctx context.Context, cfg *model.Settings) error {
	if err := s.repo.Settings.Save(ctx, cfg); err != nil {
		s.logger.Error("save settings failed", zap.Error(err))
		return err
	}
	s.logger.Info("settings saved",
		zap.Int("sections", len(cfg.Sections)),
		zap.Float64("amount", cfg.Amount),
	)
	return nil
}

func toSettingsResponse(cfg *model.Settings, persisted bool) *dto.SettingsResponse {
	sections := make([]string, len(cfg.Sections))
	copy(sections, cfg.Sections)
	return &dto.SettingsResponse{
		Sections:  sections,
		Amount:    cfg.Amount,
		Persisted: persisted,
	}
}
