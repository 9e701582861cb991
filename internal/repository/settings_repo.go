package repository

import (
	"context"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/model"
	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/kv"
)

// SettingsRepository settings document access
type SettingsRepository interface {
	// Get returns ErrRecordNotFound when settings were never saved
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, s *model.Settings) error
}

type settingsRepo struct {
	store kv.Store
}

// NewSettingsRepo creates a SettingsRepository
func NewSettingsRepo(store kv.Store) SettingsRepository {
	return &settingsRepo{store: store}
}

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	if err := loadDocument(ctx, r.store, SettingsKey, &s); err != nil {
		return nil, err
	}
	if s.Sections == nil {
		s.Sections = []string{}
	}
	return &s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s *model.Settings) error {
	doc := s
	if s.Sections == nil {
		doc = &model.Settings{Sections: []string{}, Amount: s.Amount}
	}
	return saveDocument(ctx, r.store, SettingsKey, doc)
}
