package repository

import "github.com/Masc20/CSO-Clearance-Payment-List/pkg/kv"

// Repository aggregate of all repositories
type Repository struct {
	Settings   SettingsRepository
	Submission SubmissionRepository
}

// NewRepository builds every repository on the same key-value store
func NewRepository(store kv.Store) *Repository {
	return &Repository{
		Settings:   NewSettingsRepo(store),
		Submission: NewSubmissionRepo(store),
	}
}
