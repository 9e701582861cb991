package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/repository"
	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/kv"
)

var errStoreDown = errors.New("store unavailable")

// ── failing kv.Store ──

type failingStore struct {
	getErr error
	setErr error
}

func (f *failingStore) Get(_ context.Context, _ string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return nil, kv.ErrNotFound
}

func (f *failingStore) Set(_ context.Context, _ string, _ []byte) error {
	return f.setErr
}

// ── fixtures ──

var fixedNow = time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)

type testServices struct {
	repo       *repository.Repository
	store      *kv.MemoryStore
	settings   SettingsService
	submission *submissionService
	export     ExportService
}

func setupTestServices() *testServices {
	store := kv.NewMemoryStore()
	repo := repository.NewRepository(store)
	logger := zap.NewNop()

	settings := NewSettingsService(repo, logger)
	sub := NewSubmissionService(repo, settings, logger).(*submissionService)
	sub.now = func() time.Time { return fixedNow }

	n := 0
	sub.newID = func() string {
		n++
		return fmt.Sprintf("sub-%d", n)
	}

	return &testServices{
		repo:       repo,
		store:      store,
		settings:   settings,
		submission: sub,
		export:     NewExportService(repo, logger),
	}
}
