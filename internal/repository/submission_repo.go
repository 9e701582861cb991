package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Masc20/CSO-Clearance-Payment-List/internal/model"
	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/kv"
)

// SubmissionRepository submissions document access.
// Every call reads and rewrites the whole collection.
type SubmissionRepository interface {
	// List returns submissions in insertion order; empty when never saved
	List(ctx context.Context) ([]model.Submission, error)
	Append(ctx context.Context, sub *model.Submission) error
	// Update replaces the record with the same ID in place.
	// Returns ErrRecordNotFound and writes nothing when the ID is absent.
	Update(ctx context.Context, sub *model.Submission) error
	// Delete returns ErrRecordNotFound and writes nothing when the ID is absent
	Delete(ctx context.Context, id string) error
}

type submissionRepo struct {
	store kv.Store
	mu    sync.Mutex // serialises read-modify-write within this process
}

// NewSubmissionRepo creates a SubmissionRepository
func NewSubmissionRepo(store kv.Store) SubmissionRepository {
	return &submissionRepo{store: store}
}

func (r *submissionRepo) List(ctx context.Context) ([]model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *submissionRepo) Append(ctx context.Context, sub *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load(ctx)
	if err != nil {
		return err
	}
	return saveDocument(ctx, r.store, SubmissionsKey, append(current, *sub))
}

func (r *submissionRepo) Update(ctx context.Context, sub *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(current, sub.ID)
	if idx < 0 {
		return ErrRecordNotFound
	}
	current[idx] = *sub
	return saveDocument(ctx, r.store, SubmissionsKey, current)
}

func (r *submissionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(current, id)
	if idx < 0 {
		return ErrRecordNotFound
	}
	remaining := make([]model.Submission, 0, len(current)-1)
	remaining = append(remaining, current[:idx]...)
	remaining = append(remaining, current[idx+1:]...)
	return saveDocument(ctx, r.store, SubmissionsKey, remaining)
}

func (r *submissionRepo) load(ctx context.Context) ([]model.Submission, error) {
	var subs []model.Submission
	if err := loadDocument(ctx, r.store, SubmissionsKey, &subs); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return []model.Submission{}, nil
		}
		return nil, err
	}
	if subs == nil {
		subs = []model.Submission{}
	}
	return subs, nil
}

func indexOf(subs []model.Submission, id string) int {
	for i := range subs {
		if subs[i].ID == id {
			return i
		}
	}
	return -1
}
