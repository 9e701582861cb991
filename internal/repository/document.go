package repository

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/kv"
)

// Storage keys of the two persisted documents
const (
	SubmissionsKey = "cso_payments"
	SettingsKey    = "cso_settings"
)

// ErrRecordNotFound document or record does not exist
var ErrRecordNotFound = kv.ErrNotFound

// loadDocument decodes the document under key into dst.
// Returns ErrRecordNotFound when the key was never written.
func loadDocument(ctx context.Context, store kv.Store, key string, dst interface{}) error {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// saveDocument replaces the document under key
func saveDocument(ctx context.Context, store kv.Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
