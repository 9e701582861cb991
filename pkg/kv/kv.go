// Package kv is the persistence boundary of the application: a flat
// key-value store holding whole JSON documents.
//
// Backends only need Get and Set. Absence of a key is reported as
// ErrNotFound so callers can tell "never saved" from "saved empty".
package kv

import (
	"context"

	pkgerrors "github.com/Masc20/CSO-Clearance-Payment-List/pkg/errors"
)

// ErrNotFound key has never been written
var ErrNotFound = pkgerrors.ErrNotFound

// Store key-value document store
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
