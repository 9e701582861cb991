package errors

import "errors"

// ErrNotFound the requested key or record does not exist
var ErrNotFound = errors.New("record not found")
