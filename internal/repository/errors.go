package repository

import "errors"

// ErrNotFound is returned when a record does not exist in either the
// remote collection or the local draft store.
var ErrNotFound = errors.New("record not found")
