package store

import "errors"

var (
	// ErrNotFound is a sentinel error used when a queried record does not
	// exist in the database.
	ErrNotFound = errors.New("record is not found")
)
