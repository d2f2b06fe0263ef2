package session

import "errors"

var (
	// ErrNoUser is returned by operations that need an authenticated user
	// before any has been bound to the session.
	ErrNoUser = errors.New("no authenticated user bound to the session")
)
