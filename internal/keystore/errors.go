package keystore

import "errors"

var (
	// ErrStorage wraps any platform secure-storage backend failure.
	// Callers can distinguish "key absent" (nil key, nil error) from
	// "key lookup failed" (ErrStorage).
	ErrStorage = errors.New("secure storage failure")

	// ErrAuthentication is returned when the identity provider cannot
	// supply the user's salt during key derivation.
	ErrAuthentication = errors.New("authentication failed")
)
