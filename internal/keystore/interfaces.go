// SPDX-License-Identifier: Apache-2.0

// Package keystore manages the lifetime of the user's derived secret key.
//
// Two independent lifetimes can be active at once: a session key that
// lives only in process memory and dies with the process, and an opt-in
// persistent key ("remember me") stored through the platform secure
// storage capability with an explicit expiry timestamp.
package keystore

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keystore_mock.go -package=mock

// SecureStorage is the platform capability used for the persistent key
// lifetime. It is backed by an OS keychain, extension storage, or a
// local database depending on platform; the keystore treats it as an
// opaque string store.
//
// Get reports absence via found=false with a nil error; a non-nil error
// always means the backend itself failed.
type SecureStorage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// SaltProvider supplies the per-user key-derivation salt. The identity
// adapter implements it; the keystore only needs the salt, not the rest
// of the login flow.
type SaltProvider interface {
	// Salt returns the base64-encoded salt of the current user.
	Salt(ctx context.Context) (string, error)
}

// KeyHolder owns the derived secret key material.
type KeyHolder interface {
	// StoreSessionKey installs key as the in-memory session key,
	// replacing any previous one. The holder keeps its own copy.
	StoreSessionKey(key []byte)

	// SessionKey returns a copy of the session key, or nil when absent.
	SessionKey() []byte

	// DeleteSessionKey evicts the session key and zeroes the held copy.
	DeleteSessionKey()

	// StorePersistentKey persists key through the secure storage
	// capability with an expiry of now+ttl. Returns ErrStorage (wrapped)
	// if the backend write fails.
	StorePersistentKey(ctx context.Context, key []byte, ttl time.Duration) error

	// PersistentKey returns the persistent key, or (nil, nil) when no
	// key is stored or the stored key has expired. An expired key is
	// deleted on read. Backend failures surface as ErrStorage (wrapped).
	PersistentKey(ctx context.Context) ([]byte, error)

	// DeletePersistentKey removes the persistent key from the backend.
	DeletePersistentKey(ctx context.Context) error

	// DeriveAndStore fetches the user's salt, derives the secret key
	// from password, installs it as the session key, and returns it.
	// Returns ErrAuthentication (wrapped) when the salt cannot be
	// fetched, or crypto.ErrKeyDerivation for bad inputs.
	DeriveAndStore(ctx context.Context, password string) ([]byte, error)
}
