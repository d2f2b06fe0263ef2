// SPDX-License-Identifier: Apache-2.0

// Package session orchestrates the lock/unlock lifecycle of the vault:
// it owns the inactivity timer, sequences key derivation and cache
// rebuilds, and is the single write path for vault items.
//
// State machine: Unlocked → (timeout | manual lock | logout) → Locked →
// (password re-entry) → Unlocked. While locked, no secret key exists in
// memory and the decrypted cache is empty; reads surface
// *vault.VaultLockedError so the UI routes to password re-entry.
package session

import (
	"context"

	"github.com/MKhiriev/go-vault-core/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// Manager drives the session state machine and fronts all vault item
// operations. All methods are safe for concurrent use; mutating
// operations serialize on an internal lock so there is a single writer
// per session.
type Manager interface {
	// Unlock performs the initial unlock after login: it derives the
	// secret key from password, installs it as the session key, fetches
	// the user's encrypted items, and rebuilds the decrypted cache.
	// When every fetched item fails to decrypt the password is treated
	// as wrong: nothing is installed and a *vault.VaultLockedError with
	// reason decryption_failed is returned.
	Unlock(ctx context.Context, user models.User, password string) error

	// ReEnterPassword re-runs the unlock pipeline for the already-bound
	// user after the session key was evicted. All-or-nothing: on failure
	// the session stays locked with no key material installed.
	ReEnterPassword(ctx context.Context, password string) error

	// Lock immediately evicts the session key and invalidates the cache,
	// independent of the timer. The identity session survives.
	Lock()

	// Logout locks and additionally deletes the persistent key, drops
	// the identity token, and unbinds the user.
	Logout(ctx context.Context) error

	// Unlocked reports whether a session key is installed and the cache
	// has been rebuilt since the last lock.
	Unlocked() bool

	// IdentitySessionLive reports whether the identity-provider session
	// token is still live (unexpired), distinguishing "re-enter password"
	// from "log in again" recovery.
	IdentitySessionLive() bool

	// StartTimer begins the inactivity countdown. On expiry the session
	// key is evicted, the cache invalidated, and onExpire invoked.
	// A running timer is replaced.
	StartTimer(onExpire func())

	// ResetTimer restarts the countdown without touching key material.
	// Called on observed user activity. No-op when no timer is running.
	ResetTimer()

	// StopTimer cancels the countdown so it cannot fire after logout.
	StopTimer()

	// RememberMe persists the current session key through the secure
	// storage capability with the configured TTL.
	RememberMe(ctx context.Context) error

	// Restore attempts to resume an unlocked session from the persistent
	// key without a password. Returns false with a nil error when no
	// usable persistent key exists.
	Restore(ctx context.Context, user models.User) (bool, error)

	// CreateItem assigns an id and a fresh item key where missing,
	// encrypts the item, uploads it, and inserts it into the cache.
	// Returns the stored item with all generated fields populated.
	CreateItem(ctx context.Context, item models.DecryptedItem) (models.DecryptedItem, error)

	// UpdateItem re-encrypts the modified item under its existing item
	// key, uploads it, and replaces it in the cache.
	UpdateItem(ctx context.Context, item models.DecryptedItem) (models.DecryptedItem, error)

	// DeleteItem removes the item from the document store and the cache.
	DeleteItem(ctx context.Context, id string) error

	// Item returns one decrypted item from the cache.
	Item(id string) (models.DecryptedItem, error)

	// Items returns all decrypted items from the cache in insertion order.
	Items() ([]models.DecryptedItem, error)
}
