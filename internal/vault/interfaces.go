// SPDX-License-Identifier: Apache-2.0

// Package vault holds the decrypted item set for the current session and
// answers reads without re-touching the network or re-deriving keys,
// while enforcing the staleness rules: cache contents are trusted only
// while the stored device fingerprint matches the current one and the
// expiry has not elapsed.
package vault

import (
	"context"

	"github.com/MKhiriev/go-vault-core/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// Fingerprinter derives a value characterizing the current device or
// browser environment. A changed fingerprint invalidates cached vault
// data. Implementations live in the platform capability layer.
type Fingerprinter interface {
	Fingerprint() string
}

// ItemSource supplies the encrypted item set the cache rebuilds from.
// The document-store adapter and the local SQLite mirror both satisfy it.
type ItemSource interface {
	GetEncryptedItems(ctx context.Context, userID string) ([]models.EncryptedItem, error)
}

// Cache is the session-scoped decrypted vault.
type Cache interface {
	// IsValid reports whether the cache contents may be trusted: the
	// stored fingerprint matches the current device fingerprint and the
	// expiry has not elapsed.
	IsValid() bool

	// Rebuild batch-decrypts encryptedItems with secretKey, replaces the
	// cache state, and stamps a fresh fingerprint and expiry. Undecryptable
	// items are skipped (logged by the codec). Returns the number of items
	// that decrypted successfully.
	Rebuild(secretKey []byte, encryptedItems []models.EncryptedItem) int

	// Get returns the decrypted item by id. When the cache is stale it
	// returns a *VaultLockedError with the staleness reason instead of
	// serving untrusted data; a missing id yields ReasonNotFound.
	Get(id string) (models.DecryptedItem, error)

	// GetAll returns all decrypted items in insertion order, or a
	// *VaultLockedError when the cache is stale.
	GetAll() ([]models.DecryptedItem, error)

	// Upsert inserts or replaces one decrypted item in the cache. It does
	// not touch the encrypted backing store; callers persist through the
	// codec and document store first, then update the cache.
	Upsert(item models.DecryptedItem)

	// Remove drops the item from the cache. Like Upsert it is cache-only.
	Remove(id string)

	// Invalidate discards all cached plaintext immediately.
	Invalidate()

	// StaleReason returns the current staleness reason, or "" when the
	// cache is valid. Used by callers that need to translate staleness
	// into a recovery action without attempting a read.
	StaleReason() LockReason
}
