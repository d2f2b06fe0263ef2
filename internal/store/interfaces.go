// SPDX-License-Identifier: Apache-2.0

// Package store provides the client's durable storage backends: the local
// SQLite mirror of encrypted vault items, an optional self-hosted Postgres
// document store, and the secure key-value storage used for the persisted
// secret key. All backends hold ciphertext only; nothing in this package
// ever sees a plaintext item or key.
package store

import (
	"context"

	"github.com/MKhiriev/go-vault-core/models"
)

// ItemRepository is the persistence contract for encrypted vault items.
// Its method set matches the adapter-level document store, so a local
// SQLite mirror or a direct Postgres connection can stand in for the
// remote HTTP store, and the vault cache can rebuild from either.
type ItemRepository interface {
	GetEncryptedItems(ctx context.Context, userID string) ([]models.EncryptedItem, error)
	PutEncryptedItem(ctx context.Context, userID string, item models.EncryptedItem) error
	DeleteEncryptedItem(ctx context.Context, userID, id string) error
}

// ErrorClassificator decides whether a failed database operation may
// succeed on retry.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
