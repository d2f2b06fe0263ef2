// SPDX-License-Identifier: Apache-2.0

// Package codec maps decrypted vault items to their encrypted-at-rest
// representation and back, applying the two-level key wrapping scheme:
// item content is encrypted under the item's own random key, and that
// item key is encrypted under the user's secret key.
//
// The codec is stateless; the secret key is passed explicitly on every
// call so batch operations work against a snapshot of the key and are
// unaffected by a concurrent lock evicting it.
package codec

import "github.com/MKhiriev/go-vault-core/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/item_codec_mock.go -package=mock

// ItemCodec converts between [models.DecryptedItem] and
// [models.EncryptedItem].
type ItemCodec interface {
	// EncryptItem serializes the item's typed content to JSON, encrypts
	// it under the item's key, wraps the item key under secretKey, and
	// carries the timestamps through. The result is self-sufficient:
	// DecryptItem with the same secretKey reproduces the original fields
	// exactly. Returns ErrUnknownItemType for unsupported tags and
	// ErrMissingItemKey when the item carries no plaintext key.
	EncryptItem(secretKey []byte, item models.DecryptedItem) (models.EncryptedItem, error)

	// DecryptItem validates the encrypted record shape, unwraps the item
	// key with secretKey, decrypts the content with the recovered item
	// key, and parses it per item_type. Propagates crypto.ErrDecryption
	// on unwrap/decrypt failure and ErrMalformedContent when the content
	// JSON does not parse.
	DecryptItem(secretKey []byte, item models.EncryptedItem) (models.DecryptedItem, error)

	// DecryptAll decrypts a batch best-effort: items that fail validation
	// or decryption are logged and skipped, never fatal to the batch.
	// The returned slice preserves the input order of the survivors.
	DecryptAll(secretKey []byte, items []models.EncryptedItem) []models.DecryptedItem

	// ValidateEncrypted rejects records missing content_encrypted or
	// item_key_encrypted with a *ValidationError naming the field, and
	// records with an unknown item_type with ErrUnknownItemType. It runs
	// before any decrypt attempt.
	ValidateEncrypted(item models.EncryptedItem) error
}
