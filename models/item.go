package models

import "time"

// EncryptedItem is the at-rest representation of a single vault item,
// exactly as persisted in the remote document store and the local mirror.
// Both ciphertext fields are opaque strings produced by the crypto layer;
// the storage backends never interpret them.
//
// Key hierarchy: ContentEncrypted is encrypted under the item's random
// item key, and ItemKeyEncrypted is that item key encrypted under the
// user's secret key. A record missing either ciphertext is invalid and
// must be rejected before storage or use.
type EncryptedItem struct {
	// ID is the unique identifier of the item (client-assigned UUID).
	ID string `json:"id"`

	// Type defines the semantic type of the decrypted content.
	Type ItemType `json:"item_type"`

	// ContentEncrypted holds the JSON-serialized typed content encrypted
	// under the item key.
	ContentEncrypted string `json:"content_encrypted"`

	// ItemKeyEncrypted holds the item key encrypted under the user's
	// secret key.
	ItemKeyEncrypted string `json:"item_key_encrypted"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"created_at"`

	// LastUsedAt is the timestamp of the last read or modification.
	LastUsedAt time.Time `json:"last_used_at"`
}

// DecryptedItem is the in-memory-only representation of a vault item.
// It is never persisted to durable storage in this form; it lives in the
// vault cache for the duration of the session.
//
// Exactly one of Credential, Card, Note is non-nil, matching Type.
type DecryptedItem struct {
	// ID is the unique identifier of the item.
	ID string `json:"id"`

	// Type defines which content pointer is populated.
	Type ItemType `json:"item_type"`

	// ItemKey is the item's plaintext random symmetric key. Generated
	// once at item creation, never derived, never reused across items.
	ItemKey []byte `json:"-"`

	// Credential is set when Type == Credential.
	Credential *CredentialContent `json:"credential,omitempty"`

	// Card is set when Type == BankCard.
	Card *BankCardContent `json:"card,omitempty"`

	// Note is set when Type == SecureNote.
	Note *SecureNoteContent `json:"note,omitempty"`

	// CreatedAt mirrors EncryptedItem.CreatedAt.
	CreatedAt time.Time `json:"created_at"`

	// LastUsedAt mirrors EncryptedItem.LastUsedAt.
	LastUsedAt time.Time `json:"last_used_at"`
}

// Title returns the display name of the item regardless of its type.
// Returns an empty string when no content is populated.
func (d DecryptedItem) Title() string {
	switch {
	case d.Credential != nil:
		return d.Credential.Title
	case d.Card != nil:
		return d.Card.Title
	case d.Note != nil:
		return d.Note.Title
	default:
		return ""
	}
}
