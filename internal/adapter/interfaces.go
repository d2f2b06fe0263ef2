// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for the two
// external services the vault core consumes: the identity provider and
// the encrypted-item document store.
//
// Both are opaque collaborators. The identity provider's only contract
// relevant to the core is that it hands back a session token and the
// user's key-derivation salt; the document store is a dumb CRUD surface
// for [models.EncryptedItem] records whose ciphertext fields it never
// interprets.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-core/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityProvider is the login/MFA surface of the external identity
// service. Implementations manage the bearer token for subsequent
// authenticated requests.
type IdentityProvider interface {
	// SetToken stores the session token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the session token currently held by the adapter, or
	// an empty string if none has been set.
	Token() string

	// Login authenticates with email and master password. On success the
	// session token is stored via SetToken and the result carries the
	// user (including the key-derivation salt). Returns ErrMfaRequired
	// (wrapped) when the provider demands a one-time code first.
	Login(ctx context.Context, email, password string) (models.LoginResult, error)

	// ConfirmMfa completes a login that answered MfaRequired. On success
	// the session token is stored via SetToken.
	ConfirmMfa(ctx context.Context, code string) (models.LoginResult, error)

	// Salt returns the base64-encoded key-derivation salt of the current
	// user. Served from the value cached at login when available, fetched
	// from the provider otherwise. Implements keystore.SaltProvider.
	Salt(ctx context.Context) (string, error)
}

// DocumentStore is the CRUD surface of the external document database
// holding encrypted vault items. Plaintext never crosses this interface.
type DocumentStore interface {
	// GetEncryptedItems returns every encrypted item owned by userID.
	GetEncryptedItems(ctx context.Context, userID string) ([]models.EncryptedItem, error)

	// PutEncryptedItem creates or replaces one encrypted item.
	PutEncryptedItem(ctx context.Context, userID string, item models.EncryptedItem) error

	// DeleteEncryptedItem removes the item by id. Returns ErrNotFound
	// (wrapped) when the item does not exist.
	DeleteEncryptedItem(ctx context.Context, userID string, id string) error
}
