package models

import "time"

// User represents the account identity owned by the identity-provider
// backend. It is read-only to the vault core: the core never creates or
// mutates users, it only consumes the salt for key derivation.
type User struct {
	// UID is the identity-provider assigned unique identifier.
	UID string `json:"uid"`

	// Email is the login identifier of the account.
	Email string `json:"email"`

	// Salt is the per-user random value issued at registration.
	// It never changes and is not secret; it exists so that identical
	// master passwords derive different secret keys for different users.
	// Stored base64-encoded.
	Salt string `json:"salt"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}
