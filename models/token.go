package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionToken wraps the JWT issued by the identity provider after a
// successful login or MFA confirmation. The vault core treats the token
// as opaque except for its registered claims: the expiry claim is used
// to decide whether an evicted secret key can be recovered with a
// password re-entry or whether a full login is required.
type SessionToken struct {
	// Token is the parsed JWT, used for claim inspection only.
	// The core never verifies the signature — the identity provider is
	// the trust anchor for its own tokens.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation received from the
	// identity provider (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *SessionToken) String() string {
	return t.SignedString
}
