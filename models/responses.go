package models

// LoginResult is the identity provider's answer to a login or MFA
// confirmation. The core consumes only SessionToken and the user's salt;
// everything else about the provider's flow is opaque.
type LoginResult struct {
	// SessionToken is the provider-issued JWT for subsequent requests.
	// Empty while MfaRequired is true.
	SessionToken string `json:"session_token,omitempty"`

	// User carries the account identity, including the key-derivation
	// salt. Zero while MfaRequired is true.
	User User `json:"user,omitempty"`

	// MfaRequired signals that the login is incomplete until ConfirmMfa
	// is called with a one-time code.
	MfaRequired bool `json:"mfa_required,omitempty"`
}
