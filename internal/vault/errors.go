package vault

import "fmt"

// LockReason explains why the vault refused to serve decrypted data.
// The UI maps each reason to one of a small set of recovery actions
// (re-enter password, logout) instead of showing raw crypto errors or a
// silently empty vault.
type LockReason string

const (
	// ReasonExpired means the cache expiry has elapsed.
	ReasonExpired LockReason = "expired"

	// ReasonFingerprintMismatch means the cache was built on a different
	// device/browser environment than the current one.
	ReasonFingerprintMismatch LockReason = "fingerprint_mismatch"

	// ReasonDecryptionFailed means the encrypted source could not be
	// decrypted with the available secret key (wrong master password).
	ReasonDecryptionFailed LockReason = "decryption_failed"

	// ReasonNotFound means the requested item is not in the vault.
	ReasonNotFound LockReason = "not_found"

	// ReasonCorrupted means the cache state is unusable and must be
	// rebuilt from the encrypted source.
	ReasonCorrupted LockReason = "corrupted"
)

// VaultLockedError signals that decrypted vault data is unavailable and
// the caller must rebuild (with a valid secret key) or route the user to
// password re-entry.
type VaultLockedError struct {
	Reason LockReason
}

func (e *VaultLockedError) Error() string {
	return fmt.Sprintf("vault locked: %s", e.Reason)
}

// LockedWith builds a *VaultLockedError for reason.
func LockedWith(reason LockReason) *VaultLockedError {
	return &VaultLockedError{Reason: reason}
}
