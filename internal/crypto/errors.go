package crypto

import "errors"

var (
	// ErrKeyDerivation is returned when key derivation receives empty or
	// malformed inputs.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrDecryption is returned when a ciphertext is malformed, truncated,
	// or fails its authentication check (wrong key, tampered data).
	ErrDecryption = errors.New("decryption failed")
)
