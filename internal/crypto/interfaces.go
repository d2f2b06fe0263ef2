package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain is responsible for all client-side cryptography of the vault.
// It knows nothing about the network, storage, or users; its only job is
// deriving and protecting keys and turning plaintext into self-contained
// ciphertext blobs.
//
// Key hierarchy:
//
//	SecretKey = DeriveKey(masterPassword, salt)     (per user, re-derived)
//	ItemKey   = GenerateItemKey()                   (per item, random)
//	at rest:    EncryptData(SecretKey, ItemKey) and
//	            EncryptData(ItemKey, content JSON)
type KeyChain interface {
	// DeriveKey derives the user's 256-bit secret key from the master
	// password and the per-user salt (base64-encoded, as issued by the
	// identity provider) using Argon2id. The derivation is deterministic:
	// the same (password, salt) pair always yields the identical key.
	// Returns ErrKeyDerivation (wrapped) if password or salt is empty or
	// the salt is not valid base64.
	DeriveKey(password string, salt string) ([]byte, error)

	// EncryptData encrypts plaintext with key using AES-256-GCM and a
	// fresh random nonce. The result is a base64 string of
	// nonce ‖ ciphertext, self-contained for DecryptData. Two calls with
	// identical inputs produce different outputs (fresh nonce per call).
	EncryptData(key []byte, plaintext string) (string, error)

	// DecryptData reverses EncryptData. Returns ErrDecryption (wrapped)
	// if the blob is not valid base64, is shorter than the nonce, or the
	// GCM authentication tag does not verify. It never returns a wrong
	// plaintext silently.
	DecryptData(key []byte, ciphertext string) (string, error)

	// GenerateItemKey returns a fresh random 256-bit symmetric key for a
	// newly created vault item. Fails only if the OS CSPRNG fails.
	GenerateItemKey() ([]byte, error)
}
