// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChain constructs a [KeyChain] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChain() KeyChain {
	return &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// DeriveKey implements [KeyChain]. It decodes the base64 salt and derives
// a 256-bit secret key from the master password via Argon2id with the
// parameters stored in the receiver. The result exists only in client
// memory and is never transmitted anywhere.
func (k *keyChain) DeriveKey(password string, salt string) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", ErrKeyDerivation)
	}
	if salt == "" {
		return nil, fmt.Errorf("%w: empty salt", ErrKeyDerivation)
	}

	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return nil, fmt.Errorf("%w: decode salt: %v", ErrKeyDerivation, err)
	}

	return argon2.IDKey(
		[]byte(password),
		saltBytes,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	), nil
}

// EncryptData implements [KeyChain]. It encrypts plaintext with key using
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so the
// decryption side can locate it: blob = nonce ‖ ciphertext. The blob is
// returned base64-encoded (standard encoding). Returns an error if cipher
// creation or the random nonce read fails.
func (k *keyChain) EncryptData(key []byte, plaintext string) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptData implements [KeyChain]. It base64-decodes the blob produced by
// [keyChain.EncryptData], splits out the nonce, and decrypts the remainder
// with key via AES-256-GCM. Returns ErrDecryption (wrapped) if the blob is
// not valid base64, is shorter than the nonce, or the authentication tag
// does not verify. An auth-tag failure almost always means the wrong secret
// key, i.e. the user entered the wrong master password.
func (k *keyChain) DecryptData(key []byte, ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrDecryption, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ct := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return string(plaintext), nil
}

// GenerateItemKey implements [KeyChain]. It reads 32 random bytes from the
// OS CSPRNG and returns them as a per-item encryption key. Returns an error
// if the random read fails.
func (k *keyChain) GenerateItemKey() ([]byte, error) {
	itemKey := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, itemKey); err != nil {
		return nil, err
	}
	return itemKey, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
