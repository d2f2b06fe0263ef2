// SPDX-License-Identifier: Apache-2.0

package keystore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-core/internal/crypto"
	"github.com/MKhiriev/go-vault-core/internal/logger"
)

// persistentKeyEntry is the secure-storage wire form of the opt-in
// "remember me" key. The key bytes are base64-encoded; the expiry is an
// explicit timestamp checked on every read.
type persistentKeyEntry struct {
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

const persistentKeyName = "vault.secret_key"

type keyHolder struct {
	storage  SecureStorage
	salts    SaltProvider
	keychain crypto.KeyChain
	logger   *logger.Logger

	// now is the clock; injectable so expiry is testable.
	now func() time.Time

	mu         sync.Mutex
	sessionKey []byte
}

// NewKeyHolder constructs a [KeyHolder] with no key material present.
func NewKeyHolder(storage SecureStorage, salts SaltProvider, keychain crypto.KeyChain, logger *logger.Logger) KeyHolder {
	return &keyHolder{
		storage:  storage,
		salts:    salts,
		keychain: keychain,
		logger:   logger,
		now:      time.Now,
	}
}

// StoreSessionKey implements [KeyHolder].
func (h *keyHolder) StoreSessionKey(key []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessionKey = append([]byte(nil), key...)
}

// SessionKey implements [KeyHolder]. The returned slice is a copy: a
// later DeleteSessionKey cannot zero key material a batch decrypt is
// still reading.
func (h *keyHolder) SessionKey() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sessionKey == nil {
		return nil
	}
	return append([]byte(nil), h.sessionKey...)
}

// DeleteSessionKey implements [KeyHolder].
func (h *keyHolder) DeleteSessionKey() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.sessionKey {
		h.sessionKey[i] = 0
	}
	h.sessionKey = nil
}

// StorePersistentKey implements [KeyHolder].
func (h *keyHolder) StorePersistentKey(ctx context.Context, key []byte, ttl time.Duration) error {
	entry := persistentKeyEntry{
		Key:       base64.StdEncoding.EncodeToString(key),
		ExpiresAt: h.now().Add(ttl),
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode persistent key entry: %w", err)
	}

	if err := h.storage.Set(ctx, persistentKeyName, string(payload)); err != nil {
		return fmt.Errorf("%w: set persistent key: %v", ErrStorage, err)
	}

	return nil
}

// PersistentKey implements [KeyHolder]. An expired entry is treated as
// absent and removed from the backend.
func (h *keyHolder) PersistentKey(ctx context.Context) ([]byte, error) {
	raw, found, err := h.storage.Get(ctx, persistentKeyName)
	if err != nil {
		return nil, fmt.Errorf("%w: get persistent key: %v", ErrStorage, err)
	}
	if !found {
		return nil, nil
	}

	var entry persistentKeyEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		// A corrupted entry is unusable; drop it rather than fail every read.
		h.logger.Warn().Err(err).Msg("dropping corrupted persistent key entry")
		_ = h.storage.Remove(ctx, persistentKeyName)
		return nil, nil
	}

	if !h.now().Before(entry.ExpiresAt) {
		h.logger.Debug().Time("expired_at", entry.ExpiresAt).Msg("persistent key expired, deleting")
		if err := h.storage.Remove(ctx, persistentKeyName); err != nil {
			return nil, fmt.Errorf("%w: remove expired persistent key: %v", ErrStorage, err)
		}
		return nil, nil
	}

	key, err := base64.StdEncoding.DecodeString(entry.Key)
	if err != nil {
		h.logger.Warn().Err(err).Msg("dropping undecodable persistent key entry")
		_ = h.storage.Remove(ctx, persistentKeyName)
		return nil, nil
	}

	return key, nil
}

// DeletePersistentKey implements [KeyHolder].
func (h *keyHolder) DeletePersistentKey(ctx context.Context) error {
	if err := h.storage.Remove(ctx, persistentKeyName); err != nil {
		return fmt.Errorf("%w: remove persistent key: %v", ErrStorage, err)
	}
	return nil
}

// DeriveAndStore implements [KeyHolder].
func (h *keyHolder) DeriveAndStore(ctx context.Context, password string) ([]byte, error) {
	salt, err := h.salts.Salt(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch salt: %v", ErrAuthentication, err)
	}

	key, err := h.keychain.DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}

	h.StoreSessionKey(key)
	return key, nil
}
