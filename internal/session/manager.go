package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-core/internal/adapter"
	"github.com/MKhiriev/go-vault-core/internal/codec"
	"github.com/MKhiriev/go-vault-core/internal/config"
	"github.com/MKhiriev/go-vault-core/internal/crypto"
	"github.com/MKhiriev/go-vault-core/internal/keystore"
	"github.com/MKhiriev/go-vault-core/internal/logger"
	"github.com/MKhiriev/go-vault-core/internal/utils"
	"github.com/MKhiriev/go-vault-core/internal/vault"
	"github.com/MKhiriev/go-vault-core/models"
)

type manager struct {
	keys      keystore.KeyHolder
	keychain  crypto.KeyChain
	itemCodec codec.ItemCodec
	identity  adapter.IdentityProvider
	docs      adapter.DocumentStore
	cache     vault.Cache

	timeout       time.Duration
	rememberMeTTL time.Duration

	logger *logger.Logger
	now    func() time.Time

	mu       sync.Mutex
	user     models.User
	unlocked bool
	timer    *time.Timer
	onExpire func()
}

// NewManager constructs the session [Manager]. Timer and key-retention
// durations come from sessionCfg; all collaborators are injected so
// multiple sessions can coexist in tests.
func NewManager(
	sessionCfg config.ClientSession,
	keys keystore.KeyHolder,
	keychain crypto.KeyChain,
	itemCodec codec.ItemCodec,
	identity adapter.IdentityProvider,
	docs adapter.DocumentStore,
	cache vault.Cache,
	logger *logger.Logger,
) Manager {
	return &manager{
		keys:          keys,
		keychain:      keychain,
		itemCodec:     itemCodec,
		identity:      identity,
		docs:          docs,
		cache:         cache,
		timeout:       sessionCfg.Timeout,
		rememberMeTTL: sessionCfg.RememberMeTTL,
		logger:        logger,
		now:           time.Now,
	}
}

// Unlock implements [Manager].
func (s *manager) Unlock(ctx context.Context, user models.User, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	return s.unlockLocked(ctx, password)
}

// ReEnterPassword implements [Manager].
func (s *manager) ReEnterPassword(ctx context.Context, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user.UID == "" {
		return ErrNoUser
	}
	return s.unlockLocked(ctx, password)
}

// unlockLocked runs the derive → fetch → rebuild pipeline for the bound
// user. Order matters: the key must be installed before the rebuild that
// depends on it, and every failure path rolls the key back out so a
// failed attempt leaves no secret material behind.
func (s *manager) unlockLocked(ctx context.Context, password string) error {
	key, err := s.keys.DeriveAndStore(ctx, password)
	if err != nil {
		return fmt.Errorf("derive secret key: %w", err)
	}

	encrypted, err := s.docs.GetEncryptedItems(ctx, s.user.UID)
	if err != nil {
		s.keys.DeleteSessionKey()
		return fmt.Errorf("fetch encrypted items: %w", err)
	}

	count := s.cache.Rebuild(key, encrypted)
	if len(encrypted) > 0 && count == 0 {
		// Nothing decrypted: the derived key does not match the stored
		// ciphertexts, i.e. wrong master password.
		s.keys.DeleteSessionKey()
		s.cache.Invalidate()
		return vault.LockedWith(vault.ReasonDecryptionFailed)
	}

	s.unlocked = true
	s.logger.Info().
		Int("items", count).
		Msg("vault unlocked")
	return nil
}

// Lock implements [Manager].
func (s *manager) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.evictLocked()
}

// Logout implements [Manager].
func (s *manager) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.evictLocked()
	s.identity.SetToken("")
	s.user = models.User{}

	if err := s.keys.DeletePersistentKey(ctx); err != nil {
		return fmt.Errorf("delete persistent key on logout: %w", err)
	}
	return nil
}

// Unlocked implements [Manager].
func (s *manager) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked && s.keys.SessionKey() != nil
}

// IdentitySessionLive implements [Manager].
func (s *manager) IdentitySessionLive() bool {
	return utils.SessionTokenLive(s.identity.Token(), s.now())
}

// StartTimer implements [Manager].
func (s *manager) StartTimer(onExpire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.onExpire = onExpire
	s.timer = time.AfterFunc(s.timeout, s.expire)
}

// ResetTimer implements [Manager].
func (s *manager) ResetTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Reset(s.timeout)
	}
}

// StopTimer implements [Manager].
func (s *manager) StopTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
}

func (s *manager) expire() {
	s.mu.Lock()
	s.timer = nil
	s.evictLocked()
	onExpire := s.onExpire
	s.mu.Unlock()

	s.logger.Info().Msg("session timed out, vault locked")
	if onExpire != nil {
		onExpire()
	}
}

func (s *manager) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *manager) evictLocked() {
	s.keys.DeleteSessionKey()
	s.cache.Invalidate()
	s.unlocked = false
}

// RememberMe implements [Manager].
func (s *manager) RememberMe(ctx context.Context) error {
	key := s.keys.SessionKey()
	if key == nil {
		return vault.LockedWith(vault.ReasonExpired)
	}

	if err := s.keys.StorePersistentKey(ctx, key, s.rememberMeTTL); err != nil {
		return fmt.Errorf("persist secret key: %w", err)
	}
	return nil
}

// Restore implements [Manager].
func (s *manager) Restore(ctx context.Context, user models.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.keys.PersistentKey(ctx)
	if err != nil {
		return false, fmt.Errorf("read persistent key: %w", err)
	}
	if key == nil {
		return false, nil
	}

	s.user = user
	s.keys.StoreSessionKey(key)

	encrypted, err := s.docs.GetEncryptedItems(ctx, user.UID)
	if err != nil {
		s.keys.DeleteSessionKey()
		return false, fmt.Errorf("fetch encrypted items: %w", err)
	}

	count := s.cache.Rebuild(key, encrypted)
	if len(encrypted) > 0 && count == 0 {
		// The persisted key no longer matches the stored ciphertexts,
		// e.g. the master password changed elsewhere.
		s.keys.DeleteSessionKey()
		s.cache.Invalidate()
		return false, vault.LockedWith(vault.ReasonDecryptionFailed)
	}

	s.unlocked = true
	s.logger.Info().
		Int("items", count).
		Msg("session restored from persistent key")
	return true, nil
}

// CreateItem implements [Manager].
func (s *manager) CreateItem(ctx context.Context, item models.DecryptedItem) (models.DecryptedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.keys.SessionKey()
	if key == nil {
		return models.DecryptedItem{}, vault.LockedWith(vault.ReasonExpired)
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if len(item.ItemKey) == 0 {
		itemKey, err := s.keychain.GenerateItemKey()
		if err != nil {
			return models.DecryptedItem{}, fmt.Errorf("generate item key: %w", err)
		}
		item.ItemKey = itemKey
	}

	now := s.now().UTC()
	item.CreatedAt = now
	item.LastUsedAt = now

	encrypted, err := s.itemCodec.EncryptItem(key, item)
	if err != nil {
		return models.DecryptedItem{}, fmt.Errorf("encrypt item for create: %w", err)
	}

	if err = s.docs.PutEncryptedItem(ctx, s.user.UID, encrypted); err != nil {
		return models.DecryptedItem{}, fmt.Errorf("upload created item: %w", err)
	}

	s.cache.Upsert(item)
	return item, nil
}

// UpdateItem implements [Manager].
func (s *manager) UpdateItem(ctx context.Context, item models.DecryptedItem) (models.DecryptedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.keys.SessionKey()
	if key == nil {
		return models.DecryptedItem{}, vault.LockedWith(vault.ReasonExpired)
	}

	prev, err := s.cache.Get(item.ID)
	if err != nil {
		return models.DecryptedItem{}, fmt.Errorf("load existing item: %w", err)
	}

	// The item key never rotates on update; content is re-encrypted
	// under the key minted at creation.
	if len(item.ItemKey) == 0 {
		item.ItemKey = prev.ItemKey
	}
	item.Type = prev.Type
	item.CreatedAt = prev.CreatedAt
	item.LastUsedAt = s.now().UTC()

	encrypted, err := s.itemCodec.EncryptItem(key, item)
	if err != nil {
		return models.DecryptedItem{}, fmt.Errorf("encrypt item for update: %w", err)
	}

	if err = s.docs.PutEncryptedItem(ctx, s.user.UID, encrypted); err != nil {
		return models.DecryptedItem{}, fmt.Errorf("upload updated item: %w", err)
	}

	s.cache.Upsert(item)
	return item, nil
}

// DeleteItem implements [Manager].
func (s *manager) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.docs.DeleteEncryptedItem(ctx, s.user.UID, id); err != nil {
		return fmt.Errorf("delete item on server: %w", err)
	}

	s.cache.Remove(id)
	return nil
}

// Item implements [Manager].
func (s *manager) Item(id string) (models.DecryptedItem, error) {
	return s.cache.Get(id)
}

// Items implements [Manager].
func (s *manager) Items() ([]models.DecryptedItem, error) {
	return s.cache.GetAll()
}
