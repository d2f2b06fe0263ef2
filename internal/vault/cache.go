// SPDX-License-Identifier: Apache-2.0

package vault

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-core/internal/codec"
	"github.com/MKhiriev/go-vault-core/internal/logger"
	"github.com/MKhiriev/go-vault-core/models"
)

type cache struct {
	codec       codec.ItemCodec
	fingerprint Fingerprinter
	ttl         time.Duration
	logger      *logger.Logger

	// now is the clock; injectable so expiry is testable.
	now func() time.Time

	mu        sync.RWMutex
	items     map[string]models.DecryptedItem
	order     []string
	builtWith string
	expiresAt time.Time
}

// NewCache constructs an empty [Cache]. A fresh cache is stale until the
// first Rebuild; reads before that surface ReasonExpired so callers know
// to rebuild rather than trust an empty vault.
func NewCache(itemCodec codec.ItemCodec, fingerprint Fingerprinter, ttl time.Duration, logger *logger.Logger) Cache {
	return &cache{
		codec:       itemCodec,
		fingerprint: fingerprint,
		ttl:         ttl,
		logger:      logger,
		now:         time.Now,
		items:       make(map[string]models.DecryptedItem),
	}
}

// Rebuild implements [Cache].
func (c *cache) Rebuild(secretKey []byte, encryptedItems []models.EncryptedItem) int {
	decrypted := c.codec.DecryptAll(secretKey, encryptedItems)

	items := make(map[string]models.DecryptedItem, len(decrypted))
	order := make([]string, 0, len(decrypted))
	for _, item := range decrypted {
		if _, exists := items[item.ID]; !exists {
			order = append(order, item.ID)
		}
		items[item.ID] = item
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items
	c.order = order
	c.builtWith = c.fingerprint.Fingerprint()
	c.expiresAt = c.now().Add(c.ttl)

	c.logger.Debug().
		Int("total", len(encryptedItems)).
		Int("decrypted", len(decrypted)).
		Time("expires_at", c.expiresAt).
		Msg("vault cache rebuilt")

	return len(decrypted)
}

// IsValid implements [Cache].
func (c *cache) IsValid() bool {
	return c.StaleReason() == ""
}

// StaleReason implements [Cache].
func (c *cache) StaleReason() LockReason {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.staleReasonLocked()
}

// staleReasonLocked must be called with at least a read lock held.
func (c *cache) staleReasonLocked() LockReason {
	// The item map and the insertion order must agree; a disagreement
	// means the cache state was damaged and must not be served from.
	if c.items == nil || len(c.items) != len(c.order) {
		return ReasonCorrupted
	}
	if c.expiresAt.IsZero() || !c.now().Before(c.expiresAt) {
		return ReasonExpired
	}
	if c.builtWith != c.fingerprint.Fingerprint() {
		return ReasonFingerprintMismatch
	}
	return ""
}

// Get implements [Cache].
func (c *cache) Get(id string) (models.DecryptedItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if reason := c.staleReasonLocked(); reason != "" {
		return models.DecryptedItem{}, LockedWith(reason)
	}

	item, ok := c.items[id]
	if !ok {
		return models.DecryptedItem{}, LockedWith(ReasonNotFound)
	}
	return item, nil
}

// GetAll implements [Cache].
func (c *cache) GetAll() ([]models.DecryptedItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if reason := c.staleReasonLocked(); reason != "" {
		return nil, LockedWith(reason)
	}

	all := make([]models.DecryptedItem, 0, len(c.order))
	for _, id := range c.order {
		all = append(all, c.items[id])
	}
	return all, nil
}

// Upsert implements [Cache].
func (c *cache) Upsert(item models.DecryptedItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.items == nil {
		c.items = make(map[string]models.DecryptedItem)
	}
	if _, exists := c.items[item.ID]; !exists {
		c.order = append(c.order, item.ID)
	}
	c.items[item.ID] = item
}

// Remove implements [Cache].
func (c *cache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Invalidate implements [Cache]. Plaintext is dropped immediately; the
// zeroed expiry makes every subsequent read report ReasonExpired.
func (c *cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]models.DecryptedItem)
	c.order = nil
	c.builtWith = ""
	c.expiresAt = time.Time{}
}
