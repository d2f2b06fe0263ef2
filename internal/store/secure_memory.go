package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-vault-core/internal/keystore"
)

// memorySecureStorage is a process-lifetime [keystore.SecureStorage].
// "Remember me" keys stored here do not survive a restart; it exists for
// platforms where no durable secure backend is available.
type memorySecureStorage struct {
	mu      sync.RWMutex
	records map[string]string
}

func NewMemorySecureStorage() keystore.SecureStorage {
	return &memorySecureStorage{records: map[string]string{}}
}

func (m *memorySecureStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, found := m.records[key]
	return value, found, nil
}

func (m *memorySecureStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = value
	return nil
}

func (m *memorySecureStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, key)
	return nil
}
