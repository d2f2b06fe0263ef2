package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-vault-core/internal/config"
	"github.com/MKhiriev/go-vault-core/internal/keystore"
	"github.com/MKhiriev/go-vault-core/internal/logger"
)

const secureFileName = "secure_store.json"

// fileSecureStorage keeps the persisted secret-key records in a JSON file
// readable only by the owning user. It is the default secure storage on
// platforms without an OS keychain integration.
type fileSecureStorage struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileSecureStorage constructs a file-backed [keystore.SecureStorage]
// rooted at cfg.Dir. The directory is created with owner-only permissions
// if it does not exist.
func NewFileSecureStorage(cfg config.ClientKeys, log *logger.Logger) (keystore.SecureStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
		log.Err(err).Str("func", "NewFileSecureStorage").Msg("error creating key storage directory")
		return nil, fmt.Errorf("error creating key storage directory: %w", err)
	}

	return &fileSecureStorage{
		path:   filepath.Join(cfg.Dir, secureFileName),
		logger: log,
	}, nil
}

func (f *fileSecureStorage) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	records, err := f.load()
	if err != nil {
		return "", false, err
	}

	value, found := records[key]
	return value, found, nil
}

func (f *fileSecureStorage) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	records, err := f.load()
	if err != nil {
		return err
	}

	records[key] = value
	return f.persist(records)
}

func (f *fileSecureStorage) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	records, err := f.load()
	if err != nil {
		return err
	}

	if _, found := records[key]; !found {
		return nil
	}

	delete(records, key)
	return f.persist(records)
}

// load reads the record map from disk. A missing file is an empty store,
// not an error.
func (f *fileSecureStorage) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		f.logger.Err(err).Str("func", "load").Msg("error reading secure storage file")
		return nil, fmt.Errorf("error reading secure storage file: %w", err)
	}

	records := map[string]string{}
	if err = json.Unmarshal(data, &records); err != nil {
		f.logger.Err(err).Str("func", "load").Msg("secure storage file is corrupted")
		return nil, fmt.Errorf("error parsing secure storage file: %w", err)
	}

	return records, nil
}

func (f *fileSecureStorage) persist(records map[string]string) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("error serializing secure storage records: %w", err)
	}

	// 0600: the file holds wrapped key material for the current user only.
	if err = os.WriteFile(f.path, data, 0o600); err != nil {
		f.logger.Err(err).Str("func", "persist").Msg("error writing secure storage file")
		return fmt.Errorf("error writing secure storage file: %w", err)
	}

	return nil
}
