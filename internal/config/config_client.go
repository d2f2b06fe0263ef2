package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used for device fingerprinting.
	HashKey string
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// IdentityAddress is the identity provider endpoint address.
	IdentityAddress string
	// DocStoreAddress is the document store endpoint address.
	DocStoreAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientSession holds lock-timeout and key-retention settings.
type ClientSession struct {
	// Timeout is the inactivity window before the vault locks.
	Timeout time.Duration
	// RememberMeTTL is how long a persisted secret key stays usable.
	RememberMeTTL time.Duration
	// CacheTTL is how long a rebuilt item cache stays fresh.
	CacheTTL time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string for the local item mirror.
	DSN string
}

// ClientKeys contains secure key storage settings for the client.
type ClientKeys struct {
	// Dir is the directory holding the persisted secret-key file.
	Dir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Keys holds secure key storage settings.
	Keys ClientKeys
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the vault refresh job should run.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Session contains lock-timeout and key-retention settings.
	Session ClientSession
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			IdentityAddress: cfg.Adapter.IdentityAddress,
			DocStoreAddress: cfg.Adapter.DocStoreAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
		},
		Session: ClientSession{
			Timeout:       cfg.Session.Timeout,
			RememberMeTTL: cfg.Session.RememberMeTTL,
			CacheTTL:      cfg.Session.CacheTTL,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Keys: ClientKeys{
				Dir: cfg.Storage.Keys.Dir,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
