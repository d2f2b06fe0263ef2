// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// vault client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the integrity hash key
	// and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the external identity provider
	// and document store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds lock-timeout and key-retention settings.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds configuration for the local persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for device fingerprinting and payload
	// integrity checks.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// IdentityAddress is the base address of the identity provider,
	// in "host:port" or full URL format.
	// Env: ADAPTER_IDENTITY_ADDRESS
	IdentityAddress string `env:"IDENTITY_ADDRESS"`

	// DocStoreAddress is the base address of the encrypted-item document
	// store, in "host:port" or full URL format.
	// Env: ADAPTER_DOCSTORE_ADDRESS
	DocStoreAddress string `env:"DOCSTORE_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds lock-timeout and key-retention settings.
type Session struct {
	// Timeout is the inactivity window after which the vault locks and
	// the in-memory secret key is discarded (e.g. "15m").
	// Env: SESSION_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// RememberMeTTL is how long a persisted secret key stays usable
	// across restarts before it is considered expired (e.g. "720h").
	// Env: SESSION_REMEMBER_ME_TTL
	RememberMeTTL time.Duration `env:"REMEMBER_ME_TTL"`

	// CacheTTL is how long a rebuilt decrypted-item cache stays fresh
	// before reads report it stale (e.g. "5m").
	// Env: SESSION_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`

	// Keys holds settings for the secure key storage backend.
	Keys Keys `envPrefix:"KEYS_"`
}

// DB holds connection settings for the local database backend.
type DB struct {
	// DSN is the SQLite Data Source Name used for the local encrypted-item
	// mirror (e.g. "file:vault.db?_fk=1").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Keys holds settings for the secure key storage backend.
type Keys struct {
	// Dir is the directory where the persisted secret-key file lives.
	// Env: STORAGE_KEYS_DIR
	Dir string `env:"DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the background vault refresh
	// job re-fetches and rebuilds the decrypted cache.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
