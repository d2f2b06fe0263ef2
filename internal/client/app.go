package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-core/internal/adapter"
	"github.com/MKhiriev/go-vault-core/internal/codec"
	"github.com/MKhiriev/go-vault-core/internal/config"
	"github.com/MKhiriev/go-vault-core/internal/crypto"
	"github.com/MKhiriev/go-vault-core/internal/keystore"
	"github.com/MKhiriev/go-vault-core/internal/logger"
	"github.com/MKhiriev/go-vault-core/internal/platform"
	"github.com/MKhiriev/go-vault-core/internal/session"
	"github.com/MKhiriev/go-vault-core/internal/store"
	"github.com/MKhiriev/go-vault-core/internal/utils"
	"github.com/MKhiriev/go-vault-core/internal/vault"
	"github.com/MKhiriev/go-vault-core/internal/workers"
	"github.com/MKhiriev/go-vault-core/models"
)

// sessionUserRecord is the secure-storage key under which the last
// logged-in user is remembered for session restore.
const sessionUserRecord = "session_user"

// clipboardClearAfter bounds how long a copied secret stays on the
// system clipboard.
const clipboardClearAfter = 30 * time.Second

// App is the assembled client runtime.
type App struct {
	cfg       *config.ClientConfig
	ctx       context.Context
	identity  adapter.IdentityProvider
	session   session.Manager
	refresh   vault.RefreshJob
	clipboard platform.Clipboard
	secrets   keystore.SecureStorage
	logger    *logger.Logger

	mu   sync.Mutex
	user models.User
}

// NewApp wires all client components from cfg. ctx bounds the lifetime
// of background work started by the app.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	utils.InitHasherPool(cfg.App.HashKey)

	identity, err := adapter.NewHTTPIdentityProvider(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create identity provider: %w", err)
	}

	docs, backend, err := newDocumentStore(ctx, cfg, identity, log)
	if err != nil {
		return nil, fmt.Errorf("create document store: %w", err)
	}
	log.Info().Str("backend", backend).Msg("document store selected")

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	mirrored := store.NewMirroredStore(docs, store.NewItemRepository(db, log), log)

	// Persisted keys go to a dedicated owner-only file when a key
	// directory is configured, otherwise into the local database.
	var secrets keystore.SecureStorage
	if cfg.Storage.Keys.Dir != "" {
		secrets, err = store.NewFileSecureStorage(cfg.Storage.Keys, log)
		if err != nil {
			return nil, fmt.Errorf("create secure storage: %w", err)
		}
	} else {
		secrets = store.NewSQLiteSecureStorage(db, log)
	}

	keychain := crypto.NewKeyChain()
	holder := keystore.NewKeyHolder(secrets, identity, keychain, log)
	itemCodec := codec.NewItemCodec(keychain, log)
	cache := vault.NewCache(itemCodec, platform.NewDeviceFingerprinter(), cfg.Session.CacheTTL, log)
	manager := session.NewManager(cfg.Session, holder, keychain, itemCodec, identity, mirrored, cache, log)
	refreshJob := vault.NewRefreshJob(mirrored, holder, cache, log)

	return &App{
		cfg:       cfg,
		ctx:       ctx,
		identity:  identity,
		session:   manager,
		refresh:   refreshJob,
		clipboard: platform.NewSystemClipboard(log),
		secrets:   secrets,
		logger:    log,
	}, nil
}

// Session exposes the session manager for interactive shells built on
// top of the runtime.
func (a *App) Session() session.Manager {
	return a.session
}

// Login authenticates against the identity provider and, on success,
// unlocks the vault with the master password and starts background work.
// When the provider demands a second factor the error wraps
// adapter.ErrMfaRequired and the flow continues via ConfirmMfa.
func (a *App) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	result, err := a.identity.Login(ctx, email, password)
	if err != nil {
		return result, err
	}
	return result, a.startSession(ctx, result, password)
}

// ConfirmMfa completes a login held up by an MFA challenge.
func (a *App) ConfirmMfa(ctx context.Context, code, password string) (models.LoginResult, error) {
	result, err := a.identity.ConfirmMfa(ctx, code)
	if err != nil {
		return result, err
	}
	return result, a.startSession(ctx, result, password)
}

func (a *App) startSession(ctx context.Context, result models.LoginResult, password string) error {
	a.identity.SetToken(result.SessionToken)

	if err := a.session.Unlock(ctx, result.User, password); err != nil {
		return err
	}

	a.mu.Lock()
	a.user = result.User
	a.mu.Unlock()

	if err := a.rememberUser(ctx, result.User); err != nil {
		a.logger.Warn().Err(err).Msg("error saving session user")
	}

	a.beginBackground(result.User)
	return nil
}

// ReEnterPassword unlocks again after an inactivity lock and resumes the
// background refresh the lock had stopped.
func (a *App) ReEnterPassword(ctx context.Context, password string) error {
	if err := a.session.ReEnterPassword(ctx, password); err != nil {
		return err
	}

	a.mu.Lock()
	user := a.user
	a.mu.Unlock()

	a.beginBackground(user)
	return nil
}

// Restore tries to resume the previous session without a password, using
// the remembered user and the persisted secret key. Returns false with a
// nil error when there is nothing to resume.
func (a *App) Restore(ctx context.Context) (bool, error) {
	user, found, err := a.savedUser(ctx)
	if err != nil || !found {
		return false, err
	}

	restored, err := a.session.Restore(ctx, user)
	if err != nil || !restored {
		return false, err
	}

	a.mu.Lock()
	a.user = user
	a.mu.Unlock()

	a.beginBackground(user)
	return true, nil
}

// Logout ends the session: background refresh stops, key material and
// the remembered user are dropped.
func (a *App) Logout(ctx context.Context) error {
	a.refresh.Stop()

	if err := a.secrets.Remove(ctx, sessionUserRecord); err != nil {
		a.logger.Warn().Err(err).Msg("error dropping saved session user")
	}

	return a.session.Logout(ctx)
}

// CopyPassword places the credential's password on the system clipboard
// for a short window. Counts as user activity for the inactivity timer.
func (a *App) CopyPassword(id string) error {
	item, err := a.session.Item(id)
	if err != nil {
		return err
	}
	if item.Credential == nil {
		return fmt.Errorf("item %s holds no credential", id)
	}

	if err = a.clipboard.CopyExpiring(item.Credential.Password, clipboardClearAfter); err != nil {
		return err
	}

	a.session.ResetTimer()
	return nil
}

// Run implements [Client]: it attempts a session restore and then keeps
// background work alive until the app context is cancelled.
func (a *App) Run() error {
	restored, err := a.Restore(a.ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("session restore failed, login required")
	} else if restored {
		a.logger.Info().Msg("session restored")
	} else {
		a.logger.Info().Msg("no saved session, login required")
	}

	<-a.ctx.Done()

	a.refresh.Stop()
	a.session.Lock()
	return nil
}

// beginBackground (re)arms the inactivity timer and launches the vault
// refresh worker. The timer stops the refresh on expiry so a locked
// vault does no background fetching.
func (a *App) beginBackground(user models.User) {
	a.session.StartTimer(func() {
		a.refresh.Stop()
	})

	workers.NewWorkers(
		workers.NewVaultRefreshWorker(a.ctx, a.refresh, user.UID, a.cfg.Workers.RefreshInterval),
	).Run()
}

// newDocumentStore picks the remote document store backend from the
// configured address: a postgres:// or postgresql:// address selects a
// direct database connection for self-hosted deployments, anything else
// the HTTP adapter.
func newDocumentStore(ctx context.Context, cfg *config.ClientConfig, identity adapter.IdentityProvider, log *logger.Logger) (adapter.DocumentStore, string, error) {
	if isPostgresDSN(cfg.Adapter.DocStoreAddress) {
		db, err := store.NewConnectPostgres(ctx, config.ClientDB{DSN: cfg.Adapter.DocStoreAddress}, log)
		if err != nil {
			return nil, "", fmt.Errorf("connect postgres document store: %w", err)
		}
		if err = db.Migrate(); err != nil {
			return nil, "", fmt.Errorf("migrate postgres document store: %w", err)
		}
		return store.NewItemRepository(db, log), "postgres", nil
	}

	docs, err := adapter.NewHTTPDocumentStore(cfg.Adapter, identity, log)
	if err != nil {
		return nil, "", err
	}
	return docs, "http", nil
}

func isPostgresDSN(address string) bool {
	return strings.HasPrefix(address, "postgres://") || strings.HasPrefix(address, "postgresql://")
}

func (a *App) rememberUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serialize session user: %w", err)
	}
	return a.secrets.Set(ctx, sessionUserRecord, string(data))
}

func (a *App) savedUser(ctx context.Context) (models.User, bool, error) {
	value, found, err := a.secrets.Get(ctx, sessionUserRecord)
	if err != nil || !found {
		return models.User{}, false, err
	}

	var user models.User
	if err = json.Unmarshal([]byte(value), &user); err != nil {
		return models.User{}, false, fmt.Errorf("parse saved session user: %w", err)
	}
	return user, true, nil
}
