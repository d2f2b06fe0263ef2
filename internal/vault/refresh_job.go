package vault

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-core/internal/keystore"
	"github.com/MKhiriev/go-vault-core/internal/logger"
)

// RefreshJob periodically refetches the encrypted item set and rebuilds
// the cache while the vault is unlocked, so long-running sessions do not
// serve stale data until the expiry forces a rebuild.
type RefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated. Safe to call when the job is not running.
	Stop()
}

type refreshJob struct {
	source ItemSource
	holder keystore.KeyHolder
	cache  Cache
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob that is idle until Start is called.
func NewRefreshJob(source ItemSource, holder keystore.KeyHolder, cache Cache, logger *logger.Logger) RefreshJob {
	return &refreshJob{source: source, holder: holder, cache: cache, logger: logger}
}

// Start implements [RefreshJob].
func (j *refreshJob) Start(ctx context.Context, userID string, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx, userID)
			}
		}
	}()
}

// refresh snapshots the session key once at the start of the pass so a
// concurrent lock cannot invalidate an in-flight rebuild halfway through.
func (j *refreshJob) refresh(ctx context.Context, userID string) {
	key := j.holder.SessionKey()
	if key == nil {
		// Locked: nothing to refresh until the user re-enters the password.
		return
	}

	items, err := j.source.GetEncryptedItems(ctx, userID)
	if err != nil {
		j.logger.Warn().Err(err).Msg("vault refresh: fetching encrypted items failed")
		return
	}

	j.cache.Rebuild(key, items)
}

// Stop implements [RefreshJob].
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
