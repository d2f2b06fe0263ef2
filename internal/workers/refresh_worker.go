package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-core/internal/vault"
)

// vaultRefreshWorker adapts the vault refresh job to the Worker interface.
// Run launches the job's background goroutine and returns; the job keeps
// refreshing until ctx is cancelled or the job is stopped.
type vaultRefreshWorker struct {
	ctx      context.Context
	job      vault.RefreshJob
	userID   string
	interval time.Duration
}

func NewVaultRefreshWorker(ctx context.Context, job vault.RefreshJob, userID string, interval time.Duration) Worker {
	return &vaultRefreshWorker{ctx: ctx, job: job, userID: userID, interval: interval}
}

func (w *vaultRefreshWorker) Run() {
	w.job.Start(w.ctx, w.userID, w.interval)
}
