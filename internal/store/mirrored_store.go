package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-core/internal/adapter"
	"github.com/MKhiriev/go-vault-core/internal/logger"
	"github.com/MKhiriev/go-vault-core/models"
)

// mirroredStore fronts the remote document store with the local SQLite
// mirror. Reads prefer the remote and refresh the mirror on the way
// through; when the remote is unreachable the last mirrored snapshot is
// served so an offline client can still unlock its vault. Writes go to
// the remote first and are mirrored only after the remote accepted them.
type mirroredStore struct {
	remote adapter.DocumentStore
	local  ItemRepository
	logger *logger.Logger
}

func NewMirroredStore(remote adapter.DocumentStore, local ItemRepository, log *logger.Logger) adapter.DocumentStore {
	return &mirroredStore{remote: remote, local: local, logger: log}
}

func (m *mirroredStore) GetEncryptedItems(ctx context.Context, userID string) ([]models.EncryptedItem, error) {
	items, err := m.remote.GetEncryptedItems(ctx, userID)
	if err != nil {
		m.logger.Warn().Err(err).Str("func", "GetEncryptedItems").Msg("remote store unreachable, serving local mirror")
		return m.local.GetEncryptedItems(ctx, userID)
	}

	if mirrorErr := m.refreshMirror(ctx, userID, items); mirrorErr != nil {
		// The remote answer is authoritative; a mirror failure only costs
		// offline availability.
		m.logger.Warn().Err(mirrorErr).Str("func", "GetEncryptedItems").Msg("error refreshing local mirror")
	}

	return items, nil
}

func (m *mirroredStore) PutEncryptedItem(ctx context.Context, userID string, item models.EncryptedItem) error {
	if err := m.remote.PutEncryptedItem(ctx, userID, item); err != nil {
		return err
	}

	if err := m.local.PutEncryptedItem(ctx, userID, item); err != nil {
		m.logger.Warn().Err(err).Str("func", "PutEncryptedItem").Msg("error mirroring item locally")
	}
	return nil
}

func (m *mirroredStore) DeleteEncryptedItem(ctx context.Context, userID, id string) error {
	if err := m.remote.DeleteEncryptedItem(ctx, userID, id); err != nil {
		return err
	}

	if err := m.local.DeleteEncryptedItem(ctx, userID, id); err != nil && !errors.Is(err, ErrNotFound) {
		m.logger.Warn().Err(err).Str("func", "DeleteEncryptedItem").Msg("error removing mirrored item")
	}
	return nil
}

// refreshMirror replaces the mirrored snapshot for userID with items:
// every fetched item is upserted and mirrored items absent from the
// remote answer are dropped, so remote deletions are not resurrected.
func (m *mirroredStore) refreshMirror(ctx context.Context, userID string, items []models.EncryptedItem) error {
	existing, err := m.local.GetEncryptedItems(ctx, userID)
	if err != nil {
		return fmt.Errorf("error listing mirrored items: %w", err)
	}

	fetched := make(map[string]struct{}, len(items))
	for _, item := range items {
		fetched[item.ID] = struct{}{}
		if err = m.local.PutEncryptedItem(ctx, userID, item); err != nil {
			return fmt.Errorf("error mirroring item %s: %w", item.ID, err)
		}
	}

	for _, item := range existing {
		if _, ok := fetched[item.ID]; ok {
			continue
		}
		if err = m.local.DeleteEncryptedItem(ctx, userID, item.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("error dropping stale mirrored item %s: %w", item.ID, err)
		}
	}

	return nil
}
