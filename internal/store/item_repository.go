package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-core/internal/logger"
	"github.com/MKhiriev/go-vault-core/models"
)

type itemRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] over db. The same
// implementation serves the SQLite mirror and the Postgres document store;
// the placeholder format and error classifier come from db.
func NewItemRepository(db *DB, log *logger.Logger) ItemRepository {
	return &itemRepository{db: db, logger: log}
}

func (r *itemRepository) GetEncryptedItems(ctx context.Context, userID string) ([]models.EncryptedItem, error) {
	query, args, err := r.db.builder.
		Select("id", "item_type", "content_encrypted", "item_key_encrypted", "created_at", "last_used_at").
		From("encrypted_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "GetEncryptedItems").Bool("retryable", r.db.retryable(err)).Msg("error querying items")
		return nil, fmt.Errorf("error querying encrypted items: %w", err)
	}
	defer rows.Close()

	var items []models.EncryptedItem
	for rows.Next() {
		var item models.EncryptedItem
		if err = rows.Scan(&item.ID, &item.Type, &item.ContentEncrypted, &item.ItemKeyEncrypted, &item.CreatedAt, &item.LastUsedAt); err != nil {
			r.logger.Err(err).Str("func", "GetEncryptedItems").Msg("error scanning item row")
			return nil, fmt.Errorf("error scanning encrypted item: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating encrypted items: %w", err)
	}

	return items, nil
}

func (r *itemRepository) PutEncryptedItem(ctx context.Context, userID string, item models.EncryptedItem) error {
	// Upsert keyed by (user_id, id); creation time and the wrapped item key
	// from the existing row are overwritten only by what the caller sends,
	// so the write path stays last-writer-wins like the remote store.
	query, args, err := r.db.builder.
		Insert("encrypted_items").
		Columns("user_id", "id", "item_type", "content_encrypted", "item_key_encrypted", "created_at", "last_used_at").
		Values(userID, item.ID, item.Type, item.ContentEncrypted, item.ItemKeyEncrypted, item.CreatedAt, item.LastUsedAt).
		Suffix("ON CONFLICT (user_id, id) DO UPDATE SET item_type = excluded.item_type, content_encrypted = excluded.content_encrypted, item_key_encrypted = excluded.item_key_encrypted, last_used_at = excluded.last_used_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building upsert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "PutEncryptedItem").Bool("retryable", r.db.retryable(err)).Msg("error upserting item")
		return fmt.Errorf("error upserting encrypted item: %w", err)
	}

	return nil
}

func (r *itemRepository) DeleteEncryptedItem(ctx context.Context, userID, id string) error {
	query, args, err := r.db.builder.
		Delete("encrypted_items").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "DeleteEncryptedItem").Bool("retryable", r.db.retryable(err)).Msg("error deleting item")
		return fmt.Errorf("error deleting encrypted item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: item %s", ErrNotFound, id)
	}

	return nil
}
