package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-core/internal/keystore"
	"github.com/MKhiriev/go-vault-core/internal/logger"
)

// sqliteSecureStorage implements [keystore.SecureStorage] over the
// secure_kv table of the local database, so clients that already carry a
// SQLite mirror need no extra file for the persisted key.
type sqliteSecureStorage struct {
	db     *DB
	logger *logger.Logger
}

func NewSQLiteSecureStorage(db *DB, log *logger.Logger) keystore.SecureStorage {
	return &sqliteSecureStorage{db: db, logger: log}
}

func (s *sqliteSecureStorage) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.db.builder.
		Select("value").
		From("secure_kv").
		Where(sq.Eq{"name": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("error building select query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "Get").Msg("error reading secure record")
		return "", false, fmt.Errorf("error reading secure record: %w", err)
	}

	return value, true, nil
}

func (s *sqliteSecureStorage) Set(ctx context.Context, key, value string) error {
	query, args, err := s.db.builder.
		Insert("secure_kv").
		Columns("name", "value").
		Values(key, value).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building upsert query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "Set").Msg("error writing secure record")
		return fmt.Errorf("error writing secure record: %w", err)
	}

	return nil
}

func (s *sqliteSecureStorage) Remove(ctx context.Context, key string) error {
	query, args, err := s.db.builder.
		Delete("secure_kv").
		Where(sq.Eq{"name": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "Remove").Msg("error removing secure record")
		return fmt.Errorf("error removing secure record: %w", err)
	}

	return nil
}
