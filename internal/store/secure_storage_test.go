package store

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-core/internal/config"
	"github.com/MKhiriev/go-vault-core/internal/keystore"
	"github.com/MKhiriev/go-vault-core/internal/logger"
)

func newFileStorage(t *testing.T, dir string) keystore.SecureStorage {
	t.Helper()
	storage, err := NewFileSecureStorage(config.ClientKeys{Dir: dir}, logger.Nop())
	require.NoError(t, err)
	return storage
}

func TestFileSecureStorage_SetGetRoundTrip(t *testing.T) {
	storage := newFileStorage(t, t.TempDir())
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "persistent_key", "encoded-value"))

	value, found, err := storage.Get(ctx, "persistent_key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "encoded-value", value)
}

func TestFileSecureStorage_MissingKey(t *testing.T) {
	storage := newFileStorage(t, t.TempDir())

	value, found, err := storage.Get(context.Background(), "never-set")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestFileSecureStorage_Remove(t *testing.T) {
	storage := newFileStorage(t, t.TempDir())
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "persistent_key", "encoded-value"))
	require.NoError(t, storage.Remove(ctx, "persistent_key"))

	_, found, err := storage.Get(ctx, "persistent_key")
	require.NoError(t, err)
	assert.False(t, found)

	// removing an absent key is not an error
	require.NoError(t, storage.Remove(ctx, "persistent_key"))
}

func TestFileSecureStorage_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := newFileStorage(t, dir)
	require.NoError(t, first.Set(ctx, "persistent_key", "encoded-value"))

	second := newFileStorage(t, dir)
	value, found, err := second.Get(ctx, "persistent_key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "encoded-value", value)
}

func TestFileSecureStorage_OwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	dir := t.TempDir()
	storage := newFileStorage(t, dir)
	require.NoError(t, storage.Set(context.Background(), "persistent_key", "encoded-value"))

	info, err := os.Stat(filepath.Join(dir, secureFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileSecureStorage_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	storage := newFileStorage(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, secureFileName), []byte("not json"), 0o600))

	_, _, err := storage.Get(context.Background(), "persistent_key")
	require.Error(t, err)
}

func TestMemorySecureStorage(t *testing.T) {
	storage := NewMemorySecureStorage()
	ctx := context.Background()

	_, found, err := storage.Get(ctx, "persistent_key")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, storage.Set(ctx, "persistent_key", "encoded-value"))
	value, found, err := storage.Get(ctx, "persistent_key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "encoded-value", value)

	require.NoError(t, storage.Remove(ctx, "persistent_key"))
	_, found, err = storage.Get(ctx, "persistent_key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteSecureStorage_Get(t *testing.T) {
	db, mock := newTestDB(t)
	storage := NewSQLiteSecureStorage(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM secure_kv WHERE name = ?`)).
		WithArgs("persistent_key").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("encoded-value"))

	value, found, err := storage.Get(context.Background(), "persistent_key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "encoded-value", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSecureStorage_GetMissing(t *testing.T) {
	db, mock := newTestDB(t)
	storage := NewSQLiteSecureStorage(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM secure_kv WHERE name = ?`)).
		WithArgs("persistent_key").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, found, err := storage.Get(context.Background(), "persistent_key")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSecureStorage_SetAndRemove(t *testing.T) {
	db, mock := newTestDB(t)
	storage := NewSQLiteSecureStorage(newDBFromSQL(db), logger.Nop())
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO secure_kv (name,value) VALUES (?,?) ON CONFLICT (name) DO UPDATE SET value = excluded.value`)).
		WithArgs("persistent_key", "encoded-value").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM secure_kv WHERE name = ?`)).
		WithArgs("persistent_key").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, storage.Set(ctx, "persistent_key", "encoded-value"))
	require.NoError(t, storage.Remove(ctx, "persistent_key"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
