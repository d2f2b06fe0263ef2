package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-core/internal/logger"
	"github.com/MKhiriev/go-vault-core/internal/mock"
	"github.com/MKhiriev/go-vault-core/models"
)

// fakeItemRepository is an in-memory ItemRepository for mirror tests.
type fakeItemRepository struct {
	mu    sync.Mutex
	items map[string]map[string]models.EncryptedItem
}

func newFakeItemRepository() *fakeItemRepository {
	return &fakeItemRepository{items: map[string]map[string]models.EncryptedItem{}}
}

func (f *fakeItemRepository) GetEncryptedItems(_ context.Context, userID string) ([]models.EncryptedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.EncryptedItem
	for _, item := range f.items[userID] {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeItemRepository) PutEncryptedItem(_ context.Context, userID string, item models.EncryptedItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.items[userID] == nil {
		f.items[userID] = map[string]models.EncryptedItem{}
	}
	f.items[userID][item.ID] = item
	return nil
}

func (f *fakeItemRepository) DeleteEncryptedItem(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[userID][id]; !ok {
		return ErrNotFound
	}
	delete(f.items[userID], id)
	return nil
}

func TestMirroredStore_GetRefreshesMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockDocumentStore(ctrl)
	local := newFakeItemRepository()
	mirrored := NewMirroredStore(remote, local, logger.Nop())
	ctx := context.Background()

	// stale mirrored item that no longer exists remotely
	require.NoError(t, local.PutEncryptedItem(ctx, "uid-1", testItem("stale")))

	fresh := testItem("item-1")
	remote.EXPECT().GetEncryptedItems(gomock.Any(), "uid-1").Return([]models.EncryptedItem{fresh}, nil)

	items, err := mirrored.GetEncryptedItems(ctx, "uid-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, fresh, items[0])

	mirroredItems, err := local.GetEncryptedItems(ctx, "uid-1")
	require.NoError(t, err)
	require.Len(t, mirroredItems, 1)
	assert.Equal(t, fresh, mirroredItems[0])
}

func TestMirroredStore_GetFallsBackToMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockDocumentStore(ctrl)
	local := newFakeItemRepository()
	mirrored := NewMirroredStore(remote, local, logger.Nop())
	ctx := context.Background()

	cached := testItem("item-1")
	require.NoError(t, local.PutEncryptedItem(ctx, "uid-1", cached))

	remote.EXPECT().GetEncryptedItems(gomock.Any(), "uid-1").Return(nil, errors.New("connection refused"))

	items, err := mirrored.GetEncryptedItems(ctx, "uid-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, cached, items[0])
}

func TestMirroredStore_PutWritesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockDocumentStore(ctrl)
	local := newFakeItemRepository()
	mirrored := NewMirroredStore(remote, local, logger.Nop())
	ctx := context.Background()

	item := testItem("item-1")
	remote.EXPECT().PutEncryptedItem(gomock.Any(), "uid-1", item).Return(nil)

	require.NoError(t, mirrored.PutEncryptedItem(ctx, "uid-1", item))

	mirroredItems, err := local.GetEncryptedItems(ctx, "uid-1")
	require.NoError(t, err)
	assert.Len(t, mirroredItems, 1)
}

func TestMirroredStore_PutRemoteFailureSkipsMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockDocumentStore(ctrl)
	local := newFakeItemRepository()
	mirrored := NewMirroredStore(remote, local, logger.Nop())
	ctx := context.Background()

	item := testItem("item-1")
	remote.EXPECT().PutEncryptedItem(gomock.Any(), "uid-1", item).Return(errors.New("server error"))

	require.Error(t, mirrored.PutEncryptedItem(ctx, "uid-1", item))

	mirroredItems, err := local.GetEncryptedItems(ctx, "uid-1")
	require.NoError(t, err)
	assert.Empty(t, mirroredItems)
}

func TestMirroredStore_DeleteRemovesMirroredCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockDocumentStore(ctrl)
	local := newFakeItemRepository()
	mirrored := NewMirroredStore(remote, local, logger.Nop())
	ctx := context.Background()

	require.NoError(t, local.PutEncryptedItem(ctx, "uid-1", testItem("item-1")))
	remote.EXPECT().DeleteEncryptedItem(gomock.Any(), "uid-1", "item-1").Return(nil)

	require.NoError(t, mirrored.DeleteEncryptedItem(ctx, "uid-1", "item-1"))

	mirroredItems, err := local.GetEncryptedItems(ctx, "uid-1")
	require.NoError(t, err)
	assert.Empty(t, mirroredItems)
}
