package vault

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-core/internal/codec"
	"github.com/MKhiriev/go-vault-core/internal/crypto"
	"github.com/MKhiriev/go-vault-core/internal/keystore"
	"github.com/MKhiriev/go-vault-core/internal/logger"
	"github.com/MKhiriev/go-vault-core/models"
)

type fakeItemSource struct {
	items []models.EncryptedItem
	calls atomic.Int64
}

func (f *fakeItemSource) GetEncryptedItems(context.Context, string) ([]models.EncryptedItem, error) {
	f.calls.Add(1)
	return f.items, nil
}

func TestRefreshJob_RebuildsWhileUnlocked(t *testing.T) {
	kc := crypto.NewKeyChain()
	itemCodec := codec.NewItemCodec(kc, logger.Nop())
	secretKey := bytes.Repeat([]byte{0x42}, 32)

	source := &fakeItemSource{items: encryptTestItems(t, itemCodec, secretKey, "a", "b")}
	holder := keystore.NewKeyHolder(nil, nil, kc, logger.Nop())
	holder.StoreSessionKey(secretKey)

	cache := NewCache(itemCodec, &fakeFingerprinter{value: "device-a"}, time.Hour, logger.Nop())
	job := NewRefreshJob(source, holder, cache, logger.Nop())

	job.Start(context.Background(), "uid-1", 5*time.Millisecond)
	defer job.Stop()

	deadline := time.After(2 * time.Second)
	for !cache.IsValid() {
		select {
		case <-deadline:
			t.Fatal("cache was never rebuilt by the refresh job")
		case <-time.After(5 * time.Millisecond):
		}
	}

	all, err := cache.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRefreshJob_SkipsWhileLocked(t *testing.T) {
	kc := crypto.NewKeyChain()
	itemCodec := codec.NewItemCodec(kc, logger.Nop())

	source := &fakeItemSource{}
	holder := keystore.NewKeyHolder(nil, nil, kc, logger.Nop()) // no session key

	cache := NewCache(itemCodec, &fakeFingerprinter{value: "device-a"}, time.Hour, logger.Nop())
	job := NewRefreshJob(source, holder, cache, logger.Nop())

	job.Start(context.Background(), "uid-1", 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	job.Stop()

	assert.Zero(t, source.calls.Load(), "a locked vault must not be refreshed")
	assert.False(t, cache.IsValid())
}

func TestRefreshJob_StopIsIdempotent(t *testing.T) {
	kc := crypto.NewKeyChain()
	itemCodec := codec.NewItemCodec(kc, logger.Nop())

	job := NewRefreshJob(&fakeItemSource{},
		keystore.NewKeyHolder(nil, nil, kc, logger.Nop()),
		NewCache(itemCodec, &fakeFingerprinter{value: "x"}, time.Hour, logger.Nop()),
		logger.Nop())

	job.Stop() // never started
	job.Start(context.Background(), "uid-1", time.Minute)
	job.Stop()
	job.Stop()
}
