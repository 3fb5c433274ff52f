package keystore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(key string, createdAt time.Time) *APIKey {
	return &APIKey{
		ID:        "id-" + key,
		Key:       key,
		Name:      "Key " + key,
		Tier:      TierFree,
		CreatedAt: createdAt,
	}
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := newTestRecord("test_key_abc", time.Now().UTC())
	require.NoError(t, store.Put(ctx, record))

	got, err := store.Get(ctx, "test_key_abc")
	require.NoError(t, err)
	assert.Equal(t, record.Name, got.Name)
	assert.Equal(t, record.Tier, got.Tier)
}

func TestMemoryStore_GetNotFound(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_PutReplaces(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := newTestRecord("test_key_abc", time.Now().UTC())
	require.NoError(t, store.Put(ctx, first))

	second := newTestRecord("test_key_abc", time.Now().UTC())
	second.Tier = TierPremium
	require.NoError(t, store.Put(ctx, second))

	got, err := store.Get(ctx, "test_key_abc")
	require.NoError(t, err)
	assert.Equal(t, TierPremium, got.Tier)

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newTestRecord("test_key_abc", time.Now().UTC())))
	require.NoError(t, store.Delete(ctx, "test_key_abc"))

	_, err := store.Get(ctx, "test_key_abc")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_DeleteNotFound(t *testing.T) {
	store := NewMemoryStore()

	err := store.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_ListOldestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(ctx, newTestRecord("newer", base.Add(time.Hour))))
	require.NoError(t, store.Put(ctx, newTestRecord("oldest", base)))
	require.NoError(t, store.Put(ctx, newTestRecord("middle", base.Add(time.Minute))))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "oldest", records[0].Key)
	assert.Equal(t, "middle", records[1].Key)
	assert.Equal(t, "newer", records[2].Key)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newTestRecord("test_key_abc", time.Now().UTC())))

	got, err := store.Get(ctx, "test_key_abc")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := store.Get(ctx, "test_key_abc")
	require.NoError(t, err)
	assert.Equal(t, "Key test_key_abc", again.Name)
}
