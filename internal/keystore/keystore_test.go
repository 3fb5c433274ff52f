package keystore

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	record, err := NewKey("Test Key", TierFree)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(record.Key, KeyPrefix))
	// 16 random bytes encode to 22 unpadded base64url characters
	assert.Len(t, record.Key, len(KeyPrefix)+22)
	assert.Equal(t, "Test Key", record.Name)
	assert.Equal(t, TierFree, record.Tier)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, time.UTC, record.CreatedAt.Location())
}

func TestNewKey_Distinct(t *testing.T) {
	first, err := NewKey("a", TierFree)
	require.NoError(t, err)

	second, err := NewKey("b", TierFree)
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"long key keeps prefix", "test_key_x7vQ9pL2mR4tY8wZ1aB3cD", "test_key_x7v..."},
		{"demo key", "demo_key_12345", "demo_key_123..."},
		{"short key unchanged", "short", "short"},
		{"empty key", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mask(tt.key))
		})
	}
}

func TestSeed(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := Seed(ctx, store, []string{"env_key_one", "env_key_two"})
	require.NoError(t, err)

	demo, err := store.Get(ctx, DemoKey)
	require.NoError(t, err)
	assert.Equal(t, "Demo Key", demo.Name)
	assert.Equal(t, TierFree, demo.Tier)
	assert.Equal(t, time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), demo.CreatedAt)

	env, err := store.Get(ctx, "env_key_one")
	require.NoError(t, err)
	assert.Equal(t, "Environment Key", env.Name)
	assert.Equal(t, TierPremium, env.Tier)

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestSeed_NoExtraKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := Seed(ctx, store, nil)
	require.NoError(t, err)

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, DemoKey, records[0].Key)
}
