// Package keystore stores and issues the API keys that authenticate
// requests. The Store interface is backed by an in-process map by default
// and by a Supabase table when persistent keys are needed.
package keystore

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// KeyPrefix marks keys issued by the public generate endpoint
	KeyPrefix = "test_key_"
	// keyRandomBytes is the entropy of a generated key (22 chars once encoded)
	keyRandomBytes = 16
	// maskVisibleChars is how much of a key is shown in listings and logs
	maskVisibleChars = 12

	// DemoKey is the built-in key seeded at startup for quick testing
	DemoKey = "demo_key_12345"
)

// Tier classifies an API key for rate limiting.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// ErrKeyNotFound is returned when no record exists for an API key.
var ErrKeyNotFound = errors.New("api key not found")

// APIKey is a stored API key record.
type APIKey struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	Tier      Tier      `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists API key records. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the record for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (*APIKey, error)
	// Put stores a record, replacing any existing record with the same key.
	Put(ctx context.Context, record *APIKey) error
	// Delete removes the record for key, or returns ErrKeyNotFound.
	Delete(ctx context.Context, key string) error
	// List returns all stored records.
	List(ctx context.Context) ([]*APIKey, error)
}

// NewKey issues a record with a fresh random key value under KeyPrefix.
func NewKey(name string, tier Tier) (*APIKey, error) {
	buf := make([]byte, keyRandomBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate key material: %w", err)
	}

	return &APIKey{
		ID:        uuid.NewString(),
		Key:       KeyPrefix + base64.RawURLEncoding.EncodeToString(buf),
		Name:      name,
		Tier:      tier,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Mask returns the leading characters of a key for safe display.
func Mask(key string) string {
	if len(key) <= maskVisibleChars {
		return key
	}
	return key[:maskVisibleChars] + "..."
}

// Seed installs the built-in demo key plus one premium record per extra
// key, matching what the service has always accepted out of the box.
func Seed(ctx context.Context, store Store, extraKeys []string) error {
	demo := &APIKey{
		ID:        uuid.NewString(),
		Key:       DemoKey,
		Name:      "Demo Key",
		Tier:      TierFree,
		CreatedAt: time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC),
	}
	if err := store.Put(ctx, demo); err != nil {
		return fmt.Errorf("failed to seed demo key: %w", err)
	}

	for _, key := range extraKeys {
		record := &APIKey{
			ID:        uuid.NewString(),
			Key:       key,
			Name:      "Environment Key",
			Tier:      TierPremium,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.Put(ctx, record); err != nil {
			return fmt.Errorf("failed to seed environment key: %w", err)
		}
	}

	return nil
}
