package keystore

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/supabase-community/supabase-go"
)

// keysTable is the Supabase table holding API key records
const keysTable = "api_keys"

// supabaseKeyRow mirrors the api_keys table layout.
type supabaseKeyRow struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
}

func (r supabaseKeyRow) toRecord() *APIKey {
	return &APIKey{
		ID:        r.ID,
		Key:       r.Key,
		Name:      r.Name,
		Tier:      Tier(r.Tier),
		CreatedAt: r.CreatedAt,
	}
}

// SupabaseStore is a Store backed by a Supabase table, for deployments
// where issued keys must survive restarts.
type SupabaseStore struct {
	client *supabase.Client
}

var _ Store = (*SupabaseStore)(nil)

// NewSupabaseStore creates a SupabaseStore from project credentials.
// url is the Supabase project URL (e.g., "https://xxx.supabase.co")
// key is the Supabase service role key
func NewSupabaseStore(url, key string) (*SupabaseStore, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if key == "" {
		return nil, fmt.Errorf("supabase key is required")
	}

	log.Printf("[SupabaseStore] Initializing with URL: %s", url)

	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("[SupabaseStore] Failed to create client: %v", err)
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseStore{client: client}, nil
}

// Get returns the record for key, or ErrKeyNotFound.
func (s *SupabaseStore) Get(ctx context.Context, key string) (*APIKey, error) {
	data, _, err := s.client.From(keysTable).Select("*", "exact", false).Eq("key", key).Execute()
	if err != nil {
		log.Printf("[SupabaseStore] Query failed: %v", err)
		return nil, fmt.Errorf("failed to query api key: %w", err)
	}

	var rows []supabaseKeyRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse api key response: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrKeyNotFound
	}

	return rows[0].toRecord(), nil
}

// Put stores a record, replacing any existing row with the same key.
func (s *SupabaseStore) Put(ctx context.Context, record *APIKey) error {
	row := map[string]interface{}{
		"id":         record.ID,
		"key":        record.Key,
		"name":       record.Name,
		"tier":       string(record.Tier),
		"created_at": record.CreatedAt.UTC().Format(time.RFC3339),
	}

	_, _, err := s.client.From(keysTable).Insert(row, true, "key", "", "").Execute()
	if err != nil {
		log.Printf("[SupabaseStore] Failed to upsert api key %s: %v", Mask(record.Key), err)
		return fmt.Errorf("failed to store api key: %w", err)
	}

	return nil
}

// Delete removes the record for key, or returns ErrKeyNotFound.
func (s *SupabaseStore) Delete(ctx context.Context, key string) error {
	// postgrest deletes are silent no-ops for missing rows; look the key up
	// first so unknown keys surface as ErrKeyNotFound
	if _, err := s.Get(ctx, key); err != nil {
		return err
	}

	_, _, err := s.client.From(keysTable).Delete("", "").Eq("key", key).Execute()
	if err != nil {
		log.Printf("[SupabaseStore] Failed to delete api key %s: %v", Mask(key), err)
		return fmt.Errorf("failed to delete api key: %w", err)
	}

	return nil
}

// List returns all stored records.
func (s *SupabaseStore) List(ctx context.Context) ([]*APIKey, error) {
	data, _, err := s.client.From(keysTable).Select("*", "exact", false).Execute()
	if err != nil {
		log.Printf("[SupabaseStore] Query failed: %v", err)
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}

	var rows []supabaseKeyRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse api keys response: %w", err)
	}

	records := make([]*APIKey, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}

	return records, nil
}
