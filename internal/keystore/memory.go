package keystore

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store backed by a map. It is the default
// backend; nothing survives a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	keys map[string]*APIKey
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		keys: make(map[string]*APIKey),
	}
}

// Get returns the record for key, or ErrKeyNotFound.
func (s *MemoryStore) Get(ctx context.Context, key string) (*APIKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.keys[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	// Copies keep callers from mutating the stored record
	out := *record
	return &out, nil
}

// Put stores a record, replacing any existing record with the same key.
func (s *MemoryStore) Put(ctx context.Context, record *APIKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *record
	s.keys[record.Key] = &stored
	return nil
}

// Delete removes the record for key, or returns ErrKeyNotFound.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[key]; !ok {
		return ErrKeyNotFound
	}
	delete(s.keys, key)
	return nil
}

// List returns all stored records, oldest first for stable listings.
func (s *MemoryStore) List(ctx context.Context) ([]*APIKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*APIKey, 0, len(s.keys))
	for _, record := range s.keys {
		out := *record
		records = append(records, &out)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].Key < records[j].Key
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	return records, nil
}
