package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore keeps records in process memory. It backs dry runs and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]any
	seq         int
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]any)}
}

// AddToCollection stores record under the next sequential "auto-" key.
func (s *MemoryStore) AddToCollection(_ context.Context, collection string, record any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	key := fmt.Sprintf("auto-%06d", s.seq)
	s.put(collection, key, record)
	return key, nil
}

// SetDocument stores record at key. An empty key is rejected.
func (s *MemoryStore) SetDocument(_ context.Context, collection, key string, record any) error {
	if key == "" {
		return fmt.Errorf("empty key for collection %s", collection)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(collection, key, record)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

// Count returns the number of records in collection.
func (s *MemoryStore) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

// Get returns the record stored at key.
func (s *MemoryStore) Get(collection, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.collections[collection][key]
	return rec, ok
}

// All returns the records in collection ordered by key.
func (s *MemoryStore) All(collection string) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.collections[collection]
	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, docs[k])
	}
	return out
}

func (s *MemoryStore) put(collection, key string, record any) {
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]any)
		s.collections[collection] = docs
	}
	docs[key] = record
}
