package otp

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps pending codes in-process. Used in development and
// tests; production deployments configure the Redis store.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Put(ctx context.Context, identifier string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[identifier] = rec
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, identifier string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[identifier]
	if !ok {
		return Record{}, false, nil
	}
	// Expired entries are lazily collected here; the Redis store relies
	// on key TTLs instead.
	if time.Now().After(rec.ExpiresAt) {
		delete(s.records, identifier)
		return rec, true, nil
	}
	return rec, true, nil
}

func (s *MemoryStore) Delete(ctx context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, identifier)
	return nil
}
