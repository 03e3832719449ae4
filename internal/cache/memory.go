package cache

import (
	"context"
	"sync"
)

// MemoryStore keeps the record in process memory. Useful for tests and
// deployments where revalidation state is allowed to reset on restart.
type MemoryStore struct {
	mu  sync.RWMutex
	rec Record
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the current record
func (s *MemoryStore) Load(ctx context.Context) Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec
}

// Save replaces the current record
func (s *MemoryStore) Save(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
	return nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}
