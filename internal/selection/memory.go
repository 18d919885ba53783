package selection

import (
	"context"
	"sync"
)

// MemoryStore implements Store in memory. It is used in tests and when Redis
// is unavailable in local development.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Get returns the remembered company id for a principal, or "" when none is
// remembered
func (s *MemoryStore) Get(_ context.Context, principalID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[principalID], nil
}

// Set remembers a company id for a principal
func (s *MemoryStore) Set(_ context.Context, principalID, companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[principalID] = companyID
	return nil
}

// Clear forgets the remembered company for a principal
func (s *MemoryStore) Clear(_ context.Context, principalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, principalID)
	return nil
}
