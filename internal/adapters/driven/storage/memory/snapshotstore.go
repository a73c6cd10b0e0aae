package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
type SnapshotStore struct {
	mu      sync.RWMutex
	catalog *domain.Catalog
	saves   int
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Save keeps a copy of the catalog.
func (s *SnapshotStore) Save(_ context.Context, catalog *domain.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := domain.NewCatalog()
	for _, repo := range catalog.Repositories() {
		clone.Add(repo)
	}
	s.catalog = clone
	s.saves++
	return nil
}

// Path identifies the store in logs.
func (s *SnapshotStore) Path() string {
	return "memory://snapshot"
}

// Saves returns how many times Save was called.
func (s *SnapshotStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Catalog returns the catalog recorded by the last Save, or nil.
func (s *SnapshotStore) Catalog() *domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}
