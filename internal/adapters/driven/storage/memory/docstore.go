package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Templates and documents share one path namespace, like a filesystem.
type DocumentStore struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		files: make(map[string]string),
	}
}

// ReadTemplate returns the content stored at path.
func (s *DocumentStore) ReadTemplate(_ context.Context, path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[path]
	if !ok {
		return "", domain.ErrNotFound
	}
	return content, nil
}

// WriteDocument stores content at path, replacing what was there.
func (s *DocumentStore) WriteDocument(_ context.Context, path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = content
	return nil
}

// Get returns the content at path.
func (s *DocumentStore) Get(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[path]
	return content, ok
}
