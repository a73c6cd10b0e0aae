package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
)

// Ensure SourceStore implements the interfaces.
var (
	_ driven.StarSource       = (*SourceStore)(nil)
	_ driven.ListSource       = (*SourceStore)(nil)
	_ driven.MembershipSource = (*SourceStore)(nil)
)

// SourceStore is an in-memory implementation of the star, list and
// membership sources, keyed by username.
type SourceStore struct {
	mu      sync.RWMutex
	starred map[string][]domain.Repository
	lists   map[string][]domain.StarList
	members map[string][]domain.RepoRef
}

// NewSourceStore creates a new in-memory source store.
func NewSourceStore() *SourceStore {
	return &SourceStore{
		starred: make(map[string][]domain.Repository),
		lists:   make(map[string][]domain.StarList),
		members: make(map[string][]domain.RepoRef),
	}
}

// AddStarred appends starred repositories for a user.
func (s *SourceStore) AddStarred(username string, repos ...domain.Repository) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starred[username] = append(s.starred[username], repos...)
}

// AddList appends a list for a user together with its members.
func (s *SourceStore) AddList(username string, list domain.StarList, members ...domain.RepoRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[username] = append(s.lists[username], list)
	key := memberKey(username, list.ID)
	s.members[key] = append(s.members[key], members...)
}

// FetchStarred returns the user's starred repositories in insertion order.
func (s *SourceStore) FetchStarred(ctx context.Context, username string) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	catalog := domain.NewCatalog()
	for _, repo := range s.starred[username] {
		catalog.Add(repo)
	}
	return catalog, nil
}

// DiscoverLists returns the user's lists in insertion order.
func (s *SourceStore) DiscoverLists(ctx context.Context, username string) ([]domain.StarList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := slices.Clone(s.lists[username])
	if result == nil {
		result = []domain.StarList{}
	}
	return result, nil
}

// ListMembers returns a copy of the list's members.
func (s *SourceStore) ListMembers(ctx context.Context, username, listID string) ([]domain.RepoRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.members[memberKey(username, listID)]), nil
}

func memberKey(username, listID string) string {
	return username + "\x00" + listID
}
