package driven

import (
	"context"

	"github.com/custodia-labs/stargazer/internal/core/domain"
)

// StarSource fetches an account's starred repositories.
type StarSource interface {
	// FetchStarred returns every starred repository, in the order the host
	// reports them. Any failed page aborts the whole fetch.
	FetchStarred(ctx context.Context, username string) (*domain.Catalog, error)
}

// ListSource discovers the star lists an account has created.
type ListSource interface {
	// DiscoverLists returns lists in display order.
	// An account without lists yields an empty slice and no error.
	DiscoverLists(ctx context.Context, username string) ([]domain.StarList, error)
}

// MembershipSource resolves a list to the repositories it contains.
// Implementations may scrape HTML or call an API; callers must not care which.
type MembershipSource interface {
	// ListMembers returns the list's repositories in list order.
	// Each call returns a fresh result.
	ListMembers(ctx context.Context, username, listID string) ([]domain.RepoRef, error)
}

// CredentialValidator is implemented by sources that can check their
// credentials before any work starts.
type CredentialValidator interface {
	// Validate returns domain.ErrAuthInvalid when the host rejects the
	// credentials.
	Validate(ctx context.Context) error
}
