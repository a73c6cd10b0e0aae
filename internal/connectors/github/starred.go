package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/stargazer/internal/core/domain"
)

// FetchStarred lists username's stars and builds a catalog in API order.
func FetchStarred(ctx context.Context, client *Client, username string) (*domain.Catalog, error) {
	starred, err := client.ListStarred(ctx, username)
	if err != nil {
		return nil, err
	}

	catalog := domain.NewCatalog()
	for _, s := range starred {
		repo := s.GetRepository()
		if repo == nil || repo.GetFullName() == "" {
			continue
		}
		catalog.Add(toRepository(repo, client.opts.WebBaseURL))
	}
	return catalog, nil
}

// toRepository keeps the fields the document needs. A null description
// becomes the empty string.
func toRepository(r *gh.Repository, webBase string) domain.Repository {
	url := r.GetHTMLURL()
	if url == "" {
		url = RepoWebURL(webBase, r.GetFullName())
	}
	return domain.Repository{
		FullName:    r.GetFullName(),
		URL:         url,
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
	}
}
