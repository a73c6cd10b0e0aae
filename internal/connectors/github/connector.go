package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
)

// Ensure Connector implements the interfaces.
var (
	_ driven.CredentialValidator = (*Connector)(nil)
	_ driven.StarSource          = (*Connector)(nil)
	_ driven.ListSource          = (*Connector)(nil)
	_ driven.MembershipSource    = (*Connector)(nil)
)

// Connector reads stars through the REST API and lists through the website.
// Both halves share one rate limiter so the run stays strictly sequential
// and evenly paced.
type Connector struct {
	client  *Client
	scraper *Scraper
}

// New creates a new GitHub connector.
func New(opts Options, tokenProvider driven.TokenProvider) *Connector {
	opts = opts.withDefaults()
	limiter := NewRateLimiter(opts.RequestRate)
	return &Connector{
		client:  NewClient(tokenProvider, opts, limiter),
		scraper: NewScraper(&http.Client{Timeout: opts.Timeout}, opts, limiter),
	}
}

// Validate checks the token by making an authenticated API call.
func (c *Connector) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.client.ValidateCredentials(ctx); err != nil {
		if IsUnauthorized(err) {
			return fmt.Errorf("%w: %w", domain.ErrAuthInvalid, err)
		}
		return fmt.Errorf("%w: %w", domain.ErrAuthRequired, err)
	}
	return nil
}

// FetchStarred returns every starred repository of username.
func (c *Connector) FetchStarred(ctx context.Context, username string) (*domain.Catalog, error) {
	catalog, err := FetchStarred(ctx, c.client, username)
	if err != nil {
		if IsUnauthorized(err) {
			return nil, fmt.Errorf("%w: %w", domain.ErrAuthInvalid, err)
		}
		return nil, err
	}
	return catalog, nil
}

// DiscoverLists returns username's star lists.
func (c *Connector) DiscoverLists(ctx context.Context, username string) ([]domain.StarList, error) {
	return c.scraper.DiscoverLists(ctx, username)
}

// ListMembers returns the repositories in one of username's lists.
func (c *Connector) ListMembers(ctx context.Context, username, listID string) ([]domain.RepoRef, error) {
	return c.scraper.ListMembers(ctx, username, listID)
}
