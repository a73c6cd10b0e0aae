package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
	"github.com/custodia-labs/stargazer/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// PerPage is the page size requested from list endpoints (the API maximum).
	PerPage = 100
)

// Client wraps the go-github client with helper methods.
type Client struct {
	gh            *gh.Client
	opts          Options
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
}

// NewClient creates a new GitHub API client with a token provider.
// The underlying HTTP client is built on first use.
func NewClient(tokenProvider driven.TokenProvider, opts Options, limiter *RateLimiter) *Client {
	opts = opts.withDefaults()
	if limiter == nil {
		limiter = NewRateLimiter(opts.RequestRate)
	}
	return &Client{
		opts:          opts,
		tokenProvider: tokenProvider,
		rateLimiter:   limiter,
	}
}

// ensureClient initializes the go-github client if not already done.
// This is called lazily so we can get the token when needed.
func (c *Client) ensureClient(ctx context.Context) error {
	if c.gh != nil {
		return nil
	}
	if c.tokenProvider == nil {
		return errors.New("no token provider configured")
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}

	var tc *http.Client
	if token == "" {
		tc = &http.Client{}
	} else {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc = oauth2.NewClient(ctx, ts)
	}
	tc.Timeout = c.opts.Timeout

	return c.configure(gh.NewClient(tc))
}

// configure points a go-github client at the configured API root.
func (c *Client) configure(client *gh.Client) error {
	base, err := c.opts.apiBaseURL()
	if err != nil {
		return fmt.Errorf("parse API base URL: %w", err)
	}
	client.BaseURL = base
	client.UserAgent = c.opts.UserAgent
	c.gh = client
	return nil
}

// ListStarred returns every repository username has starred, following
// the Link header until there is no next page. An empty username lists the
// authenticated user's stars.
func (c *Client) ListStarred(ctx context.Context, username string) ([]*gh.StarredRepository, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	var all []*gh.StarredRepository

	opts := &gh.ActivityListStarredOptions{
		ListOptions: gh.ListOptions{PerPage: PerPage},
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		starred, resp, err := c.gh.Activity.ListStarred(ctx, username, opts)
		if err != nil {
			return nil, c.wrapError(err, "list starred")
		}

		c.updateRateLimitFromResponse(resp)
		all = append(all, starred...)
		logger.Debug("starred page %d: %d repositories (quota remaining %d)",
			pageNumber(opts.Page), len(starred), c.rateLimiter.Remaining())

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// ValidateCredentials checks if the configured token is valid by making an API call.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	if err := c.ensureClient(ctx); err != nil {
		return err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	_, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return c.wrapError(err, "validate credentials")
	}

	c.updateRateLimitFromResponse(resp)
	return nil
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Check for rate limit error
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	// Check for GitHub error response
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return fmt.Errorf("%s: %w", operation, apiErr)
	}

	return fmt.Errorf("%s: %w", operation, err)
}

func pageNumber(page int) int {
	if page == 0 {
		return 1
	}
	return page
}
