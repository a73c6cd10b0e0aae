package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/logger"
)

// memberPattern matches one repository heading on a list page.
var memberPattern = regexp.MustCompile(
	`<h2 class="h3">\s*<a href="[^"]*">\s*<span class="text-normal">(\S+) / </span>(\S+)\s*</a>\s*</h2>`)

// listPattern matches a list link and the heading holding its name on the
// stars tab. The username is substituted at %s.
const listPattern = `(?s)href="/stars/%s/lists/(\S+)"[\s\S]*?<h3 class=".*?">(.*?)</h3>`

// Scraper reads star lists from GitHub's HTML pages. There is no public
// REST endpoint for lists, so the patterns above track the site's markup:
// when the markup changes, results silently shrink instead of failing.
type Scraper struct {
	http        *http.Client
	opts        Options
	rateLimiter *RateLimiter
}

// NewScraper creates a scraper. A nil limiter disables throttling.
func NewScraper(httpClient *http.Client, opts Options, limiter *RateLimiter) *Scraper {
	opts = opts.withDefaults()
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if limiter == nil {
		limiter = NewRateLimiter(0)
	}
	return &Scraper{
		http:        httpClient,
		opts:        opts,
		rateLimiter: limiter,
	}
}

// DiscoverLists returns the (id, name) pairs on username's stars tab in
// document order. Names are trimmed.
func (s *Scraper) DiscoverLists(ctx context.Context, username string) ([]domain.StarList, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	page, err := s.fetch(ctx, StarsTabURL(s.opts.WebBaseURL, username))
	if err != nil {
		return nil, err
	}

	lists := parseLists(page, username)
	if len(lists) == 0 {
		logger.Debug("no star lists found for %s", username)
	}
	return lists, nil
}

// ListMembers walks page=1,2,... of a list until a page has no repositories.
// An empty page is indistinguishable from a markup change.
func (s *Scraper) ListMembers(ctx context.Context, username, listID string) ([]domain.RepoRef, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	var members []domain.RepoRef
	for page := 1; ; page++ {
		body, err := s.fetch(ctx, ListPageURL(s.opts.WebBaseURL, username, listID, page))
		if err != nil {
			return nil, err
		}

		refs := parseMembers(body)
		if len(refs) == 0 {
			break
		}
		members = append(members, refs...)
		logger.Debug("list %s page %d: %d repositories", listID, page, len(refs))
	}
	return members, nil
}

// fetch GETs a page and returns its body. Non-2xx statuses are PageErrors.
func (s *Scraper) fetch(ctx context.Context, pageURL string) (string, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &PageError{StatusCode: resp.StatusCode, URL: pageURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", pageURL, err)
	}
	return string(body), nil
}

func parseLists(page, username string) []domain.StarList {
	re, err := regexp.Compile(fmt.Sprintf(listPattern, regexp.QuoteMeta(username)))
	if err != nil {
		return []domain.StarList{}
	}

	matches := re.FindAllStringSubmatch(page, -1)
	lists := make([]domain.StarList, 0, len(matches))
	for _, m := range matches {
		lists = append(lists, domain.StarList{ID: m[1], Name: strings.TrimSpace(m[2])})
	}
	return lists
}

func parseMembers(page string) []domain.RepoRef {
	matches := memberPattern.FindAllStringSubmatch(page, -1)
	refs := make([]domain.RepoRef, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, domain.RepoRef{Owner: m[1], Name: m[2]})
	}
	return refs
}
