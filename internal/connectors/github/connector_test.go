package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
)

// mockTokenProvider implements driven.TokenProvider for testing.
type mockTokenProvider struct {
	token string
	err   error
}

func (p *mockTokenProvider) GetToken(_ context.Context) (string, error) {
	return p.token, p.err
}

func (p *mockTokenProvider) AuthMethod() domain.AuthMethod {
	if p.token == "" {
		return domain.AuthMethodNone
	}
	return domain.AuthMethodPAT
}

func (p *mockTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}

const starsTabHTML = `<html><body>
<div id="profile-lists-container">
  <a href="/stars/octo/lists/dev-tools" class="d-block Box-row">
    <div class="d-flex">
      <h3 class="f4 text-bold no-wrap mr-3">  Dev Tools </h3>
    </div>
  </a>
  <a href="/stars/octo/lists/reading" class="d-block Box-row">
    <div class="d-flex">
      <h3 class="f4 text-bold no-wrap mr-3">Reading</h3>
    </div>
  </a>
</div>
</body></html>`

func memberHTML(refs ...string) string {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	for _, ref := range refs {
		owner, name, _ := strings.Cut(ref, "/")
		fmt.Fprintf(&b, `<div class="col-12 d-block">
  <h2 class="h3">
    <a href="/%s/%s">
      <span class="text-normal">%s / </span>%s
    </a>
  </h2>
</div>
`, owner, name, owner, name)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func starredJSON(names ...string) string {
	items := make([]string, 0, len(names))
	for i, name := range names {
		items = append(items, fmt.Sprintf(
			`{"starred_at":"2024-01-01T00:00:00Z","repo":{"full_name":%q,"html_url":"https://github.com/%s","description":"repo %d","stargazers_count":%d}}`,
			name, name, i, (i+1)*10))
	}
	return "[" + strings.Join(items, ",") + "]"
}

// newGitHubServer serves a small slice of the REST API and website.
func newGitHubServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var memberPages atomic.Int32
	mux := http.NewServeMux()

	var srv *httptest.Server
	mux.HandleFunc("/users/octo/starred", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
			return
		}
		assert.Equal(t, "2022-11-28", r.Header.Get("X-GitHub-Api-Version"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(HeaderRateRemaining, "4990")
		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<%s/users/octo/starred?per_page=100&page=2>; rel="next"`, srv.URL))
			_, _ = w.Write([]byte(starredJSON("a/x", "a/y")))
		case "2":
			_, _ = w.Write([]byte(`[{"repo":{"full_name":"b/z","html_url":"https://github.com/b/z","description":null,"stargazers_count":3}}]`))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})
	mux.HandleFunc("/users/gone/starred", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})
	mux.HandleFunc("/octo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "stars", r.URL.Query().Get("tab"))
		_, _ = w.Write([]byte(starsTabHTML))
	})
	mux.HandleFunc("/stars/octo/lists/dev-tools", func(w http.ResponseWriter, r *http.Request) {
		memberPages.Add(1)
		switch r.URL.Query().Get("page") {
		case "1":
			_, _ = w.Write([]byte(memberHTML("a/x", "a/y")))
		case "2":
			_, _ = w.Write([]byte(memberHTML("c/w")))
		default:
			_, _ = w.Write([]byte(memberHTML()))
		}
	})
	mux.HandleFunc("/stars/octo/lists/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &memberPages
}

func testOptions(srv *httptest.Server) Options {
	return Options{
		APIBaseURL: srv.URL,
		WebBaseURL: srv.URL + "/",
	}
}

func TestNew(t *testing.T) {
	t.Run("creates connector", func(t *testing.T) {
		connector := New(Options{}, &mockTokenProvider{token: "test-token"})

		require.NotNil(t, connector)
		assert.NotNil(t, connector.client)
		assert.NotNil(t, connector.scraper)
	})

	t.Run("shares one rate limiter", func(t *testing.T) {
		connector := New(Options{RequestRate: 2}, nil)

		assert.Same(t, connector.client.rateLimiter, connector.scraper.rateLimiter)
	})

	t.Run("implements source interfaces", func(t *testing.T) {
		connector := New(Options{}, nil)
		var _ driven.CredentialValidator = connector
		var _ driven.StarSource = connector
		var _ driven.ListSource = connector
		var _ driven.MembershipSource = connector
	})
}

func TestConnector_FetchStarred(t *testing.T) {
	srv, _ := newGitHubServer(t)

	t.Run("follows pagination in API order", func(t *testing.T) {
		connector := New(testOptions(srv), &mockTokenProvider{token: "test-token"})

		catalog, err := connector.FetchStarred(context.Background(), "octo")

		require.NoError(t, err)
		assert.Equal(t, []string{"a/x", "a/y", "b/z"}, catalog.Names())

		x, ok := catalog.Get("a/x")
		require.True(t, ok)
		assert.Equal(t, "https://github.com/a/x", x.URL)
		assert.Equal(t, "repo 0", x.Description)
		assert.Equal(t, 10, x.Stars)
	})

	t.Run("null description becomes empty", func(t *testing.T) {
		connector := New(testOptions(srv), &mockTokenProvider{token: "test-token"})

		catalog, err := connector.FetchStarred(context.Background(), "octo")

		require.NoError(t, err)
		z, ok := catalog.Get("b/z")
		require.True(t, ok)
		assert.Empty(t, z.Description)
		assert.Equal(t, 3, z.Stars)
	})

	t.Run("records quota headers", func(t *testing.T) {
		connector := New(testOptions(srv), &mockTokenProvider{token: "test-token"})

		_, err := connector.FetchStarred(context.Background(), "octo")

		require.NoError(t, err)
		assert.Equal(t, 4990, connector.client.rateLimiter.Remaining())
	})

	t.Run("bad token is an auth error", func(t *testing.T) {
		connector := New(testOptions(srv), &mockTokenProvider{token: "wrong"})

		_, err := connector.FetchStarred(context.Background(), "octo")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAuthInvalid)
		assert.True(t, IsUnauthorized(err))
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		connector := New(testOptions(srv), &mockTokenProvider{token: "test-token"})

		_, err := connector.FetchStarred(context.Background(), "gone")

		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "list starred")
	})

	t.Run("token provider failure", func(t *testing.T) {
		boom := errors.New("keyring locked")
		connector := New(testOptions(srv), &mockTokenProvider{err: boom})

		_, err := connector.FetchStarred(context.Background(), "octo")

		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil token provider", func(t *testing.T) {
		connector := New(testOptions(srv), nil)

		_, err := connector.FetchStarred(context.Background(), "octo")

		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		connector := New(testOptions(srv), &mockTokenProvider{token: "test-token"})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := connector.FetchStarred(ctx, "octo")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConnector_DiscoverLists(t *testing.T) {
	srv, _ := newGitHubServer(t)
	connector := New(testOptions(srv), nil)

	t.Run("returns lists in page order with trimmed names", func(t *testing.T) {
		lists, err := connector.DiscoverLists(context.Background(), "octo")

		require.NoError(t, err)
		assert.Equal(t, []domain.StarList{
			{ID: "dev-tools", Name: "Dev Tools"},
			{ID: "reading", Name: "Reading"},
		}, lists)
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := connector.DiscoverLists(context.Background(), "")

		assert.ErrorIs(t, err, ErrEmptyUsername)
	})

	t.Run("missing profile is a page error", func(t *testing.T) {
		_, err := connector.DiscoverLists(context.Background(), "nobody")

		var pageErr *PageError
		require.ErrorAs(t, err, &pageErr)
		assert.Equal(t, http.StatusNotFound, pageErr.StatusCode)
		assert.True(t, IsNotFound(err))
	})
}

func TestConnector_ListMembers(t *testing.T) {
	t.Run("reads pages until one is empty", func(t *testing.T) {
		srv, pages := newGitHubServer(t)
		connector := New(testOptions(srv), nil)

		members, err := connector.ListMembers(context.Background(), "octo", "dev-tools")

		require.NoError(t, err)
		assert.Equal(t, []domain.RepoRef{
			{Owner: "a", Name: "x"},
			{Owner: "a", Name: "y"},
			{Owner: "c", Name: "w"},
		}, members)
		assert.Equal(t, int32(3), pages.Load())
	})

	t.Run("repeated calls do not accumulate", func(t *testing.T) {
		srv, _ := newGitHubServer(t)
		connector := New(testOptions(srv), nil)

		first, err := connector.ListMembers(context.Background(), "octo", "dev-tools")
		require.NoError(t, err)
		second, err := connector.ListMembers(context.Background(), "octo", "dev-tools")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("server error aborts", func(t *testing.T) {
		srv, _ := newGitHubServer(t)
		connector := New(testOptions(srv), nil)

		_, err := connector.ListMembers(context.Background(), "octo", "broken")

		var pageErr *PageError
		require.ErrorAs(t, err, &pageErr)
		assert.Equal(t, http.StatusBadGateway, pageErr.StatusCode)
		assert.Contains(t, pageErr.URL, "/stars/octo/lists/broken?page=1")
	})
}

func TestConnector_Validate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"login":"octo"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Run("valid token", func(t *testing.T) {
		connector := New(Options{APIBaseURL: srv.URL}, &mockTokenProvider{token: "test-token"})

		assert.NoError(t, connector.Validate(context.Background()))
	})

	t.Run("invalid token", func(t *testing.T) {
		connector := New(Options{APIBaseURL: srv.URL}, &mockTokenProvider{token: "nope"})

		err := connector.Validate(context.Background())

		assert.ErrorIs(t, err, domain.ErrAuthInvalid)
	})
}

func TestParseLists(t *testing.T) {
	t.Run("username is matched literally", func(t *testing.T) {
		page := `<a href="/stars/a.b/lists/one" class="x"><h3 class="f4">One</h3></a>` +
			`<a href="/stars/aXb/lists/two" class="x"><h3 class="f4">Two</h3></a>`

		lists := parseLists(page, "a.b")

		assert.Equal(t, []domain.StarList{{ID: "one", Name: "One"}}, lists)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		lists := parseLists("<html></html>", "octo")

		assert.NotNil(t, lists)
		assert.Empty(t, lists)
	})
}

func TestParseMembers(t *testing.T) {
	refs := parseMembers(memberHTML("owner/repo.go", "x/y-z"))

	assert.Equal(t, []domain.RepoRef{
		{Owner: "owner", Name: "repo.go"},
		{Owner: "x", Name: "y-z"},
	}, refs)
	assert.Empty(t, parseMembers("<h2>nothing</h2>"))
}

func TestErrorHelpers(t *testing.T) {
	apiErr := func(code int) error {
		return fmt.Errorf("op: %w", &APIError{StatusCode: code, Message: "m"})
	}

	assert.True(t, IsNotFound(apiErr(http.StatusNotFound)))
	assert.True(t, IsNotFound(&PageError{StatusCode: http.StatusNotFound}))
	assert.True(t, IsUnauthorized(apiErr(http.StatusUnauthorized)))
	assert.True(t, IsForbidden(apiErr(http.StatusForbidden)))
	assert.True(t, IsRateLimited(apiErr(http.StatusTooManyRequests)))
	assert.True(t, IsRateLimited(&RateLimitError{}))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsUnauthorized(nil))

	assert.Contains(t, (&PageError{StatusCode: 502, URL: "u"}).Error(), "502 Bad Gateway")
}
