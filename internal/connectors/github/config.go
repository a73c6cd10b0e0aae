package github

import (
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/stargazer/internal/core/domain"
)

// DefaultUserAgent identifies Stargazer to GitHub.
const DefaultUserAgent = "stargazer"

// Options holds the connection settings for the GitHub connector.
type Options struct {
	// APIBaseURL is the REST API root. Default: https://api.github.com/
	APIBaseURL string

	// WebBaseURL is the site root used for scraping. Default: https://github.com
	WebBaseURL string

	// RequestRate caps requests per second across REST and scraping.
	// Zero disables throttling.
	RequestRate float64

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string
}

// OptionsFromConfig extracts connector options from the run configuration.
func OptionsFromConfig(cfg domain.Config) Options {
	return Options{
		APIBaseURL:  cfg.APIBaseURL,
		WebBaseURL:  cfg.WebBaseURL,
		RequestRate: cfg.RequestRate,
		Timeout:     cfg.Timeout,
	}.withDefaults()
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.APIBaseURL == "" {
		o.APIBaseURL = domain.DefaultAPIBaseURL
	}
	if o.WebBaseURL == "" {
		o.WebBaseURL = domain.DefaultWebBaseURL
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	o.WebBaseURL = strings.TrimSuffix(o.WebBaseURL, "/")
	return o
}

// apiBaseURL parses APIBaseURL, ensuring the trailing slash go-github requires.
func (o Options) apiBaseURL() (*url.URL, error) {
	u, err := url.Parse(o.APIBaseURL)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}
