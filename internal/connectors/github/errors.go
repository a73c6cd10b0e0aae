package github

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrEmptyUsername indicates a scrape was requested without an account.
var ErrEmptyUsername = errors.New("github: username is required")

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// APIError represents a GitHub REST API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// PageError represents a non-success response for a scraped HTML page.
type PageError struct {
	StatusCode int
	URL        string
}

func (e *PageError) Error() string {
	return fmt.Sprintf("github: page %s returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// statusCode extracts the HTTP status from an APIError or PageError.
func statusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var pageErr *PageError
	if errors.As(err, &pageErr) {
		return pageErr.StatusCode
	}
	return 0
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr) || statusCode(err) == http.StatusTooManyRequests
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	return statusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error indicates a forbidden resource.
func IsForbidden(err error) bool {
	return statusCode(err) == http.StatusForbidden
}
