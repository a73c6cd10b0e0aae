package domain

// AuthMethod identifies how API requests are authenticated.
type AuthMethod string

// Supported authentication methods.
const (
	// AuthMethodPAT is a personal access token sent as a bearer token.
	AuthMethodPAT AuthMethod = "pat"

	// AuthMethodNone sends no credentials. Only the HTML pages work without auth.
	AuthMethodNone AuthMethod = "none"
)
