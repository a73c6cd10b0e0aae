package auth

import (
	"context"
	"errors"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
)

// Ensure PATProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*PATProvider)(nil)

// PATProvider provides a static Personal Access Token.
// PATs don't expire and don't require refresh.
type PATProvider struct {
	token string
}

// NewPATProvider creates a token provider for PAT-based authentication.
func NewPATProvider(token string) *PATProvider {
	return &PATProvider{token: token}
}

// GetToken returns the PAT token.
func (p *PATProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", errors.Join(domain.ErrAuthRequired, errors.New("no token configured"))
	}
	return p.token, nil
}

// AuthMethod returns AuthMethodPAT.
func (p *PATProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodPAT
}

// IsAuthenticated returns true if a token is set.
func (p *PATProvider) IsAuthenticated() bool {
	return p.token != ""
}

// ForToken returns a PATProvider for a non-empty token and a
// NullTokenProvider otherwise.
func ForToken(token string) driven.TokenProvider {
	if token == "" {
		return NewNullTokenProvider()
	}
	return NewPATProvider(token)
}
