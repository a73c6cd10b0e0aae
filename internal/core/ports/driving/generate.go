package driving

import (
	"context"

	"github.com/custodia-labs/stargazer/internal/core/domain"
)

// Generator produces the starred-repositories document.
type Generator interface {
	// Generate fetches stars and lists, renders the document and writes it.
	Generate(ctx context.Context) (*domain.GenerateResult, error)

	// Lists discovers the account's star lists and counts their members.
	Lists(ctx context.Context) ([]domain.ListSummary, error)
}
