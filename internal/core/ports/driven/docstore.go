package driven

import (
	"context"

	"github.com/custodia-labs/stargazer/internal/core/domain"
)

// SnapshotStore persists the raw metadata of a run.
type SnapshotStore interface {
	// Save writes the catalog, overwriting any previous snapshot.
	// The snapshot is taken before lists are read, so every entry is
	// recorded as unlisted.
	Save(ctx context.Context, catalog *domain.Catalog) error

	// Path returns where the snapshot lives.
	Path() string
}

// DocumentStore reads templates and writes rendered documents.
type DocumentStore interface {
	// ReadTemplate returns the template text at path.
	ReadTemplate(ctx context.Context, path string) (string, error)

	// WriteDocument replaces the file at path with content.
	WriteDocument(ctx context.Context, path, content string) error
}
