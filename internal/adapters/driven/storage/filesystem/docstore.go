package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore reads templates from and writes documents to local files.
type DocumentStore struct{}

// NewDocumentStore creates a file-backed document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// ReadTemplate returns the file content at path.
func (s *DocumentStore) ReadTemplate(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: template %s", domain.ErrNotFound, path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteDocument overwrites path with content.
func (s *DocumentStore) WriteDocument(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeFile(path, []byte(content))
}
