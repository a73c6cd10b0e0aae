package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// snapshotEntry is the record stored per repository.
type snapshotEntry struct {
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Listed      bool   `json:"listed"`
	Stars       int    `json:"stars"`
}

// SnapshotStore writes the catalog to a JSON file.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a snapshot store for path.
// If path is empty, defaults to domain.DefaultSnapshotPath.
func NewSnapshotStore(path string) *SnapshotStore {
	if path == "" {
		path = domain.DefaultSnapshotPath
	}
	return &SnapshotStore{path: path}
}

// Save writes the catalog, replacing any previous snapshot.
func (s *SnapshotStore) Save(ctx context.Context, catalog *domain.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeSnapshot(catalog)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	return writeFile(s.path, data)
}

// Path returns the snapshot file path.
func (s *SnapshotStore) Path() string {
	return s.path
}

// encodeSnapshot renders the catalog as an ordered JSON object.
// encoding/json sorts map keys, so the object is assembled by hand.
// The snapshot is written before lists are read, so listed is always false.
func encodeSnapshot(catalog *domain.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, repo := range catalog.Repositories() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeValue(repo.FullName)
		if err != nil {
			return nil, err
		}
		val, err := encodeValue(snapshotEntry{
			HTMLURL:     repo.URL,
			Description: repo.Description,
			Listed:      false,
			Stars:       repo.Stars,
		})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "    "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// encodeValue marshals v without escaping <, > and &.
func encodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// writeFile replaces path with data, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
