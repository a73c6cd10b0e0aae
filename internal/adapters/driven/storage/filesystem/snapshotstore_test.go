package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stargazer/internal/core/domain"
)

func sampleCatalog() *domain.Catalog {
	catalog := domain.NewCatalog()
	catalog.Add(domain.Repository{FullName: "z/last", URL: "https://github.com/z/last", Description: "Zed <b>&</b> ünïcode", Stars: 1})
	catalog.Add(domain.Repository{FullName: "a/first", URL: "https://github.com/a/first", Stars: 42})
	return catalog
}

func TestNewSnapshotStore_DefaultPath(t *testing.T) {
	assert.Equal(t, domain.DefaultSnapshotPath, NewSnapshotStore("").Path())
}

func TestSnapshotStore_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := NewSnapshotStore(path)

	err := store.Save(context.Background(), sampleCatalog())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `{
    "z/last": {
        "html_url": "https://github.com/z/last",
        "description": "Zed <b>&</b> ünïcode",
        "listed": false,
        "stars": 1
    },
    "a/first": {
        "html_url": "https://github.com/a/first",
        "description": "",
        "listed": false,
        "stars": 42
    }
}`
	assert.Equal(t, want, string(data))
}

func TestSnapshotStore_SaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := NewSnapshotStore(path)

	require.NoError(t, store.Save(context.Background(), domain.NewCatalog()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestSnapshotStore_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "data.json")
	store := NewSnapshotStore(path)

	require.NoError(t, store.Save(context.Background(), sampleCatalog()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSnapshotStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := NewSnapshotStore(path)
	require.NoError(t, store.Save(context.Background(), sampleCatalog()))

	small := domain.NewCatalog()
	small.Add(domain.Repository{FullName: "only/one"})
	require.NoError(t, store.Save(context.Background(), small))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"only/one"`)
	assert.NotContains(t, string(data), `"z/last"`)
}

func TestSnapshotStore_CancelledContext(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "data.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, sampleCatalog()), context.Canceled)
	_, err := os.Stat(store.Path())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
