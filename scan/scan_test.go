package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/picdesk/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsImage(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.png", true},
		{"a.PNG", true},
		{"b.jpg", true},
		{"c.jpeg", true},
		{"d.gif", true},
		{"notes.txt", false},
		{"archive.tar.gz", false},
		{"README", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImage(tt.name))
		})
	}
}

func TestScanMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	for _, name := range []string{
		"album/c.gif",
		"album/a.png",
		"album/b.jpg",
		"album/.hidden.png",
		"album/notes.txt",
		"album/sub/d.png",
	} {
		require.NoError(t, store.Put(ctx, name, []byte("x")))
	}

	sources, err := New(store).Scan(ctx, "album")
	require.NoError(t, err)
	assert.Equal(t, []string{"album/a.png", "album/b.jpg", "album/c.gif"}, sources)
}

func TestScanLocalStore(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "album")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "folder.png"), 0o755))
	for _, name := range []string{"2.png", "1.jpeg", ".DS_Store", "readme.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	sources, err := New(blobstore.NewLocalStore(root)).Scan(context.Background(), "album")
	require.NoError(t, err)
	assert.Equal(t, []string{"album/1.jpeg", "album/2.png"}, sources)
}

func TestScanWithFilter(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "a.png", []byte("x")))
	require.NoError(t, store.Put(ctx, "b.txt", []byte("x")))

	s := New(store, WithFilter(func(name string) bool { return strings.HasSuffix(name, ".txt") }))
	sources, err := s.Scan(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, sources)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := New(blobstore.NewMemoryStore()).Scan(context.Background(), "missing")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
