package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "photos", "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "photos", "b.png"), []byte("0123456789"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "photos", "a.jpg"), []byte("hello world"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "photos", "nested", "c.gif"), []byte("x"), 0o600))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		entries, err := store.List(ctx, "/photos/")
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Name: "photos/a.jpg", Size: 11},
			{Name: "photos/b.png", Size: 10},
			{Name: "photos/nested", Dir: true},
		}, entries)
	})

	t.Run("ListMissing", func(t *testing.T) {
		_, err := store.List(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ListCanceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.List(cctx, "photos")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("OpenRead", func(t *testing.T) {
		blob, err := store.Open(ctx, "photos/a.jpg")
		require.NoError(t, err)
		defer blob.Close()

		require.Equal(t, int64(11), blob.Size())

		buf := make([]byte, 5)
		n, err := blob.ReadAt(ctx, buf, 6)
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Equal(t, "world", string(buf))

		data, err := blob.(Mappable).Bytes()
		require.NoError(t, err)
		assert.Equal(t, "hello world", string(data))
	})

	t.Run("ReadRangeBoundaries", func(t *testing.T) {
		blob, err := store.Open(ctx, "photos/b.png")
		require.NoError(t, err)
		defer blob.Close()

		r, err := blob.ReadRange(ctx, 0, 10)
		require.NoError(t, err)
		content, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, "0123456789", string(content))

		r, err = blob.ReadRange(ctx, 8, 5)
		require.NoError(t, err)
		content, err = io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, "89", string(content))

		_, err = blob.ReadRange(ctx, 20, 5)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("OpenMissing", func(t *testing.T) {
		_, err := store.Open(ctx, "photos/missing.png")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
