package imagefile

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hupe1980/picdesk"
	"github.com/hupe1980/picdesk/blobstore"
	"github.com/hupe1980/picdesk/scan"
	"github.com/hupe1980/picdesk/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	*blobstore.MemoryStore
	opens atomic.Int64
}

func (s *countingStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	s.opens.Add(1)
	return s.MemoryStore.Open(ctx, name)
}

func newStore(t *testing.T) *countingStore {
	t.Helper()
	ctx := context.Background()
	s := &countingStore{MemoryStore: blobstore.NewMemoryStore()}
	require.NoError(t, s.Put(ctx, "album/a.png", testutil.PNG(4, 3)))
	require.NoError(t, s.Put(ctx, "album/b.jpg", testutil.JPEG(8, 6)))
	require.NoError(t, s.Put(ctx, "album/c.gif", testutil.GIF(2, 5)))
	require.NoError(t, s.Put(ctx, "album/broken.png", []byte("not an image")))
	require.NoError(t, s.Put(ctx, "album/empty.png", nil))
	return s
}

func TestMaterialize(t *testing.T) {
	store := newStore(t)
	m, err := NewMaterializer(store)
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		source string
		format string
		w, h   int
	}{
		{"album/a.png", "png", 4, 3},
		{"album/b.jpg", "jpeg", 8, 6},
		{"album/c.gif", "gif", 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			item, err := m.Materialize(ctx, tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.source, item.Key)
			assert.Equal(t, tt.format, item.Data.Format)
			assert.Equal(t, tt.w, item.Data.Width)
			assert.Equal(t, tt.h, item.Data.Height)
			assert.Positive(t, item.Data.Size)
		})
	}

	t.Run("Broken", func(t *testing.T) {
		_, err := m.Materialize(ctx, "album/broken.png")
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := m.Materialize(ctx, "album/empty.png")
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := m.Materialize(ctx, "album/missing.png")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})
}

func TestMaterializeCache(t *testing.T) {
	store := newStore(t)
	m, err := NewMaterializer(store, WithCache(8))
	require.NoError(t, err)
	ctx := context.Background()

	first, err := m.Materialize(ctx, "album/a.png")
	require.NoError(t, err)
	second, err := m.Materialize(ctx, "album/a.png")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), store.opens.Load())

	m.Purge()
	_, err = m.Materialize(ctx, "album/a.png")
	require.NoError(t, err)
	assert.Equal(t, int64(2), store.opens.Load())

	// failures are not cached
	_, err = m.Materialize(ctx, "album/broken.png")
	require.Error(t, err)
	_, err = m.Materialize(ctx, "album/broken.png")
	require.Error(t, err)
	assert.Equal(t, int64(4), store.opens.Load())
}

func TestMaterializeRateLimit(t *testing.T) {
	m, err := NewMaterializer(newStore(t), WithRateLimit(0.001, 1))
	require.NoError(t, err)

	_, err = m.Materialize(context.Background(), "album/a.png")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = m.Materialize(ctx, "album/b.jpg")
	assert.Error(t, err)
}

func TestLoadFromDirectory(t *testing.T) {
	store := newStore(t)
	m, err := NewMaterializer(store)
	require.NoError(t, err)

	ix, err := picdesk.New[ImageFile](m, picdesk.WithScanner(scan.New(store)))
	require.NoError(t, err)
	require.NoError(t, ix.LoadFromDirectory(context.Background(), "album"))

	// broken.png and empty.png are dropped
	require.Equal(t, 3, ix.Len())
	require.Equal(t, 1, ix.SectionCount())

	var names []string
	for _, it := range ix.Items() {
		names = append(names, it.Data.Name)
	}
	assert.Equal(t, []string{"a.png", "b.jpg", "c.gif"}, names)
}
