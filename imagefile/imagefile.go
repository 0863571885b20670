package imagefile

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path"

	// Registered image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hupe1980/picdesk"
	"github.com/hupe1980/picdesk/blobstore"
	"golang.org/x/time/rate"
)

// ErrEmpty is returned for zero-length sources.
var ErrEmpty = errors.New("imagefile: empty source")

// ImageFile is the payload of a materialized image item.
type ImageFile struct {
	// Name is the base name of the source.
	Name string
	// Format is the decoder name, e.g. "png".
	Format string
	Width  int
	Height int
	// Size is the file size in bytes.
	Size int64
}

func (f ImageFile) String() string {
	return fmt.Sprintf("%s (%s %dx%d, %d bytes)", f.Name, f.Format, f.Width, f.Height, f.Size)
}

// Materializer decodes image headers from a blob store.
// It is safe for concurrent use.
type Materializer struct {
	store   blobstore.BlobStore
	cache   *lru.Cache[string, ImageFile]
	limiter *rate.Limiter
}

var _ picdesk.Materializer[ImageFile] = (*Materializer)(nil)

type options struct {
	cacheSize int
	limit     rate.Limit
	burst     int
}

// Option configures a Materializer.
type Option func(*options)

// WithCache keeps up to size decoded headers keyed by source. Sources are
// assumed immutable while cached.
func WithCache(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithRateLimit bounds blob store reads to perSecond opens with the given burst.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *options) {
		o.limit = rate.Limit(perSecond)
		o.burst = burst
	}
}

// NewMaterializer creates a Materializer reading from store.
func NewMaterializer(store blobstore.BlobStore, optFns ...Option) (*Materializer, error) {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}

	m := &Materializer{store: store}
	if o.cacheSize > 0 {
		cache, err := lru.New[string, ImageFile](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("imagefile: create cache: %w", err)
		}
		m.cache = cache
	}
	if o.limit > 0 {
		m.limiter = rate.NewLimiter(o.limit, max(o.burst, 1))
	}
	return m, nil
}

// Materialize implements picdesk.Materializer. The item key is the source.
func (m *Materializer) Materialize(ctx context.Context, source string) (picdesk.Item[ImageFile], error) {
	if m.cache != nil {
		if cached, ok := m.cache.Get(source); ok {
			return picdesk.Item[ImageFile]{Key: source, Data: cached}, nil
		}
	}

	f, err := m.decode(ctx, source)
	if err != nil {
		return picdesk.Item[ImageFile]{}, fmt.Errorf("imagefile: %s: %w", source, err)
	}

	if m.cache != nil {
		m.cache.Add(source, f)
	}
	return picdesk.Item[ImageFile]{Key: source, Data: f}, nil
}

func (m *Materializer) decode(ctx context.Context, source string) (ImageFile, error) {
	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return ImageFile{}, err
		}
	}

	blob, err := m.store.Open(ctx, source)
	if err != nil {
		return ImageFile{}, err
	}
	defer func() { _ = blob.Close() }()

	if blob.Size() == 0 {
		return ImageFile{}, ErrEmpty
	}

	r, err := blob.ReadRange(ctx, 0, blob.Size())
	if err != nil {
		return ImageFile{}, err
	}
	defer func() { _ = r.Close() }()

	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return ImageFile{}, err
	}

	return ImageFile{
		Name:   path.Base(source),
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   blob.Size(),
	}, nil
}

// Purge drops all cached headers.
func (m *Materializer) Purge() {
	if m.cache != nil {
		m.cache.Purge()
	}
}
