// Package scan lists the image files of one directory in a blob store.
//
// A Scanner satisfies picdesk.Scanner:
//
//	store := blobstore.NewLocalStore("/srv/pictures")
//	ix, err := picdesk.New(m, picdesk.WithScanner(scan.New(store)))
//	err = ix.LoadFromDirectory(ctx, "2024/holiday")
package scan

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/hupe1980/picdesk/blobstore"
)

// Scanner lists image sources in a blob store directory.
type Scanner struct {
	store  blobstore.BlobStore
	accept func(name string) bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithFilter replaces the default image filter. accept receives the base
// name of every non-hidden file.
func WithFilter(accept func(name string) bool) Option {
	return func(s *Scanner) {
		s.accept = accept
	}
}

// New creates a Scanner over store.
func New(store blobstore.BlobStore, opts ...Option) *Scanner {
	s := &Scanner{
		store:  store,
		accept: IsImage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns the names of the image files directly inside dir, sorted by
// name. Subdirectories and names starting with "." are skipped.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]string, error) {
	entries, err := s.store.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", dir, err)
	}

	sources := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Dir {
			continue
		}
		base := e.Base()
		if strings.HasPrefix(base, ".") || !s.accept(base) {
			continue
		}
		sources = append(sources, e.Name)
	}
	return sources, nil
}

// IsImage reports whether name has an extension registered for an image
// media type.
func IsImage(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return false
	}
	return strings.HasPrefix(mime.TypeByExtension(ext), "image/")
}
