package blobstore

import (
	"context"
	"io"
	"os"
	"path"
	"strings"
)

// ErrNotFound is returned when a blob or directory does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for browsing and reading blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// List returns the entries directly inside dir, sorted by name.
	// Entries of nested directories are not included.
	List(ctx context.Context, dir string) ([]Entry, error)
}

// Entry describes one element of a directory listing.
type Entry struct {
	// Name is the full slash-separated name relative to the store root.
	Name string
	// Size is the blob size in bytes. Zero for directories.
	Size int64
	// Dir is set for directories (or common prefixes on object stores).
	Dir bool
}

// Base returns the last element of the entry name.
func (e Entry) Base() string {
	return path.Base(e.Name)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	// ReadAt reads len(p) bytes starting at off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange returns a reader for length bytes starting at off.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	// This is a zero-copy operation if supported.
	Bytes() ([]byte, error)
}

// Clean normalizes a directory name to the form used by the stores:
// slash-separated, no leading or trailing slash, "" for the root.
func Clean(dir string) string {
	dir = strings.Trim(path.Clean("/"+dir), "/")
	return dir
}

// Join joins a cleaned directory and a base name.
func Join(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
