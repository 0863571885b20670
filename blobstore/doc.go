// Package blobstore provides the storage abstraction picdesk scans and
// materializes images from.
//
// A BlobStore exposes a directory-like namespace of read-only blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with mmap support
//   - MemoryStore: in-memory blobs for tests
//   - minio.Store: MinIO and other S3-compatible servers
//   - s3.Store: Amazon S3 with range reads and paginated listing
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)        // Open for reading
//	    List(ctx, dir) ([]Entry, error)      // One directory level
//	}
//
// Names always use forward slashes, relative to the store root.
package blobstore
