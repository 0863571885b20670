// Package s3 provides a read-only S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "pictures/")
//
// # Features
//
//   - Range reads, so decoding an image header fetches only its first bytes
//   - Delimited listing: one level of a "directory" per List call
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
