// Package minio provides a read-only BlobStore implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. The store
// works with MinIO and other S3-compatible systems like Ceph, SeaweedFS and
// Garage, so an image collection can be browsed straight from a bucket.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "pictures/")
//	m, err := imagefile.NewMaterializer(store)
//	ix, err := picdesk.New[imagefile.ImageFile](m, picdesk.WithScanner(scan.New(store)))
//
// Directories are object key prefixes delimited by "/". Listing a directory
// returns the objects directly below it plus one entry per common prefix.
package minio
