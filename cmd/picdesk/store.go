package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/picdesk/blobstore"
	minioblob "github.com/hupe1980/picdesk/blobstore/minio"
	s3blob "github.com/hupe1980/picdesk/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// openStore creates the blob store selected by cfg.Backend.
func openStore(ctx context.Context, cfg Config) (blobstore.BlobStore, error) {
	switch cfg.Backend {
	case "", "local":
		return blobstore.NewLocalStore(cfg.Local.Root), nil
	case "minio":
		if cfg.MinIO.Bucket == "" {
			return nil, fmt.Errorf("minio backend: bucket is required")
		}
		client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.Secure,
		})
		if err != nil {
			return nil, fmt.Errorf("minio backend: %w", err)
		}
		return minioblob.NewStore(client, cfg.MinIO.Bucket, cfg.MinIO.Prefix), nil
	case "s3":
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("s3 backend: bucket is required")
		}
		var optFns []func(*config.LoadOptions) error
		if cfg.S3.Region != "" {
			optFns = append(optFns, config.WithRegion(cfg.S3.Region))
		}
		awsCfg, err := config.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			return nil, fmt.Errorf("s3 backend: %w", err)
		}
		return s3blob.NewStore(awss3.NewFromConfig(awsCfg), cfg.S3.Bucket, cfg.S3.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown backend %q: want local, minio or s3", cfg.Backend)
	}
}
