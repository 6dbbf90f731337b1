// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface covering what the
// catalog needs: checking and creating the bucket, reading and writing the
// catalog object and reading its metadata. It works with AWS S3 and self-hosted
// MinIO alike.
//
// # Client Interface
//
// The Client interface makes storage easy to mock in unit tests (see
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks; EnsureBucket combines both.
//   - PutObject: uploads content (with size and options).
//   - GetObject: retrieves content as a stream.
//   - StatObject: reads object metadata such as its ETag.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
