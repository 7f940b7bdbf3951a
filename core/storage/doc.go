// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the handful of operations the generator
// needs to publish configuration files to a bucket. Both AWS S3 and self-hosted
// MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the target bucket.
//   - StatObject: Check whether a published file exists.
//   - PutObject: Upload a file.
//   - RemoveObject: Delete a stale file.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "yastm")
package storage
