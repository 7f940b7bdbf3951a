package filesync

import (
	"bytes"
	"context"
	"path"

	"yastm-generator/core/storage"

	"github.com/minio/minio-go/v7"
)

const contentTypeTOML = "application/toml"

// Bucket is a Target storing objects under a key prefix.
type Bucket struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketTarget creates a target writing into bucket under prefix.
func NewBucketTarget(client storage.Client, bucket, prefix string) *Bucket {
	return &Bucket{client: client, bucket: bucket, prefix: prefix}
}

func (t *Bucket) key(name string) string {
	return path.Join(t.prefix, name)
}

// Location returns the bucket URL of name.
func (t *Bucket) Location(name string) string {
	return "s3://" + t.bucket + "/" + t.key(name)
}

// Exists reports whether the object is present.
func (t *Bucket) Exists(ctx context.Context, name string) (bool, error) {
	_, err := t.client.StatObject(ctx, t.bucket, t.key(name), minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if storage.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

// Write uploads the object, creating the bucket on first use.
func (t *Bucket) Write(ctx context.Context, name string, data []byte) error {
	exists, err := t.client.BucketExists(ctx, t.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := t.client.MakeBucket(ctx, t.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}
	_, err = t.client.PutObject(ctx, t.bucket, t.key(name), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentTypeTOML,
	})
	return err
}

// Remove deletes the object.
func (t *Bucket) Remove(ctx context.Context, name string) error {
	return t.client.RemoveObject(ctx, t.bucket, t.key(name), minio.RemoveObjectOptions{})
}
