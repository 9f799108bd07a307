package storage

import (
	"context"
	"fmt"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// BlobAdapter stores each key as one object in a gocloud.dev bucket.
type BlobAdapter struct {
	bucket *blob.Bucket
}

// NewBlobAdapter wraps an already opened bucket. The adapter owns the bucket and closes it on Close.
func NewBlobAdapter(bucket *blob.Bucket) *BlobAdapter {
	return &BlobAdapter{bucket: bucket}
}

// OpenFileAdapter opens a bucket rooted at dir, creating the directory when missing.
func OpenFileAdapter(dir string) (*BlobAdapter, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, wrapStorageError(err, fmt.Sprintf("failed to open storage directory %q", dir))
	}
	return NewBlobAdapter(bucket), nil
}

// OpenMemoryAdapter opens an in-memory bucket. Its contents are lost on Close.
func OpenMemoryAdapter() *BlobAdapter {
	return NewBlobAdapter(memblob.OpenBucket(nil))
}

// Get reads the object stored under key.
func (b *BlobAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrKeyNotFound
		}
		return nil, wrapStorageError(err, "failed to read key "+key)
	}
	return data, nil
}

// Set writes value under key, replacing any previous object.
func (b *BlobAdapter) Set(ctx context.Context, key string, value []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := b.bucket.WriteAll(ctx, key, value, opts); err != nil {
		return wrapStorageError(err, "failed to write key "+key)
	}
	return nil
}

// Remove deletes the object stored under key.
func (b *BlobAdapter) Remove(ctx context.Context, key string) error {
	if err := b.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}
		return wrapStorageError(err, "failed to remove key "+key)
	}
	return nil
}

// Exists reports whether an object is stored under key.
func (b *BlobAdapter) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := b.bucket.Exists(ctx, key)
	if err != nil {
		return false, wrapStorageError(err, "failed to check key "+key)
	}
	return ok, nil
}

// Close closes the underlying bucket.
func (b *BlobAdapter) Close() error {
	return b.bucket.Close()
}
