// Package minio provides a MinIO/S3 implementation of objstore.Store.
//
// Usage:
//
//	cfg := objstore.DefaultConfig("localhost:9000", "minioadmin", "minioadmin")
//	store, err := minio.New(ctx, cfg)
//	if err != nil { ... }
//	defer store.Close()
package minio

import (
	"bytes"
	"context"
	"io"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/imgfit/imgfit/internal/errs"
	"github.com/imgfit/imgfit/internal/objstore"
)

// Driver is a MinIO implementation of objstore.Store.
// It is safe for concurrent use by multiple goroutines.
type Driver struct {
	client *miniogo.Client
}

// New connects to the backend using the provided Config and returns a Driver.
// It calls Ping to validate the connection before returning.
func New(ctx context.Context, cfg *objstore.Config) (*Driver, error) {
	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindStoreFailed, "failed to create minio client", err)
	}

	d := &Driver{client: client}

	if err := d.Ping(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

// --- objstore.Store implementation ---

// Ping verifies the server is reachable by listing buckets.
func (d *Driver) Ping(ctx context.Context) error {
	_, err := d.client.ListBuckets(ctx)
	if err != nil {
		return mapError(err, "ping failed")
	}
	return nil
}

// Close is a no-op — the SDK client holds no persistent connections.
func (d *Driver) Close() error {
	return nil
}

// Exists reports whether an object is present at key inside bucket.
// Absence is (false, nil); only non-absence failures produce an error.
func (d *Driver) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := d.client.StatObject(ctx, bucket, key, miniogo.StatObjectOptions{})
	if err != nil {
		mapped := mapError(err, "failed to stat object")
		if errs.IsNotFound(mapped) {
			return false, nil
		}
		return false, mapped
	}
	return true, nil
}

// Fetch downloads the full content of the object at key inside bucket.
func (d *Driver) Fetch(ctx context.Context, bucket, key string) ([]byte, *objstore.ObjectInfo, error) {
	obj, err := d.client.GetObject(ctx, bucket, key, miniogo.GetObjectOptions{})
	if err != nil {
		return nil, nil, mapError(err, "failed to get object")
	}
	defer obj.Close()

	// GetObject is lazy; the first Stat/Read performs the request, so
	// absence surfaces here rather than above.
	stat, err := obj.Stat()
	if err != nil {
		return nil, nil, mapError(err, "failed to stat object after get")
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, nil, mapError(err, "failed to read object body")
	}

	return data, &objstore.ObjectInfo{
		Key:          key,
		Size:         stat.Size,
		ContentType:  stat.ContentType,
		ETag:         stat.ETag,
		LastModified: stat.LastModified,
	}, nil
}

// Put stores data as the object at key inside bucket.
func (d *Driver) Put(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := d.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)),
		miniogo.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return mapError(err, "failed to put object")
	}
	return nil
}
