// Package objstore defines the capability interface the resize pipeline uses
// to talk to an object storage backend.
//
// The pipeline needs exactly three operations — existence check, byte fetch,
// byte store — so that is the whole surface. Providers (MinIO/S3, the
// in-memory store) implement Store; callers depend only on this package,
// never on a specific provider package.
//
// Usage:
//
//	cfg := objstore.DefaultConfig("localhost:9000", "minioadmin", "minioadmin")
//	store, err := minio.New(ctx, cfg)
//	if err != nil { ... }
//	defer store.Close()
package objstore

import (
	"context"
	"time"
)

// Store is the gateway to the object storage backend.
// No operation retries internally; transient failures surface to the caller.
type Store interface {
	// Ping verifies the storage backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any held resources.
	Close() error

	// Exists reports whether an object is present at key inside bucket.
	// A missing object is (false, nil), not an error; the error return is
	// reserved for failures other than absence.
	Exists(ctx context.Context, bucket, key string) (bool, error)

	// Fetch downloads the full content of the object at key inside bucket.
	// A missing object fails with errs.ErrKindNotFound.
	Fetch(ctx context.Context, bucket, key string) ([]byte, *ObjectInfo, error)

	// Put stores data as the object at key inside bucket, replacing any
	// existing object under that key.
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// ObjectInfo describes a single stored object.
type ObjectInfo struct {
	// Key is the full object path within the bucket (e.g. "images/photo.jpg").
	Key string

	// Size is the byte size of the object. -1 if unknown.
	Size int64

	// ContentType is the MIME type (e.g. "image/jpeg").
	ContentType string

	// ETag is the object's entity tag / hash, as returned by the backend.
	ETag string

	// LastModified is when the object was last written.
	LastModified time.Time
}
