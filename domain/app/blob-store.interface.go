package app

import "context"

// BlobStore persists opaque blobs under fixed keys.
type BlobStore interface {
	// Get reports false when nothing is stored under key.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set fails with ErrQuotaExceeded when the backend cannot hold the blob.
	Set(ctx context.Context, key string, blob []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
