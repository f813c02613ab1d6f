package storage

import (
	"context"
	"fmt"

	"github.com/init-pkg/rework-tracker/domain/app"
)

// quotaStore refuses blobs above a fixed size before they reach the backend.
type quotaStore struct {
	app.BlobStore
	limit int64
}

func WithQuota(store app.BlobStore, limit int64) app.BlobStore {
	if limit <= 0 {
		return store
	}
	return &quotaStore{BlobStore: store, limit: limit}
}

func (this *quotaStore) Set(ctx context.Context, key string, blob []byte) error {
	if int64(len(blob)) > this.limit {
		return fmt.Errorf("blob of %d bytes over %d byte quota: %w", len(blob), this.limit, app.ErrQuotaExceeded)
	}
	return this.BlobStore.Set(ctx, key, blob)
}
